package matchstring

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrUnboundDestination = errors.New("destination read before a successful match")
)

// destSlot is the type-erased view of a capture destination held inside
// capture nodes and the staging journal. Commit is only ever called with
// a value of the destination's element type; the typed constructors
// guarantee that at compile time.
type destSlot interface {
	slotID() uuid.UUID
	reset()
	commit(val any)
	seal()
	collection() bool
}

// Dest is a typed, write-once capture destination. It starts unbound,
// is reset at the start of every match of the owning pattern, and is
// bound exactly once when a match that stages a write into it succeeds.
//
// Reading an unbound Dest with Value panics: an unbound read after a
// failed match is a usage error, and silently returning a zero value
// would mask the failure. Use Get for the comma-ok form.
type Dest[T any] struct {
	id    uuid.UUID
	val   T
	bound bool
}

// NewDest creates an empty scalar destination with a fresh identity.
func NewDest[T any]() *Dest[T] {
	return &Dest[T]{id: uuid.New()}
}

// Value returns the bound value. It panics with ErrUnboundDestination
// if the owning match failed or has not run.
func (d *Dest[T]) Value() T {
	if !d.bound {
		panic(fmt.Errorf("%w: destination %s", ErrUnboundDestination, d.id))
	}
	return d.val
}

// Get returns the bound value and whether the destination is bound.
func (d *Dest[T]) Get() (T, bool) {
	return d.val, d.bound
}

// Reset returns the destination to its unbound state.
func (d *Dest[T]) Reset() {
	var zero T
	d.val = zero
	d.bound = false
}

// ID returns the destination's unique identity.
func (d *Dest[T]) ID() uuid.UUID {
	return d.id
}

func (d *Dest[T]) String() string {
	if !d.bound {
		return fmt.Sprintf("Dest(%s, unbound)", shortID(d.id))
	}
	return fmt.Sprintf("Dest(%s, %v)", shortID(d.id), d.val)
}

func (d *Dest[T]) slotID() uuid.UUID { return d.id }
func (d *Dest[T]) reset()            { d.Reset() }
func (d *Dest[T]) collection() bool  { return false }

// seal is a no-op for scalar destinations: a scalar binds only through
// an actual staged write, so a capture inside an untaken alternation
// branch stays unbound.
func (d *Dest[T]) seal() {}

func (d *Dest[T]) commit(val any) {
	d.val = val.(T)
	d.bound = true
}

// List is a typed, ordered capture destination for captures nested
// under a repetition: each successful iteration appends one value, in
// iteration order.
//
// On a successful match a List is bound even when zero iterations ran,
// so Values returns an empty slice rather than failing. After a failed
// match it is unbound and Values panics, like Dest.Value.
type List[T any] struct {
	id    uuid.UUID
	vals  []T
	bound bool
}

// NewList creates an empty collection destination with a fresh identity.
func NewList[T any]() *List[T] {
	return &List[T]{id: uuid.New()}
}

// Values returns the collected values in iteration order. It panics
// with ErrUnboundDestination if the owning match failed or has not run.
func (l *List[T]) Values() []T {
	if !l.bound {
		panic(fmt.Errorf("%w: destination %s", ErrUnboundDestination, l.id))
	}
	return l.vals
}

// Get returns the collected values and whether the destination is bound.
func (l *List[T]) Get() ([]T, bool) {
	return l.vals, l.bound
}

// Reset returns the destination to its unbound, empty state.
func (l *List[T]) Reset() {
	l.vals = nil
	l.bound = false
}

// ID returns the destination's unique identity.
func (l *List[T]) ID() uuid.UUID {
	return l.id
}

func (l *List[T]) String() string {
	if !l.bound {
		return fmt.Sprintf("List(%s, unbound)", shortID(l.id))
	}
	return fmt.Sprintf("List(%s, %v)", shortID(l.id), l.vals)
}

func (l *List[T]) slotID() uuid.UUID { return l.id }
func (l *List[T]) reset()            { l.Reset() }
func (l *List[T]) collection() bool  { return true }

// seal marks the list bound without appending: a repetition that ran
// zero iterations still binds its collection to the empty slice.
func (l *List[T]) seal() { l.bound = true }

func (l *List[T]) commit(val any) {
	l.vals = append(l.vals, val.(T))
	l.bound = true
}
