package matchstring

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Base error types for pattern compilation.
var (
	ErrNilPatternNode          = errors.New("pattern node must not be nil")
	ErrEmptyAlternation        = errors.New("alternation must have at least one branch")
	ErrEmptySeparator          = errors.New("repetition separator must not be empty")
	ErrNilCaptureDestination   = errors.New("capture destination must not be nil")
	ErrScalarUnderRepetition   = errors.New("scalar capture destination under a repetition, use a List")
	ErrCollectionOutsideRepeat = errors.New("collection capture destination outside a repetition, use a Dest")
)

// Pattern is a compiled, validated pattern tree. It is built once with
// Compile and reused across many Match calls.
//
// The tree and its tokens are read-only during matching. A Pattern that
// binds capture destinations writes into them on success, so such a
// Pattern must not be matched concurrently; capture-free patterns may
// be shared freely between goroutines.
type Pattern struct {
	root  Node
	slots []destSlot
}

// Diagnosis is the optional telemetry reported by Diagnose. Furthest is
// the deepest rune offset any explored candidate reached; it is a
// debugging aid, not part of the matching contract.
type Diagnosis struct {
	Matched  bool
	Furthest int
}

// Compile validates root and returns a reusable Pattern.
//
// Construction-time misuse is rejected here rather than surfacing
// mid-match, since the tree is matched many times: nil nodes, empty
// alternations, explicitly configured empty separators (which would
// loop forever on zero-width iterations), tokens with invalid fields or
// a parse func that cannot handle the empty run, and capture
// destinations of the wrong shape for their nesting.
func Compile(root Node) (*Pattern, error) {
	pv := &patternValidator{seen: map[uuid.UUID]bool{}}
	if err := pv.walk(root, false); err != nil {
		return nil, err
	}
	return &Pattern{root: root, slots: pv.slots}, nil
}

// MustCompile is Compile, panicking on error. Intended for patterns
// built from constants at program start.
func MustCompile(root Node) *Pattern {
	p, err := Compile(root)
	if err != nil {
		panic(err)
	}
	return p
}

// Match reports whether the pattern accounts for the entire input. A
// match that consumes only a prefix is a failure.
//
// All destinations bound by the pattern are reset first. On success
// every staged capture write is committed, in match order; on failure
// all destinations are left unbound.
func (p *Pattern) Match(input string) bool {
	ok, _ := p.run(input)
	return ok
}

// Diagnose matches like Match and additionally reports the furthest
// position reached, which usually points near the offending input on a
// failed match.
func (p *Pattern) Diagnose(input string) Diagnosis {
	ok, furthest := p.run(input)
	return Diagnosis{Matched: ok, Furthest: furthest}
}

func (p *Pattern) run(input string) (bool, int) {
	for _, s := range p.slots {
		s.reset()
	}

	st := &matchState{input: []rune(input)}
	ok := st.try(p.root, 0, nil, func(pos int, caps *capEntry) bool {
		if pos != len(st.input) {
			return false
		}
		commitCaptures(caps)
		return true
	})

	if ok {
		// A repetition that ran zero iterations still binds its
		// collection, so an empty "[]" reads as an empty slice rather
		// than an unbound destination.
		for _, s := range p.slots {
			if s.collection() {
				s.seal()
			}
		}
	}
	return ok, st.furthest
}

// patternValidator walks the tree once at compile time, collecting the
// bound destinations and checking the construction-time invariants.
type patternValidator struct {
	slots []destSlot
	seen  map[uuid.UUID]bool
}

func (pv *patternValidator) walk(n Node, underRep bool) error {
	if n == nil {
		return ErrNilPatternNode
	}

	switch x := n.(type) {

	case *literalNode:
		return nil

	case *tokenNode:
		return x.verify()

	case *captureNode:
		if x.slot == nil {
			return ErrNilCaptureDestination
		}
		if underRep && !x.slot.collection() {
			return fmt.Errorf("%w: destination %s", ErrScalarUnderRepetition, shortID(x.slot.slotID()))
		}
		if !underRep && x.slot.collection() {
			return fmt.Errorf("%w: destination %s", ErrCollectionOutsideRepeat, shortID(x.slot.slotID()))
		}
		pv.record(x.slot)
		return pv.walk(x.inner, underRep)

	case *sequenceNode:
		for _, elem := range x.elems {
			if err := pv.walk(elem, underRep); err != nil {
				return err
			}
		}
		return nil

	case *alternationNode:
		if len(x.alts) == 0 {
			return ErrEmptyAlternation
		}
		for _, alt := range x.alts {
			if err := pv.walk(alt, underRep); err != nil {
				return err
			}
		}
		return nil

	case *repetitionNode:
		if x.sepSet && len(x.sep) == 0 {
			return ErrEmptySeparator
		}
		return pv.walk(x.inner, true)
	}

	return fmt.Errorf("%w: unknown node %T", ErrNilPatternNode, n)
}

// record collects each destination once, even when the same slot is
// bound in several alternation branches.
func (pv *patternValidator) record(s destSlot) {
	if pv.seen[s.slotID()] {
		return
	}
	pv.seen[s.slotID()] = true
	pv.slots = append(pv.slots, s)
}
