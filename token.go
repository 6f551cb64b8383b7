package matchstring

import (
	"errors"
	"fmt"
)

// Base error types for token validation.
var (
	ErrTokenNilPredicate    = errors.New("token predicate must not be nil")
	ErrTokenNilParse        = errors.New("token parse func must not be nil")
	ErrTokenNegativeAtLeast = errors.New("token minimum run length must not be negative")
	ErrTokenPartialParse    = errors.New("token parse func must accept the empty run when AtLeast is 0")
)

// Token is a reusable, typed character-class matcher. It recognizes one
// contiguous run of input runes satisfying Predicate and converts the
// run into a T via Parse.
//
// A Token always consumes the maximal run satisfying Predicate starting
// at the current position (maximal munch), then accepts only if the run
// is at least AtLeast runes long. It never retries a shorter run on its
// own; backtracking across a token boundary is driven entirely by the
// enclosing pattern failing later.
//
// Parse must be total over every run the predicate could have accepted,
// including the empty run when AtLeast is 0.
//
// Tokens are immutable once built and safe to share between patterns
// and between concurrent matches.
type Token[T any] struct {
	// Predicate is the membership test for a single rune.
	Predicate func(rune) bool
	// Parse converts the accepted run into a domain value.
	Parse func(run []rune) T
	// AtLeast is the minimum run length for the token to count as matched.
	AtLeast int
	// SkipLeading, when non-nil, silently consumes matching runes
	// immediately before the token attempts to match. Skipped runes are
	// not part of the captured run, and the skip is undone if the token
	// fails.
	SkipLeading func(rune) bool
}

// TryConsume attempts to match the token against input at pos.
//
// On success it returns the parsed value and the advanced position. On
// failure it returns the zero T, the original pos (any SkipLeading
// advance is undone), and false. No state persists across calls.
func (t *Token[T]) TryConsume(input []rune, pos int) (T, int, bool) {
	cur := pos
	if t.SkipLeading != nil {
		for cur < len(input) && t.SkipLeading(input[cur]) {
			cur++
		}
	}

	start := cur
	for cur < len(input) && t.Predicate(input[cur]) {
		cur++
	}

	run := input[start:cur]
	if len(run) < t.AtLeast {
		var zero T
		return zero, pos, false
	}
	return t.Parse(run), cur, true
}

// validate checks the construction-time invariants of the token. It is
// called for every referenced token when the enclosing pattern is
// compiled.
func (t *Token[T]) validate() error {
	if t.Predicate == nil {
		return ErrTokenNilPredicate
	}
	if t.Parse == nil {
		return ErrTokenNilParse
	}
	if t.AtLeast < 0 {
		return fmt.Errorf("%w: got %d", ErrTokenNegativeAtLeast, t.AtLeast)
	}
	if t.AtLeast == 0 {
		return t.probeEmptyParse()
	}
	return nil
}

// probeEmptyParse reports whether Parse survives the empty run. A token
// with AtLeast == 0 can legally be handed an empty run mid-match, so a
// parse func that panics on it is rejected up front.
func (t *Token[T]) probeEmptyParse() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: parse panicked with %v", ErrTokenPartialParse, r)
		}
	}()
	_ = t.Parse(nil)
	return nil
}
