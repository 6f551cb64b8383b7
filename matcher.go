package matchstring

// The matcher is a depth-first, ordered-choice backtracking search over
// the pattern tree, written in continuation-passing style: try matches
// one node at pos and invokes k once per candidate way the node can
// consume input, in priority order. k returns true when the remainder
// of the pattern (all the way to the top level) succeeded, which
// short-circuits the search; returning false asks for the node's next
// candidate.
//
// Capture writes are staged in a persistent journal threaded through
// the continuations. Nothing is written into a destination until the
// top-level match commits, so a failed attempt can never leave a
// destination partially filled.

// cont resumes the enclosing pattern at pos with the staged captures
// accumulated so far.
type cont func(pos int, caps *capEntry) bool

// capEntry is one staged capture write. Entries form an immutable
// newest-first linked list so that abandoned branches share structure
// with, and never disturb, their siblings.
type capEntry struct {
	prev *capEntry
	slot destSlot
	val  any
}

// matchState is the per-invocation cursor state. Each Match call owns
// its own matchState; the pattern tree itself is never written.
type matchState struct {
	input []rune
	// furthest is the deepest position any candidate reached, kept as
	// optional diagnostics for Diagnose.
	furthest int
}

func (st *matchState) reached(pos int) {
	if pos > st.furthest {
		st.furthest = pos
	}
}

func (st *matchState) try(n Node, pos int, caps *capEntry, k cont) bool {
	switch x := n.(type) {

	case *literalNode:
		// Exactly one candidate: the literal matches here or it does not.
		if !hasRunePrefix(st.input, pos, x.text) {
			return false
		}
		end := pos + len(x.text)
		st.reached(end)
		return k(end, caps)

	case *tokenNode:
		// One candidate per visit: tokens are greedy and never offer a
		// shorter run.
		_, next, ok := x.consume(st.input, pos)
		if !ok {
			return false
		}
		st.reached(next)
		return k(next, caps)

	case *captureNode:
		if tok, isTok := x.inner.(*tokenNode); isTok && !x.text {
			val, next, ok := tok.consume(st.input, pos)
			if !ok {
				return false
			}
			st.reached(next)
			return k(next, &capEntry{prev: caps, slot: x.slot, val: val})
		}
		// Text capture: stage the span the inner pattern consumed.
		return st.try(x.inner, pos, caps, func(end int, inner *capEntry) bool {
			staged := &capEntry{prev: inner, slot: x.slot, val: string(st.input[pos:end])}
			return k(end, staged)
		})

	case *sequenceNode:
		var step func(i, pos int, caps *capEntry) bool
		step = func(i, pos int, caps *capEntry) bool {
			if i == len(x.elems) {
				return k(pos, caps)
			}
			return st.try(x.elems[i], pos, caps, func(next int, nc *capEntry) bool {
				return step(i+1, next, nc)
			})
		}
		return step(0, pos, caps)

	case *alternationNode:
		for _, alt := range x.alts {
			if st.try(alt, pos, caps, k) {
				return true
			}
		}
		return false

	case *repetitionNode:
		return st.tryRepetition(x, pos, caps, k)
	}

	return false
}

// tryRepetition explores iteration counts greedily: it first tries to
// run one more iteration (recursively, so the deepest count is reached
// first) and only then, on the way back out, offers the current count
// to the continuation, provided the minimum is met.
func (st *matchState) tryRepetition(x *repetitionNode, pos int, caps *capEntry, k cont) bool {
	var rep func(count, pos int, caps *capEntry) bool
	rep = func(count, pos int, caps *capEntry) bool {
		iterate := func(at int, c *capEntry) bool {
			return st.try(x.inner, at, c, func(next int, nc *capEntry) bool {
				if next == at && !x.sepSet {
					// A zero-width iteration with no separator makes no
					// progress; cut it off instead of looping forever.
					return false
				}
				return rep(count+1, next, nc)
			})
		}

		if count > 0 && x.sepSet {
			// Separator only between iterations.
			if hasRunePrefix(st.input, pos, x.sep) {
				sepEnd := pos + len(x.sep)
				st.reached(sepEnd)
				if iterate(sepEnd, caps) {
					return true
				}
			}
		} else {
			if iterate(pos, caps) {
				return true
			}
		}

		if count >= x.min {
			return k(pos, caps)
		}
		return false
	}
	return rep(0, pos, caps)
}

// commitCaptures applies the staged journal, oldest write first, so a
// collection destination receives its elements in iteration order.
func commitCaptures(tail *capEntry) {
	var ordered []*capEntry
	for e := tail; e != nil; e = e.prev {
		ordered = append(ordered, e)
	}
	for i := len(ordered) - 1; i >= 0; i-- {
		ordered[i].slot.commit(ordered[i].val)
	}
}
