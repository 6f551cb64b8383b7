package matchstring

// Node is one element of an immutable pattern tree. The six variants
// (literal, token reference, capture, sequence, alternation, repetition)
// form a closed sum dispatched by the matcher; user code builds trees
// with the constructor functions below and never implements Node.
//
// Trees are acyclic, immutable once constructed, and read-only during
// matching.
type Node interface {
	// node restricts the sum to this package.
	node()
}

type literalNode struct {
	text []rune
}

type tokenNode struct {
	// consume wraps Token.TryConsume with the output type erased.
	consume func(input []rune, pos int) (any, int, bool)
	// verify runs the token's construction-time checks at compile time.
	verify func() error
}

type captureNode struct {
	slot  destSlot
	inner Node
	// text selects capturing the matched text span instead of a token's
	// parsed value.
	text bool
}

type sequenceNode struct {
	elems []Node
}

type alternationNode struct {
	alts []Node
}

type repetitionNode struct {
	inner Node
	sep   []rune
	// sepSet distinguishes "no separator" from an explicitly configured
	// (possibly empty, hence malformed) separator.
	sepSet bool
	min    int
}

func (*literalNode) node()     {}
func (*tokenNode) node()       {}
func (*captureNode) node()     {}
func (*sequenceNode) node()    {}
func (*alternationNode) node() {}
func (*repetitionNode) node()  {}

// Literal builds a node that matches text exactly, rune for rune.
func Literal(text string) Node {
	return &literalNode{text: []rune(text)}
}

// Ref builds a node that delegates to tok. The token consumes its
// maximal run once per visit; it offers no shorter-run alternatives to
// the backtracking search.
func Ref[T any](tok *Token[T]) Node {
	return &tokenNode{
		consume: func(input []rune, pos int) (any, int, bool) {
			v, next, ok := tok.TryConsume(input, pos)
			if !ok {
				return nil, pos, false
			}
			return v, next, true
		},
		verify: tok.validate,
	}
}

// Capture builds a node that matches tok and, when the overall match
// succeeds, binds the token's parsed value into d. The destination type
// is tied to the token's output type at compile time.
func Capture[T any](d *Dest[T], tok *Token[T]) Node {
	return &captureNode{slot: d, inner: Ref(tok)}
}

// CaptureAll is the collection form of Capture for captures nested
// under a repetition: each successful iteration appends the token's
// parsed value to l.
func CaptureAll[T any](l *List[T], tok *Token[T]) Node {
	return &captureNode{slot: l, inner: Ref(tok)}
}

// CaptureText builds a node that matches inner and binds the exact text
// the inner pattern consumed into d.
func CaptureText(d *Dest[string], inner Node) Node {
	return &captureNode{slot: d, inner: inner, text: true}
}

// CaptureTexts is the collection form of CaptureText, for use under a
// repetition.
func CaptureTexts(l *List[string], inner Node) Node {
	return &captureNode{slot: l, inner: inner, text: true}
}

// Sequence builds a node that matches its elements left to right,
// advancing the cursor cumulatively.
func Sequence(elems ...Node) Node {
	return &sequenceNode{elems: elems}
}

// OneOf builds an ordered alternation: branches are tried in the order
// written, and the first branch whose match lets the whole pattern
// succeed wins. The search backtracks into a branch's own alternatives
// before moving to the next branch.
func OneOf(alts ...Node) Node {
	return &alternationNode{alts: alts}
}

// RepeatOpts configures a repetition.
type RepeatOpts struct {
	// Separator, when non-empty, must appear between consecutive
	// iterations. It is never consumed before the first iteration or
	// after the last.
	Separator string
	// AtLeastOne requires at least one iteration (a "+" repetition
	// instead of "*").
	AtLeastOne bool
}

// Repeat builds a quantified repetition of inner. Matching is greedy:
// the maximal iteration count is tried first, then backed down to the
// minimum when the remainder of the enclosing pattern cannot otherwise
// succeed.
func Repeat(inner Node, opts RepeatOpts) Node {
	min := 0
	if opts.AtLeastOne {
		min = 1
	}
	return &repetitionNode{
		inner:  inner,
		sep:    []rune(opts.Separator),
		sepSet: opts.Separator != "",
		min:    min,
	}
}

// Star matches inner zero or more times.
func Star(inner Node) Node {
	return Repeat(inner, RepeatOpts{})
}

// Plus matches inner one or more times.
func Plus(inner Node) Node {
	return Repeat(inner, RepeatOpts{AtLeastOne: true})
}

// StarSep matches inner zero or more times separated by sep. Unlike
// Repeat, the separator counts as configured even when empty, so an
// empty sep is rejected at compile time rather than treated as absent.
func StarSep(inner Node, sep string) Node {
	return &repetitionNode{inner: inner, sep: []rune(sep), sepSet: true, min: 0}
}

// PlusSep matches inner one or more times separated by sep.
func PlusSep(inner Node, sep string) Node {
	return &repetitionNode{inner: inner, sep: []rune(sep), sepSet: true, min: 1}
}
