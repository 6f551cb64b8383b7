// Package matchstring provides a small, typed string-pattern-matching
// engine built around backtracking search and typed capture destinations.
//
// A pattern is an immutable tree of nodes built from literals, typed
// tokens, captures, sequences, ordered alternations, and quantified
// (optionally separated) repetitions. A pattern matches only if it
// accounts for the entire input; a pattern that matches a prefix fails.
//
// The package is organized around four pieces:
//   - Token: a reusable, typed character-class matcher with a parse step
//     that turns the accepted run into a domain value (e.g. a digit run
//     into a uint64). Tokens are greedy: they always consume the maximal
//     run satisfying their predicate and never back off on their own.
//   - Dest / List: typed capture destinations. A Dest holds a single
//     value bound once per successful match; a List collects one value
//     per repetition iteration. Destinations are populated only when the
//     whole match succeeds, and reading an unbound destination fails
//     loudly rather than returning a zero value.
//   - Node constructors: Literal, Ref, Capture, CaptureAll, CaptureText,
//     Sequence, OneOf, Repeat (plus the Star/Plus conveniences) build
//     the pattern tree.
//   - Pattern: Compile validates the tree once (malformed patterns are
//     rejected at construction time, not mid-match) and the resulting
//     Pattern is matched against many inputs with Match.
//
// Matching is ordered-choice, depth-first backtracking search: OneOf
// tries branches in the order written and backtracks into a branch
// before moving past it, and Repeat tries the maximal iteration count
// first, backing down to its minimum when the rest of the pattern
// cannot otherwise succeed.
//
// A compiled Pattern tree is read-only during matching. Because capture
// destinations are referenced by the tree, a Pattern that binds captures
// should not be matched concurrently from multiple goroutines; compile
// one Pattern (with its own destinations) per goroutine, or share only
// capture-free patterns.
//
// The package also ships a declarative front-end: CompileGrammar turns a
// JSON pattern document into a compiled Grammar using a Vocabulary of
// named tokens, with typed readout of captures by name. The built-in
// token library (Num, Hex, Oct, Bin, Alpha, Alnum, Word, Whitespace) is
// expressed purely as Token values; the matcher has no special cases for
// it.
package matchstring
