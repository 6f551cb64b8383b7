package matchstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullConsumptionLaw(t *testing.T) {
	p := MustCompile(Literal("foo"))

	assert.True(t, p.Match("foo"))
	assert.False(t, p.Match("foobar"), "a prefix-only match must fail")
	assert.False(t, p.Match("fo"))
	assert.False(t, p.Match(""))
}

func TestEmptyPatternMatchesEmptyInput(t *testing.T) {
	p := MustCompile(Sequence())

	assert.True(t, p.Match(""))
	assert.False(t, p.Match("x"))
}

func TestLiteralSequence(t *testing.T) {
	p := MustCompile(Sequence(Literal("foo"), Literal("bar")))

	assert.True(t, p.Match("foobar"))
	assert.False(t, p.Match("foobaz"))
	assert.False(t, p.Match("foobarbaz"))
}

func TestOrderedChoiceLaw(t *testing.T) {
	// Branch 1 matches a prefix of the input; the search must not stop
	// there but backtrack into branch 2 so the whole input is consumed.
	p := MustCompile(OneOf(Literal("foo"), Literal("foobar")))

	assert.True(t, p.Match("foobar"))
	assert.True(t, p.Match("foo"))
	assert.False(t, p.Match("foob"))
}

func TestOrderedChoicePrefersEarlierBranch(t *testing.T) {
	d := NewDest[string]()
	p := MustCompile(OneOf(
		CaptureText(d, Literal("ab")),
		Literal("ab"),
	))

	require.True(t, p.Match("ab"))
	assert.Equal(t, "ab", d.Value(), "the first viable branch must win")
}

func TestBacktrackIntoBranchBeforeMovingOn(t *testing.T) {
	// The inner alternation's second alternative makes branch 1 viable;
	// the search must find it rather than falling through to branch 2.
	marker := NewDest[string]()
	p := MustCompile(OneOf(
		Sequence(OneOf(Literal("a"), Literal("ab")), CaptureText(marker, Literal("c"))),
		Literal("abd"),
	))

	require.True(t, p.Match("abc"))
	assert.Equal(t, "c", marker.Value())
	assert.True(t, p.Match("abd"))
}

func TestGreedyRepetitionBacksDown(t *testing.T) {
	// Star consumes all three "a"s first, then gives one back so the
	// trailing literal can match.
	p := MustCompile(Sequence(Star(Literal("a")), Literal("a")))

	assert.True(t, p.Match("aaa"))
	assert.True(t, p.Match("a"))
	assert.False(t, p.Match(""))
}

func TestRepetitionMinimumCount(t *testing.T) {
	star := MustCompile(Star(Literal("ab")))
	plus := MustCompile(Plus(Literal("ab")))

	assert.True(t, star.Match(""))
	assert.True(t, star.Match("abab"))
	assert.False(t, plus.Match(""))
	assert.True(t, plus.Match("ab"))
	assert.False(t, plus.Match("aba"))
}

func TestSeparatorDiscipline(t *testing.T) {
	nums := NewList[uint64]()
	p := MustCompile(Sequence(
		Literal("["),
		StarSep(CaptureAll(nums, Num), ","),
		Literal("]"),
	))

	t.Run("accepts separated elements", func(t *testing.T) {
		require.True(t, p.Match("[1,2,3]"))
		assert.Equal(t, []uint64{1, 2, 3}, nums.Values())
	})

	t.Run("rejects trailing separator", func(t *testing.T) {
		assert.False(t, p.Match("[1,2,]"))
	})

	t.Run("rejects leading separator", func(t *testing.T) {
		assert.False(t, p.Match("[,1]"))
	})

	t.Run("rejects missing separator", func(t *testing.T) {
		assert.False(t, p.Match("[1 2]"))
	})

	t.Run("empty list binds empty collection", func(t *testing.T) {
		require.True(t, p.Match("[]"))
		assert.Empty(t, nums.Values())
	})
}

func TestSeparatedRepetitionRequiresOne(t *testing.T) {
	p := MustCompile(Sequence(
		Literal("["),
		PlusSep(Ref(Num), ","),
		Literal("]"),
	))

	assert.True(t, p.Match("[1]"))
	assert.True(t, p.Match("[1,2]"))
	assert.False(t, p.Match("[]"))
}

func TestCaptureCorrectness(t *testing.T) {
	d := NewDest[string]()
	p := MustCompile(Sequence(Capture(d, Alpha), Literal("!")))

	t.Run("bound on success", func(t *testing.T) {
		require.True(t, p.Match("Alice!"))
		assert.Equal(t, "Alice", d.Value())
	})

	t.Run("unbound on failure", func(t *testing.T) {
		require.False(t, p.Match("Alice?"))
		_, bound := d.Get()
		assert.False(t, bound, "a failed match must leave the destination unbound")
	})
}

func TestCaptureRollbackAcrossBacktracking(t *testing.T) {
	// Branch 1 stages a capture and then fails at the trailing literal;
	// the staged write must not survive into the committed result.
	d := NewDest[string]()
	p := MustCompile(OneOf(
		Sequence(Capture(d, Alpha), Literal("!")),
		Literal("abc"),
	))

	require.True(t, p.Match("abc"))
	_, bound := d.Get()
	assert.False(t, bound, "writes staged by an abandoned branch must be discarded")
}

func TestCaptureTextSpansInnerPattern(t *testing.T) {
	d := NewDest[string]()
	p := MustCompile(Sequence(
		CaptureText(d, Sequence(Literal("a"), Ref(Num))),
		Literal("."),
	))

	require.True(t, p.Match("a42."))
	assert.Equal(t, "a42", d.Value())
}

func TestRepetitionCaptureOrder(t *testing.T) {
	words := NewList[string]()
	p := MustCompile(PlusSep(CaptureAll(words, Alpha), " "))

	require.True(t, p.Match("lorem ipsum dolor"))
	assert.Equal(t, []string{"lorem", "ipsum", "dolor"}, words.Values())
}

func TestTokensDoNotBacktrack(t *testing.T) {
	// Num greedily consumes all digits; the trailing digit literal can
	// never match because the token offers no shorter run.
	p := MustCompile(Sequence(Ref(Num), Literal("3")))

	assert.False(t, p.Match("123"))
}

func TestTokenInSequence(t *testing.T) {
	p := MustCompile(Sequence(Ref(Num), Literal("abc")))

	assert.True(t, p.Match("123abc"))
	assert.False(t, p.Match("123ab"))
	assert.False(t, p.Match("abc"))
}

func TestIdempotence(t *testing.T) {
	nums := NewList[uint64]()
	p := MustCompile(Sequence(
		Literal("["),
		StarSep(CaptureAll(nums, Num), ","),
		Literal("]"),
	))

	require.True(t, p.Match("[7,8]"))
	first := append([]uint64(nil), nums.Values()...)

	require.True(t, p.Match("[7,8]"))
	assert.Equal(t, first, nums.Values(), "re-matching the same tree must yield identical captures")

	assert.False(t, p.Match("[7,8"))
	assert.False(t, p.Match("[7,8"))
}

func TestZeroWidthRepetitionTerminates(t *testing.T) {
	p := MustCompile(Sequence(Star(Literal("")), Literal("x")))

	assert.True(t, p.Match("x"))
	assert.False(t, p.Match("y"))
}

func BenchmarkMatchNumberList(b *testing.B) {
	nums := NewList[uint64]()
	p := MustCompile(Sequence(
		Literal("["),
		StarSep(CaptureAll(nums, Num), ","),
		Literal("]"),
	))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !p.Match("[10,20,30,40,50,60,70,80,90,100]") {
			b.Fatal("expected match")
		}
	}
}

func BenchmarkBacktrackingAlternation(b *testing.B) {
	p := MustCompile(Sequence(
		Star(OneOf(Literal("ab"), Literal("a"))),
		Literal("c"),
	))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !p.Match("abaababac") {
			b.Fatal("expected match")
		}
	}
}

func TestDiagnoseFurthestPosition(t *testing.T) {
	p := MustCompile(Sequence(Literal("["), PlusSep(Ref(Num), ","), Literal("]")))

	ok := p.Diagnose("[1,2,3]")
	assert.True(t, ok.Matched)
	assert.Equal(t, 7, ok.Furthest)

	failed := p.Diagnose("[1,2x")
	assert.False(t, failed.Matched)
	assert.Equal(t, 4, failed.Furthest, "diagnosis should point at the deepest position reached")
}
