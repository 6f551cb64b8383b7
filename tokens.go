package matchstring

import (
	"math"
	"unicode"
)

// Built-in token library. Every entry is a plain Token value with no
// special handling in the matcher, and all are safe to share between
// patterns.

// Digits returns a token matching a run of one or more digits in the
// given base (2..36), parsed into a uint64. Accumulation saturates at
// math.MaxUint64 instead of wrapping.
func Digits(base int) *Token[uint64] {
	return &Token[uint64]{
		Predicate: func(r rune) bool { return digitVal(r, base) >= 0 },
		Parse: func(run []rune) uint64 {
			var v uint64
			b := uint64(base)
			for _, r := range run {
				d := uint64(digitVal(r, base))
				if v > (math.MaxUint64-d)/b {
					return math.MaxUint64
				}
				v = v*b + d
			}
			return v
		},
		AtLeast: 1,
	}
}

var (
	// Num matches a decimal digit run, parsed as uint64.
	Num = Digits(10)
	// Hex matches a hexadecimal digit run, parsed as uint64.
	Hex = Digits(16)
	// Oct matches an octal digit run, parsed as uint64.
	Oct = Digits(8)
	// Bin matches a binary digit run, parsed as uint64.
	Bin = Digits(2)

	// Alpha matches a run of letters, parsed as the raw string.
	Alpha = &Token[string]{
		Predicate: unicode.IsLetter,
		Parse:     func(run []rune) string { return string(run) },
		AtLeast:   1,
	}

	// Alnum matches a run of letters and digits, parsed as the raw string.
	Alnum = &Token[string]{
		Predicate: func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) },
		Parse:     func(run []rune) string { return string(run) },
		AtLeast:   1,
	}

	// Word matches a run of letters and digits, silently skipping any
	// leading whitespace first.
	Word = &Token[string]{
		Predicate:   func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) },
		Parse:       func(run []rune) string { return string(run) },
		AtLeast:     1,
		SkipLeading: unicode.IsSpace,
	}

	// Whitespace matches a run of whitespace runes.
	Whitespace = &Token[string]{
		Predicate: unicode.IsSpace,
		Parse:     func(run []rune) string { return string(run) },
		AtLeast:   1,
	}
)
