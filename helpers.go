package matchstring

import (
	"github.com/google/uuid"
)

///////////////////////////////////////////////////////////////////////////////
// Helpers
///////////////////////////////////////////////////////////////////////////////

// hasRunePrefix reports whether input starting at pos begins with text.
func hasRunePrefix(input []rune, pos int, text []rune) bool {
	if pos < 0 || pos+len(text) > len(input) {
		return false
	}
	for i, r := range text {
		if input[pos+i] != r {
			return false
		}
	}
	return true
}

// digitVal returns the value of r as a digit in the given base, or -1
// if r is not a digit of that base. Bases up to 36 use 0-9 then a-z
// (either case).
func digitVal(r rune, base int) int {
	var v int
	switch {
	case r >= '0' && r <= '9':
		v = int(r - '0')
	case r >= 'a' && r <= 'z':
		v = int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		v = int(r-'A') + 10
	default:
		return -1
	}
	if v >= base {
		return -1
	}
	return v
}

// shortID renders a destination identity compactly for error messages.
func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
