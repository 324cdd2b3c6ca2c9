// Package textcase holds the string folding shared by the row comparator
// and accordion key derivation.
package textcase

import (
	"unicode"
	"unicode/utf16"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lower applies full Unicode lower-case mapping, independent of locale.
// Unlike strings.ToLower it handles multi-rune mappings such as 'İ'.
func Lower(s string) string {
	// A Caser carries state between calls, so each call gets its own.
	return cases.Lower(language.Und).String(s)
}

// IsSpace reports whether r matches the whitespace class used for slugs:
// Unicode white space and the byte order mark, but not NEL (U+0085).
func IsSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// CompareUTF16 orders two strings by their UTF-16 code units, the order
// scripting runtimes use for string comparison. It differs from Go's byte
// order only for characters beyond the Basic Multilingual Plane.
func CompareUTF16(a, b string) int {
	if a == b {
		return 0
	}
	ua := utf16.Encode([]rune(a))
	ub := utf16.Encode([]rune(b))
	for i := 0; i < len(ua) && i < len(ub); i++ {
		if ua[i] != ub[i] {
			if ua[i] < ub[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(ua) < len(ub):
		return -1
	case len(ua) > len(ub):
		return 1
	default:
		return 0
	}
}
