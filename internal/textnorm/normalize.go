// Package textnorm provides text canonicalization for entity matching.
// All resolver comparisons go through Normalize so that case, spacing,
// dash variants and diacritics never affect lookup results.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// dashLike reports whether r is one of the Unicode dash/hyphen variants
// that should fold to a plain ASCII hyphen: hyphen through horizontal bar
// (U+2010..U+2015), minus sign (U+2212), small hyphen-minus (U+FE63),
// small em dash (U+FE58) and full-width hyphen-minus (U+FF0D).
func dashLike(r rune) bool {
	switch {
	case r >= '‐' && r <= '―':
		return true
	case r == '−', r == '﹘', r == '﹣', r == '－':
		return true
	}
	return false
}

// Normalize canonicalizes free text for comparison: lower-case, trimmed,
// dash variants folded to "-", whitespace runs collapsed to a single space,
// and combining diacritical marks stripped after NFKD decomposition.
// It is a total function: every input, including empty, yields a value and
// never an error. Normalize is idempotent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToLower(strings.TrimSpace(s))

	s = strings.Map(func(r rune) rune {
		if dashLike(r) {
			return '-'
		}
		return r
	}, s)

	// Collapse internal whitespace runs to single spaces.
	s = strings.Join(strings.Fields(s), " ")

	// NFKD decomposition followed by removal of combining marks, so
	// "é" and "e" compare equal. The transformer chain is stateful and
	// must not be shared across calls.
	strip := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	if out, _, err := transform.String(strip, s); err == nil {
		s = out
	}

	return s
}
