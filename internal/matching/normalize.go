// Package matching turns alert criteria into a filter over catalog listings.
//
// The same predicate is rendered as a parameterized SQL WHERE clause for bulk recomputation
// and evaluated in memory for single incoming listings.
package matching

import "strings"

// NamePattern is the regular expression, bound as a query parameter, that strips the same
// characters from asset names inside the database that Normalize strips in Go.
const NamePattern = `[^a-zA-Z0-9\s]`

// Normalize removes every rune that is not an ASCII letter, ASCII digit or whitespace.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if keepRune(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

func keepRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == ' ', r == '\t', r == '\n', r == '\f', r == '\r':
		return true
	default:
		return false
	}
}

// Fragments normalizes and lower-cases match strings. Whitespace left behind by removed characters
// is kept, so "& 12" becomes " 12". Strings that are blank after normalization are dropped.
func Fragments(matchStrings []string) []string {
	fragments := make([]string, 0, len(matchStrings))
	for _, s := range matchStrings {
		f := strings.ToLower(Normalize(s))
		if strings.TrimSpace(f) == "" {
			continue
		}
		fragments = append(fragments, f)
	}

	return fragments
}

// normalizedName is the in-memory counterpart of LOWER(REGEXP_REPLACE(a.name, NamePattern, '', 'g')).
func normalizedName(name string) string {
	return strings.ToLower(Normalize(name))
}
