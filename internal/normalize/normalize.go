// Package normalize provides the canonical string normalization used for
// catalog keys and searches.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
)

// folder performs Unicode case folding, which handles characters that
// simple lowercasing gets wrong (e.g. İ, ß).
//
//nolint:gochecknoglobals // Stateless caser shared by all callers
var folder = cases.Fold()

// Title returns the normalized form of a title. This is the single ordering
// and equality key for the catalog index: every insert, delete, and lookup
// must go through it or the index silently fragments into case variants.
func Title(raw string) string {
	return fold(raw)
}

// Author returns the normalized form of an author name, used for
// case-insensitive substring search.
func Author(raw string) string {
	return fold(raw)
}

func fold(raw string) string {
	return folder.String(strings.TrimSpace(sanitizeString(raw)))
}

// sanitizeString removes null bytes, which can leak in from imported
// metadata and corrupt comparisons and JSON output.
func sanitizeString(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 0 {
			return -1
		}
		return r
	}, s)
}
