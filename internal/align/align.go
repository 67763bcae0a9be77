// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package align provides index helpers for the parallel arrays ADS returns
// (authors, affiliations, ORCID lists). Upstream alignment is a fragile
// contract: an array may be shorter, longer, or padded with placeholders
// relative to the author list. Every component that walks two arrays in
// lockstep goes through this package so the truncation behavior is uniform.
package align

// Shorter returns the number of positions that can be indexed safely in
// both slices.
func Shorter(a, b []string) int {
	if len(a) < len(b) {
		return len(a)
	}
	return len(b)
}

// At returns s[i], or "" when i is out of range.
func At(s []string, i int) string {
	if i < 0 || i >= len(s) {
		return ""
	}
	return s[i]
}

// Pairs calls fn once per position up to the longer slice's length, passing
// "" for the slice that has run out. Equivalent to zip-with-padding.
func Pairs(a, b []string, fn func(x, y string)) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		fn(At(a, i), At(b, i))
	}
}
