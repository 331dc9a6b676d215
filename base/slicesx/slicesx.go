// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slicesx provides additional slice functions
// beyond those in the standard [slices] package.
package slicesx

// SetLength sets the length of the given slice, reusing the existing
// backing array where possible: new elements are zero valued, and
// excess elements are truncated.
func SetLength[E any](s []E, n int) []E {
	diff := n - len(s)
	if diff > 0 {
		return append(s, make([]E, diff)...)
	}
	if diff < 0 {
		return s[:n]
	}
	return s
}

// Swap swaps the elements at the given two indices in the given slice.
func Swap[E any](s []E, i, j int) {
	s[i], s[j] = s[j], s[i]
}
