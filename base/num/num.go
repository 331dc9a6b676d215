// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package num provides a generic type constraint for numbers
// and conversion functions between numbers and bools.
package num

import "golang.org/x/exp/constraints"

// Number is a type constraint for a number of any type.
type Number interface {
	constraints.Integer | constraints.Float
}

// ToBool converts the given number to a bool (true if nonzero).
func ToBool[T Number](v T) bool {
	return v != 0
}

// FromBool converts the given bool to a number (1 if true, 0 if false).
func FromBool[T Number](b bool) T {
	if b {
		return 1
	}
	return 0
}
