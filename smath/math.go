// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smath

import (
	"tabular.dev/tabular/series"
)

// arith evaluates the given binary float op elementwise, with val a
// scalar literal or a series of the same length. The result is always
// a new float64 series; NaN inputs propagate through the op.
func arith(a series.Series, val any, fn func(a, b float64) float64) (*series.Float64, error) {
	v, err := newValue(val, false)
	if err != nil {
		return nil, err
	}
	n, err := v.length(a.Len())
	if err != nil {
		return nil, err
	}
	out := series.NewFloat64(n)
	for i := range n {
		out.Values[i] = fn(a.Float1D(i), v.floatAt(i))
	}
	return out, nil
}

// Add returns a + val elementwise, where val is a scalar literal or
// another series of the same length, else [series.ErrShapeMismatch].
func Add(a series.Series, val any) (*series.Float64, error) {
	return arith(a, val, func(a, b float64) float64 { return a + b })
}

// Sub returns a - val elementwise, where val is a scalar literal or
// another series of the same length, else [series.ErrShapeMismatch].
func Sub(a series.Series, val any) (*series.Float64, error) {
	return arith(a, val, func(a, b float64) float64 { return a - b })
}

// Mul returns a * val elementwise, where val is a scalar literal or
// another series of the same length, else [series.ErrShapeMismatch].
func Mul(a series.Series, val any) (*series.Float64, error) {
	return arith(a, val, func(a, b float64) float64 { return a * b })
}

// Div returns a / val elementwise, where val is a scalar literal or
// another series of the same length, else [series.ErrShapeMismatch].
// Division by zero follows float64 semantics (Inf, NaN).
func Div(a series.Series, val any) (*series.Float64, error) {
	return arith(a, val, func(a, b float64) float64 { return a / b })
}
