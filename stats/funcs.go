// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// StatFunc is an accumulator function for a single stat pass:
// it receives the row index, the value at that row, and the
// accumulated value so far, and returns the updated accumulation.
// [StatIndexFunc] drives these over the non-NaN values of a column.
type StatFunc func(idx int, val float64, agg float64) float64

// CountFunc is a [StatFunc] that computes the count.
func CountFunc(idx int, val float64, agg float64) float64 {
	return agg + 1
}

// SumFunc is a [StatFunc] that computes the sum.
func SumFunc(idx int, val float64, agg float64) float64 {
	return agg + val
}

// L1NormFunc is a [StatFunc] that computes the sum of absolute values.
func L1NormFunc(idx int, val float64, agg float64) float64 {
	return agg + math.Abs(val)
}

// ProdFunc is a [StatFunc] that computes the product.
func ProdFunc(idx int, val float64, agg float64) float64 {
	return agg * val
}

// MinFunc is a [StatFunc] that computes the minimum.
func MinFunc(idx int, val float64, agg float64) float64 {
	return math.Min(agg, val)
}

// MaxFunc is a [StatFunc] that computes the maximum.
func MaxFunc(idx int, val float64, agg float64) float64 {
	return math.Max(agg, val)
}

// MinAbsFunc is a [StatFunc] that computes the minimum of absolute values.
func MinAbsFunc(idx int, val float64, agg float64) float64 {
	return math.Min(agg, math.Abs(val))
}

// MaxAbsFunc is a [StatFunc] that computes the maximum of absolute values.
func MaxAbsFunc(idx int, val float64, agg float64) float64 {
	return math.Max(agg, math.Abs(val))
}
