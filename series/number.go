// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"math"
	"slices"
	"strconv"

	"tabular.dev/tabular/base/num"
	"tabular.dev/tabular/base/reflectx"
)

// Number is a series of numerical values.
type Number[T num.Number] struct {
	Base[T]
}

// Float64 is an alias for Number[float64].
type Float64 = Number[float64]

// Float32 is an alias for Number[float32].
type Float32 = Number[float32]

// Int is an alias for Number[int].
type Int = Number[int]

// NewFloat64 returns a new [Float64] series with the given number of rows.
func NewFloat64(rows int) *Float64 {
	return NewNumber[float64](rows)
}

// NewFloat32 returns a new [Float32] series with the given number of rows.
func NewFloat32(rows int) *Float32 {
	return NewNumber[float32](rows)
}

// NewInt returns a new [Int] series with the given number of rows.
func NewInt(rows int) *Int {
	return NewNumber[int](rows)
}

// NewNumber returns a new series of numerical values
// with the given number of rows.
func NewNumber[T num.Number](rows int) *Number[T] {
	sr := &Number[T]{}
	sr.Values = make([]T, max(0, rows))
	return sr
}

// NewNumberFromValues returns a new series of the given value type
// initialized directly from the given values, which are not copied.
// The resulting series thus "wraps" the given values.
func NewNumberFromValues[T num.Number](vals ...T) *Number[T] {
	sr := &Number[T]{}
	sr.Values = vals
	return sr
}

// NewFloat64FromValues returns a new [Float64] series wrapping
// the given values, which are not copied.
func NewFloat64FromValues(vals ...float64) *Float64 {
	return NewNumberFromValues(vals...)
}

// String satisfies the fmt.Stringer interface for string of series data.
func (sr *Number[T]) String() string { return Sprint(sr, 0) }

func (sr *Number[T]) IsString() bool { return false }

func (sr *Number[T]) Float1D(i int) float64 {
	return float64(sr.Values[i])
}

func (sr *Number[T]) SetFloat1D(val float64, i int) {
	sr.Values[i] = T(val)
}

func (sr *Number[T]) String1D(i int) string {
	return reflectx.ToString(sr.Values[i])
}

// SetString1D sets the value from a string, parsed as a float.
// Unparseable strings leave the value unchanged.
func (sr *Number[T]) SetString1D(val string, i int) {
	if fv, err := strconv.ParseFloat(val, 64); err == nil {
		sr.Values[i] = T(fv)
	}
}

func (sr *Number[T]) Int1D(i int) int {
	return int(sr.Values[i])
}

func (sr *Number[T]) SetInt1D(val int, i int) {
	sr.Values[i] = T(val)
}

// IsNull returns whether the value at the given index is NaN,
// which represents missing data. Always false for int series.
func (sr *Number[T]) IsNull(i int) bool {
	return math.IsNaN(float64(sr.Values[i]))
}

// SetZeros sets all values to 0.
func (sr *Number[T]) SetZeros() {
	for i := range sr.Values {
		sr.Values[i] = 0
	}
}

// Clone returns a copy of this series with its own separate
// memory representation of all the values.
func (sr *Number[T]) Clone() Series {
	csr := &Number[T]{}
	csr.Values = slices.Clone(sr.Values)
	csr.Meta.Copy(sr.Meta)
	return csr
}

// CopyFrom copies all values that fit from the given series into
// this series, with an optimized implementation if the other series
// is of the same type, and otherwise converting through float64
// (or int for int series).
func (sr *Number[T]) CopyFrom(frm Series) {
	if fsm, ok := frm.(*Number[T]); ok {
		copy(sr.Values, fsm.Values)
		return
	}
	sz := min(sr.Len(), frm.Len())
	if reflectx.KindIsInt(sr.DataType()) {
		for i := range sz {
			sr.Values[i] = T(frm.Int1D(i))
		}
	} else {
		for i := range sz {
			sr.Values[i] = T(frm.Float1D(i))
		}
	}
}

// CopyCellsFrom copies the given range of values from the other
// series into this series: to = starting destination index,
// start = starting source index, n = number of values.
func (sr *Number[T]) CopyCellsFrom(frm Series, to, start, n int) {
	if fsm, ok := frm.(*Number[T]); ok {
		copy(sr.Values[to:to+n], fsm.Values[start:start+n])
		return
	}
	for i := range n {
		sr.Values[to+i] = T(frm.Float1D(start + i))
	}
}

// AppendFrom appends all values from the given series to this one.
func (sr *Number[T]) AppendFrom(frm Series) error {
	rows, frows := sr.Len(), frm.Len()
	sr.SetNumRows(rows + frows)
	if fsm, ok := frm.(*Number[T]); ok {
		copy(sr.Values[rows:], fsm.Values)
		return nil
	}
	for i := range frows {
		sr.Values[rows+i] = T(frm.Float1D(i))
	}
	return nil
}
