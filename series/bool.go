// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"slices"
	"strconv"

	"tabular.dev/tabular/base/num"
)

// Bool is a series of bool values. It is the mask type: a Bool
// aligned to a table's row order selects rows wherever it is true.
type Bool struct {
	Base[bool]
}

// NewBool returns a new [Bool] series with the given number of rows.
func NewBool(rows int) *Bool {
	sr := &Bool{}
	sr.Values = make([]bool, max(0, rows))
	return sr
}

// NewBoolFromValues returns a new [Bool] series initialized
// directly from the given values, which are not copied.
func NewBoolFromValues(vals ...bool) *Bool {
	sr := &Bool{}
	sr.Values = vals
	return sr
}

// String satisfies the fmt.Stringer interface for string of series data.
func (sr *Bool) String() string { return Sprint(sr, 0) }

func (sr *Bool) IsString() bool { return false }

func (sr *Bool) Float1D(i int) float64 {
	return num.FromBool[float64](sr.Values[i])
}

func (sr *Bool) SetFloat1D(val float64, i int) {
	sr.Values[i] = num.ToBool(val)
}

func (sr *Bool) String1D(i int) string {
	return strconv.FormatBool(sr.Values[i])
}

// SetString1D sets the value from a string via [strconv.ParseBool].
// Unparseable strings leave the value unchanged.
func (sr *Bool) SetString1D(val string, i int) {
	if bv, err := strconv.ParseBool(val); err == nil {
		sr.Values[i] = bv
	}
}

func (sr *Bool) Int1D(i int) int {
	return num.FromBool[int](sr.Values[i])
}

func (sr *Bool) SetInt1D(val int, i int) {
	sr.Values[i] = num.ToBool(val)
}

// IsNull is always false for bool series.
func (sr *Bool) IsNull(i int) bool { return false }

// NumTrue returns the number of true values, i.e., the number of
// rows a mask selects.
func (sr *Bool) NumTrue() int {
	n := 0
	for _, v := range sr.Values {
		if v {
			n++
		}
	}
	return n
}

// Indexes returns the indexes of the true values, in order: the row
// indexes a mask selects.
func (sr *Bool) Indexes() []int {
	ixs := make([]int, 0, sr.NumTrue())
	for i, v := range sr.Values {
		if v {
			ixs = append(ixs, i)
		}
	}
	return ixs
}

// Clone returns a copy of this series with its own separate
// memory representation of all the values.
func (sr *Bool) Clone() Series {
	csr := &Bool{}
	csr.Values = slices.Clone(sr.Values)
	csr.Meta.Copy(sr.Meta)
	return csr
}

// CopyFrom copies all values that fit from the given series into
// this series, treating nonzero floats as true.
func (sr *Bool) CopyFrom(frm Series) {
	if fsm, ok := frm.(*Bool); ok {
		copy(sr.Values, fsm.Values)
		return
	}
	sz := min(sr.Len(), frm.Len())
	for i := range sz {
		sr.Values[i] = frm.Float1D(i) != 0
	}
}

// CopyCellsFrom copies the given range of values from the other
// series into this series: to = starting destination index,
// start = starting source index, n = number of values.
func (sr *Bool) CopyCellsFrom(frm Series, to, start, n int) {
	if fsm, ok := frm.(*Bool); ok {
		copy(sr.Values[to:to+n], fsm.Values[start:start+n])
		return
	}
	for i := range n {
		sr.Values[to+i] = frm.Float1D(start+i) != 0
	}
}

// AppendFrom appends all values from the given series to this one.
func (sr *Bool) AppendFrom(frm Series) error {
	rows, frows := sr.Len(), frm.Len()
	sr.SetNumRows(rows + frows)
	if fsm, ok := frm.(*Bool); ok {
		copy(sr.Values[rows:], fsm.Values)
		return nil
	}
	for i := range frows {
		sr.Values[rows+i] = frm.Float1D(i) != 0
	}
	return nil
}
