// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"math"
	"slices"
	"strconv"
)

// String is a series of string values.
type String struct {
	Base[string]
}

// NewString returns a new [String] series with the given number of rows.
func NewString(rows int) *String {
	sr := &String{}
	sr.Values = make([]string, max(0, rows))
	return sr
}

// NewStringFromValues returns a new [String] series initialized
// directly from the given values, which are not copied.
func NewStringFromValues(vals ...string) *String {
	sr := &String{}
	sr.Values = vals
	return sr
}

// StringToFloat64 converts a string value to a float64 using strconv,
// returning NaN for anything unparseable, so that downstream stats
// treat it as missing.
func StringToFloat64(str string) float64 {
	if fv, err := strconv.ParseFloat(str, 64); err == nil {
		return fv
	}
	return math.NaN()
}

// Float64ToString converts a float64 to a string value using strconv,
// g format.
func Float64ToString(val float64) string {
	return strconv.FormatFloat(val, 'g', -1, 64)
}

// String satisfies the fmt.Stringer interface for string of series data.
func (sr *String) String() string { return Sprint(sr, 0) }

func (sr *String) IsString() bool { return true }

func (sr *String) Float1D(i int) float64 {
	return StringToFloat64(sr.Values[i])
}

func (sr *String) SetFloat1D(val float64, i int) {
	sr.Values[i] = Float64ToString(val)
}

func (sr *String) String1D(i int) string {
	return sr.Values[i]
}

func (sr *String) SetString1D(val string, i int) {
	sr.Values[i] = val
}

func (sr *String) Int1D(i int) int {
	iv, err := strconv.Atoi(sr.Values[i])
	if err != nil {
		return 0
	}
	return iv
}

func (sr *String) SetInt1D(val int, i int) {
	sr.Values[i] = strconv.Itoa(val)
}

// IsNull is always false for string series: the empty string is
// an ordinary value.
func (sr *String) IsNull(i int) bool { return false }

// Clone returns a copy of this series with its own separate
// memory representation of all the values.
func (sr *String) Clone() Series {
	csr := &String{}
	csr.Values = slices.Clone(sr.Values)
	csr.Meta.Copy(sr.Meta)
	return csr
}

// CopyFrom copies all values that fit from the given series into
// this series, converting through the string form.
func (sr *String) CopyFrom(frm Series) {
	if fsm, ok := frm.(*String); ok {
		copy(sr.Values, fsm.Values)
		return
	}
	sz := min(sr.Len(), frm.Len())
	for i := range sz {
		sr.Values[i] = frm.String1D(i)
	}
}

// CopyCellsFrom copies the given range of values from the other
// series into this series: to = starting destination index,
// start = starting source index, n = number of values.
func (sr *String) CopyCellsFrom(frm Series, to, start, n int) {
	if fsm, ok := frm.(*String); ok {
		copy(sr.Values[to:to+n], fsm.Values[start:start+n])
		return
	}
	for i := range n {
		sr.Values[to+i] = frm.String1D(start + i)
	}
}

// AppendFrom appends all values from the given series to this one.
func (sr *String) AppendFrom(frm Series) error {
	rows, frows := sr.Len(), frm.Len()
	sr.SetNumRows(rows + frows)
	if fsm, ok := frm.(*String); ok {
		copy(sr.Values[rows:], fsm.Values)
		return nil
	}
	for i := range frows {
		sr.Values[rows+i] = frm.String1D(i)
	}
	return nil
}
