// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package series provides typed 1D column vectors for data tables:
// Float64, Float32, Int, String, and Bool, all implementing the
// [Series] interface. For float values, NaN indicates missing data,
// and all of the stats packages skip NaNs.
package series

import (
	"fmt"
	"reflect"
	"strings"

	"gonum.org/v1/gonum/mat"
	"tabular.dev/tabular/base/errors"
	"tabular.dev/tabular/base/metadata"
)

// Series is the interface for a 1D column of typed values, as used
// for the columns in a table. It is implemented by the [Base] and
// [Number] generic types specialized by different concrete types:
// float64, float32, int, string, and bool.
// Every series is also a [mat.Vector], so columns can be passed
// directly to gonum routines; non-numeric values convert through
// their float64 form (NaN where unparseable).
type Series interface {
	fmt.Stringer
	mat.Vector

	// DataType returns the [reflect.Kind] of the data elements:
	// Float64, Float32, Int, String, or Bool.
	DataType() reflect.Kind

	// IsString returns whether this is a [String] series.
	IsString() bool

	// Len returns the number of values (rows).
	Len() int

	// Float1D returns the value at the given index as a float64.
	Float1D(i int) float64

	// SetFloat1D sets the value at the given index from a float64.
	SetFloat1D(val float64, i int)

	// String1D returns the value at the given index as a string.
	String1D(i int) string

	// SetString1D sets the value at the given index from a string.
	SetString1D(val string, i int)

	// Int1D returns the value at the given index as an int.
	Int1D(i int) int

	// SetInt1D sets the value at the given index from an int.
	SetInt1D(val int, i int)

	// IsNull returns whether the value at the given index represents
	// missing data: NaN for float series, always false otherwise.
	IsNull(i int) bool

	// SetNumRows sets the number of rows, retaining existing values
	// that fit, zero-filling any new ones.
	SetNumRows(rows int)

	// Clone returns a copy of this series with its own separate
	// memory representation of all the values.
	Clone() Series

	// CopyFrom copies all values that fit from the given series into
	// this series, converting between types as needed.
	CopyFrom(frm Series)

	// CopyCellsFrom copies the given range of values from the other
	// series into this series: to = starting destination index,
	// start = starting source index, n = number of values.
	CopyCellsFrom(frm Series, to, start, n int)

	// AppendFrom appends all values from the given series to this one,
	// converting between types as needed.
	AppendFrom(frm Series) error

	// Metadata returns the metadata for this series.
	Metadata() *metadata.Data
}

// ErrShapeMismatch is the sentinel error for operations that combine
// series, masks, or tables whose lengths do not agree. Errors wrap it
// with the specific sizes involved, so test with [errors.Is].
var ErrShapeMismatch = errors.New("shape mismatch")

// MaxSprintLength is the default maximum number of values shown
// in the String() representation of a series.
const MaxSprintLength = 50

// Sprint returns a string representation of the given series,
// showing at most maxLen values (<= 0 uses [MaxSprintLength]).
func Sprint(sr Series, maxLen int) string {
	if maxLen <= 0 {
		maxLen = MaxSprintLength
	}
	n := min(sr.Len(), maxLen)
	b := &strings.Builder{}
	b.WriteByte('[')
	for i := range n {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(sr.String1D(i))
	}
	if sr.Len() > n {
		b.WriteString(" ...")
	}
	b.WriteByte(']')
	return b.String()
}

// NewOfType returns a new series of the given [reflect.Kind] with
// the given number of rows: Float64, Float32, Int, String, or Bool.
// An unsupported kind is logged and returns a Float64 series.
func NewOfType(k reflect.Kind, rows int) Series {
	switch k {
	case reflect.Float64:
		return NewFloat64(rows)
	case reflect.Float32:
		return NewFloat32(rows)
	case reflect.Int:
		return NewInt(rows)
	case reflect.String:
		return NewString(rows)
	case reflect.Bool:
		return NewBool(rows)
	default:
		errors.Log(fmt.Errorf("series.NewOfType: unsupported kind %v", k))
		return NewFloat64(rows)
	}
}
