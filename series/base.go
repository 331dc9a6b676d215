// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"reflect"

	"tabular.dev/tabular/base/metadata"
	"tabular.dev/tabular/base/slicesx"
)

// Base is the generic foundation shared by all series types,
// holding the values and metadata.
type Base[T any] struct {
	// Values is the backing slice of values.
	Values []T

	// Meta is the metadata for this series.
	Meta metadata.Data
}

// Len returns the number of values (rows).
func (sr *Base[T]) Len() int { return len(sr.Values) }

// DataType returns the [reflect.Kind] of the data elements.
func (sr *Base[T]) DataType() reflect.Kind {
	var v T
	return reflect.TypeOf(v).Kind()
}

// Value1D returns the raw value at the given index.
func (sr *Base[T]) Value1D(i int) T { return sr.Values[i] }

// Set1D sets the raw value at the given index.
func (sr *Base[T]) Set1D(val T, i int) { sr.Values[i] = val }

// SetNumRows sets the number of rows, retaining existing values
// that fit, zero-filling any new ones.
func (sr *Base[T]) SetNumRows(rows int) {
	sr.Values = slicesx.SetLength(sr.Values, max(0, rows))
}

// Metadata returns the metadata for this series.
func (sr *Base[T]) Metadata() *metadata.Data { return &sr.Meta }
