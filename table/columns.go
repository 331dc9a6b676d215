// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"tabular.dev/tabular/base/keylist"
	"tabular.dev/tabular/series"
)

// Columns is the ordered collection of named column series for a table.
// Insertion order is column order. The table owns the row count and
// keeps every column resized to it.
type Columns struct {
	keylist.List[string, series.Series]
}

// NewColumns returns a new Columns.
func NewColumns() *Columns {
	return &Columns{}
}

// SetNumRows sets the number of rows in all columns.
func (cl *Columns) SetNumRows(rows int) {
	for _, sr := range cl.Values {
		sr.SetNumRows(rows)
	}
}

// Clone returns a complete copy of the columns, cloning each series.
func (cl *Columns) Clone() *Columns {
	cp := NewColumns()
	for i, sr := range cl.Values {
		cp.Add(cl.Keys[i], sr.Clone())
	}
	return cp
}
