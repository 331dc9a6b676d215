// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

// NewExample returns the canonical small example table used across
// documentation and tests: 4 rows with a two-group string column Cat
// and two float64 value columns.
//
//	Cat   Val1  Val2
//	C1    1     2
//	C1    3     4
//	C2    5     6
//	C2    7     8
//
// Every call builds a fresh table: two calls return value-equal
// tables with no shared backing, so mutating one never affects
// the other.
func NewExample() *Table {
	dt := NewTable("example").SetNumRows(4)
	cat := dt.AddStringColumn("Cat")
	val1 := dt.AddFloat64Column("Val1")
	val2 := dt.AddFloat64Column("Val2")
	copy(cat.Values, []string{"C1", "C1", "C2", "C2"})
	copy(val1.Values, []float64{1, 3, 5, 7})
	copy(val2.Values, []float64{2, 4, 6, 8})
	return dt
}
