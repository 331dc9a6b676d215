// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package split provides grouping of table rows into splits, keyed by
// column values, with aggregation, group-wise reduction (Apply), and
// group-wise transformation over the resulting groups.
package split

import (
	"slices"

	"tabular.dev/tabular/table"
)

// All returns a single "split" with all of the rows in the given view,
// useful for leveraging the aggregation management functions in splits
// on an ungrouped table.
func All(ix *table.IndexView) *table.Splits {
	spl := &table.Splits{}
	spl.Levels = []string{"All"}
	spl.New(ix.Table, []string{"All"}, ix.Indexes...)
	return spl
}

// GroupBy returns a new Splits with a split per unique combination of
// values of the given columns, in the order each combination is first
// seen in the view. Rows within each split keep their view order.
// Returns an error wrapping [table.ErrColumnNotFound] for a bad
// column name. A view with no rows produces one split with no rows,
// so that subsequent aggregation still yields a table.
func GroupBy(ix *table.IndexView, columns ...string) (*table.Splits, error) {
	colIndexes := make([]int, len(columns))
	for i, cn := range columns {
		ci, err := ix.Table.ColumnIndex(cn)
		if err != nil {
			return nil, err
		}
		colIndexes[i] = ci
	}
	return GroupByIndex(ix, colIndexes), nil
}

// GroupByIndex returns a new Splits with a split per unique combination
// of values of the given column indexes, in first-seen order.
// See [GroupBy] for the name-based version.
func GroupByIndex(ix *table.IndexView, colIndexes []int) *table.Splits {
	nc := len(colIndexes)
	if nc == 0 || ix.Table == nil {
		return nil
	}
	spl := &table.Splits{}
	spl.Levels = make([]string, nc)
	for i, ci := range colIndexes {
		spl.Levels[i] = ix.Table.ColumnName(ci)
	}
	values := make([]string, nc)
	var curValues []string
	var curIx *table.IndexView
	for _, rw := range ix.Indexes {
		for i, ci := range colIndexes {
			values[i] = ix.Table.Columns.Values[ci].String1D(rw)
		}
		if curIx == nil || !slices.Equal(curValues, values) {
			curIx = spl.ByValue(values)
			if curIx == nil {
				curIx = spl.New(ix.Table, values)
			}
			curValues = slices.Clone(values)
		}
		curIx.AddIndex(rw)
	}
	if spl.Len() == 0 {
		spl.New(ix.Table, values)
	}
	return spl
}

// GroupByFunc returns a new Splits based on the given function, which
// returns the value(s) to group on for each row of the table. The
// function must always return the same number of values. Splits are in
// first-seen order; use [table.Splits.SetLevels] to name the levels.
func GroupByFunc(ix *table.IndexView, fun func(row int) []string) *table.Splits {
	if ix.Table == nil {
		return nil
	}
	spl := &table.Splits{}
	var curValues []string
	var curIx *table.IndexView
	for _, rw := range ix.Indexes {
		values := fun(rw)
		if curIx == nil || !slices.Equal(curValues, values) {
			curIx = spl.ByValue(values)
			if curIx == nil {
				curIx = spl.New(ix.Table, values)
			}
			curValues = slices.Clone(values)
		}
		curIx.AddIndex(rw)
	}
	return spl
}

// numericColumnIndexes returns the indexes of all non-string columns,
// excluding any whose name is one of the split levels (group keys).
func numericColumnIndexes(spl *table.Splits, dt *table.Table) []int {
	var colIndexes []int
	for ci, cl := range dt.Columns.Values {
		if cl.IsString() || slices.Contains(spl.Levels, dt.ColumnName(ci)) {
			continue
		}
		colIndexes = append(colIndexes, ci)
	}
	return colIndexes
}

// columnIndexes resolves the given column names, or all numeric
// non-key columns if none are given.
func columnIndexes(spl *table.Splits, dt *table.Table, columns ...string) ([]int, error) {
	if len(columns) == 0 {
		return numericColumnIndexes(spl, dt), nil
	}
	colIndexes := make([]int, len(columns))
	for i, cn := range columns {
		ci, err := dt.ColumnIndex(cn)
		if err != nil {
			return nil, err
		}
		colIndexes[i] = ci
	}
	return colIndexes, nil
}
