// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"cmp"
	"fmt"
	"slices"

	"tabular.dev/tabular/base/randx"
	"tabular.dev/tabular/series"
)

const (
	// Ascending is passed to sorting methods for ascending order.
	Ascending = true

	// Descending is passed to sorting methods for descending order.
	Descending = false
)

// IndexView is an indexed view onto the rows of a [Table].
// Filtering and sorting reorder or reduce Indexes without touching
// the underlying table data. Use [IndexView.NewTable] to materialize
// the current view as a new, fully independent table.
type IndexView struct {
	// Table is the table being viewed.
	Table *Table

	// Indexes are the indexes into Table rows, in view order.
	Indexes []int
}

// NewIndexView returns a new view of the given table with all rows
// in sequential order.
func NewIndexView(dt *Table) *IndexView {
	ix := &IndexView{}
	ix.SetTable(dt)
	return ix
}

// SetTable sets the table and resets the view to sequential.
func (ix *IndexView) SetTable(dt *Table) {
	ix.Table = dt
	ix.Sequential()
}

// Len returns the number of rows in the view.
func (ix *IndexView) Len() int {
	return len(ix.Indexes)
}

// Sequential sets the indexes to sequential row-wise indexes into
// the table: the full unfiltered view.
func (ix *IndexView) Sequential() {
	if ix.Table == nil {
		ix.Indexes = nil
		return
	}
	ix.Indexes = make([]int, ix.Table.Rows)
	for i := range ix.Indexes {
		ix.Indexes[i] = i
	}
}

// DeleteInvalid deletes all invalid indexes from the view, after
// rows were removed from the underlying table.
func (ix *IndexView) DeleteInvalid() {
	if ix.Table == nil {
		ix.Indexes = nil
		return
	}
	ix.Indexes = slices.DeleteFunc(ix.Indexes, func(r int) bool {
		return r < 0 || r >= ix.Table.Rows
	})
}

// AddIndex adds a new index to the view.
func (ix *IndexView) AddIndex(idx int) {
	ix.Indexes = append(ix.Indexes, idx)
}

// Clone returns a copy of this view with its own copy of the indexes,
// viewing the same table.
func (ix *IndexView) Clone() *IndexView {
	nix := &IndexView{Table: ix.Table}
	nix.Indexes = slices.Clone(ix.Indexes)
	return nix
}

// CopyFrom copies the table and indexes from the other view.
func (ix *IndexView) CopyFrom(oix *IndexView) {
	ix.Table = oix.Table
	ix.Indexes = slices.Clone(oix.Indexes)
}

// Filter filters the view to only the rows where the given function
// returns true, in place, preserving view order.
func (ix *IndexView) Filter(filterer func(et *Table, row int) bool) {
	sz := len(ix.Indexes)
	for i := sz - 1; i >= 0; i-- {
		if !filterer(ix.Table, ix.Indexes[i]) {
			ix.Indexes = append(ix.Indexes[:i], ix.Indexes[i+1:]...)
		}
	}
}

// FilterByMask filters the view to only the rows where the given
// mask is true, in place, preserving view order. The mask must have
// one value per table row, else [series.ErrShapeMismatch].
func (ix *IndexView) FilterByMask(mask *series.Bool) error {
	if mask.Len() != ix.Table.Rows {
		return fmt.Errorf("table.IndexView.FilterByMask: %w: mask has %d values, table has %d rows", series.ErrShapeMismatch, mask.Len(), ix.Table.Rows)
	}
	ix.Filter(func(et *Table, row int) bool {
		return mask.Values[row]
	})
	return nil
}

// Sort sorts the view, stably, using the given less function
// operating on underlying table row numbers.
func (ix *IndexView) Sort(lessFunc func(et *Table, i, j int) bool) {
	slices.SortStableFunc(ix.Indexes, func(a, b int) int {
		if lessFunc(ix.Table, a, b) {
			return -1
		}
		if lessFunc(ix.Table, b, a) {
			return 1
		}
		return 0
	})
}

// SortColumn sorts the view, stably, by the values of the column
// with the given name, in the given order ([Ascending] or
// [Descending]). Unknown name returns [ErrColumnNotFound].
func (ix *IndexView) SortColumn(column string, ascending bool) error {
	return ix.SortColumns(ascending, column)
}

// SortColumns sorts the view, stably, by the values of the columns
// with the given names in priority order, all in the given order
// ([Ascending] or [Descending]).
func (ix *IndexView) SortColumns(ascending bool, columns ...string) error {
	cis := make([]int, len(columns))
	for i, column := range columns {
		ci, err := ix.Table.ColumnIndex(column)
		if err != nil {
			return err
		}
		cis[i] = ci
	}
	ix.Sort(func(et *Table, i, j int) bool {
		for _, ci := range cis {
			sr := et.Columns.Values[ci]
			var c int
			if sr.IsString() {
				c = cmp.Compare(sr.String1D(i), sr.String1D(j))
			} else {
				c = cmp.Compare(sr.Float1D(i), sr.Float1D(j))
			}
			if c == 0 {
				continue
			}
			if ascending {
				return c < 0
			}
			return c > 0
		}
		return false
	})
	return nil
}

// Permuted sets the view to a random permutation of the current
// indexes, using the optional random source (global otherwise).
func (ix *IndexView) Permuted(randOpt ...randx.Rand) {
	var rnd randx.Rand
	if len(randOpt) == 0 {
		rnd = randx.Global
	} else {
		rnd = randOpt[0]
	}
	rnd.Shuffle(len(ix.Indexes), func(i, j int) {
		ix.Indexes[i], ix.Indexes[j] = ix.Indexes[j], ix.Indexes[i]
	})
}

// NewTable returns a new table with a deep copy of the viewed rows,
// in view order. The result shares nothing with the source table.
func (ix *IndexView) NewTable() *Table {
	nw := NewTable()
	nw.Meta.Copy(ix.Table.Meta)
	rows := ix.Len()
	for i, name := range ix.Table.Columns.Keys {
		sr := ix.Table.Columns.Values[i]
		nsr := series.NewOfType(sr.DataType(), rows)
		for j, rw := range ix.Indexes {
			nsr.CopyCellsFrom(sr, j, rw, 1)
		}
		nw.AddColumn(name, nsr)
	}
	return nw
}

// SelectRows returns a new table holding deep copies of the rows
// where the given mask is true, in original row order. The mask must
// have one value per row, else [series.ErrShapeMismatch]. Writes to
// the result are never observed by the source table; the one masked
// write path into the source is [Table.Loc].
func (dt *Table) SelectRows(mask *series.Bool) (*Table, error) {
	ix := NewIndexView(dt)
	if err := ix.FilterByMask(mask); err != nil {
		return nil, err
	}
	return ix.NewTable(), nil
}
