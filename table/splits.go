// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"slices"
	"strings"

	"tabular.dev/tabular/base/errors"
)

const (
	// ColumnNameOnly means resulting aggregate tables use just the
	// original column name for aggregated columns.
	ColumnNameOnly bool = true

	// AddAggName means resulting aggregate tables add the
	// aggregation name to aggregated column names (Val1:mean).
	AddAggName = false
)

// SplitAgg holds the results of one aggregation over all splits:
// one value per split for one (column, stat) pair.
type SplitAgg struct {
	// Name is the name of the aggregation stat (e.g., "mean").
	Name string

	// ColumnIndex is the index of the aggregated column in the
	// source table.
	ColumnIndex int

	// OutputName optionally overrides the result column name in
	// [Splits.AggsToTable]; empty means derive it from the source
	// column name and Name.
	OutputName string

	// Aggs are the aggregation results, one per split.
	Aggs []float64
}

// Splits is a list of indexed views into a common source table,
// one per group, with the key values that define each group and any
// accumulated aggregation results. The split and aggregation
// functions that create and fill these live in the split package.
type Splits struct {
	// Splits are the index views for each split, preserving
	// within-group row order of the originating view.
	Splits []*IndexView

	// Values are the key value tuples for each split, aligned
	// with [Splits.Splits]: one value per level.
	Values [][]string

	// Levels are the names of the key columns (or other labels)
	// that generated the splits, one per value in each tuple.
	Levels []string

	// Aggs are the accumulated aggregation results.
	Aggs []*SplitAgg
}

// Len returns the number of splits.
func (spl *Splits) Len() int {
	return len(spl.Splits)
}

// Table returns the source table of the splits, nil if none.
func (spl *Splits) Table() *Table {
	if len(spl.Splits) == 0 {
		return nil
	}
	return spl.Splits[0].Table
}

// New adds a new split to this set for the given source table and
// key values, with the given initial rows, returning its view so
// further rows can be added with [IndexView.AddIndex].
func (spl *Splits) New(dt *Table, values []string, rows ...int) *IndexView {
	ix := &IndexView{Table: dt}
	ix.Indexes = append(ix.Indexes, rows...)
	spl.Splits = append(spl.Splits, ix)
	spl.Values = append(spl.Values, slices.Clone(values))
	return ix
}

// ByValue returns the split with the given key value tuple,
// nil if not found.
func (spl *Splits) ByValue(values []string) *IndexView {
	for si, vl := range spl.Values {
		if slices.Equal(vl, values) {
			return spl.Splits[si]
		}
	}
	return nil
}

// Filter retains only the splits for which the given function
// returns true, dropping the others and their rows in Values and
// accumulated Aggs.
func (spl *Splits) Filter(fun func(idx int) bool) {
	for si := spl.Len() - 1; si >= 0; si-- {
		if fun(si) {
			continue
		}
		spl.Splits = slices.Delete(spl.Splits, si, si+1)
		spl.Values = slices.Delete(spl.Values, si, si+1)
		for _, ag := range spl.Aggs {
			if si < len(ag.Aggs) {
				ag.Aggs = slices.Delete(ag.Aggs, si, si+1)
			}
		}
	}
}

// SetLevels sets the level names that generated the splits.
// They are not checked for consistency with the value tuples.
func (spl *Splits) SetLevels(levels ...string) {
	spl.Levels = levels
}

// ReorderLevels permutes the levels and all key value tuples into
// the given order, which must name each current level exactly once.
func (spl *Splits) ReorderLevels(order []int) error {
	nlv := len(spl.Levels)
	if len(order) != nlv {
		return fmt.Errorf("table.Splits.ReorderLevels: order has %d entries for %d levels", len(order), nlv)
	}
	spl.Levels = reorder(spl.Levels, order)
	for si, vl := range spl.Values {
		spl.Values[si] = reorder(vl, order)
	}
	return nil
}

func reorder[T any](vals []T, order []int) []T {
	nw := make([]T, len(vals))
	for i, o := range order {
		nw[i] = vals[o]
	}
	return nw
}

// SortLevels sorts the splits by their key value tuples, stably,
// retaining within-group row order.
func (spl *Splits) SortLevels() {
	order := make([]int, spl.Len())
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return slices.Compare(spl.Values[a], spl.Values[b])
	})
	spl.Splits = reorder(spl.Splits, order)
	spl.Values = reorder(spl.Values, order)
	for _, ag := range spl.Aggs {
		if len(ag.Aggs) == len(order) {
			ag.Aggs = reorder(ag.Aggs, order)
		}
	}
}

// ExtractLevels returns a new Splits with only the given levels of
// keys, merging the rows of splits that agree on those levels, in
// first-seen order. Accumulated aggregates are not carried over.
func (spl *Splits) ExtractLevels(levels []int) (*Splits, error) {
	nlv := len(spl.Levels)
	for _, lv := range levels {
		if lv < 0 || lv >= nlv {
			return nil, fmt.Errorf("table.Splits.ExtractLevels: level index %d out of range of %d levels", lv, nlv)
		}
	}
	dt := spl.Table()
	nw := &Splits{}
	nw.Levels = make([]string, len(levels))
	for i, lv := range levels {
		nw.Levels[i] = spl.Levels[lv]
	}
	for si, sp := range spl.Splits {
		values := make([]string, len(levels))
		for i, lv := range levels {
			values[i] = spl.Values[si][lv]
		}
		cur := nw.ByValue(values)
		if cur == nil {
			cur = nw.New(dt, values)
		}
		cur.Indexes = append(cur.Indexes, sp.Indexes...)
	}
	return nw, nil
}

// Clone returns a complete copy of the splits, views, values,
// levels, and aggregates.
func (spl *Splits) Clone() *Splits {
	nw := &Splits{}
	nw.Levels = slices.Clone(spl.Levels)
	for si, sp := range spl.Splits {
		nix := nw.New(sp.Table, spl.Values[si])
		nix.Indexes = slices.Clone(sp.Indexes)
	}
	for _, ag := range spl.Aggs {
		nag := &SplitAgg{Name: ag.Name, ColumnIndex: ag.ColumnIndex, OutputName: ag.OutputName}
		nag.Aggs = slices.Clone(ag.Aggs)
		nw.Aggs = append(nw.Aggs, nag)
	}
	return nw
}

////////  aggregates

// AddAgg adds a new aggregation result holder with the given stat
// name, over the column at the given index. The aggregation
// functions in the split package call this and then fill Aggs with
// one value per split.
func (spl *Splits) AddAgg(name string, colIndex int) *SplitAgg {
	ag := &SplitAgg{Name: name, ColumnIndex: colIndex}
	spl.Aggs = append(spl.Aggs, ag)
	return ag
}

// DeleteAggs deletes all accumulated aggregation results.
func (spl *Splits) DeleteAggs() {
	spl.Aggs = nil
}

// AggByColumnName returns the aggregation matching the given column
// name, which can be either just a column name (first agg of that
// column) or "column:stat" to select the stat as well.
func (spl *Splits) AggByColumnName(name string) (*SplitAgg, error) {
	column, stat, _ := strings.Cut(name, ":")
	dt := spl.Table()
	if dt == nil {
		return nil, errors.New("table.Splits.AggByColumnName: no splits")
	}
	colIndex, err := dt.ColumnIndex(column)
	if err != nil {
		return nil, err
	}
	for _, ag := range spl.Aggs {
		if ag.ColumnIndex != colIndex {
			continue
		}
		if stat != "" && !strings.EqualFold(ag.Name, stat) {
			continue
		}
		return ag, nil
	}
	return nil, fmt.Errorf("table.Splits.AggByColumnName: agg %q not found", name)
}

// aggColumnName resolves the result column name for an agg:
// an explicit OutputName verbatim, otherwise the source column name,
// with ":stat" appended under [AddAggName].
func (spl *Splits) aggColumnName(ag *SplitAgg, colName bool) string {
	if ag.OutputName != "" {
		return ag.OutputName
	}
	cn := spl.Table().ColumnName(ag.ColumnIndex)
	if colName == AddAggName {
		cn += ":" + ag.Name
	}
	return cn
}

// AggsToTable returns a new table with all accumulated aggregation
// results: one row per split, the key value columns first (named by
// level), then one float64 column per aggregation. The colName arg
// is [ColumnNameOnly] or [AddAggName]; pass [AddAggName] when
// aggregating multiple stats over the same column, as result names
// must be unique. Returns nil if there are no splits.
func (spl *Splits) AggsToTable(colName bool) *Table {
	dt := spl.Table()
	if dt == nil {
		return nil
	}
	nr := spl.Len()
	st := NewTable().SetNumRows(nr)
	for _, lev := range spl.Levels {
		st.AddStringColumn(lev)
	}
	for _, ag := range spl.Aggs {
		st.AddFloat64Column(spl.aggColumnName(ag, colName))
	}
	for si := range spl.Splits {
		for li, lev := range spl.Levels {
			st.SetString(lev, si, spl.Values[si][li])
		}
		for _, ag := range spl.Aggs {
			if si < len(ag.Aggs) {
				st.SetFloat(spl.aggColumnName(ag, colName), si, ag.Aggs[si])
			}
		}
	}
	return st
}
