// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split

import (
	"fmt"
	"slices"

	"tabular.dev/tabular/series"
	"tabular.dev/tabular/stats"
	"tabular.dev/tabular/table"
)

// TransformColumnFunc computes replacement values for one column within
// one split: it receives the indexed view of the split's rows and the
// column index, and returns either a numeric scalar (broadcast to every
// row of the split) or a []float64 with exactly one value per row of
// the split, in split row order.
type TransformColumnFunc func(ix *table.IndexView, colIndex int) (any, error)

// Transform applies the given function to each split for each of the
// given columns (all numeric non-key columns if none given), returning
// a new table with one row for every row of the splits, in source table
// order, where each selected column's values are replaced group-wise by
// the function results. Key columns and unselected columns are copied
// through unchanged. A []float64 result whose length differs from the
// split's row count returns an error wrapping [series.ErrShapeMismatch].
func Transform(spl *table.Splits, fun TransformColumnFunc, columns ...string) (*table.Table, error) {
	dt := spl.Table()
	if dt == nil {
		return nil, fmt.Errorf("split.Transform: no splits to transform over")
	}
	colIndexes, err := columnIndexes(spl, dt, columns...)
	if err != nil {
		return nil, err
	}
	var rows []int
	for _, sp := range spl.Splits {
		rows = append(rows, sp.Indexes...)
	}
	slices.Sort(rows)
	rowPos := make(map[int]int, len(rows))
	for pi, rw := range rows {
		rowPos[rw] = pi
	}
	vix := &table.IndexView{Table: dt, Indexes: rows}
	nt := vix.NewTable()
	for _, ci := range colIndexes {
		cn := dt.ColumnName(ci)
		ncl := nt.Columns.Values[ci]
		for si, sp := range spl.Splits {
			res, err := fun(sp, ci)
			if err != nil {
				return nil, fmt.Errorf("split.Transform: group %v, column %q: %w", spl.Values[si], cn, err)
			}
			switch vals := res.(type) {
			case []float64:
				if len(vals) != sp.Len() {
					return nil, fmt.Errorf("split.Transform: group %v, column %q: got %d values for %d rows: %w", spl.Values[si], cn, len(vals), sp.Len(), series.ErrShapeMismatch)
				}
				for i, rw := range sp.Indexes {
					ncl.SetFloat1D(vals[i], rowPos[rw])
				}
			default:
				fv, ok := applyFloat(res)
				if !ok {
					return nil, fmt.Errorf("split.Transform: group %v, column %q: unsupported result type %T", spl.Values[si], cn, res)
				}
				for _, rw := range sp.Indexes {
					ncl.SetFloat1D(fv, rowPos[rw])
				}
			}
		}
	}
	return nt, nil
}

// TransformStat replaces each selected column's values with the given
// statistic of its split, broadcast to every row of the split, e.g.,
// [stats.Mean] fills each group with the group mean. See [Transform].
func TransformStat(spl *table.Splits, st stats.Stats, columns ...string) (*table.Table, error) {
	return Transform(spl, func(ix *table.IndexView, colIndex int) (any, error) {
		return stats.StatIndex(ix, colIndex, st), nil
	}, columns...)
}
