// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split

import (
	"fmt"

	"tabular.dev/tabular/series"
	"tabular.dev/tabular/table"
)

// ApplyFunc is a group-wise reduction function: it receives the indexed
// view of one split's rows and returns the result for that group.
// See [Apply] for the supported result types.
type ApplyFunc func(ix *table.IndexView) (any, error)

// Apply calls the given function once per split, in split order, and
// assembles the results into a new table according to the type of the
// first result:
//   - a numeric scalar (float64, float32, int, int64) produces one row
//     per split: the key value columns first, then the result in a
//     float64 column named Value.
//   - a string produces one row per split with a string Value column.
//   - a []float64 produces one row per split with float64 columns
//     Value1..ValueN; every split must return the same length, else an
//     error wrapping [series.ErrShapeMismatch].
//   - a *[table.Table] produces the stacked rows of all result tables,
//     with the key value columns prepended to each split's rows; every
//     split must return the same columns.
//
// Every split must return the same kind of result as the first (the
// numeric scalar types are interchangeable). An error from the function
// stops the apply and is returned wrapped with the split's key values.
func Apply(spl *table.Splits, fun ApplyFunc) (*table.Table, error) {
	dt := spl.Table()
	if dt == nil {
		return nil, fmt.Errorf("split.Apply: no splits to apply over")
	}
	results := make([]any, spl.Len())
	for si, sp := range spl.Splits {
		res, err := fun(sp)
		if err != nil {
			return nil, fmt.Errorf("split.Apply: group %v: %w", spl.Values[si], err)
		}
		results[si] = res
	}
	switch res0 := results[0].(type) {
	case float64, float32, int, int64:
		st := keyTable(spl)
		vc := st.AddFloat64Column("Value")
		for si, res := range results {
			fv, ok := applyFloat(res)
			if !ok {
				return nil, applyTypeError(spl, si, res, results[0])
			}
			vc.Values[si] = fv
		}
		return st, nil
	case string:
		st := keyTable(spl)
		vc := st.AddStringColumn("Value")
		for si, res := range results {
			sv, ok := res.(string)
			if !ok {
				return nil, applyTypeError(spl, si, res, results[0])
			}
			vc.Values[si] = sv
		}
		return st, nil
	case []float64:
		n := len(res0)
		st := keyTable(spl)
		vcs := make([]*series.Float64, n)
		for i := range vcs {
			vcs[i] = st.AddFloat64Column(fmt.Sprintf("Value%d", i+1))
		}
		for si, res := range results {
			vals, ok := res.([]float64)
			if !ok {
				return nil, applyTypeError(spl, si, res, results[0])
			}
			if len(vals) != n {
				return nil, fmt.Errorf("split.Apply: group %v returned %d values, want %d: %w", spl.Values[si], len(vals), n, series.ErrShapeMismatch)
			}
			for i, v := range vals {
				vcs[i].Values[si] = v
			}
		}
		return st, nil
	case *table.Table:
		if res0 == nil {
			return nil, fmt.Errorf("split.Apply: group %v returned a nil table", spl.Values[0])
		}
		st := table.NewTable()
		for _, lev := range spl.Levels {
			st.AddStringColumn(lev)
		}
		for ci, cl := range res0.Columns.Values {
			if err := st.AddColumn(res0.ColumnName(ci), series.NewOfType(cl.DataType(), 0)); err != nil {
				return nil, fmt.Errorf("split.Apply: %w", err)
			}
		}
		row := 0
		for si, res := range results {
			gt, ok := res.(*table.Table)
			if !ok {
				return nil, applyTypeError(spl, si, res, results[0])
			}
			if gt == nil {
				return nil, fmt.Errorf("split.Apply: group %v returned a nil table", spl.Values[si])
			}
			if gt.NumColumns() != res0.NumColumns() {
				return nil, fmt.Errorf("split.Apply: group %v returned a table with %d columns, want %d: %w", spl.Values[si], gt.NumColumns(), res0.NumColumns(), series.ErrShapeMismatch)
			}
			nr := gt.Rows
			st.AddRows(nr)
			for li, lev := range spl.Levels {
				for ri := 0; ri < nr; ri++ {
					st.SetString(lev, row+ri, spl.Values[si][li])
				}
			}
			for ci, gcl := range gt.Columns.Values {
				cn := gt.ColumnName(ci)
				scl, err := st.Column(cn)
				if err != nil {
					return nil, fmt.Errorf("split.Apply: group %v returned a table with unexpected column %q", spl.Values[si], cn)
				}
				scl.CopyCellsFrom(gcl, row, 0, nr)
			}
			row += nr
		}
		return st, nil
	}
	return nil, fmt.Errorf("split.Apply: unsupported result type %T", results[0])
}

// applyFloat converts a supported numeric scalar result to float64.
func applyFloat(res any) (float64, bool) {
	switch v := res.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func applyTypeError(spl *table.Splits, si int, res, res0 any) error {
	return fmt.Errorf("split.Apply: group %v returned %T, want %T from the first group", spl.Values[si], res, res0)
}

// keyTable returns a new table with one row per split and the group key
// value columns filled in, named by level.
func keyTable(spl *table.Splits) *table.Table {
	st := table.NewTable().SetNumRows(spl.Len())
	for _, lev := range spl.Levels {
		st.AddStringColumn(lev)
	}
	for si := range spl.Splits {
		for li, lev := range spl.Levels {
			st.SetString(lev, si, spl.Values[si][li])
		}
	}
	return st
}
