// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"tabular.dev/tabular/table"
)

// DescriptiveStats are the standard descriptive stats computed in
// the Describe functions.
var DescriptiveStats = []Stats{Count, Mean, Std, Sem, Min, Max, Q1, Median, Q3}

// Describe returns a table of standard descriptive statistics for
// the given column names over the viewed rows: one row per described
// column, a string Column holding the name, then one float64 column
// per stat in [DescriptiveStats]. With no columns, all non-string
// columns are described. Unknown names return
// [table.ErrColumnNotFound].
func Describe(ix *table.IndexView, columns ...string) (*table.Table, error) {
	dt := ix.Table
	if len(columns) == 0 {
		for i, cl := range dt.Columns.Values {
			if !cl.IsString() {
				columns = append(columns, dt.ColumnName(i))
			}
		}
	}
	st := table.NewTable("describe").SetNumRows(len(columns))
	st.AddStringColumn("Column")
	for _, dst := range DescriptiveStats {
		st.AddFloat64Column(dst.String())
	}
	for i, column := range columns {
		colIndex, err := dt.ColumnIndex(column)
		if err != nil {
			return nil, err
		}
		st.SetString("Column", i, column)
		for _, dst := range DescriptiveStats {
			st.SetFloat(dst.String(), i, StatIndex(ix, colIndex, dst))
		}
	}
	return st, nil
}

// DescribeTable runs [Describe] over all rows of the given table.
func DescribeTable(dt *table.Table, columns ...string) (*table.Table, error) {
	return Describe(table.NewIndexView(dt), columns...)
}
