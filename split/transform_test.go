// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"tabular.dev/tabular/series"
	"tabular.dev/tabular/stats"
	"tabular.dev/tabular/table"
)

func TestTransformStatMean(t *testing.T) {
	dt := table.NewExample()
	spl, err := GroupBy(table.NewIndexView(dt), "Cat")
	assert.NoError(t, err)

	st, err := TransformStat(spl, stats.Mean)
	assert.NoError(t, err)
	assert.Equal(t, 4, st.Rows)
	assert.Equal(t, []string{"Cat", "Val1", "Val2"}, st.Columns.Keys)
	assert.Equal(t, []string{"C1", "C1", "C2", "C2"}, st.Columns.Values[0].(*series.String).Values)
	assert.Equal(t, []float64{2, 2, 6, 6}, st.Columns.Values[1].(*series.Float64).Values)
	assert.Equal(t, []float64{3, 3, 7, 7}, st.Columns.Values[2].(*series.Float64).Values)

	// the source table is never touched
	assert.Equal(t, []float64{1, 3, 5, 7}, dt.Columns.Values[1].(*series.Float64).Values)
}

func TestTransformDemean(t *testing.T) {
	dt := table.NewExample()
	spl, err := GroupBy(table.NewIndexView(dt), "Cat")
	assert.NoError(t, err)

	st, err := Transform(spl, func(ix *table.IndexView, colIndex int) (any, error) {
		mn := stats.MeanIndex(ix, colIndex)
		out := make([]float64, ix.Len())
		for i, rw := range ix.Indexes {
			out[i] = ix.Table.Columns.Values[colIndex].Float1D(rw) - mn
		}
		return out, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []float64{-1, 1, -1, 1}, st.Columns.Values[1].(*series.Float64).Values)
	assert.Equal(t, []float64{-1, 1, -1, 1}, st.Columns.Values[2].(*series.Float64).Values)
}

func TestTransformSelectedColumns(t *testing.T) {
	dt := table.NewExample()
	spl, err := GroupBy(table.NewIndexView(dt), "Cat")
	assert.NoError(t, err)

	st, err := TransformStat(spl, stats.Max, "Val1")
	assert.NoError(t, err)
	assert.Equal(t, []float64{3, 3, 7, 7}, st.Columns.Values[1].(*series.Float64).Values)
	// unselected columns are copied through unchanged
	assert.Equal(t, []float64{2, 4, 6, 8}, st.Columns.Values[2].(*series.Float64).Values)
}

func TestTransformLengthMismatch(t *testing.T) {
	dt := table.NewExample()
	spl, err := GroupBy(table.NewIndexView(dt), "Cat")
	assert.NoError(t, err)

	_, err = Transform(spl, func(ix *table.IndexView, colIndex int) (any, error) {
		return []float64{1, 2, 3}, nil
	})
	assert.ErrorIs(t, err, series.ErrShapeMismatch)
}

func TestTransformFilteredView(t *testing.T) {
	dt := table.NewExample()
	ix := table.NewIndexView(dt)
	ix.Filter(func(et *table.Table, row int) bool {
		return et.Float("Val1", row) > 1
	})
	spl, err := GroupBy(ix, "Cat")
	assert.NoError(t, err)

	st, err := TransformStat(spl, stats.Mean)
	assert.NoError(t, err)
	assert.Equal(t, 3, st.Rows)
	assert.Equal(t, []string{"C1", "C2", "C2"}, st.Columns.Values[0].(*series.String).Values)
	assert.Equal(t, []float64{3, 6, 6}, st.Columns.Values[1].(*series.Float64).Values)
}

func TestTransformNotFound(t *testing.T) {
	dt := table.NewExample()
	spl, err := GroupBy(table.NewIndexView(dt), "Cat")
	assert.NoError(t, err)
	_, err = TransformStat(spl, stats.Mean, "Nope")
	assert.ErrorIs(t, err, table.ErrColumnNotFound)
}

func TestTransformFnError(t *testing.T) {
	dt := table.NewExample()
	spl, err := GroupBy(table.NewIndexView(dt), "Cat")
	assert.NoError(t, err)
	_, err = Transform(spl, func(ix *table.IndexView, colIndex int) (any, error) {
		return nil, fmt.Errorf("no stat for you")
	}, "Val2")
	assert.Error(t, err)
	assert.ErrorContains(t, err, "Val2")
}
