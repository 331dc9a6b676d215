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

func exampleGroups(t *testing.T) *table.Splits {
	t.Helper()
	spl, err := GroupBy(table.NewIndexView(table.NewExample()), "Cat")
	assert.NoError(t, err)
	return spl
}

func TestApplyScalar(t *testing.T) {
	spl := exampleGroups(t)
	st, err := Apply(spl, func(ix *table.IndexView) (any, error) {
		return stats.MeanColumn(ix, "Val1")
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"Cat", "Value"}, st.Columns.Keys)
	assert.Equal(t, 2, st.Rows)
	assert.Equal(t, "C1", st.StringValue("Cat", 0))
	assert.Equal(t, "C2", st.StringValue("Cat", 1))
	assert.Equal(t, 2.0, st.Float("Value", 0))
	assert.Equal(t, 6.0, st.Float("Value", 1))
}

func TestApplyScalarInt(t *testing.T) {
	spl := exampleGroups(t)
	st, err := Apply(spl, func(ix *table.IndexView) (any, error) {
		return ix.Len(), nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2.0, st.Float("Value", 0))
	assert.Equal(t, 2.0, st.Float("Value", 1))
}

func TestApplyString(t *testing.T) {
	spl := exampleGroups(t)
	st, err := Apply(spl, func(ix *table.IndexView) (any, error) {
		return fmt.Sprintf("n=%d", ix.Len()), nil
	})
	assert.NoError(t, err)
	assert.True(t, st.Columns.Values[1].IsString())
	assert.Equal(t, "n=2", st.StringValue("Value", 0))
	assert.Equal(t, "n=2", st.StringValue("Value", 1))
}

func TestApplyVector(t *testing.T) {
	spl := exampleGroups(t)
	st, err := Apply(spl, func(ix *table.IndexView) (any, error) {
		m1, err := stats.MeanColumn(ix, "Val1")
		if err != nil {
			return nil, err
		}
		m2, err := stats.MeanColumn(ix, "Val2")
		if err != nil {
			return nil, err
		}
		return []float64{m1, m2}, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"Cat", "Value1", "Value2"}, st.Columns.Keys)
	assert.Equal(t, 2.0, st.Float("Value1", 0))
	assert.Equal(t, 6.0, st.Float("Value1", 1))
	assert.Equal(t, 3.0, st.Float("Value2", 0))
	assert.Equal(t, 7.0, st.Float("Value2", 1))
}

func TestApplyVectorMismatch(t *testing.T) {
	spl := exampleGroups(t)
	_, err := Apply(spl, func(ix *table.IndexView) (any, error) {
		cat := ix.Table.StringValue("Cat", ix.Indexes[0])
		if cat == "C2" {
			return []float64{1, 2, 3}, nil
		}
		return []float64{1, 2}, nil
	})
	assert.ErrorIs(t, err, series.ErrShapeMismatch)
}

func TestApplyTable(t *testing.T) {
	spl := exampleGroups(t)
	st, err := Apply(spl, func(ix *table.IndexView) (any, error) {
		sum, err := stats.SumColumn(ix, "Val1")
		if err != nil {
			return nil, err
		}
		rt := table.NewTable().SetNumRows(1)
		rt.AddFloat64Column("Total")
		rt.SetFloat("Total", 0, sum)
		return rt, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"Cat", "Total"}, st.Columns.Keys)
	assert.Equal(t, 2, st.Rows)
	assert.Equal(t, "C1", st.StringValue("Cat", 0))
	assert.Equal(t, 4.0, st.Float("Total", 0))
	assert.Equal(t, 12.0, st.Float("Total", 1))
}

func TestApplyTableMultiRow(t *testing.T) {
	spl := exampleGroups(t)
	st, err := Apply(spl, func(ix *table.IndexView) (any, error) {
		mn, err := stats.MeanColumn(ix, "Val1")
		if err != nil {
			return nil, err
		}
		top := ix.Clone()
		top.Filter(func(et *table.Table, row int) bool {
			return et.Float("Val1", row) > mn
		})
		rt := table.NewTable().SetNumRows(top.Len())
		rc := rt.AddFloat64Column("Top")
		for i, rw := range top.Indexes {
			rc.Values[i] = ix.Table.Float("Val1", rw)
		}
		return rt, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, st.Rows)
	assert.Equal(t, []string{"C1", "C2"}, []string{st.StringValue("Cat", 0), st.StringValue("Cat", 1)})
	assert.Equal(t, 3.0, st.Float("Top", 0))
	assert.Equal(t, 7.0, st.Float("Top", 1))
}

func TestApplyTypeMismatch(t *testing.T) {
	spl := exampleGroups(t)
	_, err := Apply(spl, func(ix *table.IndexView) (any, error) {
		cat := ix.Table.StringValue("Cat", ix.Indexes[0])
		if cat == "C2" {
			return "oops", nil
		}
		return 1.0, nil
	})
	assert.Error(t, err)
	assert.ErrorContains(t, err, "C2")
}

func TestApplyFnError(t *testing.T) {
	spl := exampleGroups(t)
	_, err := Apply(spl, func(ix *table.IndexView) (any, error) {
		cat := ix.Table.StringValue("Cat", ix.Indexes[0])
		if cat == "C2" {
			return nil, fmt.Errorf("no can do")
		}
		return 1.0, nil
	})
	assert.Error(t, err)
	assert.ErrorContains(t, err, "C2")
	assert.ErrorContains(t, err, "no can do")
}

func TestApplyNoSplits(t *testing.T) {
	spl := &table.Splits{}
	_, err := Apply(spl, func(ix *table.IndexView) (any, error) {
		return 1.0, nil
	})
	assert.Error(t, err)
}

func TestApplyUnsupportedType(t *testing.T) {
	spl := exampleGroups(t)
	_, err := Apply(spl, func(ix *table.IndexView) (any, error) {
		return struct{ X int }{1}, nil
	})
	assert.Error(t, err)
}
