// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"tabular.dev/tabular/table"
)

func TestGroupBy(t *testing.T) {
	dt := table.NewExample()
	ix := table.NewIndexView(dt)
	spl, err := GroupBy(ix, "Cat")
	assert.NoError(t, err)
	assert.Equal(t, 2, spl.Len())
	assert.Equal(t, []string{"Cat"}, spl.Levels)
	assert.Equal(t, []string{"C1"}, spl.Values[0])
	assert.Equal(t, []string{"C2"}, spl.Values[1])
	assert.Equal(t, []int{0, 1}, spl.Splits[0].Indexes)
	assert.Equal(t, []int{2, 3}, spl.Splits[1].Indexes)
}

func TestGroupByFirstSeenOrder(t *testing.T) {
	dt := table.NewTable().SetNumRows(5)
	dt.AddStringColumn("Group")
	dt.AddFloat64Column("Value")
	for i, gp := range []string{"B", "A", "B", "C", "A"} {
		dt.SetString("Group", i, gp)
		dt.SetFloat("Value", i, float64(i))
	}
	ix := table.NewIndexView(dt)
	spl, err := GroupBy(ix, "Group")
	assert.NoError(t, err)
	assert.Equal(t, 3, spl.Len())
	assert.Equal(t, []string{"B"}, spl.Values[0])
	assert.Equal(t, []string{"A"}, spl.Values[1])
	assert.Equal(t, []string{"C"}, spl.Values[2])
	assert.Equal(t, []int{0, 2}, spl.Splits[0].Indexes)
	assert.Equal(t, []int{1, 4}, spl.Splits[1].Indexes)
	assert.Equal(t, []int{3}, spl.Splits[2].Indexes)
}

func TestGroupByMulti(t *testing.T) {
	dt := table.NewTable().SetNumRows(4)
	dt.AddStringColumn("A")
	dt.AddStringColumn("B")
	dt.AddFloat64Column("Value")
	for i, ab := range [][]string{{"x", "1"}, {"x", "2"}, {"x", "1"}, {"y", "1"}} {
		dt.SetString("A", i, ab[0])
		dt.SetString("B", i, ab[1])
		dt.SetFloat("Value", i, float64(i))
	}
	ix := table.NewIndexView(dt)
	spl, err := GroupBy(ix, "A", "B")
	assert.NoError(t, err)
	assert.Equal(t, 3, spl.Len())
	assert.Equal(t, []string{"A", "B"}, spl.Levels)
	assert.Equal(t, []string{"x", "1"}, spl.Values[0])
	assert.Equal(t, []string{"x", "2"}, spl.Values[1])
	assert.Equal(t, []string{"y", "1"}, spl.Values[2])
	assert.Equal(t, []int{0, 2}, spl.Splits[0].Indexes)
}

func TestGroupByNotFound(t *testing.T) {
	dt := table.NewExample()
	ix := table.NewIndexView(dt)
	spl, err := GroupBy(ix, "Nope")
	assert.Nil(t, spl)
	assert.ErrorIs(t, err, table.ErrColumnNotFound)
}

func TestGroupByNumericColumn(t *testing.T) {
	dt := table.NewTable().SetNumRows(4)
	dt.AddIntColumn("Bin")
	dt.AddFloat64Column("Value")
	for i, bn := range []int{1, 2, 1, 2} {
		dt.SetFloat("Bin", i, float64(bn))
		dt.SetFloat("Value", i, float64(i))
	}
	ix := table.NewIndexView(dt)
	spl, err := GroupBy(ix, "Bin")
	assert.NoError(t, err)
	assert.Equal(t, 2, spl.Len())
	assert.Equal(t, []string{"1"}, spl.Values[0])
	assert.Equal(t, []string{"2"}, spl.Values[1])
}

func TestGroupByFunc(t *testing.T) {
	dt := table.NewExample()
	ix := table.NewIndexView(dt)
	spl := GroupByFunc(ix, func(row int) []string {
		sz := "lo"
		if dt.Float("Val1", row) > 4 {
			sz = "hi"
		}
		return []string{dt.StringValue("Cat", row), sz}
	})
	spl.SetLevels("Cat", "Size")
	assert.Equal(t, 2, spl.Len())
	assert.Equal(t, []string{"C1", "lo"}, spl.Values[0])
	assert.Equal(t, []string{"C2", "hi"}, spl.Values[1])
	assert.Equal(t, []string{"Cat", "Size"}, spl.Levels)
}

func TestGroupByFiltered(t *testing.T) {
	dt := table.NewExample()
	ix := table.NewIndexView(dt)
	ix.Filter(func(et *table.Table, row int) bool {
		return et.Float("Val1", row) > 1
	})
	spl, err := GroupBy(ix, "Cat")
	assert.NoError(t, err)
	assert.Equal(t, 2, spl.Len())
	assert.Equal(t, []int{1}, spl.Splits[0].Indexes)
	assert.Equal(t, []int{2, 3}, spl.Splits[1].Indexes)
}

func TestAll(t *testing.T) {
	dt := table.NewExample()
	ix := table.NewIndexView(dt)
	spl := All(ix)
	assert.Equal(t, 1, spl.Len())
	assert.Equal(t, []string{"All"}, spl.Levels)
	assert.Equal(t, []int{0, 1, 2, 3}, spl.Splits[0].Indexes)
}

func TestGroupByFuncDecades(t *testing.T) {
	dt := table.NewTable().SetNumRows(4)
	dt.AddFloat64Column("Year")
	for i, yr := range []float64{1995, 2003, 1992, 2008} {
		dt.SetFloat("Year", i, yr)
	}
	ix := table.NewIndexView(dt)
	spl := GroupByFunc(ix, func(row int) []string {
		decade := 10 * int(dt.Float("Year", row)/10)
		return []string{fmt.Sprintf("%ds", decade)}
	})
	spl.SetLevels("Decade")
	assert.Equal(t, 2, spl.Len())
	assert.Equal(t, []string{"1990s"}, spl.Values[0])
	assert.Equal(t, []string{"2000s"}, spl.Values[1])
	assert.Equal(t, []int{0, 2}, spl.Splits[0].Indexes)
	assert.Equal(t, []int{1, 3}, spl.Splits[1].Indexes)
}
