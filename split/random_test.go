// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"tabular.dev/tabular/base/randx"
	"tabular.dev/tabular/table"
)

func permTable(rows int) *table.Table {
	dt := table.NewTable().SetNumRows(rows)
	dt.AddStringColumn("Name")
	dt.AddFloat64Column("Input")
	dt.AddFloat64Column("Output")
	return dt
}

func splitRows(spl *table.Splits) []int {
	var rows []int
	for _, sp := range spl.Splits {
		rows = append(rows, sp.Indexes...)
	}
	slices.Sort(rows)
	return rows
}

func TestPermuted(t *testing.T) {
	dt := permTable(25)
	ix := table.NewIndexView(dt)
	rnd := randx.NewRand(10)

	spl, err := Permuted(ix, []float64{.5, .5}, nil, rnd)
	assert.NoError(t, err)
	assert.Equal(t, 2, spl.Len())
	assert.Equal(t, []string{"permuted"}, spl.Levels)
	assert.Equal(t, []string{"p=0.5"}, spl.Values[0])
	assert.Equal(t, 13, spl.Splits[0].Len())
	assert.Equal(t, 12, spl.Splits[1].Len())

	all := make([]int, 25)
	for i := range all {
		all[i] = i
	}
	assert.Equal(t, all, splitRows(spl))

	spl, err = Permuted(ix, []float64{.25, .5, .25}, []string{"test", "train", "validate"}, rnd)
	assert.NoError(t, err)
	assert.Equal(t, 3, spl.Len())
	assert.Equal(t, []string{"test"}, spl.Values[0])
	assert.Equal(t, []string{"train"}, spl.Values[1])
	assert.Equal(t, []string{"validate"}, spl.Values[2])
	assert.Equal(t, 6, spl.Splits[0].Len())
	assert.Equal(t, 13, spl.Splits[1].Len())
	assert.Equal(t, 6, spl.Splits[2].Len())
	assert.Equal(t, all, splitRows(spl))
}

func TestPermutedUnnormalized(t *testing.T) {
	dt := permTable(4)
	ix := table.NewIndexView(dt)
	spl, err := Permuted(ix, []float64{1, 1}, nil, randx.NewRand(3))
	assert.NoError(t, err)
	assert.Equal(t, 2, spl.Len())
	assert.Equal(t, []string{"p=0.5"}, spl.Values[0])
	assert.Equal(t, 2, spl.Splits[0].Len())
	assert.Equal(t, 2, spl.Splits[1].Len())
}

func TestPermutedErrors(t *testing.T) {
	dt := permTable(4)
	ix := table.NewIndexView(dt)
	_, err := Permuted(ix, []float64{0, 0}, nil)
	assert.Error(t, err)

	_, err = Permuted(ix, []float64{.5, .5}, []string{"just one"})
	assert.Error(t, err)

	empty := table.NewIndexView(table.NewTable())
	_, err = Permuted(empty, []float64{.5, .5}, nil)
	assert.Error(t, err)
}
