// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"tabular.dev/tabular/series"
)

func TestLocRead(t *testing.T) {
	dt := NewExample()
	lc, err := dt.Loc(series.NewBoolFromValues(true, false, false, true), "Val1")
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 3}, lc.Rows)
	assert.Equal(t, 2, lc.Len())

	fv, err := lc.Float()
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 7}, fv)

	vals, err := lc.Values()
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 7}, vals.(*series.Float64).Values)

	vals.SetFloat1D(100, 0)
	assert.Equal(t, 1.0, dt.Float("Val1", 0))
}

func TestLocStrings(t *testing.T) {
	dt := NewExample()
	lc, err := dt.Loc(series.NewBoolFromValues(false, false, true, true), "Cat")
	assert.NoError(t, err)
	sv, err := lc.Strings()
	assert.NoError(t, err)
	assert.Equal(t, []string{"C2", "C2"}, sv)
}

func TestLocNilMask(t *testing.T) {
	dt := NewExample()
	lc, err := dt.Loc(nil, "Val2")
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, lc.Rows)
	fv, err := lc.Float()
	assert.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6, 8}, fv)
}

func TestLocMaskMismatch(t *testing.T) {
	dt := NewExample()
	_, err := dt.Loc(series.NewBoolFromValues(true, false), "Val1")
	assert.ErrorIs(t, err, series.ErrShapeMismatch)
}

func TestLocReadMissingColumn(t *testing.T) {
	dt := NewExample()
	lc, err := dt.Loc(nil, "Nope")
	assert.NoError(t, err)
	_, err = lc.Values()
	assert.ErrorIs(t, err, ErrColumnNotFound)
	_, err = lc.Float()
	assert.ErrorIs(t, err, ErrColumnNotFound)
	_, err = lc.Strings()
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestLocSetScalar(t *testing.T) {
	dt := NewExample()
	lc, err := dt.Loc(series.NewBoolFromValues(true, true, false, false), "Val1")
	assert.NoError(t, err)
	assert.NoError(t, lc.Set(0.0))
	v1, _ := dt.Column("Val1")
	assert.Equal(t, []float64{0, 0, 5, 7}, v1.(*series.Float64).Values)
}

// TestLocSetNewColumn writes a new column through two masked sets:
// rows where Cat is C1 get 9, rows where Cat is C2 get 10.
func TestLocSetNewColumn(t *testing.T) {
	dt := NewExample()
	lc, err := dt.Loc(series.NewBoolFromValues(true, true, false, false), "Val3")
	assert.NoError(t, err)
	assert.NoError(t, lc.Set(9.0))

	v3, err := dt.Column("Val3")
	assert.NoError(t, err)
	assert.Equal(t, 4, v3.Len())
	assert.Equal(t, 9.0, v3.Float1D(0))
	assert.Equal(t, 9.0, v3.Float1D(1))
	assert.True(t, math.IsNaN(v3.Float1D(2)))
	assert.True(t, v3.IsNull(3))

	lc, err = dt.Loc(series.NewBoolFromValues(false, false, true, true), "Val3")
	assert.NoError(t, err)
	assert.NoError(t, lc.Set(10.0))
	assert.Equal(t, []float64{9, 9, 10, 10}, v3.(*series.Float64).Values)
	assert.Equal(t, 4, dt.NumColumns())
}

func TestLocSetSlice(t *testing.T) {
	dt := NewExample()
	lc, err := dt.Loc(series.NewBoolFromValues(false, true, true, false), "Val2")
	assert.NoError(t, err)
	assert.NoError(t, lc.Set([]float64{40, 60}))
	v2, _ := dt.Column("Val2")
	assert.Equal(t, []float64{2, 40, 60, 8}, v2.(*series.Float64).Values)

	err = lc.Set([]float64{1, 2, 3})
	assert.ErrorIs(t, err, series.ErrShapeMismatch)
	assert.Equal(t, []float64{2, 40, 60, 8}, v2.(*series.Float64).Values)
}

func TestLocSetSeries(t *testing.T) {
	dt := NewExample()
	lc, err := dt.Loc(series.NewBoolFromValues(true, false, true, false), "Val1")
	assert.NoError(t, err)
	assert.NoError(t, lc.Set(series.NewFloat64FromValues(10, 50)))
	v1, _ := dt.Column("Val1")
	assert.Equal(t, []float64{10, 3, 50, 7}, v1.(*series.Float64).Values)

	err = lc.Set(series.NewFloat64FromValues(1))
	assert.ErrorIs(t, err, series.ErrShapeMismatch)
}

func TestLocSetStrings(t *testing.T) {
	dt := NewExample()
	lc, err := dt.Loc(series.NewBoolFromValues(false, false, true, true), "Cat")
	assert.NoError(t, err)
	assert.NoError(t, lc.Set("C3"))
	cat, _ := dt.Column("Cat")
	assert.Equal(t, []string{"C1", "C1", "C3", "C3"}, cat.(*series.String).Values)

	assert.NoError(t, lc.Set([]string{"C4", "C5"}))
	assert.Equal(t, []string{"C1", "C1", "C4", "C5"}, cat.(*series.String).Values)

	err = lc.Set([]string{"C6"})
	assert.ErrorIs(t, err, series.ErrShapeMismatch)
}

func TestLocSetNewStringColumn(t *testing.T) {
	dt := NewExample()
	lc, err := dt.Loc(series.NewBoolFromValues(true, false, true, false), "Tag")
	assert.NoError(t, err)
	assert.NoError(t, lc.Set("x"))
	tag, err := dt.Column("Tag")
	assert.NoError(t, err)
	assert.Equal(t, []string{"x", "", "x", ""}, tag.(*series.String).Values)
}

func TestLocSetInt(t *testing.T) {
	dt := NewExample()
	lc, err := dt.Loc(series.NewBoolFromValues(true, false, false, false), "Val1")
	assert.NoError(t, err)
	assert.NoError(t, lc.Set(42))
	assert.Equal(t, 42.0, dt.Float("Val1", 0))
}
