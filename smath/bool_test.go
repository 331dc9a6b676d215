// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"tabular.dev/tabular/series"
)

func TestCompareScalar(t *testing.T) {
	v2 := series.NewFloat64FromValues(2, 4, 6, 8)

	assert.Equal(t, []bool{false, true, false, false}, Equal(v2, 4.0).Values)
	assert.Equal(t, []bool{true, false, true, true}, NotEqual(v2, 4.0).Values)
	assert.Equal(t, []bool{true, false, false, false}, Less(v2, 4.0).Values)
	assert.Equal(t, []bool{true, true, false, false}, LessEqual(v2, 4.0).Values)
	assert.Equal(t, []bool{false, false, true, true}, Greater(v2, 4.0).Values)
	assert.Equal(t, []bool{false, true, true, true}, GreaterEqual(v2, 4.0).Values)

	assert.Equal(t, []bool{false, true, false, false}, Equal(v2, 4).Values)
	assert.Equal(t, []bool{false, true, false, false}, Equal(v2, "4").Values)
}

func TestCompareSeries(t *testing.T) {
	a := series.NewFloat64FromValues(1, 5, 3)
	b := series.NewFloat64FromValues(2, 4, 3)

	assert.Equal(t, []bool{true, false, false}, Less(a, b).Values)
	assert.Equal(t, []bool{false, true, false}, Greater(a, b).Values)
	assert.Equal(t, []bool{false, false, true}, Equal(a, b).Values)

	short := series.NewFloat64FromValues(1, 2)
	assert.Equal(t, []bool{false, false, false}, Less(a, short).Values)
}

func TestCompareString(t *testing.T) {
	cat := series.NewStringFromValues("C1", "C1", "C2", "C2")

	assert.Equal(t, []bool{true, true, false, false}, Equal(cat, "C1").Values)
	assert.Equal(t, []bool{false, false, true, true}, NotEqual(cat, "C1").Values)
	assert.Equal(t, []bool{false, false, true, true}, Greater(cat, "C1").Values)
}

func TestCompareNaN(t *testing.T) {
	a := series.NewFloat64FromValues(1, math.NaN(), 3)

	assert.Equal(t, []bool{true, false, true}, Less(a, 5.0).Values)
	assert.Equal(t, []bool{false, false, false}, Equal(a, math.NaN()).Values)
	assert.Equal(t, []bool{false, false, true}, Greater(a, 2.0).Values)
}

func TestIn(t *testing.T) {
	v2 := series.NewFloat64FromValues(2, 4, 6, 8)
	assert.Equal(t, []bool{false, true, false, true}, In(v2, 4.0, 8.0).Values)
	assert.Equal(t, []bool{false, false, false, false}, In(v2, 5.0).Values)
	assert.Equal(t, []bool{false, true, false, true}, In(v2, 4, 8).Values)

	cat := series.NewStringFromValues("C1", "C1", "C2", "C2")
	assert.Equal(t, []bool{true, true, false, false}, In(cat, "C1", "C3").Values)
}

func TestAndOrNot(t *testing.T) {
	v2 := series.NewFloat64FromValues(2, 4, 6, 8)

	ge := GreaterEqual(v2, 4.0)
	le := LessEqual(v2, 6.0)

	band, err := And(ge, le)
	assert.NoError(t, err)
	assert.Equal(t, []bool{false, true, true, false}, band.Values)
	assert.Equal(t, []int{1, 2}, band.Indexes())

	bor, err := Or(Less(v2, 3.0), Greater(v2, 7.0))
	assert.NoError(t, err)
	assert.Equal(t, []bool{true, false, false, true}, bor.Values)

	assert.Equal(t, []bool{true, false, false, true}, Not(band).Values)

	three, err := And(ge, le, NotEqual(v2, 6.0))
	assert.NoError(t, err)
	assert.Equal(t, []bool{false, true, false, false}, three.Values)
}

func TestMaskShapeMismatch(t *testing.T) {
	a := series.NewBool(4)
	b := series.NewBool(3)

	_, err := And(a, b)
	assert.ErrorIs(t, err, series.ErrShapeMismatch)

	_, err = Or(a, b)
	assert.ErrorIs(t, err, series.ErrShapeMismatch)
}
