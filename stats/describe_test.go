// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"tabular.dev/tabular/table"
)

func TestDescribe(t *testing.T) {
	dt := table.NewExample()
	ix := table.NewIndexView(dt)

	desc, err := Describe(ix, "Val1")
	assert.NoError(t, err)
	assert.Equal(t, 1, desc.Rows)
	assert.Equal(t, []string{"Column", "count", "mean", "std", "sem",
		"min", "max", "q1", "median", "q3"}, desc.Columns.Keys)
	assert.Equal(t, "Val1", desc.StringValue("Column", 0))
	assert.Equal(t, 4.0, desc.Float("count", 0))
	assert.Equal(t, 4.0, desc.Float("mean", 0))
	assert.Equal(t, 1.0, desc.Float("min", 0))
	assert.Equal(t, 7.0, desc.Float("max", 0))
	assert.Equal(t, 2.5, desc.Float("q1", 0))
	assert.Equal(t, 4.0, desc.Float("median", 0))
	assert.Equal(t, 5.5, desc.Float("q3", 0))
}

func TestDescribeAllNumeric(t *testing.T) {
	dt := table.NewExample()
	desc, err := DescribeTable(dt)
	assert.NoError(t, err)
	assert.Equal(t, 2, desc.Rows)
	assert.Equal(t, "Val1", desc.StringValue("Column", 0))
	assert.Equal(t, "Val2", desc.StringValue("Column", 1))
	assert.Equal(t, 5.0, desc.Float("mean", 1))
}

func TestDescribeNotFound(t *testing.T) {
	dt := table.NewExample()
	_, err := DescribeTable(dt, "Nope")
	assert.ErrorIs(t, err, table.ErrColumnNotFound)
}
