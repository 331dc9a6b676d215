// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bytes"
	"math"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"tabular.dev/tabular/base/errors"
	"tabular.dev/tabular/series"
)

func TestCSVRoundTrip(t *testing.T) {
	dt := NewExample()
	n := dt.AddIntColumn("N")
	copy(n.Values, []int{10, 20, 30, 40})
	ok := dt.AddBoolColumn("OK")
	copy(ok.Values, []bool{true, false, true, false})
	dt.SetFloat("Val2", 2, math.NaN())

	var b bytes.Buffer
	assert.NoError(t, dt.WriteCSV(&b, Tab, Headers))

	nt := NewTable()
	assert.NoError(t, nt.ReadCSV(&b, Detect))
	assert.Equal(t, dt.Columns.Keys, nt.Columns.Keys)
	assert.Equal(t, 4, nt.Rows)
	for ci, sr := range dt.Columns.Values {
		assert.Equal(t, sr.DataType(), nt.Columns.Values[ci].DataType())
	}
	assert.Equal(t, []string{"C1", "C1", "C2", "C2"}, errors.Log1(nt.Column("Cat")).(*series.String).Values)
	assert.Equal(t, []float64{1, 3, 5, 7}, errors.Log1(nt.Column("Val1")).(*series.Float64).Values)
	assert.Equal(t, []int{10, 20, 30, 40}, errors.Log1(nt.Column("N")).(*series.Int).Values)
	assert.Equal(t, []bool{true, false, true, false}, errors.Log1(nt.Column("OK")).(*series.Bool).Values)
	assert.True(t, math.IsNaN(nt.Float("Val2", 2)))
	assert.Equal(t, 8.0, nt.Float("Val2", 3))
}


func TestTypedHeaders(t *testing.T) {
	dt := NewExample()
	assert.Equal(t, []string{"$Cat", "#Val1", "#Val2"}, dt.TypedHeaders())
}

func TestReadPlainHeaders(t *testing.T) {
	csvData := "Name,Score,N\na,1.5,1\nb,2.5,2\n"
	dt := NewTable()
	assert.NoError(t, dt.ReadCSV(strings.NewReader(csvData), Comma))
	assert.Equal(t, []string{"Name", "Score", "N"}, dt.Columns.Keys)
	assert.Equal(t, reflect.String, errors.Log1(dt.Column("Name")).DataType())
	assert.Equal(t, reflect.Float64, errors.Log1(dt.Column("Score")).DataType())
	assert.Equal(t, reflect.Int, errors.Log1(dt.Column("N")).DataType())
	assert.Equal(t, 2, dt.Rows)
	assert.Equal(t, 2.5, dt.Float("Score", 1))
}

func TestReadHeaderless(t *testing.T) {
	csvData := "1,1.5\n2,2.5\n"
	dt := NewTable()
	assert.NoError(t, dt.ReadCSV(strings.NewReader(csvData), Detect))
	assert.Equal(t, []string{"col_0", "col_1"}, dt.Columns.Keys)
	assert.Equal(t, reflect.Int, errors.Log1(dt.Column("col_0")).DataType())
	assert.Equal(t, reflect.Float64, errors.Log1(dt.Column("col_1")).DataType())
	assert.Equal(t, 2, dt.Rows)
	assert.Equal(t, 2.0, dt.Float("col_0", 1))
}

func TestReadDetectTab(t *testing.T) {
	csvData := "$Cat\t#Val1\nC1\t1\nC2\t2\n"
	dt := NewTable()
	assert.NoError(t, dt.ReadCSV(strings.NewReader(csvData), Detect))
	assert.Equal(t, []string{"Cat", "Val1"}, dt.Columns.Keys)
	assert.Equal(t, 2, dt.Rows)
	assert.Equal(t, "C2", dt.StringValue("Cat", 1))
}

func TestReadEmptyAsNaN(t *testing.T) {
	csvData := "#Val,#W\n1,2\n,4\n3,6\n"
	dt := NewTable()
	assert.NoError(t, dt.ReadCSV(strings.NewReader(csvData), Comma))
	assert.Equal(t, 3, dt.Rows)
	assert.True(t, math.IsNaN(dt.Float("Val", 1)))
	assert.Equal(t, 4.0, dt.Float("W", 1))
}

func TestSaveOpenCSV(t *testing.T) {
	fnm := filepath.Join(t.TempDir(), "example.tsv")
	dt := NewExample()
	assert.NoError(t, dt.SaveCSV(fnm, Tab, Headers))

	nt := NewTable()
	assert.NoError(t, nt.OpenCSV(fnm, Detect))
	assert.Equal(t, dt.Columns.Keys, nt.Columns.Keys)
	assert.Equal(t, []float64{2, 4, 6, 8}, errors.Log1(nt.Column("Val2")).(*series.Float64).Values)
}

func TestIndexViewWriteCSV(t *testing.T) {
	dt := NewExample()
	ix := NewIndexView(dt)
	ix.Filter(func(et *Table, row int) bool {
		return et.StringValue("Cat", row) == "C2"
	})
	var b bytes.Buffer
	assert.NoError(t, ix.WriteCSV(&b, Comma, Headers))

	nt := NewTable()
	assert.NoError(t, nt.ReadCSV(&b, Comma))
	assert.Equal(t, 2, nt.Rows)
	assert.Equal(t, []float64{5, 7}, errors.Log1(nt.Column("Val1")).(*series.Float64).Values)
}

func TestWritePrecision(t *testing.T) {
	dt := NewTable()
	v := dt.AddFloat64Column("V")
	dt.SetNumRows(1)
	v.Values[0] = 1.0 / 3.0
	dt.Meta.Set("precision", 4)

	var b bytes.Buffer
	assert.NoError(t, dt.WriteCSV(&b, Comma, NoHeaders))
	assert.Equal(t, "0.3333\n", b.String())
}

func TestDelimsFromName(t *testing.T) {
	dl, err := DelimsFromName("comma")
	assert.NoError(t, err)
	assert.Equal(t, Comma, dl)
	assert.Equal(t, ',', dl.Rune())

	_, err = DelimsFromName("semicolon")
	assert.Error(t, err)
}
