// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table provides the Table: an ordered collection of named,
// equal-length column series sharing a common row dimension, with
// indexed views ([IndexView]) for filtering and sorting, a combined
// row+column accessor ([Loc]) that is the one masked write path
// observed by the source table, and CSV persistence.
//
// Every selection helper documents whether it copies. [Table.SelectRows]
// and [IndexView.NewTable] return deep copies that share nothing with
// the source; [Table.Column] returns the shared column handle; only
// [Table.Loc] writes through a row mask into the source.
package table

import (
	"fmt"
	"math"
	"reflect"

	"tabular.dev/tabular/base/errors"
	"tabular.dev/tabular/base/metadata"
	"tabular.dev/tabular/series"
)

// ErrColumnNotFound indicates that a column name is not in the table.
var ErrColumnNotFound = errors.New("column not found")

// Table is a collection of named column series aligned by a common
// row dimension. Column order is insertion order. Access columns by
// name via [Table.Column]; cell convenience accessors ([Table.Float],
// [Table.SetFloat] and friends) log unknown names and continue.
type Table struct {
	// Columns has the list of column series for this table.
	Columns *Columns

	// Rows is the number of rows, shared by all columns.
	Rows int

	// Meta is misc metadata for the table. Use lower-case key names
	// following the struct tag convention:
	//	- name string = name of table
	//	- doc string = documentation, description
	//	- precision int = n for precision to write out floats in csv
	Meta metadata.Data
}

// NewTable returns a new Table with no columns.
// Can pass an optional name which sets metadata.
func NewTable(name ...string) *Table {
	dt := &Table{}
	dt.Columns = NewColumns()
	if len(name) > 0 {
		dt.Meta.Set("name", name[0])
	}
	return dt
}

// IsValidRow returns an error if the row is out of range.
func (dt *Table) IsValidRow(row int) error {
	if row < 0 || row >= dt.Rows {
		return fmt.Errorf("table.Table.IsValidRow: row %d is out of valid range [0..%d]", row, dt.Rows)
	}
	return nil
}

// NumColumns returns the number of columns.
func (dt *Table) NumColumns() int { return dt.Columns.Len() }

// Column returns the series with the given column name, or
// [ErrColumnNotFound]. The returned series shares its backing values
// with the table: it is the column, not a copy.
func (dt *Table) Column(name string) (series.Series, error) {
	sr, ok := dt.Columns.AtTry(name)
	if !ok {
		return nil, fmt.Errorf("table.Table: %w: %q (have %v)", ErrColumnNotFound, name, dt.Columns.Keys)
	}
	return sr, nil
}

// ColumnCopy returns a clone of the series with the given column name,
// or [ErrColumnNotFound]. Writes to the returned series are never
// observed by the table.
func (dt *Table) ColumnCopy(name string) (series.Series, error) {
	sr, err := dt.Column(name)
	if err != nil {
		return nil, err
	}
	return sr.Clone(), nil
}

// ColumnIndex returns the index of the column with the given name,
// or -1 and [ErrColumnNotFound].
func (dt *Table) ColumnIndex(name string) (int, error) {
	idx := dt.Columns.IndexByKey(name)
	if idx < 0 {
		return -1, fmt.Errorf("table.Table: %w: %q (have %v)", ErrColumnNotFound, name, dt.Columns.Keys)
	}
	return idx, nil
}

// ColumnName returns the name of the column at the given index.
func (dt *Table) ColumnName(i int) string {
	return dt.Columns.Keys[i]
}

// AddColumn adds the given series as a column with the given name,
// returning an error and not adding if the name is not unique.
// On the first column the table adopts the series length as its row
// count; afterwards the length must match, else [series.ErrShapeMismatch].
func (dt *Table) AddColumn(name string, sr series.Series) error {
	if dt.NumColumns() == 0 {
		dt.Rows = sr.Len()
	} else if sr.Len() != dt.Rows {
		return fmt.Errorf("table.Table.AddColumn: %w: column %q has %d rows, table has %d", series.ErrShapeMismatch, name, sr.Len(), dt.Rows)
	}
	return dt.Columns.Add(name, sr)
}

// InsertColumn inserts the given series as a column at the given index,
// with the same length and uniqueness requirements as [Table.AddColumn].
func (dt *Table) InsertColumn(idx int, name string, sr series.Series) error {
	if dt.NumColumns() == 0 {
		dt.Rows = sr.Len()
	} else if sr.Len() != dt.Rows {
		return fmt.Errorf("table.Table.InsertColumn: %w: column %q has %d rows, table has %d", series.ErrShapeMismatch, name, sr.Len(), dt.Rows)
	}
	if dt.Columns.IndexByKey(name) >= 0 {
		return fmt.Errorf("table.Table.InsertColumn: column %q is already on the table", name)
	}
	dt.Columns.Insert(idx, name, sr)
	return nil
}

// AddColumnOfType adds a new column of the given [reflect.Kind] with
// the given name, sized to the current number of rows.
// Supported kinds are float64, float32, int, string, and bool.
func (dt *Table) AddColumnOfType(name string, typ reflect.Kind) series.Series {
	sr := series.NewOfType(typ, dt.Rows)
	errors.Log(dt.AddColumn(name, sr))
	return sr
}

// AddStringColumn adds a new [series.String] column with the given name.
func (dt *Table) AddStringColumn(name string) *series.String {
	sr := series.NewString(dt.Rows)
	errors.Log(dt.AddColumn(name, sr))
	return sr
}

// AddFloat64Column adds a new [series.Float64] column with the given name.
func (dt *Table) AddFloat64Column(name string) *series.Float64 {
	sr := series.NewFloat64(dt.Rows)
	errors.Log(dt.AddColumn(name, sr))
	return sr
}

// AddFloat32Column adds a new [series.Float32] column with the given name.
func (dt *Table) AddFloat32Column(name string) *series.Float32 {
	sr := series.NewFloat32(dt.Rows)
	errors.Log(dt.AddColumn(name, sr))
	return sr
}

// AddIntColumn adds a new [series.Int] column with the given name.
func (dt *Table) AddIntColumn(name string) *series.Int {
	sr := series.NewInt(dt.Rows)
	errors.Log(dt.AddColumn(name, sr))
	return sr
}

// AddBoolColumn adds a new [series.Bool] column with the given name.
func (dt *Table) AddBoolColumn(name string) *series.Bool {
	sr := series.NewBool(dt.Rows)
	errors.Log(dt.AddColumn(name, sr))
	return sr
}

// DeleteColumnByName deletes the column with the given name,
// or [ErrColumnNotFound].
func (dt *Table) DeleteColumnByName(name string) error {
	if !dt.Columns.DeleteByKey(name) {
		return fmt.Errorf("table.Table.DeleteColumnByName: %w: %q", ErrColumnNotFound, name)
	}
	return nil
}

// DeleteAll deletes all columns, does full reset.
func (dt *Table) DeleteAll() {
	dt.Rows = 0
	dt.Columns.Reset()
}

// AddRows adds n rows to the end of each column.
func (dt *Table) AddRows(n int) *Table {
	return dt.SetNumRows(dt.Rows + n)
}

// SetNumRows sets the number of rows in the table, across all columns.
// Returns the table for chaining.
func (dt *Table) SetNumRows(rows int) *Table {
	rows = max(rows, 0)
	dt.Columns.SetNumRows(rows)
	dt.Rows = rows
	return dt
}

// Clone returns a complete deep copy of this table, cloning the
// underlying column series.
func (dt *Table) Clone() *Table {
	cp := NewTable()
	cp.Columns = dt.Columns.Clone()
	cp.Rows = dt.Rows
	cp.Meta.Copy(dt.Meta)
	return cp
}

// AppendRows appends the rows of the other table onto this one.
// The other table must have every column this table has, with the
// same data type; extra columns in the other table are ignored.
func (dt *Table) AppendRows(dt2 *Table) error {
	for i, name := range dt.Columns.Keys {
		sr2, ok := dt2.Columns.AtTry(name)
		if !ok {
			return fmt.Errorf("table.Table.AppendRows: %w: %q not in appended table", ErrColumnNotFound, name)
		}
		if err := dt.Columns.Values[i].AppendFrom(sr2); err != nil {
			return fmt.Errorf("table.Table.AppendRows: column %q: %w", name, err)
		}
	}
	dt.Rows += dt2.Rows
	return nil
}

////////  cell access

// Float returns the float64 value of the cell at the given column
// name and row. Unknown names and out of range rows are logged and
// return NaN. See [Table.Column] for the errored access path.
func (dt *Table) Float(column string, row int) float64 {
	sr, err := dt.Column(column)
	if errors.Log(err) != nil {
		return math.NaN()
	}
	if errors.Log(dt.IsValidRow(row)) != nil {
		return math.NaN()
	}
	return sr.Float1D(row)
}

// SetFloat sets the float64 value of the cell at the given column
// name and row. Unknown names and out of range rows are logged and
// otherwise ignored.
func (dt *Table) SetFloat(column string, row int, val float64) {
	sr, err := dt.Column(column)
	if errors.Log(err) != nil {
		return
	}
	if errors.Log(dt.IsValidRow(row)) != nil {
		return
	}
	sr.SetFloat1D(val, row)
}

// StringValue returns the string value of the cell at the given
// column name and row. Unknown names and out of range rows are
// logged and return "".
func (dt *Table) StringValue(column string, row int) string {
	sr, err := dt.Column(column)
	if errors.Log(err) != nil {
		return ""
	}
	if errors.Log(dt.IsValidRow(row)) != nil {
		return ""
	}
	return sr.String1D(row)
}

// SetString sets the string value of the cell at the given column
// name and row. Unknown names and out of range rows are logged and
// otherwise ignored.
func (dt *Table) SetString(column string, row int, val string) {
	sr, err := dt.Column(column)
	if errors.Log(err) != nil {
		return
	}
	if errors.Log(dt.IsValidRow(row)) != nil {
		return
	}
	sr.SetString1D(val, row)
}
