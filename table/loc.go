// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"math"

	"tabular.dev/tabular/base/reflectx"
	"tabular.dev/tabular/series"
)

// Loc is a combined row+column accessor: one masked row set and one
// column name, resolved against a source table. It is the only
// masked write path observed by the source: [Loc.Set] writes into
// exactly the masked cells, whereas every other selection helper
// returns copies. Reads ([Loc.Values], [Loc.Float], [Loc.Strings])
// also copy.
type Loc struct {
	// Table is the source table.
	Table *Table

	// Column is the column name. It does not need to exist yet:
	// [Loc.Set] creates it on first write.
	Column string

	// Rows are the masked row indexes, in row order.
	Rows []int
}

// Loc returns an accessor for the cells of the given column at the
// rows where the mask is true. The mask must have one value per table
// row, else [series.ErrShapeMismatch]; a nil mask selects all rows.
// The column need not exist yet: writing to a missing column creates
// it, while reading from one returns [ErrColumnNotFound].
func (dt *Table) Loc(mask *series.Bool, column string) (*Loc, error) {
	lc := &Loc{Table: dt, Column: column}
	if mask == nil {
		lc.Rows = make([]int, dt.Rows)
		for i := range lc.Rows {
			lc.Rows[i] = i
		}
		return lc, nil
	}
	if mask.Len() != dt.Rows {
		return nil, fmt.Errorf("table.Table.Loc: %w: mask has %d values, table has %d rows", series.ErrShapeMismatch, mask.Len(), dt.Rows)
	}
	lc.Rows = mask.Indexes()
	return lc, nil
}

// Len returns the number of masked rows.
func (lc *Loc) Len() int {
	return len(lc.Rows)
}

// Values returns a new series holding copies of exactly the masked
// cells, in row order, or [ErrColumnNotFound].
func (lc *Loc) Values() (series.Series, error) {
	sr, err := lc.Table.Column(lc.Column)
	if err != nil {
		return nil, err
	}
	out := series.NewOfType(sr.DataType(), lc.Len())
	for i, rw := range lc.Rows {
		out.CopyCellsFrom(sr, i, rw, 1)
	}
	return out, nil
}

// Float returns the masked cells as float64 values, in row order,
// or [ErrColumnNotFound]. String cells parse, NaN when unparseable.
func (lc *Loc) Float() ([]float64, error) {
	sr, err := lc.Table.Column(lc.Column)
	if err != nil {
		return nil, err
	}
	out := make([]float64, lc.Len())
	for i, rw := range lc.Rows {
		out[i] = sr.Float1D(rw)
	}
	return out, nil
}

// Strings returns the masked cells as string values, in row order,
// or [ErrColumnNotFound].
func (lc *Loc) Strings() ([]string, error) {
	sr, err := lc.Table.Column(lc.Column)
	if err != nil {
		return nil, err
	}
	out := make([]string, lc.Len())
	for i, rw := range lc.Rows {
		out[i] = sr.String1D(rw)
	}
	return out, nil
}

// Set writes the given value into exactly the masked cells of the
// source table. A scalar broadcasts to every masked cell; a
// [series.Series], []float64, or []string must have one value per
// masked row, else [series.ErrShapeMismatch]. If the column does not
// exist it is created, string-typed for string values and float64
// otherwise, with unmasked cells "" or NaN. After Set, reads of the
// source table observe the new values.
func (lc *Loc) Set(value any) error {
	sr, err := lc.Table.Column(lc.Column)
	if err != nil {
		sr = lc.newColumn(value)
	}
	switch vl := value.(type) {
	case series.Series:
		if vl.Len() != lc.Len() {
			return fmt.Errorf("table.Loc.Set: %w: %d values for %d masked rows", series.ErrShapeMismatch, vl.Len(), lc.Len())
		}
		for i, rw := range lc.Rows {
			sr.CopyCellsFrom(vl, rw, i, 1)
		}
	case []float64:
		if len(vl) != lc.Len() {
			return fmt.Errorf("table.Loc.Set: %w: %d values for %d masked rows", series.ErrShapeMismatch, len(vl), lc.Len())
		}
		for i, rw := range lc.Rows {
			sr.SetFloat1D(vl[i], rw)
		}
	case []string:
		if len(vl) != lc.Len() {
			return fmt.Errorf("table.Loc.Set: %w: %d values for %d masked rows", series.ErrShapeMismatch, len(vl), lc.Len())
		}
		for i, rw := range lc.Rows {
			sr.SetString1D(vl[i], rw)
		}
	case string:
		for _, rw := range lc.Rows {
			sr.SetString1D(vl, rw)
		}
	default:
		fv, err := reflectx.ToFloat(value)
		if err != nil {
			return fmt.Errorf("table.Loc.Set: %w", err)
		}
		for _, rw := range lc.Rows {
			sr.SetFloat1D(fv, rw)
		}
	}
	return nil
}

// newColumn adds the missing column, typed from the value being set,
// with all cells at the missing-data default.
func (lc *Loc) newColumn(value any) series.Series {
	str := false
	switch vl := value.(type) {
	case series.Series:
		str = vl.IsString()
	case []string, string:
		str = true
	}
	if str {
		return lc.Table.AddStringColumn(lc.Column)
	}
	sr := lc.Table.AddFloat64Column(lc.Column)
	for i := range sr.Values {
		sr.Values[i] = math.NaN()
	}
	return sr
}
