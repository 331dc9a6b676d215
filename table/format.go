// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatOptions control the plain-text rendering of a table.
type FormatOptions struct {
	// MaxRows is the maximum number of rows to render; the middle
	// rows are elided past it. <= 0 renders all rows.
	MaxRows int `toml:"max-rows" yaml:"max-rows" json:"max-rows"`

	// MaxColumns is the maximum number of columns to render; the
	// middle columns are elided past it. <= 0 renders all columns.
	MaxColumns int `toml:"max-columns" yaml:"max-columns" json:"max-columns"`

	// Precision is the number of significant digits for float
	// values. <= 0 uses the shortest exact representation.
	Precision int `toml:"precision" yaml:"precision" json:"precision"`
}

// Defaults sets standard rendering limits.
func (fo *FormatOptions) Defaults() {
	fo.MaxRows = 20
	fo.MaxColumns = 10
	fo.Precision = 4
}

// String renders the table as an aligned text grid with default
// [FormatOptions].
func (dt *Table) String() string {
	fo := &FormatOptions{}
	fo.Defaults()
	return Sprint(dt, fo)
}

// Sprint renders the table as an aligned text grid: a header row of
// column names, then one line per row with a leading row number.
// Rows and columns beyond the limits in opts are elided from the
// middle with an ellipsis.
func Sprint(dt *Table, opts *FormatOptions) string {
	cols := elide(dt.NumColumns(), opts.MaxColumns)
	rows := elide(dt.Rows, opts.MaxRows)

	grid := make([][]string, 0, len(rows)+1)
	hdr := make([]string, 0, len(cols)+1)
	hdr = append(hdr, "")
	for _, ci := range cols {
		if ci < 0 {
			hdr = append(hdr, "...")
			continue
		}
		hdr = append(hdr, dt.ColumnName(ci))
	}
	grid = append(grid, hdr)
	for _, ri := range rows {
		ln := make([]string, 0, len(cols)+1)
		if ri < 0 {
			ln = append(ln, "...")
			for range cols {
				ln = append(ln, "...")
			}
			grid = append(grid, ln)
			continue
		}
		ln = append(ln, strconv.Itoa(ri))
		for _, ci := range cols {
			if ci < 0 {
				ln = append(ln, "...")
				continue
			}
			ln = append(ln, cellString(dt, ci, ri, opts.Precision))
		}
		grid = append(grid, ln)
	}

	widths := make([]int, len(grid[0]))
	for _, ln := range grid {
		for i, cell := range ln {
			widths[i] = max(widths[i], len(cell))
		}
	}
	var b strings.Builder
	for _, ln := range grid {
		for i, cell := range ln {
			if i > 0 {
				b.WriteString("  ")
			}
			left := i > 0 && i-1 < len(cols) && cols[i-1] >= 0 && dt.Columns.Values[cols[i-1]].IsString()
			if left {
				fmt.Fprintf(&b, "%-*s", widths[i], cell)
			} else {
				fmt.Fprintf(&b, "%*s", widths[i], cell)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// cellString renders one cell, NaN as "NaN", floats at the given
// precision.
func cellString(dt *Table, ci, ri, prec int) string {
	sr := dt.Columns.Values[ci]
	if sr.IsString() {
		return sr.String1D(ri)
	}
	v := sr.Float1D(ri)
	if math.IsNaN(v) {
		return "NaN"
	}
	if prec <= 0 {
		prec = -1
	}
	return strconv.FormatFloat(v, 'g', prec, 64)
}

// elide returns the index sequence 0..n-1 limited to the given
// maximum, with a -1 marker where the middle indexes were dropped.
func elide(n, limit int) []int {
	if limit <= 0 || n <= limit {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	head := (limit + 1) / 2
	tail := limit - head
	idx := make([]int, 0, limit+1)
	for i := range head {
		idx = append(idx, i)
	}
	idx = append(idx, -1)
	for i := n - tail; i < n; i++ {
		idx = append(idx, i)
	}
	return idx
}
