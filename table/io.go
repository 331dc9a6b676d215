// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"reflect"
	"strconv"

	"tabular.dev/tabular/base/errors"
	"tabular.dev/tabular/base/metadata"
	"tabular.dev/tabular/base/reflectx"
)

// Delims are the delimiter options for csv files.
type Delims int32

const (
	// Tab is the tab rune delimiter, for TSV tab separated values.
	Tab Delims = iota

	// Comma is the comma rune delimiter, for CSV comma separated values.
	Comma

	// Space is the space rune delimiter, for SSV space separated values.
	Space

	// Detect is used during reading a file: tabs or commas are
	// detected from the first line.
	Detect
)

// Rune returns the rune for the delimiter.
func (dl Delims) Rune() rune {
	switch dl {
	case Tab:
		return '\t'
	case Comma:
		return ','
	case Space:
		return ' '
	}
	return '\t'
}

// DelimsFromName returns the delimiter with the given lower-case
// name: tab, comma, space, or detect.
func DelimsFromName(name string) (Delims, error) {
	switch name {
	case "tab":
		return Tab, nil
	case "comma":
		return Comma, nil
	case "space":
		return Space, nil
	case "detect":
		return Detect, nil
	}
	return Tab, fmt.Errorf("table.DelimsFromName: unknown delimiter name %q", name)
}

const (
	// Headers is passed to csv methods for the headers arg, to use headers.
	Headers = true

	// NoHeaders is passed to csv methods for the headers arg, to not use headers.
	NoHeaders = false
)

// headerCharToKind maps the leading type rune of a typed column
// header to the column kind.
var headerCharToKind = map[byte]reflect.Kind{
	'$': reflect.String,
	'#': reflect.Float64,
	'%': reflect.Float32,
	'|': reflect.Int,
	'^': reflect.Bool,
}

// headerKindToChar is the inverse of headerCharToKind.
var headerKindToChar map[reflect.Kind]byte

func init() {
	headerKindToChar = make(map[reflect.Kind]byte)
	for k, v := range headerCharToKind {
		headerKindToChar[v] = k
	}
}

////////  reading

// OpenCSV reads the table from a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg),
// replacing any existing columns. See [Table.ReadCSV] for the
// header conventions.
func (dt *Table) OpenCSV(filename string, delim Delims) error {
	fp, err := os.Open(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	dt.Meta.SetFilename(filename)
	return dt.ReadCSV(bufio.NewReader(fp), delim)
}

// OpenFS is the version of [Table.OpenCSV] that uses an [fs.FS]
// filesystem.
func (dt *Table) OpenFS(fsys fs.FS, filename string, delim Delims) error {
	fp, err := fsys.Open(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	dt.Meta.SetFilename(filename)
	return dt.ReadCSV(bufio.NewReader(fp), delim)
}

// OpenCSV reads the viewed table from a comma-separated-values (CSV)
// file and resets the view to sequential.
func (ix *IndexView) OpenCSV(filename string, delim Delims) error {
	err := ix.Table.OpenCSV(filename, delim)
	ix.Sequential()
	return err
}

// OpenFS is the version of [IndexView.OpenCSV] that uses an [fs.FS]
// filesystem.
func (ix *IndexView) OpenFS(fsys fs.FS, filename string, delim Delims) error {
	err := ix.Table.OpenFS(fsys, filename, delim)
	ix.Sequential()
	return err
}

// ReadCSV reads a table from a comma-separated-values (CSV) stream
// (where comma = any delimiter, specified in the delim arg, with
// [Detect] choosing between tab and comma from the first line),
// replacing any existing columns.
//
// If the fields of the first record all start with a type rune
// ($ string, # float64, % float32, | int, ^ bool), the record is a
// typed header naming and typing each column. Otherwise, if any
// field of the first record does not parse as a number, the record
// is a plain header and column types are inferred from the data.
// Otherwise the file is headerless: all records are data, columns
// are named col_0, col_1, ... with inferred types. Empty numeric
// fields read as NaN (missing).
func (dt *Table) ReadCSV(r io.Reader, delim Delims) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return errors.Log(err)
	}
	if delim == Detect {
		delim = detectDelim(b)
	}
	cr := csv.NewReader(bytes.NewReader(b))
	cr.Comma = delim.Rune()
	rec, err := cr.ReadAll()
	if err != nil || len(rec) == 0 {
		return errors.Log(err)
	}
	dt.DeleteAll()
	rows := len(rec)
	strow := 0
	switch {
	case typedHeaders(rec[0]):
		for _, hd := range rec[0] {
			kind := headerCharToKind[hd[0]]
			dt.AddColumnOfType(hd[1:], kind)
		}
		strow++
		rows--
	case plainHeaders(rec[0]):
		for ci, hd := range rec[0] {
			if hd == "" {
				hd = fmt.Sprintf("col_%d", ci)
			}
			dt.AddColumnOfType(hd, inferKind(rec[1:], ci))
		}
		strow++
		rows--
	default:
		for ci := range rec[0] {
			dt.AddColumnOfType(fmt.Sprintf("col_%d", ci), inferKind(rec, ci))
		}
	}
	dt.SetNumRows(rows)
	for ri := range rows {
		dt.ReadCSVRow(rec[ri+strow], ri)
	}
	return nil
}

// ReadCSVRow reads a record of csv data into the given row of the table.
func (dt *Table) ReadCSVRow(rec []string, row int) {
	nc := min(dt.NumColumns(), len(rec))
	for ci := range nc {
		sr := dt.Columns.Values[ci]
		str := rec[ci]
		if reflectx.KindIsFloat(sr.DataType()) && (str == "" || str == "NaN" || str == "-NaN") {
			sr.SetFloat1D(math.NaN(), row)
			continue
		}
		sr.SetString1D(str, row)
	}
}

// typedHeaders returns whether every field of the record is a typed
// column header starting with a type rune.
func typedHeaders(rec []string) bool {
	for _, hd := range rec {
		if hd == "" {
			return false
		}
		if _, ok := headerCharToKind[hd[0]]; !ok {
			return false
		}
	}
	return true
}

// plainHeaders returns whether the record is a plain header row:
// at least one field that does not parse as a number.
func plainHeaders(rec []string) bool {
	for _, hd := range rec {
		if hd == "" {
			continue
		}
		if _, err := strconv.ParseFloat(hd, 64); err != nil {
			return true
		}
	}
	return false
}

// inferKind infers a column kind from the given column of the data
// records: int if every non-empty value parses as an int, float64 if
// every non-empty value parses as a number, string otherwise.
func inferKind(rec [][]string, ci int) reflect.Kind {
	kind := reflect.Int
	for _, ln := range rec {
		if ci >= len(ln) || ln[ci] == "" {
			continue
		}
		if _, err := strconv.ParseInt(ln[ci], 10, 64); err == nil {
			continue
		}
		if _, err := strconv.ParseFloat(ln[ci], 64); err == nil {
			kind = reflect.Float64
			continue
		}
		return reflect.String
	}
	return kind
}

// detectDelim returns Tab or Comma according to which occurs in the
// first line of the data, preferring Tab when both do.
func detectDelim(b []byte) Delims {
	ln, _, _ := bufio.NewReader(bytes.NewReader(b)).ReadLine()
	if bytes.ContainsRune(ln, '\t') {
		return Tab
	}
	if bytes.ContainsRune(ln, ',') {
		return Comma
	}
	return Tab
}

////////  writing

// SaveCSV writes the table to a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg).
// If headers, then typed column headers are written, so the file
// reads back with the same column names and types.
func (dt *Table) SaveCSV(filename string, delim Delims, headers bool) error {
	fp, err := os.Create(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := dt.WriteCSV(bw, delim, headers); err != nil {
		return err
	}
	return bw.Flush()
}

// SaveCSV writes only the viewed rows to a comma-separated-values
// (CSV) file (where comma = any delimiter, specified in the delim
// arg). If headers, then typed column headers are written.
func (ix *IndexView) SaveCSV(filename string, delim Delims, headers bool) error {
	fp, err := os.Create(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := ix.WriteCSV(bw, delim, headers); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteCSV writes the table to the given writer as comma-separated-
// values (where comma = any delimiter, specified in the delim arg).
// If headers, then typed column headers are written. NaN cells are
// written as empty fields.
func (dt *Table) WriteCSV(w io.Writer, delim Delims, headers bool) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim.Rune()
	if headers {
		if err := cw.Write(dt.TypedHeaders()); err != nil {
			return errors.Log(err)
		}
	}
	for ri := range dt.Rows {
		if err := dt.WriteCSVRow(cw, ri); err != nil {
			return errors.Log(err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSV writes only the viewed rows to the given writer as
// comma-separated-values, in view order. If headers, then typed
// column headers are written.
func (ix *IndexView) WriteCSV(w io.Writer, delim Delims, headers bool) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim.Rune()
	if headers {
		if err := cw.Write(ix.Table.TypedHeaders()); err != nil {
			return errors.Log(err)
		}
	}
	for _, ri := range ix.Indexes {
		if err := ix.Table.WriteCSVRow(cw, ri); err != nil {
			return errors.Log(err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVRow writes the given row through the given csv writer.
// Float values use the precision set in table metadata, if any.
func (dt *Table) WriteCSVRow(cw *csv.Writer, row int) error {
	prec := -1
	if ps, err := metadata.Get[int](dt.Meta, "precision"); err == nil {
		prec = ps
	}
	rec := make([]string, dt.NumColumns())
	for ci, sr := range dt.Columns.Values {
		switch {
		case !sr.IsString() && sr.IsNull(row):
			rec[ci] = ""
		case prec > 0 && !sr.IsString():
			rec[ci] = strconv.FormatFloat(sr.Float1D(row), 'g', prec, 64)
		default:
			rec[ci] = sr.String1D(row)
		}
	}
	return cw.Write(rec)
}

// TypedHeaders returns the typed column headers for the table:
// each column name prefixed with its type rune.
func (dt *Table) TypedHeaders() []string {
	hdrs := make([]string, dt.NumColumns())
	for ci, sr := range dt.Columns.Values {
		ch, ok := headerKindToChar[sr.DataType()]
		if !ok {
			ch = '$'
		}
		hdrs[ci] = string(ch) + dt.ColumnName(ci)
	}
	return hdrs
}
