// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arrowx converts tables to and from Apache Arrow records,
// and reads and writes the Arrow IPC stream format. Missing float
// values (NaN) map to Arrow nulls and back.
package arrowx

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/apache/arrow/go/v7/arrow"
	"github.com/apache/arrow/go/v7/arrow/array"
	"github.com/apache/arrow/go/v7/arrow/ipc"
	"github.com/apache/arrow/go/v7/arrow/memory"

	"tabular.dev/tabular/base/errors"
	"tabular.dev/tabular/series"
	"tabular.dev/tabular/table"
)

// arrowField returns the schema field for the given column.
func arrowField(name string, sr series.Series) (arrow.Field, error) {
	f := arrow.Field{Name: name, Nullable: true}
	switch sr.(type) {
	case *series.String:
		f.Type = arrow.BinaryTypes.String
	case *series.Float64:
		f.Type = arrow.PrimitiveTypes.Float64
	case *series.Float32:
		f.Type = arrow.PrimitiveTypes.Float32
	case *series.Int:
		f.Type = arrow.PrimitiveTypes.Int64
	case *series.Bool:
		f.Type = arrow.FixedWidthTypes.Boolean
	default:
		return f, fmt.Errorf("arrowx: unsupported column type %T for column %q", sr, name)
	}
	return f, nil
}

// ToArrow returns the table as a single Arrow record, using the given
// allocator (the Go allocator if nil). NaN values in float columns
// become nulls. The caller is responsible for releasing the record.
func ToArrow(dt *table.Table, mem memory.Allocator) (arrow.Record, error) {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	fields := make([]arrow.Field, dt.NumColumns())
	for ci, sr := range dt.Columns.Values {
		f, err := arrowField(dt.ColumnName(ci), sr)
		if err != nil {
			return nil, err
		}
		fields[ci] = f
	}
	bld := array.NewRecordBuilder(mem, arrow.NewSchema(fields, nil))
	defer bld.Release()
	for ci, sr := range dt.Columns.Values {
		switch cl := sr.(type) {
		case *series.String:
			fb := bld.Field(ci).(*array.StringBuilder)
			for _, v := range cl.Values {
				fb.Append(v)
			}
		case *series.Float64:
			fb := bld.Field(ci).(*array.Float64Builder)
			for _, v := range cl.Values {
				if math.IsNaN(v) {
					fb.AppendNull()
				} else {
					fb.Append(v)
				}
			}
		case *series.Float32:
			fb := bld.Field(ci).(*array.Float32Builder)
			for _, v := range cl.Values {
				if math.IsNaN(float64(v)) {
					fb.AppendNull()
				} else {
					fb.Append(v)
				}
			}
		case *series.Int:
			fb := bld.Field(ci).(*array.Int64Builder)
			for _, v := range cl.Values {
				fb.Append(int64(v))
			}
		case *series.Bool:
			fb := bld.Field(ci).(*array.BooleanBuilder)
			for _, v := range cl.Values {
				fb.Append(v)
			}
		}
	}
	return bld.NewRecord(), nil
}

// FromArrow returns a new table with the contents of the given Arrow
// record. Nulls in float columns become NaN; nulls in other columns
// become the zero value. Int64 columns map to int columns.
func FromArrow(rec arrow.Record) (*table.Table, error) {
	nr := int(rec.NumRows())
	dt := table.NewTable().SetNumRows(nr)
	for ci := 0; ci < int(rec.NumCols()); ci++ {
		name := rec.ColumnName(ci)
		switch arr := rec.Column(ci).(type) {
		case *array.String:
			cl := dt.AddStringColumn(name)
			for i := range cl.Values {
				if !arr.IsNull(i) {
					cl.Values[i] = arr.Value(i)
				}
			}
		case *array.Float64:
			cl := dt.AddFloat64Column(name)
			for i := range cl.Values {
				if arr.IsNull(i) {
					cl.Values[i] = math.NaN()
				} else {
					cl.Values[i] = arr.Value(i)
				}
			}
		case *array.Float32:
			cl := dt.AddFloat32Column(name)
			for i := range cl.Values {
				if arr.IsNull(i) {
					cl.Values[i] = float32(math.NaN())
				} else {
					cl.Values[i] = arr.Value(i)
				}
			}
		case *array.Int64:
			cl := dt.AddIntColumn(name)
			for i := range cl.Values {
				if !arr.IsNull(i) {
					cl.Values[i] = int(arr.Value(i))
				}
			}
		case *array.Boolean:
			cl := dt.AddBoolColumn(name)
			for i := range cl.Values {
				if !arr.IsNull(i) {
					cl.Values[i] = arr.Value(i)
				}
			}
		default:
			return nil, fmt.Errorf("arrowx: unsupported arrow column type %T for column %q", rec.Column(ci), name)
		}
	}
	return dt, nil
}

// WriteIPC writes the table to the given writer in the Arrow IPC
// stream format, as a single record.
func WriteIPC(w io.Writer, dt *table.Table) error {
	rec, err := ToArrow(dt, nil)
	if err != nil {
		return err
	}
	defer rec.Release()
	wr := ipc.NewWriter(w, ipc.WithSchema(rec.Schema()))
	if err := wr.Write(rec); err != nil {
		wr.Close()
		return err
	}
	return wr.Close()
}

// ReadIPC reads a table from the given reader in the Arrow IPC stream
// format. The rows of a stream with multiple records are appended
// into one table, which requires the records to share a schema.
func ReadIPC(r io.Reader) (*table.Table, error) {
	rd, err := ipc.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer rd.Release()
	var dt *table.Table
	for rd.Next() {
		rt, err := FromArrow(rd.Record())
		if err != nil {
			return nil, err
		}
		if dt == nil {
			dt = rt
		} else if err := dt.AppendRows(rt); err != nil {
			return nil, err
		}
	}
	if err := rd.Err(); err != nil && err != io.EOF {
		return nil, err
	}
	if dt == nil {
		return nil, fmt.Errorf("arrowx.ReadIPC: no records in stream")
	}
	return dt, nil
}

// SaveIPC writes the table to the given filename in the Arrow IPC
// stream format.
func SaveIPC(dt *table.Table, filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := WriteIPC(bw, dt); err != nil {
		return err
	}
	return bw.Flush()
}

// OpenIPC reads the table from the given Arrow IPC stream format file.
func OpenIPC(filename string) (*table.Table, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	defer fp.Close()
	dt, err := ReadIPC(bufio.NewReader(fp))
	if err != nil {
		return nil, err
	}
	dt.Meta.SetFilename(filename)
	return dt, nil
}
