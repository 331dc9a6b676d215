// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"reflect"

	"tabular.dev/tabular/base/errors"
	"tabular.dev/tabular/base/reflectx"
)

// NewSliceTable returns a new Table with one column per exported
// basic-typed field of the given slice of structs, filled with the
// slice data.
func NewSliceTable(st any) (*Table, error) {
	npv := reflectx.NonPointerValue(reflect.ValueOf(st))
	if npv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("table.NewSliceTable: not a slice")
	}
	eltyp := reflectx.NonPointerType(npv.Type().Elem())
	if eltyp.Kind() != reflect.Struct {
		return nil, fmt.Errorf("table.NewSliceTable: element type is not a struct")
	}
	dt := NewTable()

	for i := 0; i < eltyp.NumField(); i++ {
		f := eltyp.Field(i)
		kind := f.Type.Kind()
		if !reflectx.KindIsBasic(kind) {
			continue
		}
		dt.AddColumnOfType(f.Name, columnKind(kind))
	}
	UpdateSliceTable(st, dt)
	return dt, nil
}

// UpdateSliceTable updates the given Table with data from the given
// slice of structs, which must be the same type as used to configure
// the table.
func UpdateSliceTable(st any, dt *Table) {
	npv := reflectx.NonPointerValue(reflect.ValueOf(st))
	eltyp := reflectx.NonPointerType(npv.Type().Elem())

	nr := npv.Len()
	dt.SetNumRows(nr)
	for ri := 0; ri < nr; ri++ {
		for i := 0; i < eltyp.NumField(); i++ {
			f := eltyp.Field(i)
			kind := f.Type.Kind()
			if !reflectx.KindIsBasic(kind) {
				continue
			}
			val := npv.Index(ri).Field(i).Interface()
			cl, err := dt.Column(f.Name)
			if errors.Log(err) != nil {
				continue
			}
			if kind == reflect.String {
				cl.SetString1D(val.(string), ri)
			} else {
				fv, _ := reflectx.ToFloat(val)
				cl.SetFloat1D(fv, ri)
			}
		}
	}
}

// columnKind maps a basic struct field kind onto one of the
// supported column kinds.
func columnKind(kind reflect.Kind) reflect.Kind {
	switch {
	case kind == reflect.String, kind == reflect.Bool:
		return kind
	case kind == reflect.Float32:
		return reflect.Float32
	case reflectx.KindIsFloat(kind):
		return reflect.Float64
	default:
		return reflect.Int
	}
}
