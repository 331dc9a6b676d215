// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides type conversion functions between
// arbitrary values and the basic kinds used for table cells:
// floats, strings, ints, and bools.
package reflectx

import (
	"fmt"
	"reflect"
	"strconv"
)

// ToFloat converts the given value to a float64.
// It handles all the numeric kinds, bools (1 or 0), and
// numeric strings. An error is returned for anything else.
func ToFloat(v any) (float64, error) {
	switch vt := v.(type) {
	case float64:
		return vt, nil
	case float32:
		return float64(vt), nil
	case int:
		return float64(vt), nil
	case int64:
		return float64(vt), nil
	case int32:
		return float64(vt), nil
	case bool:
		if vt {
			return 1, nil
		}
		return 0, nil
	case string:
		fv, err := strconv.ParseFloat(vt, 64)
		if err != nil {
			return 0, fmt.Errorf("reflectx.ToFloat: string %q is not a number: %w", vt, err)
		}
		return fv, nil
	}
	rv := reflect.ValueOf(v)
	k := rv.Kind()
	switch {
	case KindIsInt(k):
		if k >= reflect.Uint && k <= reflect.Uintptr {
			return float64(rv.Uint()), nil
		}
		return float64(rv.Int()), nil
	case KindIsFloat(k):
		return rv.Float(), nil
	}
	return 0, fmt.Errorf("reflectx.ToFloat: unable to convert value of type %T", v)
}

// ToString converts the given value to a string, using
// non-scientific 'g' formatting for floats.
func ToString(v any) string {
	switch vt := v.(type) {
	case string:
		return vt
	case float64:
		return strconv.FormatFloat(vt, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(vt), 'g', -1, 32)
	case bool:
		return strconv.FormatBool(vt)
	}
	return fmt.Sprintf("%v", v)
}

// ToBool converts the given value to a bool: nonzero for numbers,
// [strconv.ParseBool] for strings.
func ToBool(v any) (bool, error) {
	switch vt := v.(type) {
	case bool:
		return vt, nil
	case string:
		return strconv.ParseBool(vt)
	}
	fv, err := ToFloat(v)
	if err != nil {
		return false, fmt.Errorf("reflectx.ToBool: unable to convert value of type %T", v)
	}
	return fv != 0, nil
}
