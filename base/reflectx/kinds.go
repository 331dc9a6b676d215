// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import "reflect"

// KindIsInt returns whether the given [reflect.Kind] is an int
// of any flavor, signed or unsigned.
func KindIsInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Uintptr
}

// KindIsFloat returns whether the given [reflect.Kind] is a float32
// or float64.
func KindIsFloat(k reflect.Kind) bool {
	return k >= reflect.Float32 && k <= reflect.Float64
}

// KindIsNumber returns whether the given [reflect.Kind] is an int
// or a float.
func KindIsNumber(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Float64
}

// KindIsBasic returns whether the given [reflect.Kind] is a bool,
// number, or string.
func KindIsBasic(k reflect.Kind) bool {
	return (k >= reflect.Bool && k <= reflect.Float64) || k == reflect.String
}
