// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package smath provides elementwise comparison, logic, and
// arithmetic functions over series.
//
// Comparisons produce masks ([series.Bool]) and [And], [Or], and
// [Not] combine masks: there is no operator precedence to get wrong,
// because every sub-condition must be evaluated into a mask before
// it can be combined. NaN values compare false under every operator.
package smath

import (
	"fmt"

	"tabular.dev/tabular/base/errors"
	"tabular.dev/tabular/base/reflectx"
	"tabular.dev/tabular/series"
)

// value resolves the right-hand side of an elementwise operation:
// a [series.Series] applies per index, anything else is a scalar
// broadcast to every index.
type value struct {
	sr     series.Series
	str    string
	float  float64
	strErr bool
}

func newValue(val any, asString bool) (value, error) {
	v := value{}
	if sr, ok := val.(series.Series); ok {
		v.sr = sr
		return v, nil
	}
	if asString {
		v.str = reflectx.ToString(val)
		return v, nil
	}
	fv, err := reflectx.ToFloat(val)
	if err != nil {
		return v, fmt.Errorf("smath: %w", err)
	}
	v.float = fv
	return v, nil
}

func (v *value) length(alen int) (int, error) {
	if v.sr == nil {
		return alen, nil
	}
	if v.sr.Len() != alen {
		return 0, fmt.Errorf("smath: %w: series lengths %d and %d", series.ErrShapeMismatch, alen, v.sr.Len())
	}
	return alen, nil
}

func (v *value) stringAt(i int) string {
	if v.sr != nil {
		return v.sr.String1D(i)
	}
	return v.str
}

func (v *value) floatAt(i int) float64 {
	if v.sr != nil {
		return v.sr.Float1D(i)
	}
	return v.float
}

// compare evaluates the given comparison of a series against a value
// (a scalar literal or another series of the same length) into a mask.
// String series compare as strings, everything else as float64,
// with NaN comparing false. Errors (unconvertible literal, length
// mismatch) are logged and produce an all-false mask, so composed
// conditions stay aligned.
func compare(a series.Series, val any, sfn func(a, b string) bool, ffn func(a, b float64) bool) *series.Bool {
	out := series.NewBool(a.Len())
	v, err := newValue(val, a.IsString())
	if err != nil {
		errors.Log(err)
		return out
	}
	if _, err := v.length(a.Len()); err != nil {
		errors.Log(err)
		return out
	}
	if a.IsString() {
		for i := range a.Len() {
			out.Values[i] = sfn(a.String1D(i), v.stringAt(i))
		}
		return out
	}
	for i := range a.Len() {
		if a.IsNull(i) {
			continue
		}
		out.Values[i] = ffn(a.Float1D(i), v.floatAt(i))
	}
	return out
}

// Equal returns the mask of a == val, where val is a scalar literal
// or another series of the same length.
func Equal(a series.Series, val any) *series.Bool {
	return compare(a, val,
		func(a, b string) bool { return a == b },
		func(a, b float64) bool { return a == b })
}

// NotEqual returns the mask of a != val, where val is a scalar literal
// or another series of the same length.
func NotEqual(a series.Series, val any) *series.Bool {
	return compare(a, val,
		func(a, b string) bool { return a != b },
		func(a, b float64) bool { return a != b })
}

// Less returns the mask of a < val, where val is a scalar literal
// or another series of the same length.
func Less(a series.Series, val any) *series.Bool {
	return compare(a, val,
		func(a, b string) bool { return a < b },
		func(a, b float64) bool { return a < b })
}

// LessEqual returns the mask of a <= val, where val is a scalar literal
// or another series of the same length.
func LessEqual(a series.Series, val any) *series.Bool {
	return compare(a, val,
		func(a, b string) bool { return a <= b },
		func(a, b float64) bool { return a <= b })
}

// Greater returns the mask of a > val, where val is a scalar literal
// or another series of the same length.
func Greater(a series.Series, val any) *series.Bool {
	return compare(a, val,
		func(a, b string) bool { return a > b },
		func(a, b float64) bool { return a > b })
}

// GreaterEqual returns the mask of a >= val, where val is a scalar literal
// or another series of the same length.
func GreaterEqual(a series.Series, val any) *series.Bool {
	return compare(a, val,
		func(a, b string) bool { return a >= b },
		func(a, b float64) bool { return a >= b })
}

// In returns the mask of rows whose value equals any of the given
// literal values, comparing as strings for string series and as
// floats otherwise. NaN rows are never in the set.
func In(a series.Series, vals ...any) *series.Bool {
	out := series.NewBool(a.Len())
	if a.IsString() {
		set := make(map[string]bool, len(vals))
		for _, v := range vals {
			set[reflectx.ToString(v)] = true
		}
		for i := range a.Len() {
			out.Values[i] = set[a.String1D(i)]
		}
		return out
	}
	set := make(map[float64]bool, len(vals))
	for _, v := range vals {
		fv, err := reflectx.ToFloat(v)
		if err != nil {
			errors.Log(fmt.Errorf("smath.In: %w", err))
			continue
		}
		set[fv] = true
	}
	for i := range a.Len() {
		if a.IsNull(i) {
			continue
		}
		out.Values[i] = set[a.Float1D(i)]
	}
	return out
}

// And returns the mask that is true where every given mask is true.
// All masks must have the same length, else [series.ErrShapeMismatch].
func And(masks ...*series.Bool) (*series.Bool, error) {
	if len(masks) == 0 {
		return series.NewBool(0), nil
	}
	n := masks[0].Len()
	for _, m := range masks[1:] {
		if m.Len() != n {
			return nil, fmt.Errorf("smath.And: %w: mask lengths %d and %d", series.ErrShapeMismatch, n, m.Len())
		}
	}
	out := series.NewBool(n)
	for i := range n {
		v := true
		for _, m := range masks {
			if !m.Values[i] {
				v = false
				break
			}
		}
		out.Values[i] = v
	}
	return out, nil
}

// Or returns the mask that is true where any given mask is true.
// All masks must have the same length, else [series.ErrShapeMismatch].
func Or(masks ...*series.Bool) (*series.Bool, error) {
	if len(masks) == 0 {
		return series.NewBool(0), nil
	}
	n := masks[0].Len()
	for _, m := range masks[1:] {
		if m.Len() != n {
			return nil, fmt.Errorf("smath.Or: %w: mask lengths %d and %d", series.ErrShapeMismatch, n, m.Len())
		}
	}
	out := series.NewBool(n)
	for i := range n {
		for _, m := range masks {
			if m.Values[i] {
				out.Values[i] = true
				break
			}
		}
	}
	return out, nil
}

// Not returns the mask that is true where the given mask is false.
func Not(m *series.Bool) *series.Bool {
	out := series.NewBool(m.Len())
	for i, v := range m.Values {
		out.Values[i] = !v
	}
	return out
}
