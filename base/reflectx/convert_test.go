// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"testing"
)

func TestToFloat(t *testing.T) {
	cases := []struct {
		in   any
		want float64
	}{
		{3.5, 3.5},
		{float32(2), 2},
		{7, 7},
		{int32(-4), -4},
		{true, 1},
		{"6.25", 6.25},
	}
	for _, c := range cases {
		got, err := ToFloat(c.in)
		if err != nil {
			t.Errorf("ToFloat(%v): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ToFloat(%v) = %v, expected %v", c.in, got, c.want)
		}
	}
	if _, err := ToFloat("C1"); err == nil {
		t.Error("expected error for non-numeric string")
	}
	if _, err := ToFloat(struct{}{}); err == nil {
		t.Error("expected error for struct")
	}
}

func TestToString(t *testing.T) {
	if s := ToString(2.5); s != "2.5" {
		t.Errorf("ToString(2.5) = %q", s)
	}
	if s := ToString("x"); s != "x" {
		t.Errorf("ToString(x) = %q", s)
	}
	if s := ToString(true); s != "true" {
		t.Errorf("ToString(true) = %q", s)
	}
}

func TestKinds(t *testing.T) {
	if !KindIsInt(reflect.Int32) || KindIsInt(reflect.Float64) {
		t.Error("KindIsInt misclassifies")
	}
	if !KindIsFloat(reflect.Float32) || KindIsFloat(reflect.String) {
		t.Error("KindIsFloat misclassifies")
	}
	if !KindIsNumber(reflect.Int) || KindIsNumber(reflect.Bool) {
		t.Error("KindIsNumber misclassifies")
	}
}
