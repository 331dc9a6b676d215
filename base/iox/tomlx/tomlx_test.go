// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"
)

type testConfig struct {
	Delimiter string
	Precision int
	MaxRows   int
}

func TestRoundTrip(t *testing.T) {
	cfg := &testConfig{Delimiter: "comma", Precision: 4, MaxRows: 20}
	fname := filepath.Join(t.TempDir(), "config.toml")
	if err := Save(cfg, fname); err != nil {
		t.Fatal(err)
	}
	got := &testConfig{}
	if err := Open(got, fname); err != nil {
		t.Fatal(err)
	}
	if *got != *cfg {
		t.Errorf("round trip mismatch: %+v != %+v", got, cfg)
	}
}

func TestReadBytes(t *testing.T) {
	got := &testConfig{}
	err := ReadBytes(got, []byte("Precision = 8\nMaxRows = 100\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got.Precision != 8 || got.MaxRows != 100 {
		t.Errorf("ReadBytes mismatch: %+v", got)
	}
}
