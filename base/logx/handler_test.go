// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestHandler(t *testing.T) {
	UseColor = false
	old := UserLevel
	UserLevel = Debug
	defer func() { UserLevel = old }()

	b := &strings.Builder{}
	lg := slog.New(NewHandler(b))

	lg.Debug("this is debug")
	lg.Info("this is info", "key", 42)
	lg.Warn("this is warn")
	lg.Error("this is error")

	out := b.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), out)
	}
	if lines[0] != "DEBUG: this is debug" {
		t.Errorf("bad debug line: %q", lines[0])
	}
	if lines[1] != "INFO: this is info key=42" {
		t.Errorf("bad info line: %q", lines[1])
	}
	if !strings.HasPrefix(lines[3], "ERROR: ") {
		t.Errorf("bad error line: %q", lines[3])
	}
}

func TestHandlerLevelGate(t *testing.T) {
	UseColor = false
	old := UserLevel
	UserLevel = Error
	defer func() { UserLevel = old }()

	b := &strings.Builder{}
	h := NewHandler(b)
	if h.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("warn should be disabled at Error level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled at Error level")
	}
}
