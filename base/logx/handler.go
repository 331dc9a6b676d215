// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// UseColor is whether to colorize level labels in log output.
// It is disabled automatically when the output is not a terminal
// (termenv reports an Ascii profile) or NO_COLOR is set.
var UseColor = termenv.ColorProfile() != termenv.Ascii && os.Getenv("NO_COLOR") == ""

// Handler is a [slog.Handler] for command-line programs: it omits
// timestamps, prints a colored level label followed by the message,
// and renders attributes as key=value pairs. Enabledness follows
// [UserLevel].
type Handler struct {
	mu    sync.Mutex
	w     io.Writer
	attrs string
	group string
}

// NewHandler returns a new [Handler] writing to the given writer.
func NewHandler(w io.Writer) *Handler {
	return &Handler{w: w}
}

// SetDefaultLogger sets the default logger to a [NewHandler] on
// [os.Stderr], at [UserLevel]. It should be called again whenever
// UserLevel changes.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	b := &strings.Builder{}
	b.WriteString(LevelLabel(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		key := a.Key
		if h.group != "" {
			key = h.group + "." + key
		}
		fmt.Fprintf(b, " %s=%v", key, a.Value)
		return true
	})
	b.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := &Handler{w: h.w, attrs: h.attrs, group: h.group}
	b := &strings.Builder{}
	b.WriteString(nh.attrs)
	for _, a := range attrs {
		key := a.Key
		if nh.group != "" {
			key = nh.group + "." + key
		}
		fmt.Fprintf(b, " %s=%v", key, a.Value)
	}
	nh.attrs = b.String()
	return nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	nh := &Handler{w: h.w, attrs: h.attrs, group: name}
	if h.group != "" {
		nh.group = h.group + "." + name
	}
	return nh
}

// LevelLabel returns the text label for the given level,
// colored per [LevelColor] when [UseColor] is on.
func LevelLabel(level slog.Level) string {
	lb := level.String() + ":"
	return LevelColor(level, lb)
}

// LevelColor applies the conventional color for the given level to
// the given string: faint for debug, blue for info, yellow for warn,
// and red for errors. It returns the string unchanged when
// [UseColor] is off.
func LevelColor(level slog.Level, str string) string {
	if !UseColor {
		return str
	}
	s := termenv.String(str)
	switch {
	case level >= slog.LevelError:
		s = s.Foreground(termenv.ANSIRed)
	case level >= slog.LevelWarn:
		s = s.Foreground(termenv.ANSIYellow)
	case level >= slog.LevelInfo:
		s = s.Foreground(termenv.ANSIBlue)
	default:
		s = s.Faint()
	}
	return s.String()
}
