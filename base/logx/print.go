// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"fmt"
	"log/slog"
)

// User-facing print functions gated on [UserLevel]: unlike the slog
// functions, these print bare text with no level label, for normal
// program output that the user can quiet or expand with flags.

// PrintlnDebug prints the given arguments with [fmt.Println]
// if [UserLevel] is at or below [Debug].
func PrintlnDebug(a ...any) {
	if UserLevel <= slog.LevelDebug {
		fmt.Println(a...)
	}
}

// PrintlnInfo prints the given arguments with [fmt.Println]
// if [UserLevel] is at or below [Info].
func PrintlnInfo(a ...any) {
	if UserLevel <= slog.LevelInfo {
		fmt.Println(a...)
	}
}

// PrintlnWarn prints the given arguments with [fmt.Println]
// if [UserLevel] is at or below [Warn].
func PrintlnWarn(a ...any) {
	if UserLevel <= slog.LevelWarn {
		fmt.Println(a...)
	}
}

// PrintlnError prints the given arguments with [fmt.Println]
// if [UserLevel] is at or below [Error].
func PrintlnError(a ...any) {
	if UserLevel <= slog.LevelError {
		fmt.Println(a...)
	}
}

// PrintfDebug prints the given format and arguments with [fmt.Printf]
// if [UserLevel] is at or below [Debug].
func PrintfDebug(format string, a ...any) {
	if UserLevel <= slog.LevelDebug {
		fmt.Printf(format, a...)
	}
}

// PrintfInfo prints the given format and arguments with [fmt.Printf]
// if [UserLevel] is at or below [Info].
func PrintfInfo(format string, a ...any) {
	if UserLevel <= slog.LevelInfo {
		fmt.Printf(format, a...)
	}
}

// PrintfWarn prints the given format and arguments with [fmt.Printf]
// if [UserLevel] is at or below [Warn].
func PrintfWarn(format string, a ...any) {
	if UserLevel <= slog.LevelWarn {
		fmt.Printf(format, a...)
	}
}

// PrintfError prints the given format and arguments with [fmt.Printf]
// if [UserLevel] is at or below [Error].
func PrintfError(format string, a ...any) {
	if UserLevel <= slog.LevelError {
		fmt.Printf(format, a...)
	}
}
