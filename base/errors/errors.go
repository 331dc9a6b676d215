// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides easy, context-wrapped error handling,
// extending the standard library errors package so that it can be
// imported under the same name.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error with the given text.
// It is a direct wrapper of [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Errorf returns a new error with the given format and arguments.
// It is a direct wrapper of [fmt.Errorf], so %w wrapping works.
func Errorf(format string, a ...any) error {
	return fmt.Errorf(format, a...)
}

// Is reports whether any error in err's tree matches target.
// It is a direct wrapper of [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// It is a direct wrapper of [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join returns an error wrapping the given errors.
// It is a direct wrapper of [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Unwrap returns the result of calling the Unwrap method on err.
// It is a direct wrapper of [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
