// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iox

import (
	"bytes"
	"io"
	"os"
)

// Encoder is an interface for standard encoder types
// that write values to an output stream.
type Encoder interface {
	// Encode writes the encoding of v to its output.
	Encode(v any) error
}

// EncoderFunc is a function that creates a new [Encoder]
// for the given writer.
type EncoderFunc func(w io.Writer) Encoder

// Save writes the given object to the given filename
// using the given [EncoderFunc].
func Save(v any, filename string, f EncoderFunc) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Write(v, fp, f)
}

// Write writes the given object to the given writer
// using the given [EncoderFunc].
func Write(v any, writer io.Writer, f EncoderFunc) error {
	e := f(writer)
	return e.Encode(v)
}

// WriteBytes writes the given object to a byte slice
// using the given [EncoderFunc].
func WriteBytes(v any, f EncoderFunc) ([]byte, error) {
	b := &bytes.Buffer{}
	err := Write(v, b, f)
	return b.Bytes(), err
}
