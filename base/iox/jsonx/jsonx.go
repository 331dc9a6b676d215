// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonx reads and writes objects in JSON format,
// using [encoding/json].
package jsonx

import (
	"encoding/json"
	"io"
	"io/fs"

	"tabular.dev/tabular/base/iox"
)

// NewDecoder returns a new [iox.Decoder] for JSON.
func NewDecoder(r io.Reader) iox.Decoder {
	return json.NewDecoder(r)
}

// Open reads the given object from the given JSON file.
func Open(v any, filename string) error {
	return iox.Open(v, filename, NewDecoder)
}

// OpenFiles reads the given object from the given JSON files,
// in order, so later files overwrite values set by earlier ones.
func OpenFiles(v any, filenames ...string) error {
	return iox.OpenFiles(v, filenames, NewDecoder)
}

// OpenFS reads the given object from the given JSON file
// in the given filesystem.
func OpenFS(v any, fsys fs.FS, filename string) error {
	return iox.OpenFS(v, fsys, filename, NewDecoder)
}

// Read reads the given object from the given JSON reader.
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, NewDecoder)
}

// ReadBytes reads the given object from the given JSON bytes.
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, NewDecoder)
}

// NewEncoder returns a new [iox.Encoder] for JSON.
func NewEncoder(w io.Writer) iox.Encoder {
	return json.NewEncoder(w)
}

// NewEncoderIndent returns a new indented [iox.Encoder] for JSON.
func NewEncoderIndent(w io.Writer) iox.Encoder {
	e := json.NewEncoder(w)
	e.SetIndent("", "\t")
	return e
}

// Save writes the given object to the given JSON file.
func Save(v any, filename string) error {
	return iox.Save(v, filename, NewEncoder)
}

// SaveIndent writes the given object to the given JSON file
// with tab indentation.
func SaveIndent(v any, filename string) error {
	return iox.Save(v, filename, NewEncoderIndent)
}

// Write writes the given object to the given JSON writer.
func Write(v any, writer io.Writer) error {
	return iox.Write(v, writer, NewEncoder)
}

// WriteBytes writes the given object to JSON bytes.
func WriteBytes(v any) ([]byte, error) {
	return iox.WriteBytes(v, NewEncoder)
}
