// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx reads and writes objects in TOML format,
// using [github.com/pelletier/go-toml/v2].
package tomlx

import (
	"io"
	"io/fs"

	"github.com/pelletier/go-toml/v2"
	"tabular.dev/tabular/base/iox"
)

// NewDecoder returns a new [iox.Decoder] for TOML.
func NewDecoder(r io.Reader) iox.Decoder {
	return toml.NewDecoder(r)
}

// Open reads the given object from the given TOML file.
func Open(v any, filename string) error {
	return iox.Open(v, filename, NewDecoder)
}

// OpenFiles reads the given object from the given TOML files,
// in order, so later files overwrite values set by earlier ones.
func OpenFiles(v any, filenames ...string) error {
	return iox.OpenFiles(v, filenames, NewDecoder)
}

// OpenFS reads the given object from the given TOML file
// in the given filesystem.
func OpenFS(v any, fsys fs.FS, filename string) error {
	return iox.OpenFS(v, fsys, filename, NewDecoder)
}

// Read reads the given object from the given TOML reader.
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, NewDecoder)
}

// ReadBytes reads the given object from the given TOML bytes.
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, NewDecoder)
}

// NewEncoder returns a new [iox.Encoder] for TOML.
func NewEncoder(w io.Writer) iox.Encoder {
	return toml.NewEncoder(w)
}

// Save writes the given object to the given TOML file.
func Save(v any, filename string) error {
	return iox.Save(v, filename, NewEncoder)
}

// Write writes the given object to the given TOML writer.
func Write(v any, writer io.Writer) error {
	return iox.Write(v, writer, NewEncoder)
}

// WriteBytes writes the given object to TOML bytes.
func WriteBytes(v any) ([]byte, error) {
	return iox.WriteBytes(v, NewEncoder)
}
