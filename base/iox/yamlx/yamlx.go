// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx reads and writes objects in YAML format,
// using [gopkg.in/yaml.v3].
package yamlx

import (
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"
	"tabular.dev/tabular/base/iox"
)

// NewDecoder returns a new [iox.Decoder] for YAML.
func NewDecoder(r io.Reader) iox.Decoder {
	return yaml.NewDecoder(r)
}

// Open reads the given object from the given YAML file.
func Open(v any, filename string) error {
	return iox.Open(v, filename, NewDecoder)
}

// OpenFiles reads the given object from the given YAML files,
// in order, so later files overwrite values set by earlier ones.
func OpenFiles(v any, filenames ...string) error {
	return iox.OpenFiles(v, filenames, NewDecoder)
}

// OpenFS reads the given object from the given YAML file
// in the given filesystem.
func OpenFS(v any, fsys fs.FS, filename string) error {
	return iox.OpenFS(v, fsys, filename, NewDecoder)
}

// Read reads the given object from the given YAML reader.
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, NewDecoder)
}

// ReadBytes reads the given object from the given YAML bytes.
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, NewDecoder)
}

// NewEncoder returns a new [iox.Encoder] for YAML.
func NewEncoder(w io.Writer) iox.Encoder {
	return yaml.NewEncoder(w)
}

// Save writes the given object to the given YAML file.
func Save(v any, filename string) error {
	return iox.Save(v, filename, NewEncoder)
}

// Write writes the given object to the given YAML writer.
func Write(v any, writer io.Writer) error {
	return iox.Write(v, writer, NewEncoder)
}

// WriteBytes writes the given object to YAML bytes.
func WriteBytes(v any) ([]byte, error) {
	return iox.WriteBytes(v, NewEncoder)
}
