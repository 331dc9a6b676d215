// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iox provides boilerplate wrapper functions for opening
// and saving data to files using any encoding format that follows
// the standard Decoder/Encoder interfaces, such as TOML, YAML, and
// JSON. The format packages (tomlx, yamlx, jsonx) build on these.
package iox

import (
	"bytes"
	"io"
	"io/fs"
	"os"
)

// Decoder is an interface for standard decoder types
// that read values from an input stream.
type Decoder interface {
	// Decode reads the next value from its input
	// and stores it in the value pointed to by v.
	Decode(v any) error
}

// DecoderFunc is a function that creates a new [Decoder]
// for the given reader.
type DecoderFunc func(r io.Reader) Decoder

// Open reads the given object from the given filename
// using the given [DecoderFunc].
func Open(v any, filename string, f DecoderFunc) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, fp, f)
}

// OpenFiles reads the given object from the given filenames
// using the given [DecoderFunc], in order, so later files
// overwrite values set by earlier ones.
func OpenFiles(v any, filenames []string, f DecoderFunc) error {
	for _, file := range filenames {
		err := Open(v, file, f)
		if err != nil {
			return err
		}
	}
	return nil
}

// OpenFS reads the given object from the given filename in
// the given filesystem using the given [DecoderFunc].
func OpenFS(v any, fsys fs.FS, filename string, f DecoderFunc) error {
	fp, err := fsys.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, fp, f)
}

// Read reads the given object from the given reader
// using the given [DecoderFunc].
func Read(v any, reader io.Reader, f DecoderFunc) error {
	d := f(reader)
	return d.Decode(v)
}

// ReadBytes reads the given object from the given bytes
// using the given [DecoderFunc].
func ReadBytes(v any, data []byte, f DecoderFunc) error {
	return Read(v, bytes.NewReader(data), f)
}
