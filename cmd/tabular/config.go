// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"

	"tabular.dev/tabular/base/iox/jsonx"
	"tabular.dev/tabular/base/iox/tomlx"
	"tabular.dev/tabular/base/iox/yamlx"
	"tabular.dev/tabular/table"
)

// Config holds the tool options, readable from a TOML, YAML, or JSON
// file via the --config flag.
type Config struct {
	// Format controls how tables are rendered.
	Format table.FormatOptions `toml:"format" yaml:"format" json:"format"`

	// Delim names the delimiter for text files: tab, comma, space,
	// or detect. Empty infers it from the file extension.
	Delim string `toml:"delim" yaml:"delim" json:"delim"`

	// Stat is the default statistic for the groups command.
	Stat string `toml:"stat" yaml:"stat" json:"stat"`
}

var theConfig = defaultConfig()

func defaultConfig() Config {
	cfg := Config{Stat: "mean"}
	cfg.Format.Defaults()
	return cfg
}

// openConfig reads the given config file, choosing the format by
// its extension.
func openConfig(cfg *Config, filename string) error {
	switch filepath.Ext(filename) {
	case ".toml":
		return tomlx.Open(cfg, filename)
	case ".yaml", ".yml":
		return yamlx.Open(cfg, filename)
	case ".json":
		return jsonx.Open(cfg, filename)
	}
	return fmt.Errorf("config file %q: unknown extension, expected .toml, .yaml, or .json", filename)
}
