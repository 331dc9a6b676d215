// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tabular works with tabular data files: printing, descriptive
// statistics, group-by aggregation, and conversion between delimited
// text and Arrow IPC formats.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"tabular.dev/tabular/base/logx"
)

func main() {
	root := &cobra.Command{
		Use:   "tabular",
		Short: "Work with tabular data files",
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "show informational messages")
	root.PersistentFlags().Bool("vv", false, "show debugging messages")
	root.PersistentFlags().BoolP("quiet", "q", false, "only show errors")
	root.PersistentFlags().String("config", "", "config file (.toml, .yaml, or .json) with output options")
	root.PersistentFlags().String("delim", "", "delimiter for text files: tab, comma, space, or detect (default by extension)")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		v, _ := cmd.Flags().GetBool("verbose")
		vv, _ := cmd.Flags().GetBool("vv")
		q, _ := cmd.Flags().GetBool("quiet")
		logx.UserLevel = logx.LevelFromFlags(vv, v, q)
		logx.SetDefaultLogger()
		if fnm, _ := cmd.Flags().GetString("config"); fnm != "" {
			if err := openConfig(&theConfig, fnm); err != nil {
				fatal("%v", err)
			}
		}
		// flags win over config file values
		if cmd.Flags().Changed("delim") {
			theConfig.Delim, _ = cmd.Flags().GetString("delim")
		}
	}
	addCommands(root)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
