// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"tabular.dev/tabular/arrowx"
	"tabular.dev/tabular/base/logx"
	"tabular.dev/tabular/split"
	"tabular.dev/tabular/stats"
	"tabular.dev/tabular/table"
)

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// fileDelims returns the delimiter implied by the file extension:
// comma for .csv, tab for .tsv, otherwise detected from the content
// when reading and tab when writing.
func fileDelims(fname string) table.Delims {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".csv":
		return table.Comma
	case ".tsv":
		return table.Tab
	}
	return table.Detect
}

// isArrow returns whether the file name implies the Arrow IPC format.
func isArrow(fname string) bool {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".arrow", ".arrows", ".ipc":
		return true
	}
	return false
}

// tableDelims returns the configured delimiter, or the one implied
// by the file extension when none is configured.
func tableDelims(fname string) (table.Delims, error) {
	if theConfig.Delim != "" {
		return table.DelimsFromName(theConfig.Delim)
	}
	return fileDelims(fname), nil
}

// openTable reads the table in the given file, as Arrow IPC or
// delimited text depending on the extension.
func openTable(fname string) (*table.Table, error) {
	if isArrow(fname) {
		return arrowx.OpenIPC(fname)
	}
	dl, err := tableDelims(fname)
	if err != nil {
		return nil, err
	}
	dt := table.NewTable()
	if err := dt.OpenCSV(fname, dl); err != nil {
		return nil, err
	}
	return dt, nil
}

// saveTable writes the table to the given file, as Arrow IPC or
// delimited text depending on the extension.
func saveTable(dt *table.Table, fname string) error {
	if isArrow(fname) {
		return arrowx.SaveIPC(dt, fname)
	}
	dl, err := tableDelims(fname)
	if err != nil {
		return err
	}
	return dt.SaveCSV(fname, dl, table.Headers)
}

func addCommands(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "show file",
		Short: "Print the table in the given file",
		Args:  cobra.ExactArgs(1),
		Run:   showTable}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "describe file [column...]",
		Short: "Print descriptive statistics of the numeric columns",
		Args:  cobra.MinimumNArgs(1),
		Run:   describeTable}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "groups file",
		Short: "Group rows by key columns and aggregate",
		Args:  cobra.ExactArgs(1),
		Run:   groupTable}
	cmd.Flags().StringSlice("keys", nil, "key columns to group by (required)")
	cmd.Flags().StringSlice("columns", nil, "columns to aggregate (default all numeric)")
	cmd.Flags().String("stat", "mean", "statistic to aggregate with")
	cmd.MarkFlagRequired("keys")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "stats",
		Short: "List the available statistics",
		Run:   listStats}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "convert src dst",
		Short: "Convert between delimited text and Arrow IPC files",
		Args:  cobra.ExactArgs(2),
		Run:   convertTable}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "demo",
		Short: "Run a tour of selection, masks, grouping, and transforms",
		Run:   runDemo}
	root.AddCommand(cmd)
}

func showTable(cmd *cobra.Command, args []string) {
	dt, err := openTable(args[0])
	if err != nil {
		fatal("%v", err)
	}
	logx.PrintlnInfo("opened", args[0], "rows:", dt.Rows, "columns:", dt.NumColumns())
	fmt.Println(table.Sprint(dt, &theConfig.Format))
}

func describeTable(cmd *cobra.Command, args []string) {
	dt, err := openTable(args[0])
	if err != nil {
		fatal("%v", err)
	}
	st, err := stats.DescribeTable(dt, args[1:]...)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Println(table.Sprint(st, &theConfig.Format))
}

func groupTable(cmd *cobra.Command, args []string) {
	keys, _ := cmd.Flags().GetStringSlice("keys")
	columns, _ := cmd.Flags().GetStringSlice("columns")
	statName, _ := cmd.Flags().GetString("stat")
	if !cmd.Flags().Changed("stat") && theConfig.Stat != "" {
		statName = theConfig.Stat
	}
	st, err := stats.FromString(statName)
	if err != nil {
		fatal("%v", err)
	}
	dt, err := openTable(args[0])
	if err != nil {
		fatal("%v", err)
	}
	spl, err := split.GroupBy(table.NewIndexView(dt), keys...)
	if err != nil {
		fatal("%v", err)
	}
	if err := split.AggMulti(spl, []stats.Stats{st}, columns...); err != nil {
		fatal("%v", err)
	}
	fmt.Println(table.Sprint(spl.AggsToTable(table.ColumnNameOnly), &theConfig.Format))
}

func listStats(cmd *cobra.Command, args []string) {
	for _, st := range stats.StatsValues() {
		fmt.Println(st.String())
	}
}

func convertTable(cmd *cobra.Command, args []string) {
	dt, err := openTable(args[0])
	if err != nil {
		fatal("%v", err)
	}
	if err := saveTable(dt, args[1]); err != nil {
		fatal("%v", err)
	}
	logx.PrintlnInfo("wrote", args[1], "rows:", dt.Rows, "columns:", dt.NumColumns())
}
