// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split

import (
	"fmt"

	"tabular.dev/tabular/stats"
	"tabular.dev/tabular/table"
)

// AggIndex performs an aggregation using the given standard statistic
// across all splits, and returns the SplitAgg container of the results,
// which are also stored in the Splits. Column is specified by index.
func AggIndex(spl *table.Splits, colIndex int, st stats.Stats) *table.SplitAgg {
	ag := spl.AddAgg(st.String(), colIndex)
	for _, sp := range spl.Splits {
		agv := stats.StatIndex(sp, colIndex, st)
		ag.Aggs = append(ag.Aggs, agv)
	}
	return ag
}

// AggColumn performs an aggregation using the given standard statistic
// across all splits, and returns the SplitAgg container of the results,
// which are also stored in the Splits. Column is specified by name;
// returns an error wrapping [table.ErrColumnNotFound] for a bad name.
func AggColumn(spl *table.Splits, column string, st stats.Stats) (*table.SplitAgg, error) {
	dt := spl.Table()
	if dt == nil {
		return nil, fmt.Errorf("split.AggColumn: no splits to aggregate over")
	}
	colIndex, err := dt.ColumnIndex(column)
	if err != nil {
		return nil, err
	}
	return AggIndex(spl, colIndex, st), nil
}

// AggAllNumericColumns performs an aggregation using the given standard
// statistic across all splits, for all numeric columns in the table,
// excluding the group key columns.
func AggAllNumericColumns(spl *table.Splits, st stats.Stats) {
	dt := spl.Table()
	if dt == nil {
		return
	}
	for _, ci := range numericColumnIndexes(spl, dt) {
		AggIndex(spl, ci, st)
	}
}

// AggMulti performs aggregations using each of the given statistics
// across all splits, for each of the given columns (all numeric non-key
// columns if none given). Results of different statistics over the same
// column share the column name, so use [table.AddAggName] when calling
// [table.Splits.AggsToTable] to keep the result column names unique.
func AggMulti(spl *table.Splits, sts []stats.Stats, columns ...string) error {
	dt := spl.Table()
	if dt == nil {
		return fmt.Errorf("split.AggMulti: no splits to aggregate over")
	}
	colIndexes, err := columnIndexes(spl, dt, columns...)
	if err != nil {
		return err
	}
	for _, ci := range colIndexes {
		for _, st := range sts {
			AggIndex(spl, ci, st)
		}
	}
	return nil
}

// AggSpec names one aggregation for [AggSpecs]: the statistic to take
// over the given column, with Name the column name for the result in
// [table.Splits.AggsToTable].
type AggSpec struct {
	// Name is the output column name for this aggregation.
	Name string

	// Column is the source column to aggregate.
	Column string

	// Stat is the statistic to aggregate with.
	Stat stats.Stats
}

// AggSpecs performs the given named aggregations across all splits.
// The result table columns take each spec's Name verbatim, regardless
// of the naming argument to [table.Splits.AggsToTable].
func AggSpecs(spl *table.Splits, specs ...AggSpec) error {
	dt := spl.Table()
	if dt == nil {
		return fmt.Errorf("split.AggSpecs: no splits to aggregate over")
	}
	for _, spec := range specs {
		colIndex, err := dt.ColumnIndex(spec.Column)
		if err != nil {
			return err
		}
		ag := AggIndex(spl, colIndex, spec.Stat)
		ag.OutputName = spec.Name
	}
	return nil
}

// DescIndex performs aggregations using all of the standard descriptive
// statistics across all splits, and stores the results in the Splits.
// Column is specified by index.
func DescIndex(spl *table.Splits, colIndex int) {
	for _, st := range stats.DescriptiveStats {
		AggIndex(spl, colIndex, st)
	}
}

// DescColumn performs aggregations using all of the standard descriptive
// statistics across all splits, and stores the results in the Splits.
// Column is specified by name; returns an error for a bad column name.
func DescColumn(spl *table.Splits, column string) error {
	dt := spl.Table()
	if dt == nil {
		return fmt.Errorf("split.DescColumn: no splits to aggregate over")
	}
	colIndex, err := dt.ColumnIndex(column)
	if err != nil {
		return err
	}
	DescIndex(spl, colIndex)
	return nil
}

// GroupAgg is a one-call convenience that groups the table by the given
// key columns and aggregates all numeric non-key columns with the given
// statistic, returning the result table: one row per group in
// first-seen order, key columns first, result columns named after the
// source columns.
func GroupAgg(dt *table.Table, columns []string, st stats.Stats) (*table.Table, error) {
	spl, err := GroupBy(table.NewIndexView(dt), columns...)
	if err != nil {
		return nil, err
	}
	AggAllNumericColumns(spl, st)
	return spl.AggsToTable(table.ColumnNameOnly), nil
}
