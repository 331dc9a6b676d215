// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tabular.dev/tabular/base/errors"
	"tabular.dev/tabular/base/randx"
	"tabular.dev/tabular/smath"
	"tabular.dev/tabular/split"
	"tabular.dev/tabular/stats"
	"tabular.dev/tabular/table"
)

// runDemo walks through the core operations on the example table:
// masked selection, combined read/write access, group aggregation,
// group-wise reduction and transformation, and random splits.
func runDemo(cmd *cobra.Command, args []string) {
	fo := &theConfig.Format

	dt := table.NewExample()
	fmt.Println("the example table:")
	fmt.Println(table.Sprint(dt, fo))

	cat := errors.Log1(dt.Column("Cat"))
	val1 := errors.Log1(dt.Column("Val1"))

	fmt.Println("rows where Cat == C1:")
	c1 := smath.Equal(cat, "C1")
	fmt.Println(table.Sprint(errors.Log1(dt.SelectRows(c1)), fo))

	fmt.Println("rows where Cat == C1 and Val1 > 1, or Val1 >= 7:")
	both := errors.Log1(smath.And(c1, smath.Greater(val1, 1.0)))
	either := errors.Log1(smath.Or(both, smath.GreaterEqual(val1, 7.0)))
	fmt.Println(table.Sprint(errors.Log1(dt.SelectRows(either)), fo))

	fmt.Println("rows not in C1:")
	fmt.Println(table.Sprint(errors.Log1(dt.SelectRows(smath.Not(c1))), fo))

	fmt.Println("rows where Cat is one of C2, C3:")
	fmt.Println(table.Sprint(errors.Log1(dt.SelectRows(smath.In(cat, "C2", "C3"))), fo))

	fmt.Println("reading Val1 under the C1 mask:")
	lc := errors.Log1(dt.Loc(c1, "Val1"))
	fmt.Println(errors.Log1(lc.Float()))
	fmt.Println()

	fmt.Println("masked write: Val3 = 9 for C1 rows (new column backfills NaN):")
	wt := dt.Clone()
	errors.Log(errors.Log1(wt.Loc(c1, "Val3")).Set(9.0))
	fmt.Println(table.Sprint(wt, fo))

	fmt.Println("group means by Cat:")
	gm := errors.Log1(split.GroupAgg(dt, []string{"Cat"}, stats.Mean))
	fmt.Println(table.Sprint(gm, fo))

	fmt.Println("mean and std of Val1 by Cat:")
	spl := errors.Log1(split.GroupBy(table.NewIndexView(dt), "Cat"))
	errors.Log(split.AggMulti(spl, []stats.Stats{stats.Mean, stats.Std}, "Val1"))
	fmt.Println(table.Sprint(spl.AggsToTable(table.AddAggName), fo))

	fmt.Println("named aggregations:")
	spl.DeleteAggs()
	errors.Log(split.AggSpecs(spl,
		split.AggSpec{Name: "AvgVal1", Column: "Val1", Stat: stats.Mean},
		split.AggSpec{Name: "MaxVal2", Column: "Val2", Stat: stats.Max}))
	fmt.Println(table.Sprint(spl.AggsToTable(table.ColumnNameOnly), fo))

	fmt.Println("descriptive statistics:")
	fmt.Println(table.Sprint(errors.Log1(stats.DescribeTable(dt)), fo))

	fmt.Println("apply: range of Val1 within each group:")
	ap := errors.Log1(split.Apply(spl, func(ix *table.IndexView) (any, error) {
		mx, err := stats.MaxColumn(ix, "Val1")
		if err != nil {
			return nil, err
		}
		mn, err := stats.MinColumn(ix, "Val1")
		if err != nil {
			return nil, err
		}
		return mx - mn, nil
	}))
	fmt.Println(table.Sprint(ap, fo))

	fmt.Println("transform: replace values with their group mean:")
	tm := errors.Log1(split.TransformStat(spl, stats.Mean))
	fmt.Println(table.Sprint(tm, fo))

	fmt.Println("random splits:")
	prm := errors.Log1(split.Permuted(table.NewIndexView(dt), []float64{.5, .5}, []string{"train", "test"}, randx.NewRand(42)))
	for si, sp := range prm.Splits {
		fmt.Println(prm.Values[si][0], "rows:", sp.Indexes)
	}
}
