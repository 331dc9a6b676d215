// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats computes standard statistics over table columns,
// operating on [table.IndexView] indexed views so that filtered and
// sorted views aggregate exactly the viewed rows. NaN values are
// missing data: every stat except Count skips them, and an empty
// input yields NaN (Count yields 0).
package stats

import (
	"fmt"
	"strings"
)

// Stats is the list of standard aggregation statistics, used to
// select a stat by enum value or canonical lower-case string name.
type Stats int32

const (
	// count of number of elements.
	Count Stats = iota

	// sum of elements.
	Sum

	// L1 Norm: sum of absolute values.
	L1Norm

	// product of elements.
	Prod

	// minimum value.
	Min

	// maximum value.
	Max

	// minimum of absolute values.
	MinAbs

	// maximum of absolute values.
	MaxAbs

	// mean value = sum / count.
	Mean

	// sample variance (squared deviations from mean, divided by n-1).
	Var

	// sample standard deviation (sqrt of Var).
	Std

	// sample standard error of the mean (Std divided by sqrt(n)).
	Sem

	// sum of squared values.
	SumSq

	// L2 Norm: square-root of sum-of-squares.
	L2Norm

	// population variance (squared diffs from mean, divided by n).
	VarPop

	// population standard deviation (sqrt of VarPop).
	StdPop

	// population standard error of the mean (StdPop divided by sqrt(n)).
	SemPop

	// middle value in sorted ordering.
	Median

	// Q1 first quartile = 25%ile value = .25 quantile value.
	Q1

	// Q3 third quartile = 75%ile value = .75 quantile value.
	Q3

	// StatsN is the number of stats.
	StatsN
)

// statNames are the canonical lower-case names, in enum order.
var statNames = []string{"count", "sum", "l1norm", "prod", "min", "max",
	"minabs", "maxabs", "mean", "var", "std", "sem", "sumsq", "l2norm",
	"varpop", "stdpop", "sempop", "median", "q1", "q3"}

// statValues is the canonical name to value map, built in init.
var statValues map[string]Stats

func init() {
	statValues = make(map[string]Stats, StatsN)
	for st := Count; st < StatsN; st++ {
		statValues[statNames[st]] = st
	}
}

// String returns the canonical lower-case name of the stat.
func (st Stats) String() string {
	if st < 0 || st >= StatsN {
		return fmt.Sprintf("Stats(%d)", int32(st))
	}
	return statNames[st]
}

// FromString returns the stat with the given name, matched
// case-insensitively, or an error naming the unknown stat.
func FromString(name string) (Stats, error) {
	st, ok := statValues[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("stats.FromString: stat %q not found", name)
	}
	return st, nil
}

// StatsValues returns all stats values, for iteration.
func StatsValues() []Stats {
	vals := make([]Stats, StatsN)
	for st := Count; st < StatsN; st++ {
		vals[st] = st
	}
	return vals
}
