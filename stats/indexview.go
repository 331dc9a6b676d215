// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
	"tabular.dev/tabular/base/errors"
	"tabular.dev/tabular/table"
)

// Every IndexView stats method in this file follows one of these signatures:

// IndexViewFuncIndex is a stats function operating on IndexView, taking a column index arg.
type IndexViewFuncIndex func(ix *table.IndexView, colIndex int) float64

// IndexViewFuncColumn is a stats function operating on IndexView, taking a column name arg.
type IndexViewFuncColumn func(ix *table.IndexView, column string) (float64, error)

// StatIndex returns the given statistic applied to all non-NaN
// elements of the given column index in the indexed view.
func StatIndex(ix *table.IndexView, colIndex int, st Stats) float64 {
	switch st {
	case Count:
		return CountIndex(ix, colIndex)
	case Sum:
		return SumIndex(ix, colIndex)
	case L1Norm:
		return L1NormIndex(ix, colIndex)
	case Prod:
		return ProdIndex(ix, colIndex)
	case Min:
		return MinIndex(ix, colIndex)
	case Max:
		return MaxIndex(ix, colIndex)
	case MinAbs:
		return MinAbsIndex(ix, colIndex)
	case MaxAbs:
		return MaxAbsIndex(ix, colIndex)
	case Mean:
		return MeanIndex(ix, colIndex)
	case Var:
		return VarIndex(ix, colIndex)
	case Std:
		return StdIndex(ix, colIndex)
	case Sem:
		return SemIndex(ix, colIndex)
	case SumSq:
		return SumSqIndex(ix, colIndex)
	case L2Norm:
		return L2NormIndex(ix, colIndex)
	case VarPop:
		return VarPopIndex(ix, colIndex)
	case StdPop:
		return StdPopIndex(ix, colIndex)
	case SemPop:
		return SemPopIndex(ix, colIndex)
	case Median:
		return MedianIndex(ix, colIndex)
	case Q1:
		return Q1Index(ix, colIndex)
	case Q3:
		return Q3Index(ix, colIndex)
	}
	errors.Log(fmt.Errorf("stats.StatIndex: stat %v not supported", st))
	return math.NaN()
}

// StatColumn returns the given statistic applied to all non-NaN
// elements of the given column name in the indexed view.
// Unknown column names return [table.ErrColumnNotFound].
func StatColumn(ix *table.IndexView, column string, st Stats) (float64, error) {
	colIndex, err := ix.Table.ColumnIndex(column)
	if err != nil {
		return math.NaN(), err
	}
	return StatIndex(ix, colIndex, st), nil
}

// StatIndexFunc accumulates the given [StatFunc] function over the
// non-NaN values of the given column at the viewed rows, starting
// from the given initial accumulator value.
func StatIndexFunc(ix *table.IndexView, colIndex int, ini float64, fun StatFunc) float64 {
	cl := ix.Table.Columns.Values[colIndex]
	ag := ini
	for _, srw := range ix.Indexes {
		val := cl.Float1D(srw)
		if !math.IsNaN(val) {
			ag = fun(srw, val, ag)
		}
	}
	return ag
}

////////  Count

// CountIndex returns the count of non-NaN elements in the given
// column index in the indexed view.
func CountIndex(ix *table.IndexView, colIndex int) float64 {
	return StatIndexFunc(ix, colIndex, 0, CountFunc)
}

// CountColumn returns the count of non-NaN elements in the given
// column name in the indexed view.
func CountColumn(ix *table.IndexView, column string) (float64, error) {
	colIndex, err := ix.Table.ColumnIndex(column)
	if err != nil {
		return math.NaN(), err
	}
	return CountIndex(ix, colIndex), nil
}

////////  Sum

// SumIndex returns the sum of non-NaN elements in the given
// column index in the indexed view, NaN if there are none.
func SumIndex(ix *table.IndexView, colIndex int) float64 {
	if CountIndex(ix, colIndex) == 0 {
		return math.NaN()
	}
	return StatIndexFunc(ix, colIndex, 0, SumFunc)
}

// SumColumn returns the sum of non-NaN elements in the given
// column name in the indexed view, NaN if there are none.
func SumColumn(ix *table.IndexView, column string) (float64, error) {
	colIndex, err := ix.Table.ColumnIndex(column)
	if err != nil {
		return math.NaN(), err
	}
	return SumIndex(ix, colIndex), nil
}

////////  L1Norm

// L1NormIndex returns the L1 norm (sum of absolute values) of non-NaN
// elements in the given column index in the indexed view.
func L1NormIndex(ix *table.IndexView, colIndex int) float64 {
	if CountIndex(ix, colIndex) == 0 {
		return math.NaN()
	}
	return StatIndexFunc(ix, colIndex, 0, L1NormFunc)
}

// L1NormColumn returns the L1 norm (sum of absolute values) of non-NaN
// elements in the given column name in the indexed view.
func L1NormColumn(ix *table.IndexView, column string) (float64, error) {
	colIndex, err := ix.Table.ColumnIndex(column)
	if err != nil {
		return math.NaN(), err
	}
	return L1NormIndex(ix, colIndex), nil
}

////////  Prod

// ProdIndex returns the product of non-NaN elements in the given
// column index in the indexed view.
func ProdIndex(ix *table.IndexView, colIndex int) float64 {
	if CountIndex(ix, colIndex) == 0 {
		return math.NaN()
	}
	return StatIndexFunc(ix, colIndex, 1, ProdFunc)
}

// ProdColumn returns the product of non-NaN elements in the given
// column name in the indexed view.
func ProdColumn(ix *table.IndexView, column string) (float64, error) {
	colIndex, err := ix.Table.ColumnIndex(column)
	if err != nil {
		return math.NaN(), err
	}
	return ProdIndex(ix, colIndex), nil
}

////////  Min

// MinIndex returns the minimum of non-NaN elements in the given
// column index in the indexed view.
func MinIndex(ix *table.IndexView, colIndex int) float64 {
	if CountIndex(ix, colIndex) == 0 {
		return math.NaN()
	}
	return StatIndexFunc(ix, colIndex, math.MaxFloat64, MinFunc)
}

// MinColumn returns the minimum of non-NaN elements in the given
// column name in the indexed view.
func MinColumn(ix *table.IndexView, column string) (float64, error) {
	colIndex, err := ix.Table.ColumnIndex(column)
	if err != nil {
		return math.NaN(), err
	}
	return MinIndex(ix, colIndex), nil
}

////////  Max

// MaxIndex returns the maximum of non-NaN elements in the given
// column index in the indexed view.
func MaxIndex(ix *table.IndexView, colIndex int) float64 {
	if CountIndex(ix, colIndex) == 0 {
		return math.NaN()
	}
	return StatIndexFunc(ix, colIndex, -math.MaxFloat64, MaxFunc)
}

// MaxColumn returns the maximum of non-NaN elements in the given
// column name in the indexed view.
func MaxColumn(ix *table.IndexView, column string) (float64, error) {
	colIndex, err := ix.Table.ColumnIndex(column)
	if err != nil {
		return math.NaN(), err
	}
	return MaxIndex(ix, colIndex), nil
}

////////  MinAbs

// MinAbsIndex returns the minimum of absolute values of non-NaN
// elements in the given column index in the indexed view.
func MinAbsIndex(ix *table.IndexView, colIndex int) float64 {
	if CountIndex(ix, colIndex) == 0 {
		return math.NaN()
	}
	return StatIndexFunc(ix, colIndex, math.MaxFloat64, MinAbsFunc)
}

// MinAbsColumn returns the minimum of absolute values of non-NaN
// elements in the given column name in the indexed view.
func MinAbsColumn(ix *table.IndexView, column string) (float64, error) {
	colIndex, err := ix.Table.ColumnIndex(column)
	if err != nil {
		return math.NaN(), err
	}
	return MinAbsIndex(ix, colIndex), nil
}

////////  MaxAbs

// MaxAbsIndex returns the maximum of absolute values of non-NaN
// elements in the given column index in the indexed view.
func MaxAbsIndex(ix *table.IndexView, colIndex int) float64 {
	if CountIndex(ix, colIndex) == 0 {
		return math.NaN()
	}
	return StatIndexFunc(ix, colIndex, -math.MaxFloat64, MaxAbsFunc)
}

// MaxAbsColumn returns the maximum of absolute values of non-NaN
// elements in the given column name in the indexed view.
func MaxAbsColumn(ix *table.IndexView, column string) (float64, error) {
	colIndex, err := ix.Table.ColumnIndex(column)
	if err != nil {
		return math.NaN(), err
	}
	return MaxAbsIndex(ix, colIndex), nil
}

////////  Mean

// MeanIndex returns the mean of non-NaN elements in the given
// column index in the indexed view.
func MeanIndex(ix *table.IndexView, colIndex int) float64 {
	cnt := CountIndex(ix, colIndex)
	if cnt == 0 {
		return math.NaN()
	}
	return StatIndexFunc(ix, colIndex, 0, SumFunc) / cnt
}

// MeanColumn returns the mean of non-NaN elements in the given
// column name in the indexed view.
func MeanColumn(ix *table.IndexView, column string) (float64, error) {
	colIndex, err := ix.Table.ColumnIndex(column)
	if err != nil {
		return math.NaN(), err
	}
	return MeanIndex(ix, colIndex), nil
}

////////  Var

// VarIndex returns the sample variance of non-NaN elements in the
// given column index in the indexed view.
// Sample variance is normalized by 1/(n-1): see VarPop for 1/n.
func VarIndex(ix *table.IndexView, colIndex int) float64 {
	cnt := CountIndex(ix, colIndex)
	if cnt == 0 {
		return math.NaN()
	}
	mean := StatIndexFunc(ix, colIndex, 0, SumFunc) / cnt
	vr := StatIndexFunc(ix, colIndex, 0, func(idx int, val float64, agg float64) float64 {
		dv := val - mean
		return agg + dv*dv
	})
	if cnt > 1 {
		vr /= cnt - 1
	}
	return vr
}

// VarColumn returns the sample variance of non-NaN elements in the
// given column name in the indexed view.
// Sample variance is normalized by 1/(n-1): see VarPop for 1/n.
func VarColumn(ix *table.IndexView, column string) (float64, error) {
	colIndex, err := ix.Table.ColumnIndex(column)
	if err != nil {
		return math.NaN(), err
	}
	return VarIndex(ix, colIndex), nil
}

////////  Std

// StdIndex returns the sample standard deviation of non-NaN elements
// in the given column index in the indexed view.
// Sample std deviation is normalized by 1/(n-1): see StdPop for 1/n.
func StdIndex(ix *table.IndexView, colIndex int) float64 {
	return math.Sqrt(VarIndex(ix, colIndex))
}

// StdColumn returns the sample standard deviation of non-NaN elements
// in the given column name in the indexed view.
// Sample std deviation is normalized by 1/(n-1): see StdPop for 1/n.
func StdColumn(ix *table.IndexView, column string) (float64, error) {
	colIndex, err := ix.Table.ColumnIndex(column)
	if err != nil {
		return math.NaN(), err
	}
	return StdIndex(ix, colIndex), nil
}

////////  Sem

// SemIndex returns the sample standard error of the mean of non-NaN
// elements in the given column index in the indexed view.
func SemIndex(ix *table.IndexView, colIndex int) float64 {
	cnt := CountIndex(ix, colIndex)
	if cnt == 0 {
		return math.NaN()
	}
	return StdIndex(ix, colIndex) / math.Sqrt(cnt)
}

// SemColumn returns the sample standard error of the mean of non-NaN
// elements in the given column name in the indexed view.
func SemColumn(ix *table.IndexView, column string) (float64, error) {
	colIndex, err := ix.Table.ColumnIndex(column)
	if err != nil {
		return math.NaN(), err
	}
	return SemIndex(ix, colIndex), nil
}

////////  SumSq

// SumSqIndex returns the sum of squares of non-NaN elements in the
// given column index in the indexed view, using the scaled
// algorithm that avoids underflow and overflow.
func SumSqIndex(ix *table.IndexView, colIndex int) float64 {
	if CountIndex(ix, colIndex) == 0 {
		return math.NaN()
	}
	cl := ix.Table.Columns.Values[colIndex]
	scale := 0.0
	ss := 1.0
	for _, srw := range ix.Indexes {
		v := cl.Float1D(srw)
		if math.IsNaN(v) || v == 0 {
			continue
		}
		absxi := math.Abs(v)
		if scale < absxi {
			ss = 1 + ss*(scale/absxi)*(scale/absxi)
			scale = absxi
		} else {
			ss = ss + (absxi/scale)*(absxi/scale)
		}
	}
	if math.IsInf(scale, 1) {
		return math.Inf(1)
	}
	return scale * scale * ss
}

// SumSqColumn returns the sum of squares of non-NaN elements in the
// given column name in the indexed view.
func SumSqColumn(ix *table.IndexView, column string) (float64, error) {
	colIndex, err := ix.Table.ColumnIndex(column)
	if err != nil {
		return math.NaN(), err
	}
	return SumSqIndex(ix, colIndex), nil
}

////////  L2Norm

// L2NormIndex returns the L2 norm (square root of the sum of
// squares) of non-NaN elements in the given column index in the
// indexed view.
func L2NormIndex(ix *table.IndexView, colIndex int) float64 {
	return math.Sqrt(SumSqIndex(ix, colIndex))
}

// L2NormColumn returns the L2 norm (square root of the sum of
// squares) of non-NaN elements in the given column name in the
// indexed view.
func L2NormColumn(ix *table.IndexView, column string) (float64, error) {
	colIndex, err := ix.Table.ColumnIndex(column)
	if err != nil {
		return math.NaN(), err
	}
	return L2NormIndex(ix, colIndex), nil
}

////////  VarPop

// VarPopIndex returns the population variance of non-NaN elements
// in the given column index in the indexed view.
// Population variance is normalized by 1/n: see Var for 1/(n-1).
func VarPopIndex(ix *table.IndexView, colIndex int) float64 {
	cnt := CountIndex(ix, colIndex)
	if cnt == 0 {
		return math.NaN()
	}
	mean := StatIndexFunc(ix, colIndex, 0, SumFunc) / cnt
	vr := StatIndexFunc(ix, colIndex, 0, func(idx int, val float64, agg float64) float64 {
		dv := val - mean
		return agg + dv*dv
	})
	return vr / cnt
}

// VarPopColumn returns the population variance of non-NaN elements
// in the given column name in the indexed view.
// Population variance is normalized by 1/n: see Var for 1/(n-1).
func VarPopColumn(ix *table.IndexView, column string) (float64, error) {
	colIndex, err := ix.Table.ColumnIndex(column)
	if err != nil {
		return math.NaN(), err
	}
	return VarPopIndex(ix, colIndex), nil
}

////////  StdPop

// StdPopIndex returns the population standard deviation of non-NaN
// elements in the given column index in the indexed view.
// Population std deviation is normalized by 1/n: see Std for 1/(n-1).
func StdPopIndex(ix *table.IndexView, colIndex int) float64 {
	return math.Sqrt(VarPopIndex(ix, colIndex))
}

// StdPopColumn returns the population standard deviation of non-NaN
// elements in the given column name in the indexed view.
// Population std deviation is normalized by 1/n: see Std for 1/(n-1).
func StdPopColumn(ix *table.IndexView, column string) (float64, error) {
	colIndex, err := ix.Table.ColumnIndex(column)
	if err != nil {
		return math.NaN(), err
	}
	return StdPopIndex(ix, colIndex), nil
}

////////  SemPop

// SemPopIndex returns the population standard error of the mean of
// non-NaN elements in the given column index in the indexed view.
func SemPopIndex(ix *table.IndexView, colIndex int) float64 {
	cnt := CountIndex(ix, colIndex)
	if cnt == 0 {
		return math.NaN()
	}
	return StdPopIndex(ix, colIndex) / math.Sqrt(cnt)
}

// SemPopColumn returns the population standard error of the mean of
// non-NaN elements in the given column name in the indexed view.
func SemPopColumn(ix *table.IndexView, column string) (float64, error) {
	colIndex, err := ix.Table.ColumnIndex(column)
	if err != nil {
		return math.NaN(), err
	}
	return SemPopIndex(ix, colIndex), nil
}

////////  Quantiles

// QuantilesIndex returns the given quantiles (0..1) of non-NaN
// elements in the given column index in the indexed view.
// The viewed values are gathered and sorted, then each quantile is
// evaluated with linear interpolation between sorted values
// ([stat.Quantile] with [stat.LinInterp]). Quantiles outside 0..1,
// or an empty input, yield NaN.
func QuantilesIndex(ix *table.IndexView, colIndex int, qs []float64) []float64 {
	cl := ix.Table.Columns.Values[colIndex]
	vals := make([]float64, 0, len(ix.Indexes))
	for _, srw := range ix.Indexes {
		v := cl.Float1D(srw)
		if !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}
	slices.Sort(vals)
	out := make([]float64, len(qs))
	for i, q := range qs {
		if len(vals) == 0 || q < 0 || q > 1 {
			out[i] = math.NaN()
			continue
		}
		out[i] = stat.Quantile(q, stat.LinInterp, vals, nil)
	}
	return out
}

// QuantilesColumn returns the given quantiles (0..1) of non-NaN
// elements in the given column name in the indexed view.
// See [QuantilesIndex].
func QuantilesColumn(ix *table.IndexView, column string, qs []float64) ([]float64, error) {
	colIndex, err := ix.Table.ColumnIndex(column)
	if err != nil {
		return nil, err
	}
	return QuantilesIndex(ix, colIndex, qs), nil
}

////////  Median

// MedianIndex returns the median (.5 quantile) of non-NaN elements
// in the given column index in the indexed view.
func MedianIndex(ix *table.IndexView, colIndex int) float64 {
	return QuantilesIndex(ix, colIndex, []float64{.5})[0]
}

// MedianColumn returns the median (.5 quantile) of non-NaN elements
// in the given column name in the indexed view.
func MedianColumn(ix *table.IndexView, column string) (float64, error) {
	colIndex, err := ix.Table.ColumnIndex(column)
	if err != nil {
		return math.NaN(), err
	}
	return MedianIndex(ix, colIndex), nil
}

////////  Q1

// Q1Index returns the first quartile (.25 quantile) of non-NaN
// elements in the given column index in the indexed view.
func Q1Index(ix *table.IndexView, colIndex int) float64 {
	return QuantilesIndex(ix, colIndex, []float64{.25})[0]
}

// Q1Column returns the first quartile (.25 quantile) of non-NaN
// elements in the given column name in the indexed view.
func Q1Column(ix *table.IndexView, column string) (float64, error) {
	colIndex, err := ix.Table.ColumnIndex(column)
	if err != nil {
		return math.NaN(), err
	}
	return Q1Index(ix, colIndex), nil
}

////////  Q3

// Q3Index returns the third quartile (.75 quantile) of non-NaN
// elements in the given column index in the indexed view.
func Q3Index(ix *table.IndexView, colIndex int) float64 {
	return QuantilesIndex(ix, colIndex, []float64{.75})[0]
}

// Q3Column returns the third quartile (.75 quantile) of non-NaN
// elements in the given column name in the indexed view.
func Q3Column(ix *table.IndexView, column string) (float64, error) {
	colIndex, err := ix.Table.ColumnIndex(column)
	if err != nil {
		return math.NaN(), err
	}
	return Q3Index(ix, colIndex), nil
}
