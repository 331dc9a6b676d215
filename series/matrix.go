// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"tabular.dev/tabular/base/errors"
)

// gonum mat.Vector interface: every series is an n x 1 column vector,
// with values converting through their float64 form.

// Dims is the gonum [mat.Matrix] method returning the dimensionality
// of the series as a column vector: (rows, 1).
func (sr *Number[T]) Dims() (r, c int) { return sr.Len(), 1 }

// At is the gonum [mat.Matrix] method returning the float value at
// the given row; the column must be 0.
func (sr *Number[T]) At(i, j int) float64 {
	if j != 0 {
		errors.Log(fmt.Errorf("series: mat.Matrix At column %d out of range for a vector", j))
		return 0
	}
	return sr.Float1D(i)
}

// T is the gonum [mat.Matrix] transpose method.
func (sr *Number[T]) T() mat.Matrix { return mat.Transpose{Matrix: sr} }

// AtVec is the gonum [mat.Vector] method returning the float value
// at the given row.
func (sr *Number[T]) AtVec(i int) float64 { return sr.Float1D(i) }

// Dims is the gonum [mat.Matrix] method returning the dimensionality
// of the series as a column vector: (rows, 1).
func (sr *String) Dims() (r, c int) { return sr.Len(), 1 }

// At is the gonum [mat.Matrix] method returning the float value at
// the given row; the column must be 0.
func (sr *String) At(i, j int) float64 {
	if j != 0 {
		errors.Log(fmt.Errorf("series: mat.Matrix At column %d out of range for a vector", j))
		return 0
	}
	return sr.Float1D(i)
}

// T is the gonum [mat.Matrix] transpose method.
func (sr *String) T() mat.Matrix { return mat.Transpose{Matrix: sr} }

// AtVec is the gonum [mat.Vector] method returning the float value
// at the given row.
func (sr *String) AtVec(i int) float64 { return sr.Float1D(i) }

// Dims is the gonum [mat.Matrix] method returning the dimensionality
// of the series as a column vector: (rows, 1).
func (sr *Bool) Dims() (r, c int) { return sr.Len(), 1 }

// At is the gonum [mat.Matrix] method returning the float value at
// the given row; the column must be 0.
func (sr *Bool) At(i, j int) float64 {
	if j != 0 {
		errors.Log(fmt.Errorf("series: mat.Matrix At column %d out of range for a vector", j))
		return 0
	}
	return sr.Float1D(i)
}

// T is the gonum [mat.Matrix] transpose method.
func (sr *Bool) T() mat.Matrix { return mat.Transpose{Matrix: sr} }

// AtVec is the gonum [mat.Vector] method returning the float value
// at the given row.
func (sr *Bool) AtVec(i int) float64 { return sr.Float1D(i) }
