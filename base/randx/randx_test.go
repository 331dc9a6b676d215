// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRandDeterministic(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
	assert.Equal(t, a.Perm(8), b.Perm(8))
}

func TestPerm(t *testing.T) {
	r := NewRand(1)
	p := r.Perm(10)
	assert.Equal(t, 10, len(p))
	s := slices.Clone(p)
	slices.Sort(s)
	for i, v := range s {
		assert.Equal(t, i, v)
	}
}

func TestShuffle(t *testing.T) {
	r := NewRand(7)
	vals := []int{0, 1, 2, 3, 4, 5, 6, 7}
	r.Shuffle(len(vals), func(i, j int) {
		vals[i], vals[j] = vals[j], vals[i]
	})
	s := slices.Clone(vals)
	slices.Sort(s)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, s)
}

func TestGlobal(t *testing.T) {
	n := Global.Intn(10)
	assert.GreaterOrEqual(t, n, 0)
	assert.Less(t, n, 10)
}
