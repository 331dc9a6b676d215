// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randx provides a source abstraction over the standard
// random number generator, so code taking an optional [Rand] argument
// runs off either a deterministic seeded stream or the global one.
package randx

import "math/rand"

// Rand is the subset of the standard rand.Rand methods used here,
// supporting either the global rand generator or a separate source.
type Rand interface {
	// Seed initializes the generator to a deterministic state.
	Seed(seed int64)

	// Int63 returns a non-negative pseudo-random 63-bit integer as an int64.
	Int63() int64

	// Intn returns a non-negative pseudo-random number in [0,n).
	// It panics if n <= 0.
	Intn(n int) int

	// Float64 returns a pseudo-random number in [0.0,1.0).
	Float64() float64

	// NormFloat64 returns a normally distributed float64 with
	// mean = 0, stddev = 1.
	NormFloat64() float64

	// Perm returns a pseudo-random permutation of the integers in [0,n).
	Perm(n int) []int

	// Shuffle pseudo-randomizes the order of n elements through the
	// given swap function.
	Shuffle(n int, swap func(i, j int))
}

// Global is the default [Rand] source, backed by the shared global
// generator.
var Global Rand = NewGlobalRand()

// SysRand implements [Rand] using either a separate rand.Rand source,
// or, if that is nil, the global rand stream.
type SysRand struct {
	// if non-nil, use this random number source instead of the global one
	Rand *rand.Rand
}

// NewGlobalRand returns a new [SysRand] using the global rand source.
func NewGlobalRand() *SysRand {
	return &SysRand{}
}

// NewRand returns a new [SysRand] with its own source initialized
// with the given seed.
func NewRand(seed int64) *SysRand {
	return &SysRand{Rand: rand.New(rand.NewSource(seed))}
}

// Seed initializes the generator to a deterministic state.
func (r *SysRand) Seed(seed int64) {
	if r.Rand == nil {
		rand.Seed(seed)
		return
	}
	r.Rand.Seed(seed)
}

// Int63 returns a non-negative pseudo-random 63-bit integer as an int64.
func (r *SysRand) Int63() int64 {
	if r.Rand == nil {
		return rand.Int63()
	}
	return r.Rand.Int63()
}

// Intn returns a non-negative pseudo-random number in [0,n).
// It panics if n <= 0.
func (r *SysRand) Intn(n int) int {
	if r.Rand == nil {
		return rand.Intn(n)
	}
	return r.Rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *SysRand) Float64() float64 {
	if r.Rand == nil {
		return rand.Float64()
	}
	return r.Rand.Float64()
}

// NormFloat64 returns a normally distributed float64 with
// mean = 0, stddev = 1.
func (r *SysRand) NormFloat64() float64 {
	if r.Rand == nil {
		return rand.NormFloat64()
	}
	return r.Rand.NormFloat64()
}

// Perm returns a pseudo-random permutation of the integers in [0,n).
func (r *SysRand) Perm(n int) []int {
	if r.Rand == nil {
		return rand.Perm(n)
	}
	return r.Rand.Perm(n)
}

// Shuffle pseudo-randomizes the order of n elements through the
// given swap function.
func (r *SysRand) Shuffle(n int, swap func(i, j int)) {
	if r.Rand == nil {
		rand.Shuffle(n, swap)
		return
	}
	r.Rand.Shuffle(n, swap)
}
