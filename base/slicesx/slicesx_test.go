// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slicesx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLength(t *testing.T) {
	var s []int
	s = SetLength(s, 3)
	assert.Equal(t, 3, len(s))

	s[2] = 2
	s = SetLength(s, 40)
	assert.Equal(t, 40, len(s))
	assert.Equal(t, 2, s[2])

	s = SetLength(s, 4)
	assert.Equal(t, 4, len(s))
	assert.Equal(t, 2, s[2])
}

func TestSwap(t *testing.T) {
	s := []string{"a", "b", "c"}
	Swap(s, 0, 2)
	assert.Equal(t, []string{"c", "b", "a"}, s)
}
