// Copyright (c) 2025, Tabular Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"tabular.dev/tabular/base/randx"
	"tabular.dev/tabular/table"
)

// Permuted generates permuted random splits of table rows, using the
// given list of probabilities, which are normalized to sum to 1 (an
// error is returned if they sum to 0). Names are optional labels for
// each split (e.g., train, test); when nil the normalized probability
// is used as the label, as "p=0.5". An optional random source can be
// passed for reproducible splits, otherwise the global source is used.
func Permuted(ix *table.IndexView, probs []float64, names []string, randOpt ...randx.Rand) (*table.Splits, error) {
	if ix == nil || ix.Len() == 0 {
		return nil, fmt.Errorf("split.Permuted: no rows in input index view")
	}
	np := len(probs)
	if len(names) > 0 && len(names) != np {
		return nil, fmt.Errorf("split.Permuted: got %d names for %d probabilities", len(names), np)
	}
	sum := floats.Sum(probs)
	if sum == 0 {
		return nil, fmt.Errorf("split.Permuted: probabilities sum to 0")
	}
	nr := ix.Len()
	ns := make([]int, np)
	cum := 0
	for i, p := range probs {
		p /= sum
		per := int(math.Round(p * float64(nr)))
		if cum+per > nr {
			per = nr - cum
			if per <= 0 {
				break
			}
		}
		ns[i] = per
		cum += per
	}
	perm := ix.Clone()
	perm.Permuted(randOpt...)
	spl := &table.Splits{}
	spl.SetLevels("permuted")
	cum = 0
	for i, n := range ns {
		nm := ""
		if names != nil {
			nm = names[i]
		} else {
			nm = fmt.Sprintf("p=%v", probs[i]/sum)
		}
		spl.New(ix.Table, []string{nm}, perm.Indexes[cum:cum+n]...)
		cum += n
	}
	return spl, nil
}
