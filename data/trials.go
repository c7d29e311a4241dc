/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package data

import (
	"fmt"

	"github.com/fentec-project/stepsim/internal"
	"github.com/pkg/errors"
)

// Method identifies one of the four step-counting strategies.
type Method int

const (
	// M1 draws a position uniformly without building a set.
	M1 Method = iota
	// M2 searches a fully shuffled set.
	M2
	// M3 searches a partitioned set with ordered ranges.
	M3
	// M4 searches a partitioned set with shuffled ranges.
	M4
)

// Methods lists all strategies in column order.
var Methods = []Method{M1, M2, M3, M4}

func (m Method) String() string {
	switch m {
	case M1, M2, M3, M4:
		return fmt.Sprintf("M%d", int(m)+1)
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Trial holds the 1-based positions found by each strategy in a
// single trial.
type Trial struct {
	M1 int
	M2 int
	M3 int
	M4 int
}

// Get returns the position found by strategy m.
func (t Trial) Get(m Method) int {
	switch m {
	case M1:
		return t.M1
	case M2:
		return t.M2
	case M3:
		return t.M3
	case M4:
		return t.M4
	}
	panic(fmt.Sprintf("data: unknown method %d", int(m)))
}

// Trials accumulates trial results column-wise, so the results
// of each strategy can be summarized as a plain []int.
type Trials struct {
	cols [4][]int
}

// NewTrials returns a new Trials instance with room for n trials.
func NewTrials(n int) (*Trials, error) {
	if n < 0 {
		return nil, errors.Wrapf(internal.ErrInvalidArgument, "negative trial count %d", n)
	}

	t := &Trials{}
	for i := range t.cols {
		t.cols[i] = make([]int, n)
	}

	return t, nil
}

// Len returns the number of trials t has room for.
func (t *Trials) Len() int {
	return len(t.cols[0])
}

// Set stores trial r at position i. Distinct positions may be set
// from different goroutines concurrently.
func (t *Trials) Set(i int, r Trial) {
	t.cols[M1][i] = r.M1
	t.cols[M2][i] = r.M2
	t.cols[M3][i] = r.M3
	t.cols[M4][i] = r.M4
}

// At returns the trial stored at position i.
func (t *Trials) At(i int) Trial {
	return Trial{
		M1: t.cols[M1][i],
		M2: t.cols[M2][i],
		M3: t.cols[M3][i],
		M4: t.cols[M4][i],
	}
}

// Column returns the results of strategy m across all trials.
// The returned slice is shared with t and must not be modified.
func (t *Trials) Column(m Method) []int {
	return t.cols[m]
}
