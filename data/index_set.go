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
	"github.com/fentec-project/stepsim/internal"
	"github.com/fentec-project/stepsim/sample"
	"github.com/pkg/errors"
)

// IndexSet wraps a slice of distinct integers. A well-formed
// IndexSet of length n holds every value of 0..n-1 exactly once.
type IndexSet []int

// NewSequentialSet returns the IndexSet [0, 1, ..., count-1].
func NewSequentialSet(count int) (IndexSet, error) {
	if count < 0 {
		return nil, errors.Wrapf(internal.ErrInvalidArgument, "negative set size %d", count)
	}

	set := make(IndexSet, count)
	for i := range set {
		set[i] = i
	}

	return set, nil
}

// NewRandomSet returns a uniformly random permutation of
// [0, 1, ..., count-1], drawn from src.
func NewRandomSet(count int, src sample.Source) (IndexSet, error) {
	set, err := NewSequentialSet(count)
	if err != nil {
		return nil, err
	}
	sample.ShuffleInPlace(set, src)

	return set, nil
}

// NewPartitionedSet splits [0, 1, ..., count-1] into splitCount
// contiguous ranges of equal size and writes them into the result
// in a random order. If randomizeRange is true, the contents of
// every range are shuffled independently as well; otherwise each
// range keeps its ascending order.
//
// It returns an error if count or splitCount is not positive, or
// if count is not divisible by splitCount.
func NewPartitionedSet(count, splitCount int, randomizeRange bool, src sample.Source) (IndexSet, error) {
	if count <= 0 || splitCount <= 0 {
		return nil, errors.Wrapf(internal.ErrInvalidArgument,
			"set size %d and split count %d should be positive", count, splitCount)
	}
	if count%splitCount != 0 {
		return nil, errors.Wrapf(internal.ErrInvalidArgument,
			"set size %d should be divisible by split count %d", count, splitCount)
	}

	initial, err := NewSequentialSet(count)
	if err != nil {
		return nil, err
	}
	order, err := NewRandomSet(splitCount, src)
	if err != nil {
		return nil, err
	}

	splitSize := count / splitCount
	res := make(IndexSet, count)
	for i, r := range order {
		dst := res[i*splitSize : (i+1)*splitSize]
		copy(dst, initial[r*splitSize:(r+1)*splitSize])
		if randomizeRange {
			sample.ShuffleInPlace(dst, src)
		}
	}

	return res, nil
}

// IndexOf returns the 0-based position of value v in s.
// It returns an error if v does not occur in s.
func (s IndexSet) IndexOf(v int) (int, error) {
	for i, c := range s {
		if c == v {
			return i, nil
		}
	}

	return -1, errors.Wrapf(internal.ErrNotFound, "value %d", v)
}

// IsPermutation checks whether s holds every value of 0..len(s)-1
// exactly once.
func (s IndexSet) IsPermutation() bool {
	seen := make([]bool, len(s))
	for _, c := range s {
		if c < 0 || c >= len(s) || seen[c] {
			return false
		}
		seen[c] = true
	}

	return true
}

// Copy creates a new IndexSet with the same elements.
func (s IndexSet) Copy() IndexSet {
	newSet := make(IndexSet, len(s))
	copy(newSet, s)

	return newSet
}
