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

package steps

import (
	"github.com/fentec-project/stepsim/data"
	"github.com/fentec-project/stepsim/internal"
	"github.com/fentec-project/stepsim/sample"
	"github.com/pkg/errors"
)

// Sequential returns a uniformly random position in [1, setSize].
func Sequential(setSize int, src sample.Source) (int, error) {
	if err := checkSetSize(setSize); err != nil {
		return 0, err
	}

	return sample.NewUniformRange(1, setSize+1, src).Sample(), nil
}

// Stochastic generates a fully shuffled set of size setSize and
// returns the 1-based position of a uniformly drawn value in it.
func Stochastic(setSize int, src sample.Source) (int, error) {
	if err := checkSetSize(setSize); err != nil {
		return 0, err
	}

	set, err := data.NewRandomSet(setSize, src)
	if err != nil {
		return 0, errors.Wrap(err, "cannot generate random set")
	}

	return locate(set, src)
}

// Partitioned generates a set of splitCount ascending ranges in
// random order and returns the 1-based position of a uniformly
// drawn value in it.
func Partitioned(setSize, splitCount int, src sample.Source) (int, error) {
	return partitioned(setSize, splitCount, false, src)
}

// RandomPartitioned is like Partitioned, but the contents of every
// range are shuffled as well.
func RandomPartitioned(setSize, splitCount int, src sample.Source) (int, error) {
	return partitioned(setSize, splitCount, true, src)
}

// RunTrial runs all four strategies once and returns their results.
// It returns an error if setSize or splitCount is not positive or
// setSize is not divisible by splitCount.
func RunTrial(setSize, splitCount int, src sample.Source) (data.Trial, error) {
	if err := CheckParams(setSize, splitCount); err != nil {
		return data.Trial{}, err
	}

	var r data.Trial
	var err error
	if r.M1, err = Sequential(setSize, src); err != nil {
		return data.Trial{}, err
	}
	if r.M2, err = Stochastic(setSize, src); err != nil {
		return data.Trial{}, err
	}
	if r.M3, err = Partitioned(setSize, splitCount, src); err != nil {
		return data.Trial{}, err
	}
	if r.M4, err = RandomPartitioned(setSize, splitCount, src); err != nil {
		return data.Trial{}, err
	}

	return r, nil
}

// CheckParams verifies the input contract of RunTrial.
func CheckParams(setSize, splitCount int) error {
	if err := checkSetSize(setSize); err != nil {
		return err
	}
	if splitCount <= 0 {
		return errors.Wrapf(internal.ErrInvalidArgument, "split count %d should be positive", splitCount)
	}
	if setSize%splitCount != 0 {
		return errors.Wrapf(internal.ErrInvalidArgument,
			"set size %d should be divisible by split count %d", setSize, splitCount)
	}

	return nil
}

func partitioned(setSize, splitCount int, randomizeRange bool, src sample.Source) (int, error) {
	set, err := data.NewPartitionedSet(setSize, splitCount, randomizeRange, src)
	if err != nil {
		return 0, errors.Wrap(err, "cannot generate partitioned set")
	}

	return locate(set, src)
}

// locate draws a target from [0, len(set)) and returns its 1-based
// position. The target always occurs in a well-formed set, so an
// error here means the set generator broke its invariant.
func locate(set data.IndexSet, src sample.Source) (int, error) {
	target := sample.NewUniform(len(set), src).Sample()
	i, err := set.IndexOf(target)
	if err != nil {
		return 0, errors.Wrap(err, "malformed index set")
	}

	return i + 1, nil
}

func checkSetSize(setSize int) error {
	if setSize <= 0 {
		return errors.Wrapf(internal.ErrInvalidArgument, "set size %d should be positive", setSize)
	}
	return nil
}
