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

package experiment

import (
	"runtime"

	"github.com/fentec-project/stepsim/internal"
	"github.com/fentec-project/stepsim/steps"
	"github.com/pkg/errors"
)

// Config holds the parameters of an experiment run.
type Config struct {
	// Trials is the number of trials per set size.
	Trials int
	// SetSizes lists the set sizes, run in order.
	SetSizes []int
	// SplitCount is the number of partitions used by M3 and M4.
	SplitCount int
	// Workers is the number of goroutines running trials.
	Workers int
	// Seed seeds the per-worker random sources. Zero picks a seed
	// from the current time.
	Seed uint64
	// OutputDir is where result files are written.
	OutputDir string
	// ProgressEvery is the number of completed trials between
	// progress reports. Zero disables reporting.
	ProgressEvery int
}

// DefaultConfig returns the configuration of the reference experiment.
func DefaultConfig() Config {
	return Config{
		Trials:        1_000_000,
		SetSizes:      []int{1000, 100_000},
		SplitCount:    10,
		Workers:       runtime.NumCPU(),
		OutputDir:     ".",
		ProgressEvery: 1000,
	}
}

// Validate checks that c describes a runnable experiment.
func (c Config) Validate() error {
	if c.Trials <= 0 {
		return errors.Wrapf(internal.ErrInvalidArgument, "trial count %d should be positive", c.Trials)
	}
	if len(c.SetSizes) == 0 {
		return errors.Wrap(internal.ErrInvalidArgument, "no set sizes given")
	}
	for _, size := range c.SetSizes {
		if err := steps.CheckParams(size, c.SplitCount); err != nil {
			return err
		}
	}
	if c.Workers <= 0 {
		return errors.Wrapf(internal.ErrInvalidArgument, "worker count %d should be positive", c.Workers)
	}
	if c.ProgressEvery < 0 {
		return errors.Wrapf(internal.ErrInvalidArgument, "progress interval %d should not be negative", c.ProgressEvery)
	}

	return nil
}
