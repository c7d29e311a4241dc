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
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fentec-project/stepsim/data"
	"github.com/fentec-project/stepsim/sample"
	"github.com/fentec-project/stepsim/stats"
	"github.com/fentec-project/stepsim/steps"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of running the experiment for one set size.
type Result struct {
	SetSize int
	Trials  *data.Trials
	Elapsed time.Duration
	// Summaries holds one summary per strategy, in data.Methods order.
	Summaries []stats.Summary
}

// Runner runs experiments described by a Config.
type Runner struct {
	cfg  Config
	seed uint64
	log  *logrus.Logger
}

// NewRunner returns a Runner for cfg. It returns an error if cfg is
// invalid. If logger is nil, the standard logrus logger is used.
func NewRunner(cfg Config, logger *logrus.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid experiment configuration")
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &Runner{
		cfg:  cfg,
		seed: seed,
		log:  logger,
	}, nil
}

// Seed returns the seed the runner's random sources derive from.
func (r *Runner) Seed() uint64 {
	return r.seed
}

// Run runs the configured number of trials for setSize and
// summarizes the results of every strategy.
func (r *Runner) Run(ctx context.Context, setSize int) (*Result, error) {
	if err := steps.CheckParams(setSize, r.cfg.SplitCount); err != nil {
		return nil, err
	}

	log := r.log.WithFields(logrus.Fields{
		"set_size": setSize,
		"trials":   r.cfg.Trials,
	})
	log.WithField("seed", r.seed).Info("starting experiment")

	trials, err := data.NewTrials(r.cfg.Trials)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	prog := newProgress(r.cfg.Trials, r.cfg.ProgressEvery, log)
	workers := min(r.cfg.Workers, r.cfg.Trials)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		from := w * r.cfg.Trials / workers
		to := (w + 1) * r.cfg.Trials / workers
		src := sample.NewSource(r.seed, uint64(w))

		g.Go(func() error {
			for i := from; i < to; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				res, err := steps.RunTrial(setSize, r.cfg.SplitCount, src)
				if err != nil {
					return errors.Wrapf(err, "trial %d failed", i)
				}
				trials.Set(i, res)
				prog.tick()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	summaries := make([]stats.Summary, len(data.Methods))
	for i, m := range data.Methods {
		summaries[i], err = stats.Summarize(trials.Column(m))
		if err != nil {
			return nil, errors.Wrapf(err, "cannot summarize %s", m)
		}
	}

	log.WithField("elapsed", FormatDuration(elapsed)).Info("experiment finished")

	return &Result{
		SetSize:   setSize,
		Trials:    trials,
		Elapsed:   elapsed,
		Summaries: summaries,
	}, nil
}

// RunAll runs the experiment for every configured set size in order.
// After each run it writes results_<size>.txt with the raw trials and
// statistics_<size>.txt with the summaries into the output directory.
func (r *Runner) RunAll(ctx context.Context) ([]*Result, error) {
	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "cannot create output directory")
	}

	results := make([]*Result, 0, len(r.cfg.SetSizes))
	for _, size := range r.cfg.SetSizes {
		res, err := r.Run(ctx, size)
		if err != nil {
			return nil, errors.Wrapf(err, "experiment with set size %d", size)
		}
		if err := r.write(res); err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, nil
}

func (r *Runner) write(res *Result) error {
	files := []struct {
		name  string
		write func(f *os.File) error
	}{
		{
			name:  ResultsFileName(res.SetSize),
			write: func(f *os.File) error { return WriteTrials(f, res.Trials) },
		},
		{
			name:  StatisticsFileName(res.SetSize),
			write: func(f *os.File) error { return WriteSummaries(f, res.Summaries) },
		},
	}

	for _, file := range files {
		path := filepath.Join(r.cfg.OutputDir, file.name)
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "cannot create %s", path)
		}
		if err := file.write(f); err != nil {
			f.Close()
			return errors.Wrapf(err, "cannot write %s", path)
		}
		if err := f.Close(); err != nil {
			return errors.Wrapf(err, "cannot close %s", path)
		}
		r.log.WithField("path", path).Debug("wrote results")
	}

	return nil
}
