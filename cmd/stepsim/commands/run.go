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

package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fentec-project/stepsim/experiment"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// RunFlags returns the flags of the run command.
func RunFlags() []cli.Flag {
	def := experiment.DefaultConfig()

	return []cli.Flag{
		&cli.IntFlag{Name: "trials", Aliases: []string{"n"}, Value: def.Trials, Usage: "number of trials per set size", EnvVars: []string{"STEPSIM_TRIALS"}},
		&cli.IntSliceFlag{Name: "set-size", Aliases: []string{"s"}, Value: cli.NewIntSlice(def.SetSizes...), Usage: "set size to run, may be repeated", EnvVars: []string{"STEPSIM_SET_SIZES"}},
		&cli.IntFlag{Name: "split-count", Aliases: []string{"k"}, Value: def.SplitCount, Usage: "number of partitions", EnvVars: []string{"STEPSIM_SPLIT_COUNT"}},
		&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Value: def.Workers, Usage: "number of worker goroutines", EnvVars: []string{"STEPSIM_WORKERS"}},
		&cli.Uint64Flag{Name: "seed", Usage: "random seed, 0 picks one from the clock", EnvVars: []string{"STEPSIM_SEED"}},
		&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: def.OutputDir, Usage: "output directory", EnvVars: []string{"STEPSIM_OUT"}},
		&cli.IntFlag{Name: "progress-every", Value: def.ProgressEvery, Usage: "trials between progress reports, 0 disables them", EnvVars: []string{"STEPSIM_PROGRESS_EVERY"}},
	}
}

// Run runs the experiment for every requested set size and renders
// the summaries.
func Run(c *cli.Context) error {
	cfg := experiment.Config{
		Trials:        c.Int("trials"),
		SetSizes:      c.IntSlice("set-size"),
		SplitCount:    c.Int("split-count"),
		Workers:       c.Int("workers"),
		Seed:          c.Uint64("seed"),
		OutputDir:     c.String("out"),
		ProgressEvery: c.Int("progress-every"),
	}

	runner, err := experiment.NewRunner(cfg, log.StandardLogger())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := runner.RunAll(ctx)
	if err != nil {
		return err
	}

	for _, res := range results {
		title := fmt.Sprintf("set size %d, %d trials, %s", res.SetSize, res.Trials.Len(), experiment.FormatDuration(res.Elapsed))
		renderSummaries(c.App.Writer, title, res.Summaries)
	}

	return nil
}
