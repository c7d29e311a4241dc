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

import "github.com/urfave/cli/v2"

// NewApp returns the stepsim command line application.
func NewApp() *cli.App {
	return &cli.App{
		Name:  "stepsim",
		Usage: "Compare step counts of sequential, stochastic and partitioned search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "logging level (debug, info, warn, error)",
				EnvVars: []string{"STEPSIM_LOG_LEVEL"},
			},
		},
		Before: SetupLogging,
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Run the experiment and write results_<size>.txt and statistics_<size>.txt",
				Flags:  RunFlags(),
				Action: Run,
			},
			{
				Name:   "trial",
				Usage:  "Run a single trial and print the step count of every strategy",
				Flags:  TrialFlags(),
				Action: Trial,
			},
			{
				Name:      "summarize",
				Usage:     "Summarize integers read one per line from a file or stdin",
				ArgsUsage: "[file]",
				Action:    Summarize,
			},
		},
	}
}
