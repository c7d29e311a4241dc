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
	"fmt"
	"time"

	"github.com/fentec-project/stepsim/data"
	"github.com/fentec-project/stepsim/sample"
	"github.com/fentec-project/stepsim/steps"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// TrialFlags returns the flags of the trial command.
func TrialFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "set-size", Aliases: []string{"s"}, Value: 1000, Usage: "set size"},
		&cli.IntFlag{Name: "split-count", Aliases: []string{"k"}, Value: 10, Usage: "number of partitions"},
		&cli.Uint64Flag{Name: "seed", Usage: "random seed, 0 picks one from the clock"},
	}
}

// Trial runs a single trial and prints its results.
func Trial(c *cli.Context) error {
	seed := c.Uint64("seed")
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.WithField("seed", seed).Info("running trial")

	res, err := steps.RunTrial(c.Int("set-size"), c.Int("split-count"), sample.NewSource(seed, 0))
	if err != nil {
		return err
	}

	for _, m := range data.Methods {
		fmt.Fprintf(c.App.Writer, "%s\t%d\n", m, res.Get(m))
	}

	return nil
}
