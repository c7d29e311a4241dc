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
	"io"
	"os"

	"github.com/fentec-project/stepsim/data"
	"github.com/fentec-project/stepsim/stats"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// SetupLogging configures the standard logrus logger from the
// global flags.
func SetupLogging(c *cli.Context) error {
	level, err := log.ParseLevel(c.String("log-level"))
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)

	return nil
}

func renderSummaries(w io.Writer, title string, summaries []stats.Summary) {
	fmt.Fprintln(w, title)

	table := tablewriter.NewWriter(w)
	table.SetHeader(append([]string{"M"}, stats.SummaryHeader...))
	for i, s := range summaries {
		table.Append(append([]string{data.Method(i).String()}, s.Record()...))
	}
	table.Render()
}
