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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fentec-project/stepsim/stats"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// Summarize prints the summary of integers read from the file named
// by the first argument, or from stdin if there is none.
func Summarize(c *cli.Context) error {
	in := c.App.Reader
	if c.NArg() > 0 {
		f, err := os.Open(c.Args().Get(0))
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	values, err := readInts(in)
	if err != nil {
		return err
	}

	summary, err := stats.Summarize(values)
	if err != nil {
		return err
	}
	renderSummaries(c.App.Writer, fmt.Sprintf("%d values", len(values)), []stats.Summary{summary})

	if len(values) < 2 {
		return nil
	}
	withoutBias, withBias, err := stats.StandardDeviationBiases(values)
	if err != nil {
		return err
	}
	table := tablewriter.NewWriter(c.App.Writer)
	table.SetHeader([]string{"sd (n-1)", "sd (n)"})
	table.Append([]string{
		strconv.FormatFloat(withoutBias, 'f', -1, 64),
		strconv.FormatFloat(withBias, 'f', -1, 64),
	})
	table.Render()

	return nil
}

func readInts(r io.Reader) ([]int, error) {
	var values []int

	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		v, err := strconv.Atoi(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		values = append(values, v)
	}

	return values, sc.Err()
}
