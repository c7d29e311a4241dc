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
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/fentec-project/stepsim/data"
	"github.com/fentec-project/stepsim/stats"
)

// ResultsFileName returns the name of the raw results file for setSize.
func ResultsFileName(setSize int) string {
	return fmt.Sprintf("results_%d.txt", setSize)
}

// StatisticsFileName returns the name of the statistics file for setSize.
func StatisticsFileName(setSize int) string {
	return fmt.Sprintf("statistics_%d.txt", setSize)
}

// WriteTrials writes every trial as a CSV row under the header
// M1,M2,M3,M4.
func WriteTrials(w io.Writer, trials *data.Trials) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(data.Methods))
	for i, m := range data.Methods {
		header[i] = m.String()
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(data.Methods))
	for i := 0; i < trials.Len(); i++ {
		t := trials.At(i)
		for j, m := range data.Methods {
			row[j] = strconv.Itoa(t.Get(m))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSummaries writes one CSV row per strategy, labelled M1..M4,
// under the header M,Mean,Median,Mode,Min,Max,Range,IQR,Q1,Q2,Q3.
// summaries must be given in data.Methods order.
func WriteSummaries(w io.Writer, summaries []stats.Summary) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(append([]string{"M"}, stats.SummaryHeader...)); err != nil {
		return err
	}
	for i, s := range summaries {
		if err := cw.Write(append([]string{data.Method(i).String()}, s.Record()...)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
