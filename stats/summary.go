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

package stats

import (
	"strconv"

	"github.com/fentec-project/stepsim/internal"
	"github.com/pkg/errors"
)

// SummaryHeader names the fields of Summary in the order of Record.
var SummaryHeader = []string{"Mean", "Median", "Mode", "Min", "Max", "Range", "IQR", "Q1", "Q2", "Q3"}

// Summary aggregates descriptive statistics of one data set.
type Summary struct {
	Mean   float64
	Median float64
	Mode   float64
	Min    int
	Max    int
	Range  float64
	IQR    float64
	Q1     float64
	Q2     float64
	Q3     float64
}

// Summarize computes the Summary of data. It sorts a single copy of
// data and derives every statistic from it.
func Summarize(data []int) (Summary, error) {
	if len(data) == 0 {
		return Summary{}, errors.Wrap(internal.ErrEmptyInput, "summary")
	}

	sorted := Sorted(data)
	q1, q2, q3, err := Quartiles(sorted)
	if err != nil {
		return Summary{}, err
	}
	mode, err := ModeSorted(sorted)
	if err != nil {
		return Summary{}, err
	}
	lo, hi := sorted[0], sorted[len(sorted)-1]

	return Summary{
		Mean:   mean(sorted),
		Median: q2,
		Mode:   mode,
		Min:    lo,
		Max:    hi,
		Range:  float64(hi - lo),
		IQR:    q3 - q1,
		Q1:     q1,
		Q2:     q2,
		Q3:     q3,
	}, nil
}

// CalculateStatistics is an alias of Summarize.
func CalculateStatistics(data []int) (Summary, error) {
	return Summarize(data)
}

// Record formats s as strings in the order of SummaryHeader.
func (s Summary) Record() []string {
	f := func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	return []string{
		f(s.Mean),
		f(s.Median),
		f(s.Mode),
		strconv.Itoa(s.Min),
		strconv.Itoa(s.Max),
		f(s.Range),
		f(s.IQR),
		f(s.Q1),
		f(s.Q2),
		f(s.Q3),
	}
}
