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

package stats_test

import (
	"testing"

	"github.com/fentec-project/stepsim/sample"
	"github.com/fentec-project/stepsim/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	data := []int{8, 3, 1, 7, 2, 6, 5, 4, 4}
	orig := append([]int(nil), data...)

	s, err := stats.Summarize(data)
	require.NoError(t, err)
	assert.Equal(t, orig, data, "input should not be modified")

	assert.Equal(t, stats.Summary{
		Mean:   40.0 / 9.0,
		Median: 4,
		Mode:   4,
		Min:    1,
		Max:    8,
		Range:  7,
		IQR:    4,
		Q1:     2.5,
		Q2:     4,
		Q3:     6.5,
	}, s)

	alias, err := stats.CalculateStatistics(data)
	require.NoError(t, err)
	assert.Equal(t, s, alias)
}

func TestSummarize_Invariants(t *testing.T) {
	src := sample.NewSource(77, 0)
	for n := 1; n < 200; n++ {
		u := sample.NewUniformRange(-50, 50, src)
		data := make([]int, n)
		lo, hi := 50, -50
		for i := range data {
			data[i] = u.Sample()
			lo = min(lo, data[i])
			hi = max(hi, data[i])
		}

		s, err := stats.Summarize(data)
		require.NoError(t, err)
		assert.Equal(t, lo, s.Min)
		assert.Equal(t, hi, s.Max)
		assert.Equal(t, float64(hi-lo), s.Range)
		assert.Equal(t, s.Q3-s.Q1, s.IQR)
		assert.Equal(t, s.Median, s.Q2)

		again, err := stats.Summarize(data)
		require.NoError(t, err)
		assert.Equal(t, s, again, "summaries of the same data should be identical")
	}
}

func TestSummary_Record(t *testing.T) {
	s, err := stats.Summarize([]int{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)

	assert.Equal(t, len(stats.SummaryHeader), len(s.Record()))
	assert.Equal(t,
		[]string{"4.5", "4.5", "1", "1", "8", "7", "4", "2.5", "4.5", "6.5"},
		s.Record())
}
