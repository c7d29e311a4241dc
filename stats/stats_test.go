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
	"math"
	"testing"

	"github.com/fentec-project/stepsim/internal"
	"github.com/fentec-project/stepsim/stats"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	m, err := stats.Mean([]int{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2.5, m)

	m, err = stats.Mean([]int{-3, 3, 6})
	require.NoError(t, err)
	assert.Equal(t, 2.0, m)
}

func TestMedian(t *testing.T) {
	var tests = []struct {
		name   string
		data   []int
		expect float64
	}{
		{name: "even", data: []int{1, 2, 3, 4}, expect: 2.5},
		{name: "odd", data: []int{1, 2, 3}, expect: 2},
		{name: "unsorted", data: []int{9, 1, 5, 3}, expect: 4},
		{name: "single", data: []int{7}, expect: 7},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			orig := append([]int(nil), test.data...)
			m, err := stats.Median(test.data)
			require.NoError(t, err)
			assert.Equal(t, test.expect, m)
			assert.Equal(t, orig, test.data, "input should not be modified")
		})
	}
}

func TestMode(t *testing.T) {
	var tests = []struct {
		name   string
		data   []int
		expect float64
	}{
		{name: "single winner", data: []int{1, 1, 2, 2, 2, 3}, expect: 2},
		{name: "tie, first run wins", data: []int{1, 1, 2, 2}, expect: 1},
		{name: "all distinct", data: []int{4, 5, 6}, expect: 4},
		{name: "last run longest", data: []int{1, 2, 3, 3}, expect: 3},
		{name: "unsorted tie", data: []int{5, 2, 5, 2, 9}, expect: 2},
		{name: "single", data: []int{-4}, expect: -4},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m, err := stats.Mode(test.data)
			require.NoError(t, err)
			assert.Equal(t, test.expect, m)
		})
	}
}

func TestQuartiles(t *testing.T) {
	var tests = []struct {
		name       string
		sorted     []int
		q1, q2, q3 float64
	}{
		{name: "even", sorted: []int{1, 2, 3, 4, 5, 6, 7, 8}, q1: 2.5, q2: 4.5, q3: 6.5},
		{name: "odd", sorted: []int{1, 2, 3, 4, 5, 6, 7}, q1: 2, q2: 4, q3: 6},
		{name: "odd, even halves", sorted: []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, q1: 2.5, q2: 5, q3: 7.5},
		{name: "two", sorted: []int{3, 5}, q1: 3, q2: 4, q3: 5},
		{name: "single", sorted: []int{6}, q1: 6, q2: 6, q3: 6},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			q1, q2, q3, err := stats.Quartiles(test.sorted)
			require.NoError(t, err)
			assert.Equal(t, test.q1, q1)
			assert.Equal(t, test.q2, q2)
			assert.Equal(t, test.q3, q3)
		})
	}

	q, err := stats.Quartile([]int{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2.5, q)
}

func TestEmptyInput(t *testing.T) {
	var empty []int

	_, err := stats.Mean(empty)
	assert.True(t, errors.Is(err, internal.ErrEmptyInput))
	_, err = stats.Median(empty)
	assert.True(t, errors.Is(err, internal.ErrEmptyInput))
	_, err = stats.Mode(empty)
	assert.True(t, errors.Is(err, internal.ErrEmptyInput))
	_, err = stats.Quartile(empty)
	assert.True(t, errors.Is(err, internal.ErrEmptyInput))
	_, _, _, err = stats.Quartiles(empty)
	assert.True(t, errors.Is(err, internal.ErrEmptyInput))
	_, err = stats.Variance(empty)
	assert.True(t, errors.Is(err, internal.ErrEmptyInput))
	_, err = stats.VarianceWithoutBias(empty)
	assert.True(t, errors.Is(err, internal.ErrEmptyInput))
	_, err = stats.StandardDeviation(empty)
	assert.True(t, errors.Is(err, internal.ErrEmptyInput))
	_, _, err = stats.StandardDeviationBiases(empty)
	assert.True(t, errors.Is(err, internal.ErrEmptyInput))
	_, err = stats.Summarize(empty)
	assert.True(t, errors.Is(err, internal.ErrEmptyInput))
}

func TestLargeValues(t *testing.T) {
	data := []int{math.MaxInt, math.MaxInt}

	m, err := stats.Median(data)
	require.NoError(t, err)
	assert.Equal(t, float64(math.MaxInt), m)

	m, err = stats.Mean(data)
	require.NoError(t, err)
	assert.Equal(t, float64(math.MaxInt), m)

	q, err := stats.Quartile([]int{math.MinInt, math.MinInt})
	require.NoError(t, err)
	assert.Equal(t, float64(math.MinInt), q)

	s, err := stats.Summarize([]int{math.MaxInt, math.MaxInt, math.MaxInt})
	require.NoError(t, err)
	assert.True(t, s.Mean > 0, "mean should not wrap around")
	assert.Equal(t, float64(math.MaxInt), s.Q1)
}
