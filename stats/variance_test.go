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
	"github.com/fentec-project/stepsim/sample"
	"github.com/fentec-project/stepsim/stats"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestStandardDeviationBiases(t *testing.T) {
	data := []int{2, 4, 4, 4, 5, 5, 7, 9}

	withoutBias, withBias, err := stats.StandardDeviationBiases(data)
	require.NoError(t, err)
	assert.InDelta(t, 2.138, withoutBias, 1e-3)
	assert.InDelta(t, 2.0, withBias, 1e-12)

	sd, err := stats.StandardDeviation(data)
	require.NoError(t, err)
	assert.Equal(t, withBias, sd)

	v, err := stats.Variance(data)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, v, 1e-12)

	v, err = stats.VarianceWithoutBias(data)
	require.NoError(t, err)
	assert.InDelta(t, 32.0/7.0, v, 1e-12)
}

func TestVarianceWithoutBias_SingleValue(t *testing.T) {
	_, err := stats.VarianceWithoutBias([]int{3})
	assert.True(t, errors.Is(err, internal.ErrInvalidArgument))
	_, _, err = stats.StandardDeviationBiases([]int{3})
	assert.True(t, errors.Is(err, internal.ErrInvalidArgument))

	v, err := stats.Variance([]int{3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestVariance_Parallel(t *testing.T) {
	// large enough to be reduced in several chunks
	u := sample.NewUniform(1000, sample.NewSource(4, 0))
	data := make([]int, 200003)
	for i := range data {
		data[i] = u.Sample()
	}

	x := make([]float64, len(data))
	for i, v := range data {
		x[i] = float64(v)
	}

	me, err := stats.Mean(data)
	require.NoError(t, err)
	assert.InEpsilon(t, stat.Mean(x, nil), me, 1e-12)

	v, err := stats.Variance(data)
	require.NoError(t, err)
	assert.InEpsilon(t, stat.PopVariance(x, nil), v, 1e-9)

	sv, err := stats.VarianceWithoutBias(data)
	require.NoError(t, err)
	assert.InEpsilon(t, stat.Variance(x, nil), sv, 1e-9)

	// repeated runs combine partial sums in the same order
	for i := 0; i < 5; i++ {
		again, err := stats.Variance(data)
		require.NoError(t, err)
		assert.Equal(t, math.Float64bits(v), math.Float64bits(again))
	}
}
