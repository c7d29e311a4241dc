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
	"math"
	"runtime"

	"github.com/fentec-project/stepsim/internal"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

// chunkSize is the number of values each worker reduces when summing
// squared deviations. Smaller inputs are reduced sequentially.
const chunkSize = 1 << 14

// sumSquaredDeviations returns the sum of (v - m)^2 over data. Large
// inputs are split into fixed chunks reduced in parallel; partial
// sums are combined in chunk order, so the result does not depend
// on scheduling.
func sumSquaredDeviations(data []int, m float64) float64 {
	x := floats(data)
	if len(x) <= chunkSize {
		return squaredDeviations(x, m)
	}

	chunks := (len(x) + chunkSize - 1) / chunkSize
	partial := make([]float64, chunks)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for c := 0; c < chunks; c++ {
		g.Go(func() error {
			end := min((c+1)*chunkSize, len(x))
			partial[c] = squaredDeviations(x[c*chunkSize:end], m)
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	sum := 0.0
	for _, p := range partial {
		sum += p
	}
	return sum
}

// squaredDeviations returns the sum of (v - m)^2 over a non-empty x.
func squaredDeviations(x []float64, m float64) float64 {
	return stat.MomentAbout(2, x, m, nil) * float64(len(x))
}

// Variance returns the population variance of data, dividing the sum
// of squared deviations from the mean by len(data).
func Variance(data []int) (float64, error) {
	if len(data) == 0 {
		return 0, errors.Wrap(internal.ErrEmptyInput, "variance")
	}

	return sumSquaredDeviations(data, mean(data)) / float64(len(data)), nil
}

// VarianceWithoutBias returns the sample variance of data, dividing
// the sum of squared deviations from the mean by len(data)-1
// (Bessel's correction). It needs at least two values.
func VarianceWithoutBias(data []int) (float64, error) {
	if len(data) == 0 {
		return 0, errors.Wrap(internal.ErrEmptyInput, "sample variance")
	}
	if len(data) == 1 {
		return 0, errors.Wrap(internal.ErrInvalidArgument, "sample variance needs at least two values")
	}

	return sumSquaredDeviations(data, mean(data)) / float64(len(data)-1), nil
}

// StandardDeviation returns the square root of the population variance.
func StandardDeviation(data []int) (float64, error) {
	v, err := Variance(data)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(v), nil
}

// StandardDeviationBiases returns the standard deviation of data
// computed with the len(data)-1 denominator (withoutBias) and with
// the len(data) denominator (withBias), for direct comparison.
func StandardDeviationBiases(data []int) (withoutBias, withBias float64, err error) {
	if len(data) == 0 {
		return 0, 0, errors.Wrap(internal.ErrEmptyInput, "standard deviation")
	}
	if len(data) == 1 {
		return 0, 0, errors.Wrap(internal.ErrInvalidArgument, "sample standard deviation needs at least two values")
	}

	sum := sumSquaredDeviations(data, mean(data))
	withoutBias = math.Sqrt(sum / float64(len(data)-1))
	withBias = math.Sqrt(sum / float64(len(data)))

	return withoutBias, withBias, nil
}
