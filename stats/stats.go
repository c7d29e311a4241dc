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
	"slices"

	"github.com/fentec-project/stepsim/internal"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// Sorted returns an ascending copy of data.
func Sorted(data []int) []int {
	sorted := slices.Clone(data)
	slices.Sort(sorted)
	return sorted
}

// Mean returns the arithmetic mean of data.
func Mean(data []int) (float64, error) {
	if len(data) == 0 {
		return 0, errors.Wrap(internal.ErrEmptyInput, "mean")
	}

	return mean(data), nil
}

func mean(data []int) float64 {
	return stat.Mean(floats(data), nil)
}

// floats converts data to float64 before any arithmetic, so sums of
// large values cannot overflow.
func floats(data []int) []float64 {
	x := make([]float64, len(data))
	for i, v := range data {
		x[i] = float64(v)
	}
	return x
}

// Median returns the middle value of data. For an even number of
// values it is the average of the two central ones.
func Median(data []int) (float64, error) {
	if len(data) == 0 {
		return 0, errors.Wrap(internal.ErrEmptyInput, "median")
	}

	return midpoint(Sorted(data)), nil
}

// Quartile applies the median rule to sorted, a contiguous part of
// some sorted data.
func Quartile(sorted []int) (float64, error) {
	if len(sorted) == 0 {
		return 0, errors.Wrap(internal.ErrEmptyInput, "quartile")
	}

	return midpoint(sorted), nil
}

func midpoint(sorted []int) float64 {
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (float64(sorted[mid-1]) + float64(sorted[mid])) / 2
	}
	return float64(sorted[mid])
}

// Quartiles returns the first, second and third quartile of sorted.
// Q2 is the median. For an even number of values Q1 and Q3 are the
// medians of the lower and upper half; for an odd number the median
// element is excluded from both halves. A single value is its own
// Q1, Q2 and Q3.
func Quartiles(sorted []int) (q1, q2, q3 float64, err error) {
	n := len(sorted)
	if n == 0 {
		return 0, 0, 0, errors.Wrap(internal.ErrEmptyInput, "quartiles")
	}

	q2 = midpoint(sorted)
	if n == 1 {
		return q2, q2, q2, nil
	}

	half := n / 2 // (n-1)/2 for odd n
	q1 = midpoint(sorted[:half])
	q3 = midpoint(sorted[n-half:])

	return q1, q2, q3, nil
}

// Mode returns the most frequent value of data. When several values
// are equally frequent, the smallest one wins.
func Mode(data []int) (float64, error) {
	return ModeSorted(Sorted(data))
}

// ModeSorted returns the most frequent value of sorted. Runs of equal
// values are scanned from left to right and a run replaces the
// current mode only if it is strictly longer, so among equally long
// runs the first one wins.
func ModeSorted(sorted []int) (float64, error) {
	if len(sorted) == 0 {
		return 0, errors.Wrap(internal.ErrEmptyInput, "mode")
	}

	mode, modeCount, currentCount := 0, 0, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			currentCount++
			continue
		}
		if currentCount > modeCount {
			modeCount = currentCount
			mode = sorted[i-1]
		}
		currentCount = 1
	}
	if currentCount > modeCount {
		mode = sorted[len(sorted)-1]
	}

	return float64(mode), nil
}
