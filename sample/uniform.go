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

package sample

import "fmt"

// Sampler draws a single integer from some distribution.
type Sampler interface {
	Sample() int
}

// UniformRange samples random values from the interval [min, max).
type UniformRange struct {
	min int
	max int
	src Source
}

// NewUniformRange returns an instance of the UniformRange sampler.
// It accepts lower and upper bounds on the sampled values and the
// Source to draw from. It panics if max <= min.
func NewUniformRange(min, max int, src Source) *UniformRange {
	if max <= min {
		panic(fmt.Sprintf("sample: empty range [%d, %d)", min, max))
	}
	return &UniformRange{
		min: min,
		max: max,
		src: src,
	}
}

// Sample samples a random value from the interval [min, max).
func (u *UniformRange) Sample() int {
	return u.min + u.src.IntN(u.max-u.min)
}

// NewUniform returns an instance of the UniformRange sampler
// on the interval [0, max).
func NewUniform(max int, src Source) *UniformRange {
	return NewUniformRange(0, max, src)
}
