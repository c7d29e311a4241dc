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

// Shuffle returns a uniformly random permutation of seq drawn from
// src using the Fisher-Yates algorithm. The element at position i of
// the result is picked uniformly from the elements not yet emitted;
// the element it displaces takes over the vacated slot. seq itself
// is left unchanged.
func Shuffle[T any](seq []T, src Source) []T {
	buf := make([]T, len(seq))
	copy(buf, seq)
	ShuffleInPlace(buf, src)
	return buf
}

// ShuffleInPlace permutes seq in place. For every index i it draws
// j uniformly from [i, len(seq)) and swaps positions i and j, so
// every permutation is equally likely given a uniform src.
func ShuffleInPlace[T any](seq []T, src Source) {
	for i := 0; i < len(seq); i++ {
		j := i + src.IntN(len(seq)-i)
		seq[i], seq[j] = seq[j], seq[i]
	}
}
