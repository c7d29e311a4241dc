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

// Package sample includes the random sources, samplers and the
// permutation generator used to build index sets and draw targets.
//
// Package sample provides the Source interface along with
// several implementations of it: a seedable PCG source, a keyed
// deterministic source backed by the salsa20 keystream and a
// mutex-guarded wrapper for sources that must be shared between
// goroutines.
//
// Every function that consumes randomness takes its Source
// explicitly; there is no package-level generator. Give each
// worker its own Source (see NewSource) to run trials in parallel.
package sample
