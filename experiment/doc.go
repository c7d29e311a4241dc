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

// Package experiment runs the step-counting experiment: it repeats
// steps.RunTrial a configured number of times for every set size,
// reports progress, summarizes each strategy's results and writes
// raw and aggregate results to flat files.
//
// Trials are split into contiguous chunks, one per worker. Every
// worker owns its random source, seeded from the configured seed
// and its worker index, so a run is reproducible for a fixed seed
// and worker count.
package experiment
