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

// Package stats computes descriptive statistics over integer data:
// mean, median, mode, quartiles, variance and standard deviation,
// and a Summary aggregating them.
//
// Functions never modify their input. Whenever sorted data is
// needed, a sorted copy is made; Summarize sorts only once and
// reuses that copy for every statistic it reports.
//
// Functions whose name ends in Sorted, and Quartile and Quartiles,
// expect data that is already sorted in ascending order.
package stats
