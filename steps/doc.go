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

// Package steps counts the steps needed to locate a uniformly drawn
// value inside a freshly generated index set.
//
// Four strategies are compared. Sequential (M1) models the cost
// of a single uniform draw and builds no set at all. Stochastic (M2)
// searches a fully shuffled set. Partitioned (M3) and
// RandomPartitioned (M4) search sets made of equally sized ranges
// written in random order, M4 additionally shuffling the contents
// of every range.
//
// Each call generates its own set; nothing is cached between
// calls. The result is always the 1-based position of the target,
// so it lies in [1, setSize].
package steps
