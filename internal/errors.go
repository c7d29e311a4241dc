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

package internal

import (
	"errors"
	"fmt"
)

var violatedStr = "violates the input contract"

// ErrInvalidArgument is returned for malformed sizes or partition schemes,
// such as a set size that is not divisible by the split count.
var ErrInvalidArgument = errors.New(fmt.Sprintf("argument %s", violatedStr))

// ErrEmptyInput is returned when a statistic is requested over no data.
var ErrEmptyInput = errors.New(fmt.Sprintf("empty input %s", violatedStr))

// ErrNotFound is returned when a value does not occur in an index set.
var ErrNotFound = errors.New("value not found in index set")
