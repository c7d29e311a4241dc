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

import (
	"math/rand/v2"
	"sync"
)

// Source draws uniformly distributed integers. IntN returns a value
// in [0, n) and panics if n <= 0. *rand.Rand from math/rand/v2
// satisfies Source.
//
// A Source mutates internal state on every draw, so it must not be
// used from several goroutines at once unless wrapped with NewLocked.
type Source interface {
	IntN(n int) int
}

// NewSource returns a PCG-backed Source. The pair (seed, stream)
// fully determines the sequence of draws, which allows parallel
// workers to use the same seed with distinct streams.
func NewSource(seed, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, stream))
}

// Locked guards a Source with a mutex so it can be shared between
// goroutines.
type Locked struct {
	mu  sync.Mutex
	src Source
}

// NewLocked wraps src. If src is nil, a PCG source with a zero seed
// is used.
func NewLocked(src Source) *Locked {
	if src == nil {
		src = NewSource(0, 0)
	}
	return &Locked{src: src}
}

// IntN draws from the wrapped Source while holding the lock.
func (l *Locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntN(n)
}
