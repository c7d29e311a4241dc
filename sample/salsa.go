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
	"encoding/binary"
	"math/rand/v2"

	"golang.org/x/crypto/salsa20"
)

// salsaBlockBytes is the amount of keystream produced per refill.
const salsaBlockBytes = 512

// Salsa is a deterministic rand.Source built on the salsa20
// keystream. The key determines the whole sequence; each refill
// uses a fresh nonce derived from an internal counter, so no part
// of the keystream is ever reused.
type Salsa struct {
	key     *[32]byte
	counter uint64
	buf     []byte
	pos     int
}

// NewSalsa returns an instance of the Salsa source for the given key.
func NewSalsa(key *[32]byte) *Salsa {
	return &Salsa{
		key: key,
		buf: make([]byte, salsaBlockBytes),
		pos: salsaBlockBytes,
	}
}

// NewDetSource returns a Source whose draws are fully determined by key.
func NewDetSource(key *[32]byte) *rand.Rand {
	return rand.New(NewSalsa(key))
}

func (s *Salsa) refill() {
	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, s.counter)
	s.counter++

	in := make([]byte, salsaBlockBytes) // input is initialized to zeros
	salsa20.XORKeyStream(s.buf, in, nonce, s.key)
	s.pos = 0
}

// Uint64 returns the next 64 bits of the keystream.
func (s *Salsa) Uint64() uint64 {
	if s.pos+8 > len(s.buf) {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.pos : s.pos+8])
	s.pos += 8
	return v
}
