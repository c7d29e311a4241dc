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

package experiment

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// FormatDuration formats d as "1h 2m 3s", leaving out hours and
// minutes when they are zero.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)

	out := ""
	if h > 0 {
		out += fmt.Sprintf("%dh ", h)
	}
	if m > 0 {
		out += fmt.Sprintf("%dm ", m)
	}
	return out + fmt.Sprintf("%ds", s)
}

// progress counts completed trials and logs every `every` of them.
// It is safe for concurrent use.
type progress struct {
	total int64
	every int64
	done  atomic.Int64
	start time.Time
	log   *logrus.Entry
}

func newProgress(total, every int, log *logrus.Entry) *progress {
	return &progress{
		total: int64(total),
		every: int64(every),
		start: time.Now(),
		log:   log,
	}
}

func (p *progress) tick() {
	n := p.done.Add(1)
	if p.every == 0 || n%p.every != 0 {
		return
	}

	elapsed := time.Since(p.start)
	pct := float64(n) / float64(p.total)
	eta := time.Duration(float64(elapsed)/pct) - elapsed

	p.log.WithFields(logrus.Fields{
		"done":    n,
		"percent": fmt.Sprintf("%.2f", pct*100),
		"eta":     FormatDuration(eta),
	}).Info("progress")
}
