// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package observe

import (
	"go.uber.org/zap"

	"github.com/ajroetker/go-sortvis/seq"
)

// Logged writes one debug entry per notification. Values are included when
// the reported range has at most MaxValues elements.
type Logged[T seq.Ordered] struct {
	log       *zap.Logger
	MaxValues int
	n         int
}

// NewLogged returns an observer logging to log, tagging every entry with
// the algorithm name.
func NewLogged[T seq.Ordered](log *zap.Logger, algorithm string) *Logged[T] {
	return &Logged[T]{
		log:       log.With(zap.String("algorithm", algorithm)),
		MaxValues: 64,
	}
}

// Notify logs the notification if debug logging is enabled.
func (l *Logged[T]) Notify(s seq.Sequence[T], r seq.Range) {
	l.n++
	ce := l.log.Check(zap.DebugLevel, "sequence changed")
	if ce == nil {
		return
	}
	fields := []zap.Field{
		zap.Int("notification", l.n),
		zap.Int("first", r.First),
		zap.Int("last", r.Last),
	}
	if r.Len() <= l.MaxValues {
		fields = append(fields, zap.Any("values", seq.Values(s, r)))
	}
	ce.Write(fields...)
}

// Count returns the number of notifications seen, logged or not.
func (l *Logged[T]) Count() int {
	return l.n
}
