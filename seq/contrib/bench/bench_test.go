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

package bench

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNanosecondsCoversSleep(t *testing.T) {
	const d = 20 * time.Millisecond
	calls := 0
	ns := Nanoseconds(func() {
		calls++
		time.Sleep(d)
	})
	assert.Equal(t, 1, calls)
	assert.GreaterOrEqual(t, ns, d.Nanoseconds())
	assert.Less(t, ns, (10 * time.Second).Nanoseconds())
	assert.Equal(t, time.Duration(ns), Duration(ns))
}

func TestNanosecondsPropagatesPanic(t *testing.T) {
	calls := 0
	assert.PanicsWithValue(t, "boom", func() {
		Nanoseconds(func() {
			calls++
			panic("boom")
		})
	})
	assert.Equal(t, 1, calls)
}

func TestNanosecondsErr(t *testing.T) {
	ns, err := NanosecondsErr(func() error {
		time.Sleep(time.Millisecond)
		return nil
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ns, time.Millisecond.Nanoseconds())

	errBoom := errors.New("boom")
	calls := 0
	ns, err = NanosecondsErr(func() error {
		calls++
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)
	assert.Zero(t, ns)
	assert.Equal(t, 1, calls)
}

func TestCurrentHost(t *testing.T) {
	h := CurrentHost()
	assert.NotEmpty(t, h.GOOS)
	assert.NotEmpty(t, h.GOARCH)
	assert.Positive(t, h.NumCPU)
	assert.True(t, strings.HasPrefix(h.String(), h.GOOS+"/"+h.GOARCH+" "), h.String())
}
