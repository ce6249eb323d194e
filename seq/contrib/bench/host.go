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
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Host describes the machine a measurement was taken on.
type Host struct {
	GOOS       string
	GOARCH     string
	NumCPU     int
	GOMAXPROCS int

	// Features lists notable CPU features, e.g. "avx2" or "asimd".
	Features []string
}

// CurrentHost returns a description of the running machine.
func CurrentHost() Host {
	return Host{
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		Features:   cpuFeatures(),
	}
}

// String returns a single-line summary such as
// "linux/amd64 8 cpus (gomaxprocs 8) [avx avx2 fma]".
func (h Host) String() string {
	s := fmt.Sprintf("%s/%s %d cpus (gomaxprocs %d)", h.GOOS, h.GOARCH, h.NumCPU, h.GOMAXPROCS)
	if len(h.Features) > 0 {
		s += " [" + strings.Join(h.Features, " ") + "]"
	}
	return s
}

func cpuFeatures() []string {
	var f []string
	add := func(ok bool, name string) {
		if ok {
			f = append(f, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add(cpu.X86.HasSSE42, "sse4.2")
		add(cpu.X86.HasAVX, "avx")
		add(cpu.X86.HasAVX2, "avx2")
		add(cpu.X86.HasFMA, "fma")
		add(cpu.X86.HasAVX512, "avx512")
	case "arm64":
		add(cpu.ARM64.HasASIMD, "asimd")
		add(cpu.ARM64.HasSVE, "sve")
		add(cpu.ARM64.HasATOMICS, "atomics")
	}
	return f
}
