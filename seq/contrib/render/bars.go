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

// Package render draws sequences as terminal bar charts.
//
// Bars is a seq.Observer: attached to a sort it redraws the whole reported
// range on every notification. Each element becomes one column whose height
// and color are proportional to value/Max, shading from blue for small
// values to red for large ones.
package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/ajroetker/go-sortvis/seq"
)

const (
	clearScreen = "\x1b[H\x1b[2J"
	block       = "█"
	levels      = 256
)

// Bars renders each notification as a frame of vertical bars.
type Bars[T seq.Numbers] struct {
	// Max is the value drawn at full height. Zero means the largest value
	// of the frame being drawn.
	Max T

	// Height is the number of text rows per frame.
	Height int

	// Clear moves the cursor home and clears the screen before each frame.
	Clear bool

	// Title is printed under the bars, followed by the frame number.
	Title string

	w        io.Writer
	renderer *lipgloss.Renderer
	styles   map[int]lipgloss.Style
	frames   int
	err      error
}

// NewBars returns a renderer writing frames of the given height to w.
func NewBars[T seq.Numbers](w io.Writer, max T, height int) *Bars[T] {
	if height <= 0 {
		height = 16
	}
	return &Bars[T]{
		Max:      max,
		Height:   height,
		w:        w,
		renderer: lipgloss.NewRenderer(w),
		styles:   make(map[int]lipgloss.Style),
	}
}

// SetColorProfile overrides the color profile detected from the writer.
func (b *Bars[T]) SetColorProfile(p termenv.Profile) {
	b.renderer.SetColorProfile(p)
	clear(b.styles)
}

// Notify draws the values of s over r. Write errors are kept and reported
// by Err; drawing stops after the first one.
func (b *Bars[T]) Notify(s seq.Sequence[T], r seq.Range) {
	if b.err != nil {
		return
	}
	b.frames++
	frame := b.Frame(seq.Values(s, r))
	if b.Clear {
		frame = clearScreen + frame
	}
	if _, err := io.WriteString(b.w, frame); err != nil {
		b.err = err
	}
}

// Frames returns the number of frames drawn.
func (b *Bars[T]) Frames() int {
	return b.frames
}

// Err returns the first write error, if any.
func (b *Bars[T]) Err() error {
	return b.err
}

// Frame renders values as a string of Height rows plus a status line.
func (b *Bars[T]) Frame(values []T) string {
	top := float64(b.Max)
	if top <= 0 {
		for _, v := range values {
			top = math.Max(top, float64(v))
		}
	}

	heights := make([]int, len(values))
	shades := make([]int, len(values))
	for i, v := range values {
		f := Scale(float64(v), top)
		heights[i] = int(math.Round(f * float64(b.Height)))
		shades[i] = int(f * (levels - 1))
	}

	var sb strings.Builder
	for row := b.Height; row >= 1; row-- {
		for i, h := range heights {
			if h >= row {
				sb.WriteString(b.style(shades[i]).Render(block))
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	if b.Title != "" {
		fmt.Fprintf(&sb, "%s  frame %d\n", b.Title, b.frames)
	}
	return sb.String()
}

func (b *Bars[T]) style(shade int) lipgloss.Style {
	if st, ok := b.styles[shade]; ok {
		return st
	}
	st := b.renderer.NewStyle().Foreground(lipgloss.Color(Color(float64(shade) / (levels - 1))))
	b.styles[shade] = st
	return st
}

// Scale maps v onto [0, 1] relative to top. Values at or below zero map to
// 0 and values above top to 1.
func Scale(v, top float64) float64 {
	if top <= 0 || v <= 0 {
		return 0
	}
	return math.Min(v/top, 1)
}

// Color returns the hex color for a bar at fraction f of full height: red
// grows with f and blue shrinks with it.
func Color(f float64) string {
	f = math.Min(math.Max(f, 0), 1)
	red := int(math.Round(f * 255))
	return fmt.Sprintf("#%02x00%02x", red, 255-red)
}
