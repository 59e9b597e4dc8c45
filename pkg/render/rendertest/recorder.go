// Package rendertest provides a Renderer that records draw calls instead of drawing.
package rendertest

import (
	"image/color"
	"strings"
)

// Kind of a recorded draw call.
type Kind string

const (
	KindClear     Kind = "clear"
	KindRectangle Kind = "rectangle"
	KindTriangle  Kind = "triangle"
	KindCircle    Kind = "circle"
	KindRing      Kind = "ring"
	KindText      Kind = "text"
)

// Call is one recorded draw call.
type Call struct {
	Kind   Kind
	Coords []float64
	Text   string
	Size   int
	Color  color.Color
}

// Recorder implements render.Renderer. Text is measured as CharWidth per rune per size unit.
type Recorder struct {
	Calls     []Call
	CharWidth float64
}

func NewRecorder() *Recorder {
	return &Recorder{CharWidth: 0.5}
}

func (r *Recorder) Clear(clr color.Color) {
	r.Calls = append(r.Calls, Call{Kind: KindClear, Color: clr})
}

func (r *Recorder) DrawRectangle(x, y, width, height float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Kind: KindRectangle, Coords: []float64{x, y, width, height}, Color: clr})
}

func (r *Recorder) DrawTriangleLines(x1, y1, x2, y2, x3, y3 float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Kind: KindTriangle, Coords: []float64{x1, y1, x2, y2, x3, y3}, Color: clr})
}

func (r *Recorder) DrawCircle(cx, cy, radius float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Kind: KindCircle, Coords: []float64{cx, cy, radius}, Color: clr})
}

func (r *Recorder) DrawCircleLines(cx, cy, radius float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Kind: KindRing, Coords: []float64{cx, cy, radius}, Color: clr})
}

func (r *Recorder) DrawText(text string, x, y float64, size int, clr color.Color) {
	r.Calls = append(r.Calls, Call{Kind: KindText, Coords: []float64{x, y}, Text: text, Size: size, Color: clr})
}

func (r *Recorder) MeasureText(text string, size int) float64 {
	return float64(len([]rune(text))) * float64(size) * r.CharWidth
}

// Count returns the number of calls of the given kind.
func (r *Recorder) Count(kind Kind) int {
	n := 0
	for _, c := range r.Calls {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// HasText reports whether any drawn text contains substr.
func (r *Recorder) HasText(substr string) bool {
	for _, c := range r.Calls {
		if c.Kind == KindText && strings.Contains(c.Text, substr) {
			return true
		}
	}
	return false
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
