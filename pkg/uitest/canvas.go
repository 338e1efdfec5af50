// Package uitest provides test doubles for exercising element trees
// without a rasterizing backend: a canvas that records its drawing
// commands and a view tester that synthesizes input events.
package uitest

import (
	"github.com/mkaudio-company/mkgraphic/pkg/graphics"
	"github.com/mkaudio-company/mkgraphic/pkg/rendering"
)

// Op is one recorded drawing command.
type Op struct {
	Kind   string
	Rect   graphics.Rect
	Start  graphics.Point
	End    graphics.Point
	Center graphics.Point
	Radius float32
	Text   string
	Paint  rendering.Paint
	Color  graphics.Color
}

// RecordingCanvas implements rendering.Canvas by recording every call.
type RecordingCanvas struct {
	extent graphics.Extent
	ops    []Op
}

// NewRecordingCanvas returns a canvas of the given size.
func NewRecordingCanvas(extent graphics.Extent) *RecordingCanvas {
	return &RecordingCanvas{extent: extent}
}

// Ops returns the recorded commands in order.
func (c *RecordingCanvas) Ops() []Op {
	return c.ops
}

// Reset discards the recorded commands.
func (c *RecordingCanvas) Reset() {
	c.ops = nil
}

// Kinds returns the command names in order.
func (c *RecordingCanvas) Kinds() []string {
	out := make([]string, len(c.ops))
	for i, op := range c.ops {
		out[i] = op.Kind
	}
	return out
}

// Texts returns every drawn string in order.
func (c *RecordingCanvas) Texts() []string {
	var out []string
	for _, op := range c.ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// HasText reports whether the given string was drawn.
func (c *RecordingCanvas) HasText(s string) bool {
	for _, t := range c.Texts() {
		if t == s {
			return true
		}
	}
	return false
}

// Count returns how many commands of the given kind were recorded.
func (c *RecordingCanvas) Count(kind string) int {
	n := 0
	for _, op := range c.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// First returns the first command of the given kind.
func (c *RecordingCanvas) First(kind string) (Op, bool) {
	for _, op := range c.ops {
		if op.Kind == kind {
			return op, true
		}
	}
	return Op{}, false
}

func (c *RecordingCanvas) Save()    { c.ops = append(c.ops, Op{Kind: "save"}) }
func (c *RecordingCanvas) Restore() { c.ops = append(c.ops, Op{Kind: "restore"}) }

func (c *RecordingCanvas) Translate(dx, dy float32) {
	c.ops = append(c.ops, Op{Kind: "translate", Start: graphics.Pt(dx, dy)})
}

func (c *RecordingCanvas) ClipRect(rect graphics.Rect) {
	c.ops = append(c.ops, Op{Kind: "clip", Rect: rect})
}

func (c *RecordingCanvas) Clear(color graphics.Color) {
	c.ops = append(c.ops, Op{Kind: "clear", Color: color})
}

func (c *RecordingCanvas) DrawRect(rect graphics.Rect, paint rendering.Paint) {
	c.ops = append(c.ops, Op{Kind: "rect", Rect: rect, Paint: paint})
}

func (c *RecordingCanvas) DrawRoundRect(rect graphics.Rect, radius float32, paint rendering.Paint) {
	c.ops = append(c.ops, Op{Kind: "round_rect", Rect: rect, Radius: radius, Paint: paint})
}

func (c *RecordingCanvas) DrawCircle(center graphics.Point, radius float32, paint rendering.Paint) {
	c.ops = append(c.ops, Op{Kind: "circle", Center: center, Radius: radius, Paint: paint})
}

func (c *RecordingCanvas) DrawLine(start, end graphics.Point, paint rendering.Paint) {
	c.ops = append(c.ops, Op{Kind: "line", Start: start, End: end, Paint: paint})
}

func (c *RecordingCanvas) DrawText(layout *rendering.TextLayout, position graphics.Point, paint rendering.Paint) {
	c.ops = append(c.ops, Op{Kind: "text", Text: layout.Text, Start: position, Paint: paint})
}

func (c *RecordingCanvas) Extent() graphics.Extent {
	return c.extent
}
