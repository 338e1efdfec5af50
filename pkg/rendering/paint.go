package rendering

import (
	"fmt"

	"github.com/mkaudio-company/mkgraphic/pkg/graphics"
)

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// Paint describes how to draw a shape on the canvas.
type Paint struct {
	Color       graphics.Color
	Style       PaintStyle
	StrokeWidth float32 // Width of stroke in pixels; only applies to stroke style
}

// Fill returns a fill paint with the given color.
func Fill(color graphics.Color) Paint {
	return Paint{Color: color, Style: PaintStyleFill}
}

// Stroke returns a stroke paint with the given color and width.
func Stroke(color graphics.Color, width float32) Paint {
	return Paint{Color: color, Style: PaintStyleStroke, StrokeWidth: width}
}
