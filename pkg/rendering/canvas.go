// Package rendering defines the drawing-command surface the element tree
// renders into, plus the text measurement service. The core only issues
// commands; rasterization is a backend concern.
package rendering

import "github.com/mkaudio-company/mkgraphic/pkg/graphics"

// Canvas records or renders drawing commands.
//
// Save/Restore and clip calls must be balanced within one traversal frame;
// the core guarantees this for everything it issues.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float32)

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect graphics.Rect)

	// Clear fills the entire canvas with the given color.
	Clear(color graphics.Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect graphics.Rect, paint Paint)

	// DrawRoundRect draws a rounded rectangle with the provided paint.
	DrawRoundRect(rect graphics.Rect, radius float32, paint Paint)

	// DrawCircle draws a circle with the provided paint.
	DrawCircle(center graphics.Point, radius float32, paint Paint)

	// DrawLine draws a line segment with the provided paint.
	DrawLine(start, end graphics.Point, paint Paint)

	// DrawText draws a pre-shaped text layout with its baseline origin at
	// the given position, filled with the paint color.
	DrawText(layout *TextLayout, position graphics.Point, paint Paint)

	// Extent returns the size of the canvas in pixels.
	Extent() graphics.Extent
}
