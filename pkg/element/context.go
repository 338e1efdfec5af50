package element

import (
	"github.com/mkaudio-company/mkgraphic/pkg/graphics"
	"github.com/mkaudio-company/mkgraphic/pkg/rendering"
	"github.com/mkaudio-company/mkgraphic/pkg/theme"
)

// Context carries the per-node environment during tree traversals:
// the allocated bounds, the owning view, the drawing surface and the
// shared text and theme resources. Contexts form a chain from the root
// down to the current node; containers derive a child context per child.
type Context struct {
	// View is the owning view, nil in measurement-only traversals.
	View ViewHandle

	// Canvas is the drawing surface, nil outside Draw traversals.
	Canvas rendering.Canvas

	// Shaper measures and lays out text.
	Shaper *rendering.TextShaper

	// Theme supplies colors and metrics.
	Theme *theme.Theme

	// Bounds is the rectangle allocated to the current element.
	Bounds graphics.Rect

	// Enabled is the effective enabled state: false once any ancestor
	// or the element itself is disabled.
	Enabled bool

	// ChildIndex is the element's index within its parent, -1 at the root.
	ChildIndex int

	// Parent is the context of the parent element, nil at the root.
	Parent *Context
}

// NewContext returns a root context for the given bounds.
func NewContext(view ViewHandle, canvas rendering.Canvas, shaper *rendering.TextShaper, th *theme.Theme, bounds graphics.Rect) *Context {
	if th == nil {
		th = theme.Dark()
	}
	return &Context{
		View:       view,
		Canvas:     canvas,
		Shaper:     shaper,
		Theme:      th,
		Bounds:     bounds,
		Enabled:    true,
		ChildIndex: -1,
	}
}

// Child derives the context for the child at index i with the given
// allocated bounds.
func (c *Context) Child(child Element, i int, bounds graphics.Rect) *Context {
	enabled := c.Enabled
	if child != nil && !child.Enabled() {
		enabled = false
	}
	return &Context{
		View:       c.View,
		Canvas:     c.Canvas,
		Shaper:     c.Shaper,
		Theme:      c.Theme,
		Bounds:     bounds,
		Enabled:    enabled,
		ChildIndex: i,
		Parent:     c,
	}
}

// WithBounds returns a copy of the context with different bounds. The
// parent chain and child index are preserved.
func (c *Context) WithBounds(bounds graphics.Rect) *Context {
	d := *c
	d.Bounds = bounds
	return &d
}
