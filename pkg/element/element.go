// Package element defines the node contract of the UI tree and the
// composition primitives built on it: proxies, composites, tiles,
// alignment, margins, size constraints, layers and decks.
//
// Elements negotiate layout in two passes. Bottom-up, Limits reports the
// acceptable size range of a node; top-down, containers allocate bounds
// rectangles to their children within those ranges. Drawing and hit
// testing then operate on the allocated bounds carried by the Context.
package element

import "github.com/mkaudio-company/mkgraphic/pkg/graphics"

// ViewLimits define the minimum and maximum sizes of an element.
// Invariant: Min ≤ Max along each axis.
type ViewLimits struct {
	Min graphics.Extent
	Max graphics.Extent
}

// FullLimits returns limits with zero minimum and unbounded maximum.
func FullLimits() ViewLimits {
	return ViewLimits{
		Max: graphics.Extent{Width: graphics.FullExtent, Height: graphics.FullExtent},
	}
}

// FixedLimits returns limits pinning both axes to the given size.
func FixedLimits(width, height float32) ViewLimits {
	e := graphics.Extent{Width: width, Height: height}
	return ViewLimits{Min: e, Max: e}
}

// MinAxis returns the minimum along the given axis.
func (l ViewLimits) MinAxis(a graphics.Axis) float32 {
	return l.Min.Axis(a)
}

// MaxAxis returns the maximum along the given axis.
func (l ViewLimits) MaxAxis(a graphics.Axis) float32 {
	return l.Max.Axis(a)
}

// Clamp restricts an extent to lie within the limits.
func (l ViewLimits) Clamp(e graphics.Extent) graphics.Extent {
	if e.Width < l.Min.Width {
		e.Width = l.Min.Width
	}
	if e.Width > l.Max.Width {
		e.Width = l.Max.Width
	}
	if e.Height < l.Min.Height {
		e.Height = l.Min.Height
	}
	if e.Height > l.Max.Height {
		e.Height = l.Max.Height
	}
	return e
}

// Stretch defines how an element competes for extra layout space along
// each axis. Zero means the element never grows past its minimum.
type Stretch struct {
	X float32
	Y float32
}

// DefaultStretch is the stretch every element reports unless overridden.
func DefaultStretch() Stretch {
	return Stretch{X: 1, Y: 1}
}

// Axis returns the stretch weight for the given axis.
func (s Stretch) Axis(a graphics.Axis) float32 {
	if a == graphics.AxisX {
		return s.X
	}
	return s.Y
}

// Command is an application message posted by an element during event
// handling and drained by the view after the dispatch turn. Elements
// never mutate application state directly.
type Command any

// ViewHandle is the element-facing surface of the owning view.
type ViewHandle interface {
	// Bounds returns the view rectangle in view coordinates.
	Bounds() graphics.Rect

	// CursorPos returns the last observed pointer position.
	CursorPos() graphics.Point

	// Refresh requests a redraw of the whole view.
	Refresh()

	// RefreshArea requests a redraw of the given area.
	RefreshArea(area graphics.Rect)

	// Post queues a command for the application; drained after dispatch.
	Post(cmd Command)
}

// Element is the polymorphic node contract. Concrete nodes additionally
// implement whichever capability interfaces below apply to them; callers
// discover capabilities by type assertion.
type Element interface {
	// Limits reports the acceptable size range. It must be pure, cheap
	// and idempotent: it is called many times per frame.
	Limits(ctx *Context) ViewLimits

	// Stretch reports the element's weight when extra space is shared.
	Stretch() Stretch

	// Draw emits drawing commands for exactly ctx.Bounds. Elements must
	// not draw outside the context's clip rectangle.
	Draw(ctx *Context)

	// HitTest resolves whether p hits this element or a descendant.
	// On a hit the element pushes its entry (and recursively its hit
	// descendants push theirs) onto result and returns true; on a miss
	// result is left unchanged.
	HitTest(ctx *Context, p graphics.Point, opts HitTestOptions, result *HitTestResult) bool

	// Enabled reports whether the element accepts interaction.
	Enabled() bool

	// SetEnabled enables or disables the element.
	SetEnabled(enabled bool)
}

// Container is implemented by elements with addressable children. Focus
// paths and event delivery resolve through it; there are no child→parent
// pointers in the tree.
type Container interface {
	Element

	// ChildCount returns the number of children.
	ChildCount() int

	// ChildAt returns the child at the given index, or nil if out of range.
	ChildAt(i int) Element

	// BoundsOf returns the bounds allocated to child i for the container
	// bounds carried by ctx.
	BoundsOf(ctx *Context, i int) graphics.Rect
}

// Control marks elements that receive pointer interaction directly.
type Control interface {
	Element
	WantsControl() bool
}

// Clickable handles button press and release events.
// The return value reports whether the event was consumed.
type Clickable interface {
	Element
	HandleClick(ctx *Context, ev MouseEvent) bool
}

// Draggable receives captured pointer movement after a consumed press.
type Draggable interface {
	Element
	HandleDrag(ctx *Context, ev MouseEvent)
}

// KeyHandler handles keyboard events delivered to the focused element.
type KeyHandler interface {
	Element
	HandleKey(ctx *Context, ev KeyEvent) bool
}

// TextHandler handles text input delivered to the focused element.
type TextHandler interface {
	Element
	HandleText(ctx *Context, ev TextEvent) bool
}

// Scrollable handles scroll events hit-tested at the pointer position.
type Scrollable interface {
	Element
	HandleScroll(ctx *Context, delta, p graphics.Point) bool
}

// Focusable marks elements eligible for keyboard focus.
type Focusable interface {
	Element

	// WantsFocus reports whether the element currently accepts focus.
	WantsFocus() bool

	// BeginFocus is called when the element gains focus.
	BeginFocus()

	// EndFocus is called when the element loses focus.
	EndFocus()
}

// CursorTarget receives hover enter/leave notifications.
type CursorTarget interface {
	Element
	HandleCursor(ctx *Context, p graphics.Point, status CursorStatus) bool
}

// WantsControl reports whether e is an interactive control.
func WantsControl(e Element) bool {
	c, ok := e.(Control)
	return ok && c.WantsControl()
}

// WantsFocus reports whether e currently accepts keyboard focus.
func WantsFocus(e Element) bool {
	f, ok := e.(Focusable)
	return ok && f.WantsFocus()
}

// Base provides the default enabled state and stretch for concrete
// elements to embed.
type Base struct {
	disabled bool
}

// Enabled reports whether the element accepts interaction.
func (b *Base) Enabled() bool {
	return !b.disabled
}

// SetEnabled enables or disables the element.
func (b *Base) SetEnabled(enabled bool) {
	b.disabled = !enabled
}

// Stretch returns the default stretch.
func (b *Base) Stretch() Stretch {
	return DefaultStretch()
}

// HitTestLeaf is the standard hit test for leaf elements: a hit when the
// point lies inside the context bounds, subject to the enabled flag and
// the control restriction.
func HitTestLeaf(e Element, ctx *Context, p graphics.Point, opts HitTestOptions, result *HitTestResult) bool {
	if !ctx.Enabled || !ctx.Bounds.Contains(p) {
		return false
	}
	if opts.ControlOnly && !WantsControl(e) {
		return false
	}
	result.Push(e, ctx.ChildIndex, ctx.Bounds)
	return true
}

// Empty is an element that occupies space but draws nothing and accepts
// no interaction.
type Empty struct {
	Base
}

// NewEmpty returns an empty element.
func NewEmpty() *Empty {
	return &Empty{}
}

// Limits reports zero minimum and unbounded maximum.
func (e *Empty) Limits(ctx *Context) ViewLimits {
	return FullLimits()
}

// Draw draws nothing.
func (e *Empty) Draw(ctx *Context) {}

// HitTest never hits.
func (e *Empty) HitTest(ctx *Context, p graphics.Point, opts HitTestOptions, result *HitTestResult) bool {
	return false
}
