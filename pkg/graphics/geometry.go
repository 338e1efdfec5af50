// Package graphics provides the geometry primitives shared by every part
// of the framework: points, extents, axes and rectangles. All coordinates
// are float32 in a single y-down space.
package graphics

import "github.com/chewxy/math32"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// FullExtent is the sentinel for an unbounded size limit. It is a true
// infinity so sums of limits saturate instead of overflowing.
var FullExtent = math32.Inf(1)

// IsFullExtent reports whether v is the unbounded sentinel.
func IsFullExtent(v float32) bool {
	return math32.IsInf(v, 1)
}

// Axis selects one of the two layout axes.
type Axis int

const (
	// AxisX is the horizontal axis.
	AxisX Axis = iota
	// AxisY is the vertical axis.
	AxisY
)

// Other returns the perpendicular axis.
func (a Axis) Other() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

// String returns "x" or "y".
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Point represents a 2D point or vector in pixel coordinates.
type Point struct {
	X float32
	Y float32
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the vector sum of p and other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the vector difference of p and other.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Translate returns p moved by (dx, dy).
func (p Point) Translate(dx, dy float32) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Axis returns the coordinate along the given axis.
func (p Point) Axis(a Axis) float32 {
	if a == AxisX {
		return p.X
	}
	return p.Y
}

// DistanceTo returns the Euclidean distance to other.
func (p Point) DistanceTo(other Point) float32 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math32.Sqrt(dx*dx + dy*dy)
}

// Extent represents width and height dimensions in pixels.
type Extent struct {
	Width  float32
	Height float32
}

// Axis returns the dimension along the given axis.
func (e Extent) Axis(a Axis) float32 {
	if a == AxisX {
		return e.Width
	}
	return e.Height
}

// WithAxis returns a copy of e with the given axis dimension replaced.
func (e Extent) WithAxis(a Axis, v float32) Extent {
	if a == AxisX {
		e.Width = v
	} else {
		e.Height = v
	}
	return e
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
}

// RectFromOriginExtent constructs a Rect from a top-left origin and an extent.
func RectFromOriginExtent(origin Point, extent Extent) Rect {
	return Rect{
		Left:   origin.X,
		Top:    origin.Y,
		Right:  origin.X + extent.Width,
		Bottom: origin.Y + extent.Height,
	}
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float32) Rect {
	return Rect{Left: left, Top: top, Right: left + width, Bottom: top + height}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float32 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float32 {
	return r.Bottom - r.Top
}

// Extent returns the size of the rectangle.
func (r Rect) Extent() Extent {
	return Extent{Width: r.Width(), Height: r.Height()}
}

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Point {
	return Point{X: r.Left, Y: r.Top}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) * 0.5, Y: (r.Top + r.Bottom) * 0.5}
}

// Contains reports whether p lies within the rectangle. Points on the
// right/bottom edge are outside, matching half-open pixel coverage.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Intersects reports whether r and other overlap with positive area.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// Intersect returns the intersection of two rectangles.
// Returns an empty rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := math32.Max(r.Left, other.Left)
	top := math32.Max(r.Top, other.Top)
	right := math32.Min(r.Right, other.Right)
	bottom := math32.Min(r.Bottom, other.Bottom)
	if left >= right || top >= bottom {
		return Rect{}
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Union returns the smallest rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Left:   math32.Min(r.Left, other.Left),
		Top:    math32.Min(r.Top, other.Top),
		Right:  math32.Max(r.Right, other.Right),
		Bottom: math32.Max(r.Bottom, other.Bottom),
	}
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float32) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Inset returns r shrunk by the given amounts on each side. The result is
// clamped so it never inverts.
func (r Rect) Inset(left, top, right, bottom float32) Rect {
	out := Rect{
		Left:   r.Left + left,
		Top:    r.Top + top,
		Right:  r.Right - right,
		Bottom: r.Bottom - bottom,
	}
	if out.Right < out.Left {
		out.Right = out.Left
	}
	if out.Bottom < out.Top {
		out.Bottom = out.Top
	}
	return out
}

// FloatEqual reports whether two float32 values are approximately equal.
func FloatEqual(a, b float32) bool {
	return math32.Abs(a-b) <= epsilon
}
