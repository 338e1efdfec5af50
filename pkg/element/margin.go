package element

import "github.com/mkaudio-company/mkgraphic/pkg/graphics"

// Insets are the per-side paddings of a Margin.
type Insets struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
}

// UniformInsets returns insets with the same padding on every side.
func UniformInsets(v float32) Insets {
	return Insets{Left: v, Top: v, Right: v, Bottom: v}
}

// Horizontal returns the combined left and right padding.
func (in Insets) Horizontal() float32 {
	return in.Left + in.Right
}

// Vertical returns the combined top and bottom padding.
func (in Insets) Vertical() float32 {
	return in.Top + in.Bottom
}

// Margin pads its subject by fixed insets. The padding adds to both the
// minimum and maximum of the subject's limits.
type Margin struct {
	Proxy
	insets Insets
}

// NewMargin wraps subject with the given insets.
func NewMargin(insets Insets, subject Element) *Margin {
	m := &Margin{insets: insets}
	m.Init(m, subject)
	return m
}

// NewUniformMargin wraps subject with the same padding on every side.
func NewUniformMargin(v float32, subject Element) *Margin {
	return NewMargin(UniformInsets(v), subject)
}

// Insets returns the margin paddings.
func (m *Margin) Insets() Insets {
	return m.insets
}

// Limits adds the insets to the subject limits on both ends of the range.
func (m *Margin) Limits(ctx *Context) ViewLimits {
	l := m.Subject().Limits(ctx)
	h := m.insets.Horizontal()
	v := m.insets.Vertical()
	l.Min.Width += h
	l.Min.Height += v
	l.Max.Width += h
	l.Max.Height += v
	return l
}

// BoundsOf returns the margin bounds shrunk by the insets.
func (m *Margin) BoundsOf(ctx *Context, i int) graphics.Rect {
	return ctx.Bounds.Inset(m.insets.Left, m.insets.Top, m.insets.Right, m.insets.Bottom)
}
