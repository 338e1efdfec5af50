package element

import "github.com/mkaudio-company/mkgraphic/pkg/graphics"

// FixedSize pins its subject to an exact size. A requested dimension
// below the subject's true minimum is raised to that minimum; hard
// minimums are never violated.
type FixedSize struct {
	Proxy
	size graphics.Extent
}

// NewFixedSize wraps subject at the given size.
func NewFixedSize(width, height float32, subject Element) *FixedSize {
	f := &FixedSize{size: graphics.Extent{Width: width, Height: height}}
	f.Init(f, subject)
	return f
}

// Limits reports the pinned size on both ends of the range.
func (f *FixedSize) Limits(ctx *Context) ViewLimits {
	l := f.Subject().Limits(ctx)
	w := f.size.Width
	if w < l.Min.Width {
		w = l.Min.Width
	}
	h := f.size.Height
	if h < l.Min.Height {
		h = l.Min.Height
	}
	return FixedLimits(w, h)
}

// BoundsOf sizes the subject to the pinned extent anchored at the
// top-left of the allocated bounds.
func (f *FixedSize) BoundsOf(ctx *Context, i int) graphics.Rect {
	l := f.Limits(ctx)
	return graphics.RectFromOriginExtent(ctx.Bounds.TopLeft(), l.Min)
}

// MinSize raises the minimum size of its subject.
type MinSize struct {
	Proxy
	size graphics.Extent
}

// NewMinSize wraps subject with a raised minimum size.
func NewMinSize(width, height float32, subject Element) *MinSize {
	m := &MinSize{size: graphics.Extent{Width: width, Height: height}}
	m.Init(m, subject)
	return m
}

// Limits raises the subject minimum to the requested floor, lifting the
// maximum along with it when the two would cross.
func (m *MinSize) Limits(ctx *Context) ViewLimits {
	l := m.Subject().Limits(ctx)
	if m.size.Width > l.Min.Width {
		l.Min.Width = m.size.Width
	}
	if m.size.Height > l.Min.Height {
		l.Min.Height = m.size.Height
	}
	if l.Max.Width < l.Min.Width {
		l.Max.Width = l.Min.Width
	}
	if l.Max.Height < l.Min.Height {
		l.Max.Height = l.Min.Height
	}
	return l
}

// MaxSize lowers the maximum size of its subject. It never pushes the
// maximum below the subject's minimum.
type MaxSize struct {
	Proxy
	size graphics.Extent
}

// NewMaxSize wraps subject with a lowered maximum size.
func NewMaxSize(width, height float32, subject Element) *MaxSize {
	m := &MaxSize{size: graphics.Extent{Width: width, Height: height}}
	m.Init(m, subject)
	return m
}

// Limits caps the subject maximum at the requested ceiling, floored at
// the subject minimum.
func (m *MaxSize) Limits(ctx *Context) ViewLimits {
	l := m.Subject().Limits(ctx)
	if m.size.Width < l.Max.Width {
		l.Max.Width = m.size.Width
	}
	if m.size.Height < l.Max.Height {
		l.Max.Height = m.size.Height
	}
	if l.Max.Width < l.Min.Width {
		l.Max.Width = l.Min.Width
	}
	if l.Max.Height < l.Min.Height {
		l.Max.Height = l.Min.Height
	}
	return l
}

// BoundsOf clamps the subject to the capped extent anchored at the
// top-left of the allocated bounds.
func (m *MaxSize) BoundsOf(ctx *Context, i int) graphics.Rect {
	l := m.Limits(ctx)
	return graphics.RectFromOriginExtent(ctx.Bounds.TopLeft(), l.Clamp(ctx.Bounds.Extent()))
}

// StretchElement overrides the stretch weights its subject reports
// without touching the limits.
type StretchElement struct {
	Proxy
	stretch Stretch
}

// NewStretch wraps subject with explicit stretch weights.
func NewStretch(stretch Stretch, subject Element) *StretchElement {
	s := &StretchElement{stretch: stretch}
	s.Init(s, subject)
	return s
}

// NewHStretch overrides the horizontal weight only.
func NewHStretch(weight float32, subject Element) *StretchElement {
	return NewStretch(Stretch{X: weight, Y: subject.Stretch().Y}, subject)
}

// NewVStretch overrides the vertical weight only.
func NewVStretch(weight float32, subject Element) *StretchElement {
	return NewStretch(Stretch{X: subject.Stretch().X, Y: weight}, subject)
}

// Stretch returns the overriding weights.
func (s *StretchElement) Stretch() Stretch {
	return s.stretch
}
