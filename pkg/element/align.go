package element

import "github.com/mkaudio-company/mkgraphic/pkg/graphics"

// Align positions its subject within whatever bounds the parent
// allocates. The subject is sized to its preferred extent within its
// limits and placed at the fractional offsets: 0 anchors to the
// left/top edge, 1 to the right/bottom edge, 0.5 centers.
type Align struct {
	Proxy
	xFrac float32
	yFrac float32
}

// NewAlign wraps subject with the given fractional placement.
func NewAlign(xFrac, yFrac float32, subject Element) *Align {
	a := &Align{xFrac: clampFrac(xFrac), yFrac: clampFrac(yFrac)}
	a.Init(a, subject)
	return a
}

// NewCenter centers the subject on both axes.
func NewCenter(subject Element) *Align {
	return NewAlign(0.5, 0.5, subject)
}

// NewLeft anchors the subject to the left edge, centered vertically.
func NewLeft(subject Element) *Align {
	return NewAlign(0, 0.5, subject)
}

// NewRight anchors the subject to the right edge, centered vertically.
func NewRight(subject Element) *Align {
	return NewAlign(1, 0.5, subject)
}

// NewTop anchors the subject to the top edge, centered horizontally.
func NewTop(subject Element) *Align {
	return NewAlign(0.5, 0, subject)
}

// NewBottom anchors the subject to the bottom edge, centered horizontally.
func NewBottom(subject Element) *Align {
	return NewAlign(0.5, 1, subject)
}

func clampFrac(f float32) float32 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Limits keeps the subject minimum but reports an unbounded maximum:
// the alignment absorbs any extra space the parent allocates.
func (a *Align) Limits(ctx *Context) ViewLimits {
	l := a.Subject().Limits(ctx)
	l.Max = graphics.Extent{Width: graphics.FullExtent, Height: graphics.FullExtent}
	return l
}

// BoundsOf places the subject at its clamped size within the align bounds.
func (a *Align) BoundsOf(ctx *Context, i int) graphics.Rect {
	l := a.Subject().Limits(ctx)
	size := l.Clamp(ctx.Bounds.Extent())
	x := ctx.Bounds.Left + a.xFrac*slackIn(ctx.Bounds.Width(), size.Width)
	y := ctx.Bounds.Top + a.yFrac*slackIn(ctx.Bounds.Height(), size.Height)
	return graphics.RectFromOriginExtent(graphics.Pt(x, y), size)
}

// slackIn returns the distributable space, never negative: an oversized
// subject stays anchored to the near edge.
func slackIn(avail, used float32) float32 {
	if used >= avail {
		return 0
	}
	return avail - used
}
