package widgets

import (
	"github.com/mkaudio-company/mkgraphic/pkg/element"
	"github.com/mkaudio-company/mkgraphic/pkg/graphics"
	"github.com/mkaudio-company/mkgraphic/pkg/rendering"
)

// Box fills its bounds with a solid color. It takes whatever space its
// parent allocates and never interacts.
type Box struct {
	element.Base
	Color graphics.Color
}

// NewBox returns a box filled with the given color.
func NewBox(color graphics.Color) *Box {
	return &Box{Color: color}
}

// Limits accepts any size.
func (b *Box) Limits(ctx *element.Context) element.ViewLimits {
	return element.FullLimits()
}

// Draw fills the allocated bounds.
func (b *Box) Draw(ctx *element.Context) {
	ctx.Canvas.DrawRect(ctx.Bounds, rendering.Fill(b.Color))
}

// HitTest matches the bounds so a box can back a layer without letting
// clicks fall through to whatever is beneath.
func (b *Box) HitTest(ctx *element.Context, p graphics.Point, opts element.HitTestOptions, result *element.HitTestResult) bool {
	return element.HitTestLeaf(b, ctx, p, opts, result)
}

// Frame draws an outlined, optionally rounded rectangle using the theme
// frame style.
type Frame struct {
	element.Base
}

// NewFrame returns a frame.
func NewFrame() *Frame {
	return &Frame{}
}

// Limits accepts any size.
func (f *Frame) Limits(ctx *element.Context) element.ViewLimits {
	return element.FullLimits()
}

// Draw strokes the frame outline from the theme.
func (f *Frame) Draw(ctx *element.Context) {
	th := ctx.Theme
	paint := rendering.Stroke(th.FrameColor, th.FrameStrokeWidth)
	if th.FrameCornerRadius > 0 {
		ctx.Canvas.DrawRoundRect(ctx.Bounds, th.FrameCornerRadius, paint)
		return
	}
	ctx.Canvas.DrawRect(ctx.Bounds, paint)
}

// HitTest never matches; a frame is decoration.
func (f *Frame) HitTest(ctx *element.Context, p graphics.Point, opts element.HitTestOptions, result *element.HitTestResult) bool {
	return false
}

// Spacer occupies flexible empty space inside tiles. It draws nothing
// and is transparent to hit testing.
type Spacer struct {
	element.Empty
	stretch element.Stretch
}

// NewSpacer returns a fully flexible spacer.
func NewSpacer() *Spacer {
	return &Spacer{stretch: element.DefaultStretch()}
}

// NewWeightedSpacer returns a spacer with explicit stretch weights.
func NewWeightedSpacer(x, y float32) *Spacer {
	return &Spacer{stretch: element.Stretch{X: x, Y: y}}
}

// Stretch returns the spacer weights.
func (s *Spacer) Stretch() element.Stretch {
	return s.stretch
}
