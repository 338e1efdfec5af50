package widgets

import (
	"github.com/mkaudio-company/mkgraphic/pkg/element"
	"github.com/mkaudio-company/mkgraphic/pkg/graphics"
	"github.com/mkaudio-company/mkgraphic/pkg/rendering"
)

// Label draws a single line of text. Size and color default to the
// theme label style; a heading style is available via NewHeading.
type Label struct {
	element.Base
	text    string
	size    float32 // 0 means theme label size
	color   graphics.Color
	hasTint bool
	heading bool
}

// NewLabel returns a label using the theme label style.
func NewLabel(text string) *Label {
	return &Label{text: text}
}

// NewHeading returns a label using the theme heading style.
func NewHeading(text string) *Label {
	return &Label{text: text, heading: true}
}

// Text returns the label text.
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the label text.
func (l *Label) SetText(text string) {
	l.text = text
}

// SetFontSize overrides the theme font size.
func (l *Label) SetFontSize(size float32) {
	l.size = size
}

// SetColor overrides the theme font color.
func (l *Label) SetColor(c graphics.Color) {
	l.color = c
	l.hasTint = true
}

func (l *Label) fontSize(ctx *element.Context) float32 {
	if l.size > 0 {
		return l.size
	}
	if l.heading {
		return ctx.Theme.HeadingFontSize
	}
	return ctx.Theme.LabelFontSize
}

func (l *Label) fontColor(ctx *element.Context) graphics.Color {
	if l.hasTint {
		return l.color
	}
	if l.heading {
		return ctx.Theme.HeadingFontColor
	}
	return ctx.Theme.LabelFontColor
}

// Limits pins the label to its measured text extent.
func (l *Label) Limits(ctx *element.Context) element.ViewLimits {
	e := ctx.Shaper.Measure(l.text, l.fontSize(ctx))
	return element.ViewLimits{Min: e, Max: e}
}

// Draw lays the text out and draws it centered vertically in the
// allocated bounds.
func (l *Label) Draw(ctx *element.Context) {
	layout := ctx.Shaper.Layout(l.text, l.fontSize(ctx))
	color := l.fontColor(ctx)
	if !ctx.Enabled {
		color = color.WithOpacity(ctx.Theme.DisabledOpacity)
	}
	pad := (ctx.Bounds.Height() - layout.LineHeight) * 0.5
	if pad < 0 {
		pad = 0
	}
	origin := graphics.Pt(ctx.Bounds.Left, ctx.Bounds.Top+pad+layout.Ascent)
	ctx.Canvas.DrawText(layout, origin, rendering.Fill(color))
}

// HitTest never matches; labels are passive.
func (l *Label) HitTest(ctx *element.Context, p graphics.Point, opts element.HitTestOptions, result *element.HitTestResult) bool {
	return false
}
