package widgets

import (
	"github.com/mkaudio-company/mkgraphic/pkg/element"
	"github.com/mkaudio-company/mkgraphic/pkg/graphics"
	"github.com/mkaudio-company/mkgraphic/pkg/rendering"
)

// ClickCommand is posted on the view when a button is activated, either
// by a full press-release cycle inside its bounds or by the keyboard.
type ClickCommand struct {
	// ID is the application identifier given to the button.
	ID string

	// Button is the activated control.
	Button *Button
}

// Button is a momentary push button with a text caption. Activation is
// reported as a ClickCommand; the button holds no callbacks.
type Button struct {
	element.Base
	id      string
	caption string

	pressed bool
	hovered bool
	focused bool
}

// NewButton returns a button with an application identifier and caption.
func NewButton(id, caption string) *Button {
	return &Button{id: id, caption: caption}
}

// ID returns the application identifier.
func (b *Button) ID() string {
	return b.id
}

// Caption returns the caption text.
func (b *Button) Caption() string {
	return b.caption
}

// SetCaption replaces the caption text.
func (b *Button) SetCaption(caption string) {
	b.caption = caption
}

// Pressed reports whether the button is currently held down.
func (b *Button) Pressed() bool {
	return b.pressed
}

// Limits sizes the button to its caption plus the theme button margin.
func (b *Button) Limits(ctx *element.Context) element.ViewLimits {
	text := ctx.Shaper.Measure(b.caption, ctx.Theme.LabelFontSize)
	m := ctx.Theme.ButtonMargin
	e := graphics.Extent{Width: text.Width + 2*m, Height: text.Height + 2*m}
	return element.ViewLimits{
		Min: e,
		Max: graphics.Extent{Width: graphics.FullExtent, Height: e.Height},
	}
}

// Draw renders the body, the caption and, when focused, the focus ring.
func (b *Button) Draw(ctx *element.Context) {
	th := ctx.Theme
	body := th.ButtonColor
	switch {
	case !ctx.Enabled:
		body = body.WithOpacity(th.DisabledOpacity)
	case b.pressed:
		body = body.Level(0.8)
	case b.hovered:
		body = body.Level(1.15)
	}
	ctx.Canvas.DrawRoundRect(ctx.Bounds, th.ButtonCornerRadius, rendering.Fill(body))

	layout := ctx.Shaper.Layout(b.caption, th.LabelFontSize)
	color := th.LabelFontColor
	if !ctx.Enabled {
		color = color.WithOpacity(th.DisabledOpacity)
	}
	origin := graphics.Pt(
		ctx.Bounds.Center().X-layout.Extent.Width*0.5,
		ctx.Bounds.Center().Y-layout.LineHeight*0.5+layout.Ascent,
	)
	ctx.Canvas.DrawText(layout, origin, rendering.Fill(color))

	if b.focused && ctx.Enabled {
		ring := ctx.Bounds.Inset(-2, -2, -2, -2)
		ctx.Canvas.DrawRoundRect(ring, th.ButtonCornerRadius+2, rendering.Stroke(th.FocusRingColor, th.FocusRingWidth))
	}
}

// HitTest matches the button bounds.
func (b *Button) HitTest(ctx *element.Context, p graphics.Point, opts element.HitTestOptions, result *element.HitTestResult) bool {
	return element.HitTestLeaf(b, ctx, p, opts, result)
}

// WantsControl reports that the button takes pointer interaction.
func (b *Button) WantsControl() bool {
	return true
}

// HandleClick consumes the press and activates on release inside the
// bounds.
func (b *Button) HandleClick(ctx *element.Context, ev element.MouseEvent) bool {
	if ev.Button != element.ButtonLeft {
		return false
	}
	if ev.Down {
		b.pressed = true
		ctx.View.RefreshArea(ctx.Bounds)
		return true
	}
	was := b.pressed
	b.pressed = false
	ctx.View.RefreshArea(ctx.Bounds)
	if was && ctx.Bounds.Contains(ev.Pos) {
		b.activate(ctx)
	}
	return was
}

// HandleDrag tracks whether the captured pointer is still over the
// button so the pressed visual follows it.
func (b *Button) HandleDrag(ctx *element.Context, ev element.MouseEvent) {
	inside := ctx.Bounds.Contains(ev.Pos)
	if inside != b.pressed {
		b.pressed = inside
		ctx.View.RefreshArea(ctx.Bounds)
	}
}

// HandleCursor tracks the hover visual.
func (b *Button) HandleCursor(ctx *element.Context, p graphics.Point, status element.CursorStatus) bool {
	hovered := status != element.CursorLeaving
	if hovered != b.hovered {
		b.hovered = hovered
		ctx.View.RefreshArea(ctx.Bounds)
	}
	return true
}

// WantsFocus reports that the button takes keyboard focus.
func (b *Button) WantsFocus() bool {
	return true
}

// BeginFocus shows the focus ring.
func (b *Button) BeginFocus() {
	b.focused = true
}

// EndFocus hides the focus ring.
func (b *Button) EndFocus() {
	b.focused = false
}

// HandleKey activates the button on Space or Enter.
func (b *Button) HandleKey(ctx *element.Context, ev element.KeyEvent) bool {
	if ev.Action == element.KeyRelease {
		return false
	}
	if ev.Key != element.KeySpace && ev.Key != element.KeyEnter {
		return false
	}
	b.activate(ctx)
	return true
}

func (b *Button) activate(ctx *element.Context) {
	if ctx.View == nil {
		return
	}
	ctx.View.Post(ClickCommand{ID: b.id, Button: b})
}
