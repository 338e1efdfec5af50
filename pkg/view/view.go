// Package view owns the top of the element tree: it sizes the content
// against its limits, draws it into a canvas and routes pointer,
// keyboard and text input through hit testing, pointer capture and the
// focus manager. Elements communicate results back to the application
// as commands queued on the view and drained after each dispatch turn.
package view

import (
	"github.com/mkaudio-company/mkgraphic/pkg/element"
	"github.com/mkaudio-company/mkgraphic/pkg/errors"
	"github.com/mkaudio-company/mkgraphic/pkg/focus"
	"github.com/mkaudio-company/mkgraphic/pkg/graphics"
	"github.com/mkaudio-company/mkgraphic/pkg/rendering"
	"github.com/mkaudio-company/mkgraphic/pkg/theme"
)

// DefaultDragThreshold is the pointer travel, in pixels, that turns a
// pressed pointer into a drag.
const DefaultDragThreshold = 4

type trackState int

const (
	stateIdle trackState = iota
	stateTracking
	stateDragging
)

// View hosts an element tree. It is not safe for concurrent use; a view
// belongs to the thread feeding it events.
type View struct {
	bounds    graphics.Rect
	cursorPos graphics.Point
	content   element.Element
	shaper    *rendering.TextShaper
	theme     *theme.Theme
	focus     focus.Manager

	state         trackState
	pressedPath   []int
	pressButton   element.MouseButtonKind
	pressOrigin   graphics.Point
	dragThreshold float32

	hoverPath []int
	hovering  bool

	commands []element.Command
	sink     func(element.Command)
	onRedraw func(graphics.Rect)
}

// Option configures a View.
type Option func(*View)

// WithTheme sets the theme. The default is the dark theme.
func WithTheme(th *theme.Theme) Option {
	return func(v *View) { v.theme = th }
}

// WithShaper sets the text shaper shared by the view's elements.
func WithShaper(s *rendering.TextShaper) Option {
	return func(v *View) { v.shaper = s }
}

// WithDragThreshold overrides the drag detection distance.
func WithDragThreshold(px float32) Option {
	return func(v *View) { v.dragThreshold = px }
}

// New returns a view of the given size. Without an explicit shaper a
// default one backed by the bundled font is created; font setup failure
// surfaces as an error.
func New(size graphics.Extent, opts ...Option) (*View, error) {
	v := &View{
		bounds:        graphics.RectFromOriginExtent(graphics.Point{}, size),
		theme:         theme.Dark(),
		dragThreshold: DefaultDragThreshold,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.shaper == nil {
		shaper, err := rendering.NewTextShaper()
		if err != nil {
			return nil, err
		}
		v.shaper = shaper
	}
	return v, nil
}

// SetContent replaces the element tree. Any held focus is released.
func (v *View) SetContent(content element.Element) {
	if v.content != nil {
		v.focus.Clear(v.content)
	}
	v.content = content
	v.state = stateIdle
	v.pressedPath = nil
	v.hoverPath = nil
	v.hovering = false
	v.Refresh()
}

// Content returns the element tree root.
func (v *View) Content() element.Element {
	return v.content
}

// Bounds returns the view rectangle.
func (v *View) Bounds() graphics.Rect {
	return v.bounds
}

// Size returns the view extent.
func (v *View) Size() graphics.Extent {
	return v.bounds.Extent()
}

// SetSize resizes the view and requests a redraw.
func (v *View) SetSize(size graphics.Extent) {
	v.bounds = graphics.RectFromOriginExtent(graphics.Point{}, size)
	v.Refresh()
}

// CursorPos returns the last observed pointer position.
func (v *View) CursorPos() graphics.Point {
	return v.cursorPos
}

// Theme returns the active theme.
func (v *View) Theme() *theme.Theme {
	return v.theme
}

// SetTheme switches the theme and requests a redraw.
func (v *View) SetTheme(th *theme.Theme) {
	if th == nil {
		return
	}
	v.theme = th
	v.Refresh()
}

// Shaper returns the view's text shaper.
func (v *View) Shaper() *rendering.TextShaper {
	return v.shaper
}

// Limits measures the content's acceptable size range, for hosts that
// size their window to the content.
func (v *View) Limits() element.ViewLimits {
	if v.content == nil {
		return element.FullLimits()
	}
	return v.content.Limits(v.rootContext(nil))
}

// OnRedraw registers the host callback invoked by Refresh.
func (v *View) OnRedraw(fn func(area graphics.Rect)) {
	v.onRedraw = fn
}

// Refresh requests a redraw of the whole view.
func (v *View) Refresh() {
	v.RefreshArea(v.bounds)
}

// RefreshArea requests a redraw of the given area.
func (v *View) RefreshArea(area graphics.Rect) {
	if v.onRedraw != nil {
		v.onRedraw(area)
	}
}

// Post queues a command. Commands are drained after the current
// dispatch turn, or handed to the command sink when one is set.
func (v *View) Post(cmd element.Command) {
	v.commands = append(v.commands, cmd)
}

// SetCommandSink registers the application callback receiving posted
// commands. Without a sink commands accumulate until TakeCommands.
func (v *View) SetCommandSink(fn func(element.Command)) {
	v.sink = fn
}

// TakeCommands returns and clears the queued commands.
func (v *View) TakeCommands() []element.Command {
	out := v.commands
	v.commands = nil
	return out
}

func (v *View) drainCommands() {
	if v.sink == nil {
		return
	}
	for len(v.commands) > 0 {
		cmd := v.commands[0]
		v.commands = v.commands[1:]
		v.sink(cmd)
	}
}

// Draw lays the content out against the view size and draws it, clipped
// to the view bounds. A panicking element is reported, not propagated.
func (v *View) Draw(canvas rendering.Canvas) {
	defer errors.Recover("view.View.Draw")
	if v.content == nil {
		canvas.Clear(v.theme.PanelColor)
		return
	}
	ctx := v.contentContext(canvas)
	canvas.Save()
	canvas.ClipRect(v.bounds)
	canvas.Clear(v.theme.PanelColor)
	v.content.Draw(ctx)
	canvas.Restore()
}

// rootContext returns a context covering the raw view bounds.
func (v *View) rootContext(canvas rendering.Canvas) *element.Context {
	return element.NewContext(v, canvas, v.shaper, v.theme, v.bounds)
}

// contentContext returns the root context with the content bounds: the
// view size clamped into the content's limits.
func (v *View) contentContext(canvas rendering.Canvas) *element.Context {
	ctx := v.rootContext(canvas)
	limits := v.content.Limits(ctx)
	size := limits.Clamp(v.bounds.Extent())
	ctx.Bounds = graphics.RectFromOriginExtent(v.bounds.TopLeft(), size)
	return ctx
}

// FocusPath returns the current focus path, or nil.
func (v *View) FocusPath() []int {
	return v.focus.Path()
}

// Focused returns the focused element, or nil.
func (v *View) Focused() element.Element {
	if v.content == nil {
		return nil
	}
	return v.focus.Focused(v.content)
}

// SetFocus moves focus to the element addressed by path.
func (v *View) SetFocus(path []int) bool {
	if v.content == nil {
		return false
	}
	if v.focus.Set(v.content, path) {
		v.Refresh()
		return true
	}
	return false
}

// ClearFocus releases focus.
func (v *View) ClearFocus() {
	if v.content == nil {
		return
	}
	if v.focus.HasFocus() {
		v.focus.Clear(v.content)
		v.Refresh()
	}
}

// FocusNext moves focus forward in tree order.
func (v *View) FocusNext() bool {
	if v.content == nil {
		return false
	}
	if v.focus.Next(v.content) {
		v.Refresh()
		return true
	}
	return false
}

// FocusPrev moves focus backward in tree order.
func (v *View) FocusPrev() bool {
	if v.content == nil {
		return false
	}
	if v.focus.Prev(v.content) {
		v.Refresh()
		return true
	}
	return false
}

// ValidateFocus re-checks the focus path after a tree mutation.
func (v *View) ValidateFocus() {
	if v.content == nil {
		return
	}
	v.focus.Validate(v.content)
}
