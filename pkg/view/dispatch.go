package view

import (
	"github.com/mkaudio-company/mkgraphic/pkg/element"
	"github.com/mkaudio-company/mkgraphic/pkg/errors"
	"github.com/mkaudio-company/mkgraphic/pkg/graphics"
)

// Click routes a pointer button transition. A press is hit-tested
// against interactive controls and bubbles from the innermost hit
// outward until some element consumes it; the consumer captures the
// pointer until release. A release is delivered to the capturing
// element regardless of the pointer position.
func (v *View) Click(ev element.MouseEvent) bool {
	defer v.drainCommands()
	defer errors.Recover("view.View.Click")
	v.cursorPos = ev.Pos
	if v.content == nil {
		return false
	}
	if ev.Down {
		return v.beginClick(ev)
	}
	return v.endClick(ev)
}

func (v *View) beginClick(ev element.MouseEvent) bool {
	if v.state != stateIdle {
		return false
	}
	result := v.hitTest(ev.Pos, element.HitTestOptions{ControlOnly: true})
	if result == nil {
		// A press on empty space releases focus.
		v.ClearFocus()
		return false
	}
	path := result.Path()
	if v.focus.HasFocus() && !v.focus.OnPath(path) {
		v.ClearFocus()
	}
	entries := result.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		c, ok := entries[i].Element.(element.Clickable)
		if !ok {
			continue
		}
		if c.HandleClick(v.contextAt(entries, i), ev) {
			v.state = stateTracking
			v.pressedPath = entryPath(entries, i)
			v.pressButton = ev.Button
			v.pressOrigin = ev.Pos
			return true
		}
	}
	return false
}

func (v *View) endClick(ev element.MouseEvent) bool {
	if v.state == stateIdle {
		return false
	}
	path := v.pressedPath
	v.state = stateIdle
	v.pressedPath = nil
	ctx, target := v.contextFor(path)
	if target == nil {
		return false
	}
	c, ok := target.(element.Clickable)
	if !ok {
		return false
	}
	return c.HandleClick(ctx, ev)
}

// Cursor routes pointer movement. While a press is captured, movement
// past the drag threshold promotes the interaction to a drag and all
// further movement goes to the capturing element. Otherwise hover
// enter/leave transitions are delivered to cursor targets.
func (v *View) Cursor(p graphics.Point, status element.CursorStatus) bool {
	defer v.drainCommands()
	defer errors.Recover("view.View.Cursor")
	v.cursorPos = p
	if v.content == nil {
		return false
	}
	switch v.state {
	case stateTracking:
		if p.DistanceTo(v.pressOrigin) >= v.dragThreshold {
			v.state = stateDragging
			v.deliverDrag(p)
		}
		return true
	case stateDragging:
		v.deliverDrag(p)
		return true
	}
	if status == element.CursorLeaving {
		v.leaveHover()
		return false
	}
	return v.updateHover(p)
}

func (v *View) deliverDrag(p graphics.Point) {
	ctx, target := v.contextFor(v.pressedPath)
	if target == nil {
		return
	}
	if d, ok := target.(element.Draggable); ok {
		d.HandleDrag(ctx, element.MouseEvent{
			Down:   true,
			Button: v.pressButton,
			Pos:    p,
		})
	}
}

func (v *View) updateHover(p graphics.Point) bool {
	var newPath []int
	var target element.CursorTarget
	if result := v.hitTest(p, element.HitTestOptions{}); result != nil {
		entries := result.Entries()
		for i := len(entries) - 1; i >= 0; i-- {
			if ct, ok := entries[i].Element.(element.CursorTarget); ok {
				newPath = entryPath(entries, i)
				target = ct
				break
			}
		}
	}
	if target == nil {
		v.leaveHover()
		return false
	}
	if v.hovering && samePath(v.hoverPath, newPath) {
		ctx, _ := v.contextFor(newPath)
		target.HandleCursor(ctx, p, element.CursorHovering)
		return true
	}
	v.leaveHover()
	ctx, _ := v.contextFor(newPath)
	target.HandleCursor(ctx, p, element.CursorEntering)
	v.hoverPath = newPath
	v.hovering = true
	return true
}

func (v *View) leaveHover() {
	if !v.hovering {
		return
	}
	ctx, old := v.contextFor(v.hoverPath)
	if ct, ok := old.(element.CursorTarget); ok {
		ct.HandleCursor(ctx, v.cursorPos, element.CursorLeaving)
	}
	v.hoverPath = nil
	v.hovering = false
}

// Scroll hit-tests the pointer position and bubbles the scroll from the
// innermost element outward until one consumes it.
func (v *View) Scroll(delta, p graphics.Point) bool {
	defer v.drainCommands()
	defer errors.Recover("view.View.Scroll")
	v.cursorPos = p
	if v.content == nil {
		return false
	}
	result := v.hitTest(p, element.HitTestOptions{})
	if result == nil {
		return false
	}
	entries := result.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		s, ok := entries[i].Element.(element.Scrollable)
		if !ok {
			continue
		}
		if s.HandleScroll(v.contextAt(entries, i), delta, p) {
			return true
		}
	}
	return false
}

// Key delivers a keyboard event to the focused element. An unconsumed
// Tab press moves focus forward, Shift-Tab backward.
func (v *View) Key(ev element.KeyEvent) bool {
	defer v.drainCommands()
	defer errors.Recover("view.View.Key")
	if v.content == nil {
		return false
	}
	if v.focus.HasFocus() {
		ctx, target := v.contextFor(v.focus.Path())
		if kh, ok := target.(element.KeyHandler); ok {
			if kh.HandleKey(ctx, ev) {
				return true
			}
		}
	}
	if ev.Key == element.KeyTab && ev.Action != element.KeyRelease {
		if ev.Mods.Has(element.ModShift) {
			return v.FocusPrev()
		}
		return v.FocusNext()
	}
	return false
}

// Text delivers text input to the focused element.
func (v *View) Text(ev element.TextEvent) bool {
	defer v.drainCommands()
	defer errors.Recover("view.View.Text")
	if v.content == nil || !v.focus.HasFocus() {
		return false
	}
	ctx, target := v.contextFor(v.focus.Path())
	th, ok := target.(element.TextHandler)
	if !ok {
		return false
	}
	return th.HandleText(ctx, ev)
}

// hitTest probes the content tree, returning nil on a miss.
func (v *View) hitTest(p graphics.Point, opts element.HitTestOptions) *element.HitTestResult {
	ctx := v.contentContext(nil)
	var result element.HitTestResult
	if !v.content.HitTest(ctx, p, opts, &result) {
		return nil
	}
	return &result
}

// contextAt rebuilds the context chain for entry i of a hit result.
func (v *View) contextAt(entries []element.HitTestEntry, i int) *element.Context {
	ctx := v.contentContext(nil)
	ctx.Bounds = entries[0].Bounds
	for j := 1; j <= i; j++ {
		ctx = ctx.Child(entries[j].Element, entries[j].Index, entries[j].Bounds)
	}
	return ctx
}

// contextFor resolves a child-index path to the element it addresses
// and the context carrying its current bounds. Both are nil when the
// path no longer resolves.
func (v *View) contextFor(path []int) (*element.Context, element.Element) {
	ctx := v.contentContext(nil)
	cur := v.content
	for _, idx := range path {
		cont, ok := cur.(element.Container)
		if !ok || idx < 0 || idx >= cont.ChildCount() {
			return nil, nil
		}
		child := cont.ChildAt(idx)
		if child == nil {
			return nil, nil
		}
		ctx = ctx.Child(child, idx, cont.BoundsOf(ctx, idx))
		cur = child
	}
	return ctx, cur
}

// entryPath returns the child-index path of entry i within a hit chain.
func entryPath(entries []element.HitTestEntry, i int) []int {
	path := make([]int, 0, i)
	for j := 1; j <= i; j++ {
		path = append(path, entries[j].Index)
	}
	return path
}

func samePath(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
