package view_test

import (
	"fmt"
	"testing"

	"github.com/mkaudio-company/mkgraphic/pkg/element"
	"github.com/mkaudio-company/mkgraphic/pkg/graphics"
	"github.com/mkaudio-company/mkgraphic/pkg/uitest"
)

// ctl is a rigid 100x50 control recording every event it receives.
type ctl struct {
	element.Base
	name     string
	consume  bool
	focus    bool
	events   []string
	beginned int
	ended    int
}

func newCtl(name string, consume bool) *ctl {
	return &ctl{name: name, consume: consume}
}

func (c *ctl) log(format string, args ...any) {
	c.events = append(c.events, fmt.Sprintf(format, args...))
}

func (c *ctl) Limits(ctx *element.Context) element.ViewLimits {
	return element.FixedLimits(100, 50)
}

func (c *ctl) Draw(ctx *element.Context) {}

func (c *ctl) HitTest(ctx *element.Context, p graphics.Point, opts element.HitTestOptions, result *element.HitTestResult) bool {
	return element.HitTestLeaf(c, ctx, p, opts, result)
}

func (c *ctl) WantsControl() bool { return true }

func (c *ctl) HandleClick(ctx *element.Context, ev element.MouseEvent) bool {
	if ev.Down {
		c.log("down %.0f,%.0f", ev.Pos.X, ev.Pos.Y)
	} else {
		c.log("up %.0f,%.0f", ev.Pos.X, ev.Pos.Y)
	}
	return c.consume
}

func (c *ctl) HandleDrag(ctx *element.Context, ev element.MouseEvent) {
	c.log("drag %.0f,%.0f", ev.Pos.X, ev.Pos.Y)
}

func (c *ctl) HandleScroll(ctx *element.Context, delta, p graphics.Point) bool {
	c.log("scroll %.0f,%.0f", delta.X, delta.Y)
	return c.consume
}

func (c *ctl) HandleKey(ctx *element.Context, ev element.KeyEvent) bool {
	c.log("key %d", ev.Key)
	return c.consume
}

func (c *ctl) HandleText(ctx *element.Context, ev element.TextEvent) bool {
	c.log("text %c", ev.Rune)
	return c.consume
}

func (c *ctl) HandleCursor(ctx *element.Context, p graphics.Point, status element.CursorStatus) bool {
	c.log("cursor %s", status)
	return true
}

func (c *ctl) WantsFocus() bool { return c.focus }
func (c *ctl) BeginFocus()      { c.beginned++ }
func (c *ctl) EndFocus()        { c.ended++ }

func lastEvent(c *ctl) string {
	if len(c.events) == 0 {
		return ""
	}
	return c.events[len(c.events)-1]
}

func TestPressCapturesUntilRelease(t *testing.T) {
	a := newCtl("a", true)
	b := newCtl("b", true)
	vt := uitest.NewViewTester(t, 100, 200)
	vt.SetContent(element.NewVTile(a, b))

	// Press on a, cross the drag threshold onto b, release over b.
	vt.Press(graphics.Pt(50, 25))
	vt.MoveTo(graphics.Pt(50, 60))
	vt.MoveTo(graphics.Pt(50, 75))
	vt.Release(graphics.Pt(50, 75))

	want := []string{"down 50,25", "drag 50,60", "drag 50,75", "up 50,75"}
	if len(a.events) != len(want) {
		t.Fatalf("a.events = %v, want %v", a.events, want)
	}
	for i := range want {
		if a.events[i] != want[i] {
			t.Fatalf("a.events = %v, want %v", a.events, want)
		}
	}
	if len(b.events) != 0 {
		t.Fatalf("b saw events despite the capture: %v", b.events)
	}
}

func TestSmallMovementIsNotADrag(t *testing.T) {
	a := newCtl("a", true)
	vt := uitest.NewViewTester(t, 100, 200)
	vt.SetContent(element.NewVTile(a))

	vt.Press(graphics.Pt(50, 25))
	vt.MoveTo(graphics.Pt(51, 26))
	vt.Release(graphics.Pt(51, 26))

	for _, e := range a.events {
		if e[:4] == "drag" {
			t.Fatalf("drag reported below the threshold: %v", a.events)
		}
	}
}

func TestUnconsumedClickBubbles(t *testing.T) {
	inner := newCtl("inner", false)
	outer := &clickLayer{}
	outer.Init(outer, inner)
	vt := uitest.NewViewTester(t, 100, 200)
	vt.SetContent(outer)

	if !vt.Press(graphics.Pt(50, 25)) {
		t.Fatal("press not consumed")
	}
	if len(inner.events) != 1 {
		t.Fatalf("inner saw %v, want exactly the down", inner.events)
	}
	if !outer.clicked {
		t.Fatal("unconsumed click did not reach the ancestor")
	}
	vt.Release(graphics.Pt(50, 25))
	if !outer.released {
		t.Fatal("release did not go to the capturing ancestor")
	}
}

// clickLayer is a layer that consumes clicks its children decline.
type clickLayer struct {
	element.Layer
	clicked  bool
	released bool
}

func (c *clickLayer) HandleClick(ctx *element.Context, ev element.MouseEvent) bool {
	if ev.Down {
		c.clicked = true
	} else {
		c.released = true
	}
	return true
}

func TestDecoratedControlSeesEachEventOnce(t *testing.T) {
	a := newCtl("a", false)
	vt := uitest.NewViewTester(t, 200, 200)
	vt.SetContent(element.NewUniformMargin(10, a))

	// The margin sits between the dispatcher and the declining control;
	// the control must still be offered each event exactly once.
	vt.Press(graphics.Pt(50, 30))
	if len(a.events) != 1 || a.events[0] != "down 50,30" {
		t.Fatalf("a.events = %v, want a single down", a.events)
	}

	a.events = nil
	vt.Scroll(graphics.Pt(0, -3), graphics.Pt(50, 30))
	if len(a.events) != 1 || a.events[0] != "scroll 0,-3" {
		t.Fatalf("a.events = %v, want a single scroll", a.events)
	}
}

func TestEmptySpaceClickClearsFocusOnce(t *testing.T) {
	a := newCtl("a", true)
	a.focus = true
	vt := uitest.NewViewTester(t, 100, 200)
	vt.SetContent(element.NewVTile(a))

	if !vt.View.SetFocus([]int{0}) {
		t.Fatal("SetFocus failed")
	}
	// The tile is only 50 tall; (50, 150) is outside all content.
	vt.Press(graphics.Pt(50, 150))
	vt.Release(graphics.Pt(50, 150))
	if a.ended != 1 {
		t.Fatalf("EndFocus ran %d times, want exactly 1", a.ended)
	}
	vt.Press(graphics.Pt(50, 150))
	if a.ended != 1 {
		t.Fatalf("EndFocus ran again on an unfocused view")
	}
}

func TestClickOffFocusPathMovesFocus(t *testing.T) {
	a := newCtl("a", true)
	a.focus = true
	b := newCtl("b", true)
	b.focus = true
	vt := uitest.NewViewTester(t, 100, 200)
	vt.SetContent(element.NewVTile(a, b))

	vt.View.SetFocus([]int{0})
	vt.Tap(graphics.Pt(50, 75)) // over b
	if a.ended != 1 {
		t.Fatalf("a.ended = %d, want 1", a.ended)
	}
}

func TestTabCyclesFocus(t *testing.T) {
	a := newCtl("a", false)
	a.focus = true
	b := newCtl("b", false)
	b.focus = true
	vt := uitest.NewViewTester(t, 100, 200)
	vt.SetContent(element.NewVTile(a, b))

	vt.SendKey(element.KeyTab, 0)
	if got := vt.View.FocusPath(); len(got) != 1 || got[0] != 0 {
		t.Fatalf("path = %v, want [0]", got)
	}
	vt.SendKey(element.KeyTab, 0)
	if got := vt.View.FocusPath(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("path = %v, want [1]", got)
	}
	vt.SendKey(element.KeyTab, element.ModShift)
	if got := vt.View.FocusPath(); len(got) != 1 || got[0] != 0 {
		t.Fatalf("path = %v, want [0] after shift-tab", got)
	}
}

func TestKeyGoesToFocusedElementFirst(t *testing.T) {
	a := newCtl("a", true)
	a.focus = true
	vt := uitest.NewViewTester(t, 100, 200)
	vt.SetContent(element.NewVTile(a))

	vt.View.SetFocus([]int{0})
	if !vt.SendKey(element.KeySpace, 0) {
		t.Fatal("key not consumed")
	}
	if lastEvent(a) != fmt.Sprintf("key %d", element.KeySpace) {
		t.Fatalf("events = %v", a.events)
	}
}

func TestTextGoesToFocusedElement(t *testing.T) {
	a := newCtl("a", true)
	a.focus = true
	vt := uitest.NewViewTester(t, 100, 200)
	vt.SetContent(element.NewVTile(a))

	vt.View.SetFocus([]int{0})
	if !vt.TypeRune('x') {
		t.Fatal("text not consumed")
	}
	if lastEvent(a) != "text x" {
		t.Fatalf("events = %v", a.events)
	}
}

func TestScrollBubblesToConsumer(t *testing.T) {
	inner := newCtl("inner", false)
	a := newCtl("a", true)
	vt := uitest.NewViewTester(t, 100, 200)
	vt.SetContent(element.NewVTile(inner, a))

	// inner declines; no ancestor handles scroll, so it falls through.
	if vt.Scroll(graphics.Pt(0, -10), graphics.Pt(50, 25)) {
		t.Fatal("scroll consumed by a declining element")
	}
	if !vt.Scroll(graphics.Pt(0, -10), graphics.Pt(50, 75)) {
		t.Fatal("scroll not consumed by a")
	}
}

func TestHoverEnterLeave(t *testing.T) {
	a := newCtl("a", true)
	b := newCtl("b", true)
	vt := uitest.NewViewTester(t, 100, 200)
	vt.SetContent(element.NewVTile(a, b))

	vt.MoveTo(graphics.Pt(50, 25))
	if lastEvent(a) != "cursor entering" {
		t.Fatalf("a.events = %v", a.events)
	}
	vt.MoveTo(graphics.Pt(60, 30))
	if lastEvent(a) != "cursor hovering" {
		t.Fatalf("a.events = %v", a.events)
	}
	vt.MoveTo(graphics.Pt(50, 75))
	if lastEvent(a) != "cursor leaving" {
		t.Fatalf("a.events = %v", a.events)
	}
	if lastEvent(b) != "cursor entering" {
		t.Fatalf("b.events = %v", b.events)
	}
	vt.MoveTo(graphics.Pt(50, 150))
	if lastEvent(b) != "cursor leaving" {
		t.Fatalf("b.events = %v", b.events)
	}
}

func TestContentResizeRelayouts(t *testing.T) {
	a := newCtl("a", true)
	vt := uitest.NewViewTester(t, 100, 200)
	vt.SetContent(element.NewVTile(a))

	before := vt.Redraws
	vt.View.SetSize(graphics.Extent{Width: 300, Height: 300})
	if vt.Redraws <= before {
		t.Fatal("resize did not request a redraw")
	}
	if got := vt.View.Size(); got.Width != 300 {
		t.Fatalf("size = %+v", got)
	}
}

type pingCommand struct{ from *ctl }

// posterCtl posts a command when clicked.
type posterCtl struct {
	ctl
}

func (p *posterCtl) HitTest(ctx *element.Context, pt graphics.Point, opts element.HitTestOptions, result *element.HitTestResult) bool {
	return element.HitTestLeaf(p, ctx, pt, opts, result)
}

func (p *posterCtl) HandleClick(ctx *element.Context, ev element.MouseEvent) bool {
	if ev.Down {
		ctx.View.Post(pingCommand{from: &p.ctl})
	}
	return true
}

func TestCommandsDrainAfterDispatch(t *testing.T) {
	p := &posterCtl{ctl: *newCtl("p", true)}
	vt := uitest.NewViewTester(t, 100, 200)
	vt.SetContent(element.NewVTile(p))

	vt.Press(graphics.Pt(50, 25))
	cmds := vt.TakeCommands()
	if len(cmds) != 1 {
		t.Fatalf("commands = %d, want 1", len(cmds))
	}
	if _, ok := cmds[0].(pingCommand); !ok {
		t.Fatalf("command type = %T", cmds[0])
	}
}
