package uitest

import (
	"testing"

	"github.com/mkaudio-company/mkgraphic/pkg/element"
	"github.com/mkaudio-company/mkgraphic/pkg/graphics"
	"github.com/mkaudio-company/mkgraphic/pkg/rendering"
	"github.com/mkaudio-company/mkgraphic/pkg/view"
)

// sharedShaper is built once; font parsing is pure and the shaper is
// safe for concurrent use.
var sharedShaper *rendering.TextShaper

func shaper(t *testing.T) *rendering.TextShaper {
	t.Helper()
	if sharedShaper == nil {
		s, err := rendering.NewTextShaper()
		if err != nil {
			t.Fatalf("text shaper: %v", err)
		}
		sharedShaper = s
	}
	return sharedShaper
}

// ViewTester drives a view with synthesized input and captures the
// commands elements post.
type ViewTester struct {
	T        *testing.T
	View     *view.View
	Canvas   *RecordingCanvas
	Commands []element.Command

	// Redraws counts redraw requests issued by the tree.
	Redraws int
}

// NewViewTester returns a tester hosting a view of the given size.
func NewViewTester(t *testing.T, width, height float32) *ViewTester {
	t.Helper()
	size := graphics.Extent{Width: width, Height: height}
	v, err := view.New(size, view.WithShaper(shaper(t)))
	if err != nil {
		t.Fatalf("view.New: %v", err)
	}
	vt := &ViewTester{
		T:      t,
		View:   v,
		Canvas: NewRecordingCanvas(size),
	}
	v.SetCommandSink(func(cmd element.Command) {
		vt.Commands = append(vt.Commands, cmd)
	})
	v.OnRedraw(func(graphics.Rect) { vt.Redraws++ })
	return vt
}

// SetContent installs the element tree under test.
func (vt *ViewTester) SetContent(content element.Element) {
	vt.View.SetContent(content)
}

// Pump draws one frame into a fresh canvas and returns it.
func (vt *ViewTester) Pump() *RecordingCanvas {
	vt.Canvas = NewRecordingCanvas(vt.View.Size())
	vt.View.Draw(vt.Canvas)
	return vt.Canvas
}

// Press sends a left button press at p.
func (vt *ViewTester) Press(p graphics.Point) bool {
	return vt.View.Click(element.MouseEvent{Down: true, Button: element.ButtonLeft, NumClicks: 1, Pos: p})
}

// Release sends a left button release at p.
func (vt *ViewTester) Release(p graphics.Point) bool {
	return vt.View.Click(element.MouseEvent{Button: element.ButtonLeft, Pos: p})
}

// Tap presses and releases at the same position.
func (vt *ViewTester) Tap(p graphics.Point) {
	vt.Press(p)
	vt.Release(p)
}

// MoveTo sends a pointer move to p.
func (vt *ViewTester) MoveTo(p graphics.Point) bool {
	return vt.View.Cursor(p, element.CursorHovering)
}

// DragFrom presses at start, moves through steps evenly spaced
// positions toward end and releases there.
func (vt *ViewTester) DragFrom(start, end graphics.Point, steps int) {
	vt.Press(start)
	if steps < 1 {
		steps = 1
	}
	for i := 1; i <= steps; i++ {
		f := float32(i) / float32(steps)
		vt.MoveTo(graphics.Pt(
			start.X+(end.X-start.X)*f,
			start.Y+(end.Y-start.Y)*f,
		))
	}
	vt.Release(end)
}

// Scroll sends a scroll of delta at p.
func (vt *ViewTester) Scroll(delta, p graphics.Point) bool {
	return vt.View.Scroll(delta, p)
}

// SendKey sends a key press.
func (vt *ViewTester) SendKey(key element.KeyCode, mods element.Modifiers) bool {
	return vt.View.Key(element.KeyEvent{Key: key, Action: element.KeyPress, Mods: mods})
}

// TypeRune sends one unit of text input.
func (vt *ViewTester) TypeRune(r rune) bool {
	return vt.View.Text(element.TextEvent{Rune: r})
}

// TakeCommands returns and clears the captured commands.
func (vt *ViewTester) TakeCommands() []element.Command {
	out := vt.Commands
	vt.Commands = nil
	return out
}
