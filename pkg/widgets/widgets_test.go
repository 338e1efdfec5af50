package widgets_test

import (
	"testing"

	"github.com/mkaudio-company/mkgraphic/pkg/element"
	"github.com/mkaudio-company/mkgraphic/pkg/graphics"
	"github.com/mkaudio-company/mkgraphic/pkg/uitest"
	"github.com/mkaudio-company/mkgraphic/pkg/widgets"
)

func TestLabelDrawsItsText(t *testing.T) {
	vt := uitest.NewViewTester(t, 300, 100)
	vt.SetContent(element.NewCenter(widgets.NewLabel("hello")))

	canvas := vt.Pump()
	if !canvas.HasText("hello") {
		t.Fatalf("text ops = %v", canvas.Texts())
	}
}

func TestLabelLimitsMatchMeasuredText(t *testing.T) {
	vt := uitest.NewViewTester(t, 300, 100)
	label := widgets.NewLabel("hello")
	vt.SetContent(label)

	l := vt.View.Limits()
	if l.Min.Width <= 0 || l.Min.Height <= 0 {
		t.Fatalf("limits = %+v", l)
	}
	if l.Min != l.Max {
		t.Fatalf("label limits not pinned: %+v", l)
	}

	wide := widgets.NewLabel("a considerably longer line")
	vt.SetContent(wide)
	if got := vt.View.Limits(); got.Min.Width <= l.Min.Width {
		t.Fatalf("longer text not wider: %v vs %v", got.Min.Width, l.Min.Width)
	}
}

func TestBoxFillsItsBounds(t *testing.T) {
	vt := uitest.NewViewTester(t, 200, 100)
	vt.SetContent(widgets.NewBox(graphics.ColorRed))

	canvas := vt.Pump()
	op, ok := canvas.First("rect")
	if !ok {
		t.Fatal("no rect drawn")
	}
	if op.Paint.Color != graphics.ColorRed {
		t.Fatalf("color = %v", op.Paint.Color)
	}
	if !graphics.FloatEqual(op.Rect.Width(), 200) || !graphics.FloatEqual(op.Rect.Height(), 100) {
		t.Fatalf("rect = %+v", op.Rect)
	}
}

func TestSpacerIsInvisibleAndTransparent(t *testing.T) {
	vt := uitest.NewViewTester(t, 200, 100)
	button := widgets.NewButton("ok", "OK")
	vt.SetContent(element.NewHTile(widgets.NewSpacer(), element.NewCenter(button)))

	canvas := vt.Pump()
	// Only the button body and caption reach the canvas.
	if canvas.Count("rect") != 0 {
		t.Fatalf("spacer drew: %v", canvas.Kinds())
	}

	// Clicks in spacer territory fall through.
	if vt.Press(graphics.Pt(5, 50)) {
		t.Fatal("spacer consumed a click")
	}
}

func TestButtonTapPostsClickCommand(t *testing.T) {
	vt := uitest.NewViewTester(t, 200, 100)
	button := widgets.NewButton("save", "Save")
	vt.SetContent(element.NewCenter(button))

	vt.Tap(graphics.Pt(100, 50))
	cmds := vt.TakeCommands()
	if len(cmds) != 1 {
		t.Fatalf("commands = %d, want 1", len(cmds))
	}
	click, ok := cmds[0].(widgets.ClickCommand)
	if !ok {
		t.Fatalf("command type = %T", cmds[0])
	}
	if click.ID != "save" || click.Button != button {
		t.Fatalf("command = %+v", click)
	}
}

func TestButtonReleaseOutsideDoesNotActivate(t *testing.T) {
	vt := uitest.NewViewTester(t, 200, 100)
	button := widgets.NewButton("save", "Save")
	vt.SetContent(element.NewCenter(button))

	vt.DragFrom(graphics.Pt(100, 50), graphics.Pt(5, 5), 4)
	if cmds := vt.TakeCommands(); len(cmds) != 0 {
		t.Fatalf("activated despite release outside: %v", cmds)
	}
	if button.Pressed() {
		t.Fatal("button stuck pressed")
	}
}

func TestDisabledButtonIgnoresClicks(t *testing.T) {
	vt := uitest.NewViewTester(t, 200, 100)
	button := widgets.NewButton("save", "Save")
	button.SetEnabled(false)
	vt.SetContent(element.NewCenter(button))

	vt.Tap(graphics.Pt(100, 50))
	if cmds := vt.TakeCommands(); len(cmds) != 0 {
		t.Fatalf("disabled button activated: %v", cmds)
	}
}

func TestButtonKeyboardActivation(t *testing.T) {
	vt := uitest.NewViewTester(t, 200, 100)
	button := widgets.NewButton("save", "Save")
	vt.SetContent(element.NewCenter(button))

	vt.SendKey(element.KeyTab, 0)
	if vt.View.Focused() == nil {
		t.Fatal("tab did not focus the button")
	}
	vt.SendKey(element.KeyEnter, 0)
	cmds := vt.TakeCommands()
	if len(cmds) != 1 {
		t.Fatalf("commands = %d, want 1", len(cmds))
	}
}

func TestFrameUsesThemeStroke(t *testing.T) {
	vt := uitest.NewViewTester(t, 200, 100)
	vt.SetContent(widgets.NewFrame())

	canvas := vt.Pump()
	if canvas.Count("round_rect")+canvas.Count("rect") == 0 {
		t.Fatalf("frame drew nothing: %v", canvas.Kinds())
	}
}
