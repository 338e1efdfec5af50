package rendering_test

import (
	"testing"

	"github.com/mkaudio-company/mkgraphic/pkg/graphics"
	"github.com/mkaudio-company/mkgraphic/pkg/rendering"
	"github.com/mkaudio-company/mkgraphic/pkg/uitest"
)

func TestDisplayListReplaysInOrder(t *testing.T) {
	var rec rendering.PictureRecorder
	extent := graphics.Extent{Width: 100, Height: 100}
	canvas := rec.BeginRecording(extent)

	canvas.Save()
	canvas.ClipRect(graphics.RectFromLTWH(0, 0, 100, 100))
	canvas.DrawRect(graphics.RectFromLTWH(10, 10, 20, 20), rendering.Fill(graphics.ColorRed))
	canvas.DrawLine(graphics.Pt(0, 0), graphics.Pt(100, 100), rendering.Stroke(graphics.ColorWhite, 1))
	canvas.Restore()

	list := rec.EndRecording()
	if list.Len() != 5 {
		t.Fatalf("recorded %d ops, want 5", list.Len())
	}
	if list.Extent() != extent {
		t.Fatalf("extent = %+v", list.Extent())
	}

	target := uitest.NewRecordingCanvas(extent)
	list.Paint(target)
	want := []string{"save", "clip", "rect", "line", "restore"}
	got := target.Kinds()
	if len(got) != len(want) {
		t.Fatalf("replay = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("replay = %v, want %v", got, want)
		}
	}
}

func TestRecorderIgnoresDrawsAfterEnd(t *testing.T) {
	var rec rendering.PictureRecorder
	canvas := rec.BeginRecording(graphics.Extent{Width: 10, Height: 10})
	canvas.DrawRect(graphics.RectFromLTWH(0, 0, 5, 5), rendering.Fill(graphics.ColorBlack))
	first := rec.EndRecording()

	canvas.DrawRect(graphics.RectFromLTWH(0, 0, 5, 5), rendering.Fill(graphics.ColorBlack))
	if first.Len() != 1 {
		t.Fatalf("late draw mutated the finished list: %d ops", first.Len())
	}
}

func newShaper(t *testing.T) *rendering.TextShaper {
	t.Helper()
	s, err := rendering.NewTextShaper()
	if err != nil {
		t.Fatalf("NewTextShaper: %v", err)
	}
	return s
}

func TestMeasureGrowsWithText(t *testing.T) {
	s := newShaper(t)
	short := s.Measure("hi", 14)
	long := s.Measure("hello there, world", 14)
	if short.Width <= 0 || short.Height <= 0 {
		t.Fatalf("short = %+v", short)
	}
	if long.Width <= short.Width {
		t.Fatalf("long %v not wider than short %v", long.Width, short.Width)
	}
}

func TestMeasureGrowsWithSize(t *testing.T) {
	s := newShaper(t)
	small := s.Measure("hello", 10)
	big := s.Measure("hello", 24)
	if big.Width <= small.Width || big.Height <= small.Height {
		t.Fatalf("24pt %+v not larger than 10pt %+v", big, small)
	}
}

func TestLayoutMetrics(t *testing.T) {
	s := newShaper(t)
	l := s.Layout("hello", 14)
	if l.Ascent <= 0 || l.Descent <= 0 {
		t.Fatalf("ascent %v, descent %v", l.Ascent, l.Descent)
	}
	if l.LineHeight < l.Ascent+l.Descent {
		t.Fatalf("line height %v below ascent+descent", l.LineHeight)
	}
	if len(l.Advances) != len([]rune("hello")) {
		t.Fatalf("advances = %d, want one per rune", len(l.Advances))
	}
	var sum float32
	for _, a := range l.Advances {
		sum += a
	}
	if !graphics.FloatEqual(sum, l.Extent.Width) {
		t.Fatalf("advance sum %v != extent width %v", sum, l.Extent.Width)
	}
}

func TestLayoutEmptyString(t *testing.T) {
	s := newShaper(t)
	l := s.Layout("", 14)
	if l.Extent.Width != 0 {
		t.Fatalf("empty string width = %v", l.Extent.Width)
	}
	if len(l.Advances) != 0 {
		t.Fatalf("advances = %v", l.Advances)
	}
}

func TestLayoutUnknownRuneFallsBack(t *testing.T) {
	s := newShaper(t)
	l := s.Layout("ab", 14)
	if len(l.Advances) != 3 {
		t.Fatalf("advances = %d, want 3", len(l.Advances))
	}
	if l.Advances[1] <= 0 {
		t.Fatal("unknown rune has no advance")
	}
}

func TestIndexAtCaretPlacement(t *testing.T) {
	s := newShaper(t)
	l := s.Layout("hello", 14)
	if got := l.IndexAt(-5); got != 0 {
		t.Fatalf("IndexAt(-5) = %d", got)
	}
	if got := l.IndexAt(l.Extent.Width + 10); got != len(l.Advances) {
		t.Fatalf("IndexAt(past end) = %d, want %d", got, len(l.Advances))
	}
	mid := l.Advances[0] + l.Advances[1]*0.75
	if got := l.IndexAt(mid); got != 2 {
		t.Fatalf("IndexAt(mid of rune 1, past half) = %d, want 2", got)
	}
}
