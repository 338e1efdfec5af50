package graphics

import "testing"

func TestRectContains(t *testing.T) {
	r := RectFromLTWH(10, 10, 100, 50)

	cases := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", Pt(50, 30), true},
		{"top left corner", Pt(10, 10), true},
		{"right edge exclusive", Pt(110, 30), false},
		{"bottom edge exclusive", Pt(50, 60), false},
		{"outside left", Pt(5, 30), false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.p); got != tc.want {
			t.Errorf("%s: Contains(%v) = %v, want %v", tc.name, tc.p, got, tc.want)
		}
	}
}

func TestRectIntersect(t *testing.T) {
	a := RectFromLTWH(0, 0, 100, 100)
	b := RectFromLTWH(50, 50, 100, 100)

	got := a.Intersect(b)
	want := Rect{Left: 50, Top: 50, Right: 100, Bottom: 100}
	if got != want {
		t.Errorf("Intersect = %+v, want %+v", got, want)
	}

	c := RectFromLTWH(200, 200, 10, 10)
	if !a.Intersect(c).IsEmpty() {
		t.Error("disjoint rects should intersect to empty")
	}
}

func TestRectInsetClamps(t *testing.T) {
	r := RectFromLTWH(0, 0, 20, 20)
	got := r.Inset(15, 15, 15, 15)
	if got.Width() != 0 || got.Height() != 0 {
		t.Errorf("over-inset should clamp to zero area, got %+v", got)
	}
	if got.Left != 15 || got.Top != 15 {
		t.Errorf("clamped inset should keep origin, got %+v", got)
	}
}

func TestDegenerateRectIsValid(t *testing.T) {
	r := Rect{Left: 10, Top: 10, Right: 10, Bottom: 10}
	if !r.IsEmpty() {
		t.Error("zero-area rect should report empty")
	}
	if r.Contains(Pt(10, 10)) {
		t.Error("zero-area rect should contain no points")
	}
}

func TestFullExtentSaturates(t *testing.T) {
	sum := FullExtent + 500
	if !IsFullExtent(sum) {
		t.Error("adding to FullExtent should stay unbounded")
	}
	if IsFullExtent(1e30) {
		t.Error("large finite values are not the unbounded sentinel")
	}
}

func TestAxisHelpers(t *testing.T) {
	p := Pt(3, 7)
	if p.Axis(AxisX) != 3 || p.Axis(AxisY) != 7 {
		t.Errorf("Point.Axis mismatch: %v", p)
	}
	if AxisX.Other() != AxisY || AxisY.Other() != AxisX {
		t.Error("Axis.Other should flip the axis")
	}
	e := Extent{Width: 4, Height: 9}
	if e.Axis(AxisY) != 9 {
		t.Errorf("Extent.Axis(AxisY) = %v, want 9", e.Axis(AxisY))
	}
	if got := e.WithAxis(AxisX, 12); got.Width != 12 || got.Height != 9 {
		t.Errorf("Extent.WithAxis = %+v", got)
	}
}

func TestColorLevel(t *testing.T) {
	c := RGBA(100, 100, 100, 200)
	brighter := c.Level(2)
	r, _, _, _ := brighter.RGBAF()
	if r <= 0.5 {
		t.Errorf("Level(2) should brighten, got r=%v", r)
	}
	if uint8(brighter>>24) != 200 {
		t.Error("Level should preserve alpha")
	}
	white := ColorWhite.Level(2)
	if white != ColorWhite {
		t.Errorf("Level should clamp at white, got %08x", uint32(white))
	}
}
