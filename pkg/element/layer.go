package element

import "github.com/mkaudio-company/mkgraphic/pkg/graphics"

// Layer stacks its children in the same bounds, drawing them back to
// front. Hit tests probe front to back so the topmost child wins.
type Layer struct {
	Composite
}

// NewLayer returns a layer with children ordered back to front.
func NewLayer(children ...Element) *Layer {
	l := &Layer{}
	l.Init(l, children...)
	return l
}

// coverLimits computes the tightest limits covering every child of c:
// the largest minimum and the smallest maximum, floored at the minimum.
func coverLimits(ctx *Context, c *Composite) ViewLimits {
	n := c.ChildCount()
	if n == 0 {
		return ViewLimits{}
	}
	out := ViewLimits{
		Max: graphics.Extent{Width: graphics.FullExtent, Height: graphics.FullExtent},
	}
	for i := 0; i < n; i++ {
		cl := c.ChildAt(i).Limits(ctx)
		if cl.Min.Width > out.Min.Width {
			out.Min.Width = cl.Min.Width
		}
		if cl.Min.Height > out.Min.Height {
			out.Min.Height = cl.Min.Height
		}
		if cl.Max.Width < out.Max.Width {
			out.Max.Width = cl.Max.Width
		}
		if cl.Max.Height < out.Max.Height {
			out.Max.Height = cl.Max.Height
		}
	}
	if out.Max.Width < out.Min.Width {
		out.Max.Width = out.Min.Width
	}
	if out.Max.Height < out.Min.Height {
		out.Max.Height = out.Min.Height
	}
	return out
}

// Deck holds several children in the same bounds but shows exactly one,
// the active child. Inactive children neither draw nor hit. Limits cover
// every child so switching the active one never resizes the deck.
type Deck struct {
	Composite
	active int
}

// NewDeck returns a deck with child 0 active.
func NewDeck(children ...Element) *Deck {
	d := &Deck{}
	d.Init(d, children...)
	return d
}

// Active returns the index of the visible child.
func (d *Deck) Active() int {
	return d.active
}

// SetActive switches the visible child. Out-of-range indices are ignored.
func (d *Deck) SetActive(i int) {
	if i < 0 || i >= d.ChildCount() {
		return
	}
	d.active = i
}

// Draw draws only the active child.
func (d *Deck) Draw(ctx *Context) {
	child := d.ChildAt(d.active)
	if child == nil {
		return
	}
	child.Draw(ctx.Child(child, d.active, ctx.Bounds))
}

// HitTest probes only the active child.
func (d *Deck) HitTest(ctx *Context, p graphics.Point, opts HitTestOptions, result *HitTestResult) bool {
	if !ctx.Enabled || !ctx.Bounds.Contains(p) {
		return false
	}
	child := d.ChildAt(d.active)
	if child == nil {
		return false
	}
	mark := result.Len()
	result.Push(d.elem(), ctx.ChildIndex, ctx.Bounds)
	cctx := ctx.Child(child, d.active, ctx.Bounds)
	if child.HitTest(cctx, p, opts, result) {
		return true
	}
	if opts.LeafOnly || opts.ControlOnly {
		result.Truncate(mark)
		return false
	}
	return true
}
