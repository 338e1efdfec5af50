package element

import "github.com/mkaudio-company/mkgraphic/pkg/graphics"

// Composite is the base for multi-child containers. It stores children
// in back-to-front order, draws them front to back and hit-tests them in
// reverse so that overlapping later children win.
//
// Concrete containers embed it, call Init with the outermost value and
// override Limits and BoundsOf with their layout policy.
type Composite struct {
	Base
	children []Element
	self     Element
}

var _ Element = (*Composite)(nil)
var _ Container = (*Composite)(nil)

// Init wires the composite to its concrete outer value and children.
func (c *Composite) Init(self Element, children ...Element) {
	c.self = self
	c.children = children
}

func (c *Composite) elem() Element {
	if c.self != nil {
		return c.self
	}
	return c
}

// Limits reports the tightest range covering every child. Containers
// with a layout policy override it.
func (c *Composite) Limits(ctx *Context) ViewLimits {
	return coverLimits(ctx, c)
}

// ChildCount returns the number of children.
func (c *Composite) ChildCount() int {
	return len(c.children)
}

// ChildAt returns the child at index i, or nil if out of range.
func (c *Composite) ChildAt(i int) Element {
	if i < 0 || i >= len(c.children) {
		return nil
	}
	return c.children[i]
}

// Add appends children.
func (c *Composite) Add(children ...Element) {
	c.children = append(c.children, children...)
}

// RemoveAt removes the child at index i.
func (c *Composite) RemoveAt(i int) {
	if i < 0 || i >= len(c.children) {
		return
	}
	c.children = append(c.children[:i], c.children[i+1:]...)
}

// Clear removes all children.
func (c *Composite) Clear() {
	c.children = nil
}

// BoundsOf allocates the whole container bounds to every child.
// Containers with a layout policy override it.
func (c *Composite) BoundsOf(ctx *Context, i int) graphics.Rect {
	return ctx.Bounds
}

// Draw draws each child whose bounds intersect the container bounds.
func (c *Composite) Draw(ctx *Context) {
	self := c.elem().(Container)
	for i, child := range c.children {
		bounds := self.BoundsOf(ctx, i)
		if !bounds.Intersects(ctx.Bounds) {
			continue
		}
		child.Draw(ctx.Child(child, i, bounds))
	}
}

// HitTest probes children in reverse order and falls back to the
// container itself when no child matches and the options allow it.
func (c *Composite) HitTest(ctx *Context, p graphics.Point, opts HitTestOptions, result *HitTestResult) bool {
	if !ctx.Enabled || !ctx.Bounds.Contains(p) {
		return false
	}
	self := c.elem().(Container)
	mark := result.Len()
	result.Push(c.elem(), ctx.ChildIndex, ctx.Bounds)
	for i := len(c.children) - 1; i >= 0; i-- {
		child := c.children[i]
		bounds := self.BoundsOf(ctx, i)
		if !bounds.Contains(p) {
			continue
		}
		cctx := ctx.Child(child, i, bounds)
		if child.HitTest(cctx, p, opts, result) {
			return true
		}
	}
	if opts.LeafOnly || opts.ControlOnly {
		result.Truncate(mark)
		return false
	}
	return true
}
