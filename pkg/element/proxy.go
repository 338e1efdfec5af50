package element

import "github.com/mkaudio-company/mkgraphic/pkg/graphics"

// Proxy is the base for single-child decorators. It forwards layout and
// state queries to its subject; concrete decorators embed it and
// override the parts they change, usually Limits and BoundsOf.
//
// Proxies take no part in event delivery. The subject is its own node
// in the hit chain and focus paths resolve through containers, so the
// dispatcher reaches it directly.
//
// Decorator constructors must call Init with the outermost value so that
// the shared traversal code dispatches through overridden methods.
type Proxy struct {
	subject Element
	self    Element
}

var _ Element = (*Proxy)(nil)
var _ Container = (*Proxy)(nil)

// Init wires the proxy to its concrete outer value and subject.
func (p *Proxy) Init(self, subject Element) {
	p.self = self
	p.subject = subject
}

// Subject returns the wrapped element.
func (p *Proxy) Subject() Element {
	return p.subject
}

// SetSubject replaces the wrapped element.
func (p *Proxy) SetSubject(subject Element) {
	p.subject = subject
}

func (p *Proxy) elem() Element {
	if p.self != nil {
		return p.self
	}
	return p
}

// Limits forwards to the subject.
func (p *Proxy) Limits(ctx *Context) ViewLimits {
	return p.subject.Limits(ctx)
}

// Stretch forwards to the subject.
func (p *Proxy) Stretch() Stretch {
	return p.subject.Stretch()
}

// Enabled forwards to the subject.
func (p *Proxy) Enabled() bool {
	return p.subject.Enabled()
}

// SetEnabled forwards to the subject.
func (p *Proxy) SetEnabled(enabled bool) {
	p.subject.SetEnabled(enabled)
}

// ChildCount returns 1.
func (p *Proxy) ChildCount() int {
	return 1
}

// ChildAt returns the subject for index 0.
func (p *Proxy) ChildAt(i int) Element {
	if i != 0 {
		return nil
	}
	return p.subject
}

// BoundsOf returns the subject bounds, by default the proxy's own bounds.
func (p *Proxy) BoundsOf(ctx *Context, i int) graphics.Rect {
	return ctx.Bounds
}

// Draw draws the subject within the bounds reported by BoundsOf.
func (p *Proxy) Draw(ctx *Context) {
	self := p.elem().(Container)
	bounds := self.BoundsOf(ctx, 0)
	p.subject.Draw(ctx.Child(p.subject, 0, bounds))
}

// HitTest pushes the proxy and forwards to the subject. A proxy never
// matches on its own: a miss in the subject is a miss for the proxy.
func (p *Proxy) HitTest(ctx *Context, pt graphics.Point, opts HitTestOptions, result *HitTestResult) bool {
	if !ctx.Enabled {
		return false
	}
	self := p.elem().(Container)
	mark := result.Len()
	result.Push(p.elem(), ctx.ChildIndex, ctx.Bounds)
	bounds := self.BoundsOf(ctx, 0)
	if bounds.Contains(pt) {
		cctx := ctx.Child(p.subject, 0, bounds)
		if p.subject.HitTest(cctx, pt, opts, result) {
			return true
		}
	}
	result.Truncate(mark)
	return false
}
