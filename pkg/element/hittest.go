package element

import "github.com/mkaudio-company/mkgraphic/pkg/graphics"

// HitTestOptions restrict which elements a hit test may match.
type HitTestOptions struct {
	// LeafOnly rejects matches on container nodes themselves; only leaf
	// elements qualify.
	LeafOnly bool

	// ControlOnly restricts matches to interactive controls.
	ControlOnly bool
}

// HitTestEntry records one element on a hit path together with its index
// within its parent and its allocated bounds at the time of the test.
type HitTestEntry struct {
	Element Element
	Index   int // index within the parent, -1 for the root
	Bounds  graphics.Rect
}

// HitTestResult accumulates the chain of hit elements, outermost first.
// The final entry is the innermost hit element.
type HitTestResult struct {
	entries []HitTestEntry
}

// Push appends an entry for e.
func (r *HitTestResult) Push(e Element, index int, bounds graphics.Rect) {
	r.entries = append(r.entries, HitTestEntry{Element: e, Index: index, Bounds: bounds})
}

// Len returns the number of entries.
func (r *HitTestResult) Len() int {
	return len(r.entries)
}

// Truncate discards entries beyond length n. Elements use it to undo
// speculative pushes when a subtree turns out not to hit.
func (r *HitTestResult) Truncate(n int) {
	if n < len(r.entries) {
		r.entries = r.entries[:n]
	}
}

// Entries returns the accumulated entries, outermost first.
func (r *HitTestResult) Entries() []HitTestEntry {
	return r.entries
}

// Leaf returns the innermost hit entry, or a zero entry if empty.
func (r *HitTestResult) Leaf() HitTestEntry {
	if len(r.entries) == 0 {
		return HitTestEntry{Index: -1}
	}
	return r.entries[len(r.entries)-1]
}

// Path returns the child-index path from the root to the innermost hit
// element. The root entry itself carries no index.
func (r *HitTestResult) Path() []int {
	if len(r.entries) <= 1 {
		return nil
	}
	path := make([]int, 0, len(r.entries)-1)
	for _, e := range r.entries[1:] {
		path = append(path, e.Index)
	}
	return path
}

// Resolve walks a child-index path from root through Container nodes and
// returns the element it addresses, or nil if the path no longer resolves.
func Resolve(root Element, path []int) Element {
	cur := root
	for _, idx := range path {
		cont, ok := cur.(Container)
		if !ok || idx < 0 || idx >= cont.ChildCount() {
			return nil
		}
		cur = cont.ChildAt(idx)
		if cur == nil {
			return nil
		}
	}
	return cur
}
