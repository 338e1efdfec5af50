// Package focus tracks keyboard focus as a child-index path into the
// element tree. The tree holds no parent pointers; the manager resolves
// its path through the Container interface on every operation, so a
// mutated tree is detected instead of dereferenced.
package focus

import (
	"github.com/mkaudio-company/mkgraphic/pkg/element"
	"github.com/mkaudio-company/mkgraphic/pkg/errors"
)

// Manager owns the single focus path of a view. At most one element
// holds focus at any time; Set and Clear are idempotent and pair every
// focus gain with exactly one BeginFocus and every loss with exactly one
// EndFocus.
type Manager struct {
	path []int
	set  bool
}

// HasFocus reports whether any element currently holds focus.
func (m *Manager) HasFocus() bool {
	return m.set
}

// Path returns a copy of the current focus path, or nil without focus.
func (m *Manager) Path() []int {
	if !m.set {
		return nil
	}
	out := make([]int, len(m.path))
	copy(out, m.path)
	return out
}

// Focused resolves the focused element in the given tree, or nil.
func (m *Manager) Focused(root element.Element) element.Element {
	if !m.set {
		return nil
	}
	return element.Resolve(root, m.path)
}

// Set moves focus to the element addressed by path. The target must
// resolve to an enabled element that wants focus; otherwise the call
// reports a contract error and leaves focus untouched. Setting the
// current path again is a no-op.
func (m *Manager) Set(root element.Element, path []int) bool {
	if m.set && samePath(m.path, path) {
		return true
	}
	target := element.Resolve(root, path)
	if target == nil {
		errors.Report(&errors.UIError{
			Op:   "focus.Manager.Set",
			Kind: errors.KindContract,
			Err:  errDanglingPath,
		})
		return false
	}
	f, ok := target.(element.Focusable)
	if !ok || !f.WantsFocus() || !target.Enabled() {
		errors.Report(&errors.UIError{
			Op:   "focus.Manager.Set",
			Kind: errors.KindContract,
			Err:  errNotFocusable,
		})
		return false
	}
	m.end(root)
	f.BeginFocus()
	m.path = append(m.path[:0], path...)
	m.set = true
	return true
}

// Clear releases focus. Clearing without focus is a no-op.
func (m *Manager) Clear(root element.Element) {
	if !m.set {
		return
	}
	m.end(root)
	m.path = m.path[:0]
	m.set = false
}

// Validate drops focus if the path no longer resolves to an enabled
// element that wants focus. Call it after mutating the tree.
func (m *Manager) Validate(root element.Element) {
	if !m.set {
		return
	}
	target := element.Resolve(root, m.path)
	if target == nil {
		// The element is gone; there is nothing left to notify.
		m.path = m.path[:0]
		m.set = false
		return
	}
	if !element.WantsFocus(target) || !target.Enabled() {
		m.Clear(root)
	}
}

// OnPath reports whether path addresses the focused element or one of
// its ancestors or descendants.
func (m *Manager) OnPath(path []int) bool {
	if !m.set {
		return false
	}
	n := len(path)
	if len(m.path) < n {
		n = len(m.path)
	}
	for i := 0; i < n; i++ {
		if m.path[i] != path[i] {
			return false
		}
	}
	return true
}

// Next moves focus to the next focusable element in tree order,
// wrapping past the end. Without focus it picks the first. It returns
// false when the tree holds no focusable element.
func (m *Manager) Next(root element.Element) bool {
	return m.step(root, 1)
}

// Prev moves focus to the previous focusable element in tree order,
// wrapping past the front.
func (m *Manager) Prev(root element.Element) bool {
	return m.step(root, -1)
}

func (m *Manager) step(root element.Element, dir int) bool {
	paths := collectFocusable(root)
	if len(paths) == 0 {
		return false
	}
	idx := -1
	if m.set {
		for i, p := range paths {
			if samePath(p, m.path) {
				idx = i
				break
			}
		}
	}
	var next int
	switch {
	case idx < 0 && dir > 0:
		next = 0
	case idx < 0:
		next = len(paths) - 1
	default:
		next = (idx + dir + len(paths)) % len(paths)
	}
	return m.Set(root, paths[next])
}

func (m *Manager) end(root element.Element) {
	if !m.set {
		return
	}
	if f, ok := element.Resolve(root, m.path).(element.Focusable); ok {
		f.EndFocus()
	}
}

// collectFocusable gathers, in tree order, the paths of all enabled
// elements that want focus. Focusable nodes are treated as leaves of
// the search.
func collectFocusable(root element.Element) [][]int {
	var out [][]int
	var walk func(e element.Element, path []int)
	walk = func(e element.Element, path []int) {
		if !e.Enabled() {
			return
		}
		if element.WantsFocus(e) {
			p := make([]int, len(path))
			copy(p, path)
			out = append(out, p)
			return
		}
		cont, ok := e.(element.Container)
		if !ok {
			return
		}
		for i := 0; i < cont.ChildCount(); i++ {
			child := cont.ChildAt(i)
			if child == nil {
				continue
			}
			walk(child, append(path, i))
		}
	}
	walk(root, nil)
	return out
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
