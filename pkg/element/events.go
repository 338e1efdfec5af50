package element

import "github.com/mkaudio-company/mkgraphic/pkg/graphics"

// MouseButtonKind identifies a pointer button.
type MouseButtonKind int

const (
	ButtonLeft MouseButtonKind = iota
	ButtonMiddle
	ButtonRight
)

// String returns the button name.
func (b MouseButtonKind) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	}
	return "unknown"
}

// Modifiers is a bitmask of modifier keys held during an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// Has reports whether all bits of m are set.
func (mods Modifiers) Has(m Modifiers) bool {
	return mods&m == m
}

// MouseEvent describes a pointer button transition or a captured drag
// movement. Pos is in view coordinates.
type MouseEvent struct {
	Down      bool
	Button    MouseButtonKind
	NumClicks int
	Mods      Modifiers
	Pos       graphics.Point
}

// KeyAction distinguishes key transitions.
type KeyAction int

const (
	KeyPress KeyAction = iota
	KeyRelease
	KeyRepeat
)

// KeyCode identifies a key independent of layout.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeySpace
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyEscape
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// KeyEvent describes a keyboard transition delivered to the focused
// element.
type KeyEvent struct {
	Key    KeyCode
	Action KeyAction
	Mods   Modifiers
}

// TextEvent carries one unit of text input.
type TextEvent struct {
	Rune rune
	Mods Modifiers
}

// CursorStatus describes the hover relationship between the pointer and
// an element.
type CursorStatus int

const (
	// CursorEntering is sent when the pointer first moves over an element.
	CursorEntering CursorStatus = iota

	// CursorHovering is sent while the pointer moves within an element.
	CursorHovering

	// CursorLeaving is sent when the pointer moves off an element.
	CursorLeaving
)

// String returns the status name.
func (s CursorStatus) String() string {
	switch s {
	case CursorEntering:
		return "entering"
	case CursorHovering:
		return "hovering"
	case CursorLeaving:
		return "leaving"
	}
	return "unknown"
}
