// Package theme provides the read-only style lookup consumed by elements
// during draw and limits.
package theme

import "github.com/mkaudio-company/mkgraphic/pkg/graphics"

// Theme contains the style configuration for a view.
type Theme struct {
	// Panels and frames.
	PanelColor        graphics.Color
	FrameColor        graphics.Color
	FrameHiliteColor  graphics.Color
	FrameCornerRadius float32
	FrameStrokeWidth  float32

	// Buttons.
	ButtonColor        graphics.Color
	ButtonCornerRadius float32
	ButtonMargin       float32

	// Text.
	LabelFontSize    float32
	LabelFontColor   graphics.Color
	HeadingFontSize  float32
	HeadingFontColor graphics.Color

	// Focus and state.
	FocusRingColor  graphics.Color
	FocusRingWidth  float32
	IndicatorColor  graphics.Color
	DisabledOpacity float32
}

// Dark returns the default dark theme.
func Dark() *Theme {
	return &Theme{
		PanelColor:         graphics.RGB(0x30, 0x34, 0x38),
		FrameColor:         graphics.RGB(0x50, 0x54, 0x58),
		FrameHiliteColor:   graphics.RGB(0x70, 0x74, 0x78),
		FrameCornerRadius:  3,
		FrameStrokeWidth:   1,
		ButtonColor:        graphics.RGB(0x46, 0x4a, 0x50),
		ButtonCornerRadius: 4,
		ButtonMargin:       8,
		LabelFontSize:      14,
		LabelFontColor:     graphics.RGBA(0xeb, 0xeb, 0xeb, 0xf0),
		HeadingFontSize:    16,
		HeadingFontColor:   graphics.RGBA(0xeb, 0xeb, 0xeb, 0xf0),
		FocusRingColor:     graphics.RGBA(0x3c, 0x9c, 0xf0, 0xc0),
		FocusRingWidth:     2,
		IndicatorColor:     graphics.RGB(0x3c, 0x9c, 0xf0),
		DisabledOpacity:    0.4,
	}
}

// Light returns the default light theme.
func Light() *Theme {
	return &Theme{
		PanelColor:         graphics.RGB(0xe8, 0xe8, 0xe8),
		FrameColor:         graphics.RGB(0xb0, 0xb0, 0xb0),
		FrameHiliteColor:   graphics.RGB(0x80, 0x80, 0x80),
		FrameCornerRadius:  3,
		FrameStrokeWidth:   1,
		ButtonColor:        graphics.RGB(0xd0, 0xd0, 0xd0),
		ButtonCornerRadius: 4,
		ButtonMargin:       8,
		LabelFontSize:      14,
		LabelFontColor:     graphics.RGB(0x20, 0x20, 0x20),
		HeadingFontSize:    16,
		HeadingFontColor:   graphics.RGB(0x10, 0x10, 0x10),
		FocusRingColor:     graphics.RGBA(0x28, 0x78, 0xd0, 0xc0),
		FocusRingWidth:     2,
		IndicatorColor:     graphics.RGB(0x28, 0x78, 0xd0),
		DisabledOpacity:    0.4,
	}
}

// Color looks up a color by style key. Unknown keys return the label color
// so a misspelled key is visible rather than invisible.
func (t *Theme) Color(key string) graphics.Color {
	switch key {
	case "panel":
		return t.PanelColor
	case "frame":
		return t.FrameColor
	case "frame.hilite":
		return t.FrameHiliteColor
	case "button":
		return t.ButtonColor
	case "label":
		return t.LabelFontColor
	case "heading":
		return t.HeadingFontColor
	case "focus.ring":
		return t.FocusRingColor
	case "indicator":
		return t.IndicatorColor
	default:
		return t.LabelFontColor
	}
}

// Metric looks up a scalar metric by style key. Unknown keys return zero.
func (t *Theme) Metric(key string) float32 {
	switch key {
	case "frame.corner_radius":
		return t.FrameCornerRadius
	case "frame.stroke_width":
		return t.FrameStrokeWidth
	case "button.corner_radius":
		return t.ButtonCornerRadius
	case "button.margin":
		return t.ButtonMargin
	case "label.font_size":
		return t.LabelFontSize
	case "heading.font_size":
		return t.HeadingFontSize
	case "focus.ring_width":
		return t.FocusRingWidth
	case "disabled_opacity":
		return t.DisabledOpacity
	default:
		return 0
	}
}
