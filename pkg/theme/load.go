package theme

import (
	stderrors "errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mkaudio-company/mkgraphic/pkg/errors"
	"github.com/mkaudio-company/mkgraphic/pkg/graphics"
)

// file mirrors the optional theme.yaml layout. Absent fields keep the base
// theme's values.
type file struct {
	Base string `yaml:"base,omitempty"` // "dark" (default) or "light"

	Panel  colors  `yaml:"panel"`
	Frame  frame   `yaml:"frame"`
	Button button  `yaml:"button"`
	Text   text    `yaml:"text"`
	Focus  focus   `yaml:"focus"`
	Misc   misc    `yaml:"misc"`
}

type colors struct {
	Color string `yaml:"color,omitempty"`
}

type frame struct {
	Color        string   `yaml:"color,omitempty"`
	HiliteColor  string   `yaml:"hilite_color,omitempty"`
	CornerRadius *float32 `yaml:"corner_radius,omitempty"`
	StrokeWidth  *float32 `yaml:"stroke_width,omitempty"`
}

type button struct {
	Color        string   `yaml:"color,omitempty"`
	CornerRadius *float32 `yaml:"corner_radius,omitempty"`
	Margin       *float32 `yaml:"margin,omitempty"`
}

type text struct {
	LabelColor      string   `yaml:"label_color,omitempty"`
	LabelFontSize   *float32 `yaml:"label_font_size,omitempty"`
	HeadingColor    string   `yaml:"heading_color,omitempty"`
	HeadingFontSize *float32 `yaml:"heading_font_size,omitempty"`
}

type focus struct {
	RingColor string   `yaml:"ring_color,omitempty"`
	RingWidth *float32 `yaml:"ring_width,omitempty"`
}

type misc struct {
	IndicatorColor  string   `yaml:"indicator_color,omitempty"`
	DisabledOpacity *float32 `yaml:"disabled_opacity,omitempty"`
}

// LoadOptional reads a theme file if present. A missing file returns the
// dark defaults and no error.
func LoadOptional(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return Dark(), nil
		}
		return nil, &errors.UIError{
			Op:   "theme.LoadOptional",
			Kind: errors.KindTheme,
			Err:  fmt.Errorf("read %s: %w", path, err),
		}
	}
	return Parse(data)
}

// Parse decodes YAML theme data over the base theme it names.
func Parse(data []byte) (*Theme, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &errors.UIError{
			Op:   "theme.Parse",
			Kind: errors.KindTheme,
			Err:  fmt.Errorf("parse theme: %w", err),
		}
	}

	var t *Theme
	switch strings.ToLower(strings.TrimSpace(f.Base)) {
	case "", "dark":
		t = Dark()
	case "light":
		t = Light()
	default:
		return nil, &errors.UIError{
			Op:   "theme.Parse",
			Kind: errors.KindTheme,
			Err:  fmt.Errorf("unknown base theme %q", f.Base),
		}
	}

	if err := applyColor(&t.PanelColor, f.Panel.Color); err != nil {
		return nil, err
	}
	if err := applyColor(&t.FrameColor, f.Frame.Color); err != nil {
		return nil, err
	}
	if err := applyColor(&t.FrameHiliteColor, f.Frame.HiliteColor); err != nil {
		return nil, err
	}
	applyMetric(&t.FrameCornerRadius, f.Frame.CornerRadius)
	applyMetric(&t.FrameStrokeWidth, f.Frame.StrokeWidth)

	if err := applyColor(&t.ButtonColor, f.Button.Color); err != nil {
		return nil, err
	}
	applyMetric(&t.ButtonCornerRadius, f.Button.CornerRadius)
	applyMetric(&t.ButtonMargin, f.Button.Margin)

	if err := applyColor(&t.LabelFontColor, f.Text.LabelColor); err != nil {
		return nil, err
	}
	applyMetric(&t.LabelFontSize, f.Text.LabelFontSize)
	if err := applyColor(&t.HeadingFontColor, f.Text.HeadingColor); err != nil {
		return nil, err
	}
	applyMetric(&t.HeadingFontSize, f.Text.HeadingFontSize)

	if err := applyColor(&t.FocusRingColor, f.Focus.RingColor); err != nil {
		return nil, err
	}
	applyMetric(&t.FocusRingWidth, f.Focus.RingWidth)

	if err := applyColor(&t.IndicatorColor, f.Misc.IndicatorColor); err != nil {
		return nil, err
	}
	applyMetric(&t.DisabledOpacity, f.Misc.DisabledOpacity)

	return t, nil
}

func applyMetric(dst *float32, v *float32) {
	if v != nil {
		*dst = *v
	}
}

func applyColor(dst *graphics.Color, s string) error {
	if s == "" {
		return nil
	}
	c, err := ParseColor(s)
	if err != nil {
		return err
	}
	*dst = c
	return nil
}

// ParseColor decodes "#RRGGBB" or "#RRGGBBAA" hex notation.
func ParseColor(s string) (graphics.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return 0, &errors.UIError{
			Op:   "theme.ParseColor",
			Kind: errors.KindTheme,
			Err:  fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA", s),
		}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, &errors.UIError{
			Op:   "theme.ParseColor",
			Kind: errors.KindTheme,
			Err:  fmt.Errorf("color %q: %w", s, err),
		}
	}
	if len(hex) == 6 {
		return graphics.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	return graphics.RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
