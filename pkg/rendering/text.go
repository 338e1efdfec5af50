package rendering

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/mkaudio-company/mkgraphic/pkg/errors"
	"github.com/mkaudio-company/mkgraphic/pkg/graphics"
)

const (
	// defaultFontSize is used when no font size is specified.
	defaultFontSize = 14

	// faceDPI is the resolution text is shaped at. Coordinates are logical
	// pixels, so shaping happens at 72 dpi and the backend applies scale.
	faceDPI = 72
)

// TextLayout is a measured, ready-to-draw run of text.
//
// Positions passed to Canvas.DrawText are baseline origins; Ascent and
// Descent let callers place the baseline within a bounds rectangle.
type TextLayout struct {
	Text       string
	Size       float32
	Extent     graphics.Extent
	Ascent     float32
	Descent    float32
	LineHeight float32

	// Advances holds the per-rune advance widths, in rune order.
	Advances []float32

	// Face is the shaping face, for backends that rasterize directly.
	Face font.Face
}

// IndexAt returns the rune index whose advance span contains x, for caret
// placement. x past the end returns len(Advances).
func (l *TextLayout) IndexAt(x float32) int {
	pos := float32(0)
	for i, adv := range l.Advances {
		if x < pos+adv*0.5 {
			return i
		}
		pos += adv
	}
	return len(l.Advances)
}

// TextShaper measures and shapes text synchronously. Elements consume it
// during Limits, so shaping must be cheap; faces are cached per size.
type TextShaper struct {
	mu    sync.Mutex
	font  *opentype.Font
	faces map[float32]font.Face
}

// NewTextShaper returns a shaper backed by the bundled Go Regular font.
func NewTextShaper() (*TextShaper, error) {
	return NewTextShaperFromTTF(goregular.TTF)
}

// NewTextShaperFromTTF returns a shaper for the given TTF/OTF font data.
func NewTextShaperFromTTF(data []byte) (*TextShaper, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, &errors.UIError{
			Op:   "rendering.NewTextShaperFromTTF",
			Kind: errors.KindFont,
			Err:  fmt.Errorf("parse font: %w", err),
		}
	}
	return &TextShaper{font: f, faces: make(map[float32]font.Face)}, nil
}

// Layout shapes a single run of text at the given size. A zero or negative
// size uses the default.
func (s *TextShaper) Layout(text string, size float32) *TextLayout {
	if size <= 0 {
		size = defaultFontSize
	}
	face := s.face(size)
	if face == nil {
		return &TextLayout{Text: text, Size: size}
	}

	metrics := face.Metrics()
	ascent := fixedToFloat(metrics.Ascent)
	descent := fixedToFloat(metrics.Descent)
	lineHeight := fixedToFloat(metrics.Height)
	if lineHeight == 0 {
		lineHeight = ascent + descent
	}

	advances := make([]float32, 0, len(text))
	width := float32(0)
	prev := rune(-1)
	for _, r := range text {
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			// Unknown rune shapes as the replacement glyph.
			adv, _ = face.GlyphAdvance('�')
		}
		a := fixedToFloat(adv)
		if prev >= 0 {
			a += fixedToFloat(face.Kern(prev, r))
		}
		advances = append(advances, a)
		width += a
		prev = r
	}

	return &TextLayout{
		Text:       text,
		Size:       size,
		Extent:     graphics.Extent{Width: width, Height: lineHeight},
		Ascent:     ascent,
		Descent:    descent,
		LineHeight: lineHeight,
		Advances:   advances,
		Face:       face,
	}
}

// Measure returns just the extent of text at the given size.
func (s *TextShaper) Measure(text string, size float32) graphics.Extent {
	return s.Layout(text, size).Extent
}

func (s *TextShaper) face(size float32) font.Face {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     faceDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		// A parsed font that cannot produce a face at a sane size is a
		// contract error; report and fall back to the default size face.
		errors.Report(&errors.UIError{
			Op:   "rendering.TextShaper.face",
			Kind: errors.KindFont,
			Err:  fmt.Errorf("size %v: %w", size, err),
		})
		if size != defaultFontSize {
			return s.faceLocked(defaultFontSize)
		}
		return nil
	}
	s.faces[size] = f
	return f
}

func (s *TextShaper) faceLocked(size float32) font.Face {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     faceDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil
	}
	s.faces[size] = f
	return f
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
