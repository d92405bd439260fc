// Package rendering holds backend-independent text measurement. Hosts
// use it to size text actors so picking bounds match what is drawn.
package rendering

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ranveeraggarwal/dipy/pkg/graphics"
)

// FontManager measures text with a fixed face. The zero value is not
// usable; construct with NewFontManager.
type FontManager struct {
	face       font.Face
	lineHeight float64
}

// NewFontManager wraps a face for measurement.
func NewFontManager(face font.Face) *FontManager {
	m := face.Metrics()
	return &FontManager{
		face:       face,
		lineHeight: fixedToFloat(m.Height),
	}
}

// NewBasicFontManager uses the built-in 7x13 bitmap face. It needs no
// font assets, which keeps headless tests and minimal hosts working.
func NewBasicFontManager() *FontManager {
	return NewFontManager(basicfont.Face7x13)
}

// Face exposes the underlying face for hosts that draw with it.
func (fm *FontManager) Face() font.Face { return fm.face }

// LineHeight returns the face's line advance in pixels.
func (fm *FontManager) LineHeight() float64 { return fm.lineHeight }

// MeasureString returns the advance width of a single line in pixels.
func (fm *FontManager) MeasureString(s string) float64 {
	return fixedToFloat(font.MeasureString(fm.face, s))
}

// MeasureText returns the bounding size of possibly multi-line text.
// Width is the widest line's advance; height is one line advance per
// line.
func (fm *FontManager) MeasureText(text string) graphics.Size {
	if text == "" {
		return graphics.Size{}
	}
	lines := strings.Split(text, "\n")
	var width float64
	for _, line := range lines {
		if w := fm.MeasureString(line); w > width {
			width = w
		}
	}
	return graphics.Size{
		Width:  width,
		Height: fm.lineHeight * float64(len(lines)),
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
