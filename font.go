package dropdown

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Font measures text for layout. The dropdown never rasterizes glyphs itself;
// it only needs line metrics to size the overlay and to hit-test rows.
type Font interface {
	// LineHeight returns the height of one line of text.
	LineHeight() float32

	// TextWidth returns the advance width of a single line.
	TextWidth(s string) float32
}

// CellFont is a fixed-cell bitmap font such as the 8x8 font of the OpenGL
// backend. Wide runes (CJK, emoji) take two cells.
type CellFont struct {
	CellWidth  float32
	CellHeight float32
	Scale      float32 // 0 means 1
}

// DefaultFont returns the 8x8 cell font used by the OpenGL backend.
func DefaultFont() CellFont {
	return CellFont{CellWidth: 8, CellHeight: 8, Scale: 1}
}

func (f CellFont) scale() float32 {
	if f.Scale == 0 {
		return 1
	}
	return f.Scale
}

// LineHeight returns the scaled cell height.
func (f CellFont) LineHeight() float32 {
	return f.CellHeight * f.scale()
}

// TextWidth returns the number of cells in s times the scaled cell width.
func (f CellFont) TextWidth(s string) float32 {
	return float32(runewidth.StringWidth(s)) * f.CellWidth * f.scale()
}

// FaceFont measures text with a golang.org/x/image font face.
type FaceFont struct {
	face font.Face
}

// NewFaceFont wraps a font face.
func NewFaceFont(face font.Face) *FaceFont {
	return &FaceFont{face: face}
}

// BasicFont returns the 7x13 face from golang.org/x/image.
func BasicFont() *FaceFont {
	return NewFaceFont(basicfont.Face7x13)
}

// LineHeight returns the face's recommended line height.
func (f *FaceFont) LineHeight() float32 {
	return fixedToFloat(f.face.Metrics().Height)
}

// TextWidth returns the advance of s in the face.
func (f *FaceFont) TextWidth(s string) float32 {
	return fixedToFloat(font.MeasureString(f.face, s))
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// MeasureLines returns the size of a `\n`-delimited label: the widest line,
// and n lines of f's height separated by lineSpace.
func MeasureLines(f Font, text string, lineSpace float32) Vec2 {
	lines := strings.Split(text, "\n")
	var w float32
	for _, line := range lines {
		w = maxf(w, f.TextWidth(line))
	}
	n := float32(len(lines))
	return Vec2{X: w, Y: n*f.LineHeight() + (n-1)*lineSpace}
}
