package dropdown

import "math"

// LineClipper calculates the range of label lines that intersect a clip
// rectangle, so a long scrolled option list only emits its visible glyphs.
//
// Usage:
//
//	clipper := NewLineClipper(len(lines), pitch, area.Y, clip)
//	for i := clipper.StartIdx; i < clipper.EndIdx; i++ {
//	    y := clipper.LineY(i, area.Y)
//	    // Draw line i at y
//	}
type LineClipper struct {
	StartIdx   int     // First visible line (inclusive)
	EndIdx     int     // Last visible line (exclusive)
	Pitch      float32 // Line height plus line spacing
	TotalLines int
}

// NewLineClipper returns the lines of a label starting at top that fall
// inside clip.
func NewLineClipper(totalLines int, pitch, top float32, clip Rect) LineClipper {
	c := LineClipper{Pitch: pitch, TotalLines: totalLines}
	if totalLines == 0 || pitch <= 0 {
		c.EndIdx = totalLines
		return c
	}

	c.StartIdx = int(math.Floor(float64((clip.Y - top) / pitch)))
	c.EndIdx = int(math.Ceil(float64((clip.Bottom() - top) / pitch)))

	if c.StartIdx < 0 {
		c.StartIdx = 0
	}
	if c.EndIdx > totalLines {
		c.EndIdx = totalLines
	}
	if c.StartIdx > c.EndIdx {
		c.StartIdx = c.EndIdx
	}
	return c
}

// ShouldRender returns true if line idx intersects the clip rectangle.
func (c LineClipper) ShouldRender(idx int) bool {
	return idx >= c.StartIdx && idx < c.EndIdx
}

// LineY returns the top of line idx for a label starting at top.
func (c LineClipper) LineY(idx int, top float32) float32 {
	return top + float32(idx)*c.Pitch
}

// VisibleCount returns the number of lines that should be rendered.
func (c LineClipper) VisibleCount() int {
	return c.EndIdx - c.StartIdx
}
