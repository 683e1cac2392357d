package dropdown

// IndexAt maps y, relative to the top of the overlay label, to an option
// index for rows of lineHeight separated by lineSpace. Each row's band is
// centered on its text, so the band of row i starts lineSpace/2 above it.
//
// The result is not clamped; y below the last row yields an index >= count.
func IndexAt(y, lineHeight, lineSpace float32) int {
	pitch := lineHeight + lineSpace
	if pitch <= 0 {
		return 0
	}
	return int(floorf((y + lineSpace/2) / pitch))
}

// RowBand returns the highlight band of row index for a label whose first
// line starts at labelTop, spanning x from left to right.
func RowBand(index int, labelTop, left, right, lineHeight, lineSpace float32) Rect {
	pitch := lineHeight + lineSpace
	return Rect{
		X: left,
		Y: labelTop + float32(index)*pitch - lineSpace/2,
		W: right - left,
		H: pitch,
	}
}
