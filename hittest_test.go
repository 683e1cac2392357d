package dropdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/dropdown"
)

func TestIndexAtBands(t *testing.T) {
	tests := []struct {
		y    float32
		want int
	}{
		{-2, 0},
		{0, 0},
		{9.9, 0},
		{10, 1},
		{21.9, 1},
		{22, 2},
		{33, 2},
		{-2.5, -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, dropdown.IndexAt(tt.y, 8, 4), "y=%v", tt.y)
	}
}

func TestIndexAtMonotonic(t *testing.T) {
	prev := dropdown.IndexAt(0, 8, 4)
	for y := float32(0); y < 200; y += 0.5 {
		i := dropdown.IndexAt(y, 8, 4)
		assert.GreaterOrEqual(t, i, prev, "y=%v", y)
		assert.LessOrEqual(t, i-prev, 1, "y=%v skips a row", y)
		prev = i
	}
}

func TestIndexAtZeroPitch(t *testing.T) {
	assert.Equal(t, 0, dropdown.IndexAt(50, 0, 0))
}

func TestRowBandCentersText(t *testing.T) {
	band := dropdown.RowBand(1, 38, 10, 160, 8, 4)
	assert.Equal(t, dropdown.Rect{X: 10, Y: 48, W: 150, H: 12}, band)

	// The band of each row maps back to that row.
	for i := 0; i < 5; i++ {
		b := dropdown.RowBand(i, 0, 0, 10, 8, 4)
		assert.Equal(t, i, dropdown.IndexAt(b.Y, 8, 4))
		assert.Equal(t, i, dropdown.IndexAt(b.Bottom()-0.01, 8, 4))
	}
}
