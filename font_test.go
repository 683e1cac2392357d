package dropdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/dropdown"
)

func TestCellFont(t *testing.T) {
	f := dropdown.DefaultFont()
	assert.Equal(t, float32(8), f.LineHeight())
	assert.Equal(t, float32(24), f.TextWidth("abc"))
	assert.Equal(t, float32(32), f.TextWidth("日本"), "wide runes take two cells")

	f.Scale = 2
	assert.Equal(t, float32(16), f.LineHeight())
	assert.Equal(t, float32(48), f.TextWidth("abc"))
}

func TestBasicFont(t *testing.T) {
	f := dropdown.BasicFont()
	assert.Equal(t, float32(13), f.LineHeight())
	assert.Equal(t, float32(21), f.TextWidth("abc"))
}

func TestMeasureLines(t *testing.T) {
	f := dropdown.DefaultFont()
	assert.Equal(t, dropdown.Vec2{X: 8, Y: 32}, dropdown.MeasureLines(f, "A\nB\nC", 4))
	assert.Equal(t, dropdown.Vec2{X: 40, Y: 8}, dropdown.MeasureLines(f, "Apple", 4))
	assert.Equal(t, dropdown.Vec2{X: 48, Y: 20}, dropdown.MeasureLines(f, "Banana\n", 4))
}

func TestParseDirection(t *testing.T) {
	for _, d := range []dropdown.Direction{dropdown.DirDown, dropdown.DirUp, dropdown.DirLeft, dropdown.DirRight} {
		got, ok := dropdown.ParseDirection(d.String())
		assert.True(t, ok)
		assert.Equal(t, d, got)
	}
	got, ok := dropdown.ParseDirection("sideways")
	assert.False(t, ok)
	assert.Equal(t, dropdown.DirDown, got)
}

func TestBudgetAllocator(t *testing.T) {
	a := dropdown.NewBudgetAllocator(10)

	buf, err := a.Alloc(6)
	assert.NoError(t, err)
	assert.Len(t, buf, 6)
	assert.Equal(t, 4, a.Remaining())

	_, err = a.Alloc(5)
	assert.ErrorIs(t, err, dropdown.ErrNoMemory)
	assert.Equal(t, 6, a.Used(), "a refused request takes nothing")

	a.Free(buf)
	assert.Equal(t, 0, a.Used())

	_, err = dropdown.HeapAllocator{}.Alloc(-1)
	assert.ErrorIs(t, err, dropdown.ErrNoMemory)
}

func TestStylesPart(t *testing.T) {
	s := dropdown.DefaultStyles()
	assert.Equal(t, s.Main, s.Part(dropdown.PartMain))
	assert.Equal(t, s.List, s.Part(dropdown.PartList))
	assert.Equal(t, s.Selected, s.Part(dropdown.PartSelected))
	assert.Equal(t, dropdown.Uniform(6), s.Main.Padding)
	assert.Equal(t, float32(4), s.List.LineSpace)
}
