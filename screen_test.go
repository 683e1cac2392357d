package dropdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/dropdown"
)

func newNineRows(t *testing.T, scr *dropdown.Screen) *dropdown.Control {
	t.Helper()
	// Nine rows, 104 high, shown 24 at a time: the overlay spans y 30..70.
	return dropdown.New(scr,
		dropdown.WithOptions("1\n2\n3\n4\n5\n6\n7\n8\n9"),
		dropdown.WithPos(10, 10),
		dropdown.WithMaxHeight(40),
	)
}

func TestPointerClickSelectsRow(t *testing.T) {
	scr := dropdown.NewScreen()
	c, ch := newControl(t, scr)
	p := newPointer(t, scr)

	p.click(20, 15)
	require.True(t, c.IsOpen())

	p.click(20, 54)
	assert.False(t, c.IsOpen())
	assert.Equal(t, 1, c.Selected())
	assert.Equal(t, "B", c.SelectedString())
	assert.Equal(t, []int{1}, ch.indices)
}

func TestPointerClickTogglesButton(t *testing.T) {
	scr := dropdown.NewScreen()
	c, ch := newControl(t, scr)
	p := newPointer(t, scr)

	p.click(20, 15)
	assert.True(t, c.IsOpen())
	p.click(20, 15)
	assert.False(t, c.IsOpen())
	assert.Empty(t, ch.indices)
}

func TestPointerLeavingControlLosesPress(t *testing.T) {
	scr := dropdown.NewScreen()
	c, _ := newControl(t, scr)
	p := newPointer(t, scr)

	p.press(20, 15)
	p.move(20, 200)
	p.release(20, 200)
	assert.False(t, c.IsOpen())

	p.click(20, 15)
	assert.True(t, c.IsOpen())
}

func TestPointerClickAwayCancels(t *testing.T) {
	scr := dropdown.NewScreen()
	c, ch := newControl(t, scr)
	p := newPointer(t, scr)

	p.click(20, 15)
	require.True(t, c.IsOpen())
	p.click(500, 500)

	assert.False(t, c.IsOpen())
	assert.Equal(t, 0, scr.OpenOverlays())
	assert.Empty(t, ch.indices)
}

func TestPointerOtherControlTakesOver(t *testing.T) {
	scr := dropdown.NewScreen()
	a, _ := newControl(t, scr)
	b, _ := newControl(t, scr, dropdown.WithPos(10, 300))
	p := newPointer(t, scr)

	p.click(20, 15)
	require.True(t, a.IsOpen())
	p.click(20, 305)

	assert.False(t, a.IsOpen())
	assert.True(t, b.IsOpen())
	assert.Equal(t, 1, scr.OpenOverlays())
}

func TestOverlayIsAboveControls(t *testing.T) {
	scr := dropdown.NewScreen()
	a, ch := newControl(t, scr)
	b, _ := newControl(t, scr, dropdown.WithPos(10, 40))
	p := newPointer(t, scr)

	p.click(20, 15)
	require.True(t, a.IsOpen())
	p.click(20, 54)

	assert.Equal(t, []int{1}, ch.indices)
	assert.False(t, b.IsOpen())
}

func TestPointerDragScrollsWithoutSelecting(t *testing.T) {
	scr := dropdown.NewScreen()
	c := newNineRows(t, scr)
	var notified int
	c.OnValueChanged(func(*dropdown.Control, int) { notified++ })
	require.NoError(t, c.Open())
	p := newPointer(t, scr)

	p.press(20, 60)
	p.move(20, 55)
	pl, _ := c.Overlay()
	assert.Equal(t, float32(0), pl.ScrollY, "below the threshold nothing scrolls")

	p.move(20, 40)
	pl, _ = c.Overlay()
	assert.Equal(t, float32(20), pl.ScrollY)

	p.release(20, 40)
	assert.True(t, c.IsOpen(), "the release ending a scroll selects nothing")
	assert.Equal(t, 0, c.Selected())
	assert.Zero(t, notified)
}

func TestPointerDragOnShortListSelects(t *testing.T) {
	scr := dropdown.NewScreen()
	c, ch := newControl(t, scr)
	require.NoError(t, c.Open())
	p := newPointer(t, scr)

	p.press(20, 40)
	p.move(20, 66)
	p.release(20, 66)

	assert.False(t, c.IsOpen())
	assert.Equal(t, []int{2}, ch.indices)
}

func TestWheelScrollsByRows(t *testing.T) {
	scr := dropdown.NewScreen()
	c := newNineRows(t, scr)
	require.NoError(t, c.Open())
	p := newPointer(t, scr)

	p.wheel(20, 50, -1)
	pl, _ := c.Overlay()
	assert.Equal(t, float32(12), pl.ScrollY)

	p.wheel(20, 50, -10)
	pl, _ = c.Overlay()
	assert.Equal(t, float32(80), pl.ScrollY, "clamped to the last row")

	p.wheel(20, 50, 10)
	pl, _ = c.Overlay()
	assert.Equal(t, float32(0), pl.ScrollY)

	p.wheel(500, 500, -1)
	pl, _ = c.Overlay()
	assert.Equal(t, float32(0), pl.ScrollY, "wheel outside the overlay")
}

func TestWheelDropsPressedRow(t *testing.T) {
	scr := dropdown.NewScreen()
	c := newNineRows(t, scr)
	require.NoError(t, c.Open())
	p := newPointer(t, scr)
	pressedColor := dropdown.DefaultStyles().SelectedPressed.BgColor

	p.press(20, 50)
	var before recorder
	scr.Draw(&before)
	assert.Equal(t, []dropdown.Rect{{X: 10, Y: 48, W: 150, H: 12}}, before.filled(pressedColor))

	p.wheel(20, 50, -1)
	pl, _ := c.Overlay()
	assert.Equal(t, float32(12), pl.ScrollY)

	var after recorder
	scr.Draw(&after)
	assert.Empty(t, after.filled(pressedColor), "no pressed row after a wheel scroll")
}

func TestScrolledOverlayHitTest(t *testing.T) {
	scr := dropdown.NewScreen()
	c := newNineRows(t, scr)
	require.NoError(t, c.SetSelected(5))
	require.NoError(t, c.Open())

	// Row 5 sits at the top of the content area.
	require.NoError(t, c.HandleEvent(dropdown.Event{Kind: dropdown.EventOverlayReleased, Indev: dropdown.PointerAt(20, 40)}))
	assert.Equal(t, 5, c.Selected())
}

func TestKeyboardInputRoutesToGroup(t *testing.T) {
	scr := dropdown.NewScreen()
	g := dropdown.NewGroup(scr)
	scr.SetInputGroup(g)
	c, ch := newControl(t, scr, dropdown.WithGroup(g))
	in := dropdown.NewInputState()

	for _, k := range []dropdown.Key{dropdown.KeyDown, dropdown.KeyDown, dropdown.KeyDown, dropdown.KeyEnter} {
		in.Reset()
		in.SetKey(k, true)
		scr.Update(in)
		in.Reset()
		in.SetKey(k, false)
		scr.Update(in)
	}

	assert.False(t, c.IsOpen())
	assert.Equal(t, []int{2}, ch.indices)
}

func TestKeyboardEnterCommitsOnRelease(t *testing.T) {
	scr := dropdown.NewScreen()
	g := dropdown.NewGroup(scr)
	scr.SetInputGroup(g)
	c, ch := newControl(t, scr, dropdown.WithGroup(g))
	in := dropdown.NewInputState()
	require.NoError(t, g.SendKey(dropdown.KeyDown))
	require.NoError(t, g.SendKey(dropdown.KeyDown))

	in.Reset()
	in.SetKey(dropdown.KeyEnter, true)
	scr.Update(in)
	assert.True(t, c.IsOpen(), "held Enter does not commit")

	in.Reset()
	in.SetKey(dropdown.KeyEnter, false)
	scr.Update(in)
	assert.False(t, c.IsOpen())
	assert.Equal(t, []int{1}, ch.indices)
}

func TestInvalidation(t *testing.T) {
	scr := dropdown.NewScreen()
	c, _ := newControl(t, scr)
	scr.TakeInvalidated()

	require.NoError(t, c.Open())
	pl, _ := c.Overlay()
	assert.Contains(t, scr.TakeInvalidated(), pl.Rect)
	assert.Empty(t, scr.TakeInvalidated())

	c.Close()
	assert.Contains(t, scr.TakeInvalidated(), pl.Rect)
}

func TestDrawClosedButton(t *testing.T) {
	tests := []struct {
		name      string
		opts      []dropdown.Option
		base      dropdown.BaseDir
		text      string
		textX     float32
		symbolX   float32
		hasSymbol bool
	}{
		{"symbol right", []dropdown.Option{dropdown.WithSymbol("v")}, dropdown.BaseDirLTR, "A", 16, 146, true},
		{"symbol left for left direction", []dropdown.Option{dropdown.WithSymbol("v"), dropdown.WithDirection(dropdown.DirLeft)}, dropdown.BaseDirLTR, "A", 146, 16, true},
		{"symbol left for rtl", []dropdown.Option{dropdown.WithSymbol("v")}, dropdown.BaseDirRTL, "A", 146, 16, true},
		{"text override", []dropdown.Option{dropdown.WithSymbol("v"), dropdown.WithText("M")}, dropdown.BaseDirLTR, "M", 16, 146, true},
		{"no symbol", []dropdown.Option{dropdown.WithNoSymbol()}, dropdown.BaseDirLTR, "A", 16, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scr := dropdown.NewScreen(dropdown.WithBaseDir(tt.base))
			newControl(t, scr, tt.opts...)

			var r recorder
			scr.Draw(&r)

			require.Len(t, r.rects, 1)
			assert.Equal(t, dropdown.Rect{X: 10, Y: 10, W: 150, H: 20}, r.rects[0].area)
			assert.Equal(t, dropdown.DefaultStyles().Main.BgColor, r.rects[0].desc.BgColor)

			if !tt.hasSymbol {
				require.Len(t, r.labels, 1)
				assert.Equal(t, tt.text, r.labels[0].text)
				assert.Equal(t, dropdown.AlignCenter, r.labels[0].desc.Align)
				assert.Equal(t, dropdown.Rect{X: 16, Y: 16, W: 138, H: 8}, r.labels[0].area)
				return
			}
			require.Len(t, r.labels, 2)
			assert.Equal(t, tt.text, r.labels[0].text)
			assert.Equal(t, tt.textX, r.labels[0].area.X)
			assert.Equal(t, "v", r.labels[1].text)
			assert.Equal(t, tt.symbolX, r.labels[1].area.X)
		})
	}
}

func TestDrawOpenOverlay(t *testing.T) {
	scr := dropdown.NewScreen()
	g := dropdown.NewGroup(scr)
	newControl(t, scr, dropdown.WithGroup(g), dropdown.WithSymbol("v"))
	require.NoError(t, g.SendKey(dropdown.KeyDown))
	require.NoError(t, g.SendKey(dropdown.KeyDown))

	var r recorder
	scr.Draw(&r)
	styles := dropdown.DefaultStyles()

	assert.Equal(t, []string{"rect", "label", "label", "rect", "rect", "label", "label"}, r.order)

	list := r.rects[1]
	assert.Equal(t, dropdown.Rect{X: 10, Y: 30, W: 150, H: 48}, list.area)
	assert.Equal(t, styles.List.BgColor, list.desc.BgColor)

	box := r.rects[2]
	assert.Equal(t, dropdown.Rect{X: 10, Y: 48, W: 150, H: 12}, box.area)
	assert.Equal(t, styles.Selected.BgColor, box.desc.BgColor)

	label := r.labels[2]
	assert.Equal(t, "A\nB\nC", label.text)
	assert.Equal(t, dropdown.Rect{X: 18, Y: 38, W: 8, H: 32}, label.area)
	assert.Equal(t, styles.List.TextColor, label.desc.Color)

	boxed := r.labels[3]
	assert.Equal(t, dropdown.Rect{X: 18, Y: 48, W: 134, H: 12}, boxed.clip)
	assert.Equal(t, styles.Selected.TextColor, boxed.desc.Color)
}

func TestDrawPressedRow(t *testing.T) {
	scr := dropdown.NewScreen()
	c, _ := newControl(t, scr)
	require.NoError(t, c.Open())
	require.NoError(t, c.HandleEvent(dropdown.Event{Kind: dropdown.EventOverlayPressed, Indev: dropdown.PointerAt(20, 66)}))

	var r recorder
	scr.Draw(&r)
	styles := dropdown.DefaultStyles()

	var pressed *rectCall
	for i := range r.rects {
		if r.rects[i].desc.BgColor == styles.SelectedPressed.BgColor {
			pressed = &r.rects[i]
		}
	}
	require.NotNil(t, pressed)
	assert.Equal(t, dropdown.Rect{X: 10, Y: 60, W: 150, H: 12}, pressed.area)
}

func TestDrawRightToLeftOverlay(t *testing.T) {
	scr := dropdown.NewScreen(dropdown.WithBaseDir(dropdown.BaseDirRTL))
	c, _ := newControl(t, scr)
	require.NoError(t, c.Open())

	var r recorder
	scr.Draw(&r)

	var label *labelCall
	for i := range r.labels {
		if r.labels[i].text == "A\nB\nC" {
			label = &r.labels[i]
			break
		}
	}
	require.NotNil(t, label)
	assert.Equal(t, dropdown.AlignRight, label.desc.Align)
	assert.Equal(t, float32(144), label.area.X)
}

func TestRender(t *testing.T) {
	scr := dropdown.NewScreen()
	c, _ := newControl(t, scr)
	require.NoError(t, c.Open())

	renderer := &mockRenderer{}
	require.NoError(t, scr.Render(renderer))

	assert.Equal(t, 1, renderer.renderCalls)
	assert.Greater(t, renderer.lastCmds, 0)
	assert.Greater(t, renderer.lastVerts, 0)
}
