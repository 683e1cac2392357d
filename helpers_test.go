package dropdown_test

import (
	"testing"

	"github.com/go-theft-auto/dropdown"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
	lastCmds    int
	lastVerts   int
}

func (m *mockRenderer) Render(dl *dropdown.DrawList) error {
	m.renderCalls++
	m.lastCmds = len(dl.CmdBuffer)
	m.lastVerts = len(dl.VtxBuffer)
	return nil
}

func (m *mockRenderer) FontTextureID() uint32 { return 1 }

func (m *mockRenderer) Resize(width, height int) {}

type rectCall struct {
	area, clip dropdown.Rect
	desc       dropdown.RectDesc
}

type labelCall struct {
	area, clip dropdown.Rect
	desc       dropdown.LabelDesc
	text       string
}

// recorder is a Painter that records every call.
type recorder struct {
	rects  []rectCall
	labels []labelCall
	order  []string
}

func (r *recorder) DrawRect(area, clip dropdown.Rect, d dropdown.RectDesc) {
	r.rects = append(r.rects, rectCall{area, clip, d})
	r.order = append(r.order, "rect")
}

func (r *recorder) DrawLabel(area, clip dropdown.Rect, d dropdown.LabelDesc, text string) {
	r.labels = append(r.labels, labelCall{area, clip, d, text})
	r.order = append(r.order, "label")
}

// filled returns the areas of the recorded rects filled with color.
func (r *recorder) filled(color uint32) []dropdown.Rect {
	var out []dropdown.Rect
	for _, rc := range r.rects {
		if rc.desc.BgColor == color {
			out = append(out, rc.area)
		}
	}
	return out
}

// highlightedBand draws scr and returns the areas of the selected-row boxes.
func highlightedBand(scr *dropdown.Screen) []dropdown.Rect {
	var r recorder
	scr.Draw(&r)
	return r.filled(dropdown.DefaultStyles().Selected.BgColor)
}

// changes counts change notifications.
type changes struct {
	indices []int
}

func (c *changes) handler() dropdown.ChangeHandler {
	return func(_ *dropdown.Control, i int) { c.indices = append(c.indices, i) }
}

// pointer drives a screen with one frame of input per call.
type pointer struct {
	t   *testing.T
	scr *dropdown.Screen
	in  *dropdown.InputState
}

func newPointer(t *testing.T, scr *dropdown.Screen) *pointer {
	return &pointer{t: t, scr: scr, in: dropdown.NewInputState()}
}

func (p *pointer) frame(x, y float32, down bool) {
	p.t.Helper()
	p.in.Reset()
	p.in.SetMousePos(x, y)
	p.in.SetMouseButton(dropdown.MouseButtonLeft, down)
	p.scr.Update(p.in)
}

func (p *pointer) press(x, y float32)   { p.frame(x, y, true) }
func (p *pointer) move(x, y float32)    { p.frame(x, y, true) }
func (p *pointer) release(x, y float32) { p.frame(x, y, false) }

func (p *pointer) click(x, y float32) {
	p.press(x, y)
	p.release(x, y)
}

func (p *pointer) wheel(x, y, dy float32) {
	p.in.Reset()
	p.in.SetMousePos(x, y)
	p.in.SetMouseWheel(0, dy)
	p.scr.Update(p.in)
}
