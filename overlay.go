package dropdown

// Sizes of the records an overlay takes from the screen allocator: the
// scrollable surface and the attributes linking it to its owner.
const (
	overlaySurfaceBytes = 96
	overlayAttrBytes    = 16
)

// overlay is the floating option list of an open control. It holds no option
// data of its own: the label is the owner's store text, read through store
// on every draw and hit test.
type overlay struct {
	owner Handle       // weak reference to the control
	store *OptionStore // borrowed from the owner

	surface []byte
	attrs   []byte

	rect    Rect
	dir     Direction
	list    PartStyle
	font    Font
	label   Vec2 // label size
	scrollY float32
	rtl     bool
}

// newOverlay takes the overlay records from alloc. On failure nothing is
// left allocated.
func newOverlay(alloc Allocator, owner Handle, store *OptionStore) (*overlay, error) {
	surface, err := alloc.Alloc(overlaySurfaceBytes)
	if err != nil {
		return nil, err
	}
	attrs, err := alloc.Alloc(overlayAttrBytes)
	if err != nil {
		alloc.Free(surface)
		return nil, err
	}
	return &overlay{owner: owner, store: store, surface: surface, attrs: attrs}, nil
}

// release returns the overlay records to alloc.
func (ov *overlay) release(alloc Allocator) {
	if ov.attrs != nil {
		alloc.Free(ov.attrs)
		ov.attrs = nil
	}
	if ov.surface != nil {
		alloc.Free(ov.surface)
		ov.surface = nil
	}
}

func (ov *overlay) lineHeight() float32 { return ov.font.LineHeight() }

func (ov *overlay) lineSpace() float32 { return ov.list.LineSpace }

// inner returns the content area inside the list padding.
func (ov *overlay) inner() Rect {
	p := ov.list.Padding
	return Rect{
		X: ov.rect.X + p.Left,
		Y: ov.rect.Y + p.Top,
		W: maxf(ov.rect.W-p.Horizontal(), 0),
		H: maxf(ov.rect.H-p.Vertical(), 0),
	}
}

// labelArea returns the label rectangle in screen coordinates, scrolled.
// A right-to-left label is aligned to the right edge of the content area.
func (ov *overlay) labelArea() Rect {
	in := ov.inner()
	x := in.X
	if ov.rtl {
		x = in.Right() - ov.label.X
	}
	return Rect{X: x, Y: in.Y - ov.scrollY, W: ov.label.X, H: ov.label.Y}
}

// maxScroll returns the largest scroll offset that keeps content visible.
func (ov *overlay) maxScroll() float32 {
	return maxf(ov.label.Y-ov.inner().H, 0)
}

// scrollable reports whether the label is taller than the visible area.
func (ov *overlay) scrollable() bool { return ov.maxScroll() > 0 }

// scrollTo sets the scroll offset, clamped to the content.
func (ov *overlay) scrollTo(y float32) {
	ov.scrollY = clampf(y, 0, ov.maxScroll())
}

// scrollBy moves the content by dy.
func (ov *overlay) scrollBy(dy float32) {
	ov.scrollTo(ov.scrollY + dy)
}

// revealRow scrolls so row i is at the top, without overscrolling.
func (ov *overlay) revealRow(i int) {
	ov.scrollTo(ScrollToSelected(ov.label.Y, ov.inner().H, i, ov.lineHeight(), ov.lineSpace()))
}

// rowAt returns the row under screen y, clamped to the option range.
func (ov *overlay) rowAt(y float32) int {
	i := IndexAt(y-ov.labelArea().Y, ov.lineHeight(), ov.lineSpace())
	if n := ov.store.Count(); i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// rowBand returns the highlight band of row i in screen coordinates.
func (ov *overlay) rowBand(i int) Rect {
	return RowBand(i, ov.labelArea().Y, ov.rect.X, ov.rect.Right(), ov.lineHeight(), ov.lineSpace())
}

// draw paints the list, the pressed and selected rows, and the label.
func (ov *overlay) draw(p Painter, clip Rect, styles *Styles) {
	area, ok := ov.rect.Intersect(clip)
	if !ok {
		return
	}
	p.DrawRect(ov.rect, area, rectDesc(ov.list))

	content, ok := ov.inner().Intersect(area)
	if !ok {
		return
	}

	text := ov.store.Text()
	label := LabelDesc{Color: ov.list.TextColor, Font: ov.font, LineSpace: ov.lineSpace()}
	if ov.rtl {
		label.Align = AlignRight
	}

	pressed, hasPressed := ov.store.Preview().Get()
	selected := ov.store.Pending()
	if hasPressed {
		ov.drawBox(p, area, pressed, styles.SelectedPressed)
	}
	ov.drawBox(p, area, selected, styles.Selected)

	p.DrawLabel(ov.labelArea(), content, label, text)

	// Re-draw the label clipped to each box in the box's text color.
	if hasPressed {
		ov.drawBoxLabel(p, content, pressed, styles.SelectedPressed, label, text)
	}
	ov.drawBoxLabel(p, content, selected, styles.Selected, label, text)
}

func (ov *overlay) drawBox(p Painter, clip Rect, row int, s PartStyle) {
	if row < 0 || row >= ov.store.Count() {
		return
	}
	band := ov.rowBand(row)
	if c, ok := band.Intersect(clip); ok {
		p.DrawRect(band, c, rectDesc(s))
	}
}

func (ov *overlay) drawBoxLabel(p Painter, clip Rect, row int, s PartStyle, label LabelDesc, text string) {
	if row < 0 || row >= ov.store.Count() {
		return
	}
	c, ok := ov.rowBand(row).Intersect(clip)
	if !ok {
		return
	}
	label.Color = s.TextColor
	p.DrawLabel(ov.labelArea(), c, label, text)
}
