package dropdown

import "fmt"

// Control is a dropdown: a closed button showing the selected option (or an
// override text) and, while open, a floating overlay listing every option.
//
// Usage:
//
//	scr := dropdown.NewScreen()
//	c := dropdown.New(scr,
//	    dropdown.WithOptions("Low\nMedium\nHigh"),
//	    dropdown.OnChange(func(c *dropdown.Control, i int) { applyQuality(i) }),
//	)
//
// The button and the overlay read the same OptionStore, so the text shown
// closed and the row highlighted open always agree.
type Control struct {
	scr    *Screen
	handle Handle
	group  *Group

	store *OptionStore
	state State
	ovH   Handle // open overlay, weak

	rect      Rect
	dir       Direction
	maxHeight float32 // <= 0: unbounded
	text      string  // shown instead of the selection ("" = selection)
	symbol    string  // "" = none
	styles    Styles
	onChange  ChangeHandler

	deleted bool
}

// New creates a control on scr.
func New(scr *Screen, opts ...Option) *Control {
	o := applyOptions(opts)

	c := &Control{
		scr:       scr,
		store:     NewOptionStore(scr.alloc, GetOpt(o, OptProcessor)),
		dir:       GetOpt(o, OptDirection),
		maxHeight: scr.viewport.H * 3 / 4,
		text:      GetOpt(o, OptText),
		symbol:    GetOpt(o, OptSymbol),
		styles:    GetOpt(o, OptStyles),
		onChange:  GetOpt(o, OptOnChange),
	}
	if HasOpt(o, OptMaxHeight) {
		c.maxHeight = GetOpt(o, OptMaxHeight)
	}

	pos := GetOpt(o, OptPos)
	c.rect = Rect{X: pos.X, Y: pos.Y, W: GetOpt(o, OptWidth)}
	c.handle = scr.addControl(c)
	c.refreshHeight()

	if HasOpt(o, OptOptions) {
		if err := c.store.SetOptions(GetOpt(o, OptOptions)); err != nil {
			dropdownLogger.Warn("new control: options not set", "err", err)
		}
	} else {
		c.store.SetOptionsStatic(GetOpt(o, OptStaticOptions))
	}

	if g := GetOpt(o, OptGroup); g != nil {
		g.Add(c)
	}
	return c
}

// alive reports whether c can still be used, logging misuse.
func (c *Control) alive(op string) bool {
	if c.deleted {
		dropdownLogger.Warn("operation on deleted control", "op", op)
		return false
	}
	return true
}

// Handle returns the control's handle on its screen.
func (c *Control) Handle() Handle { return c.handle }

// Group returns the control's focus group, or nil.
func (c *Control) Group() *Group { return c.group }

// =============================================================================
// Options
// =============================================================================

// SetOptions replaces the options with an owned copy of the `\n`-delimited
// text and selects the first one. An open overlay is closed first. On
// allocation failure the control is left without options.
func (c *Control) SetOptions(text string) error {
	if !c.alive("set options") {
		return ErrDeleted
	}
	c.cancel()
	err := c.store.SetOptions(text)
	c.invalidate()
	return err
}

// SetOptionsStatic makes the control display text without copying it.
// text must stay unchanged for the lifetime of the control.
func (c *Control) SetOptionsStatic(text string) {
	if !c.alive("set static options") {
		return
	}
	c.cancel()
	c.store.SetOptionsStatic(text)
	c.invalidate()
}

// AddOption inserts option before position pos, or appends it for PosLast.
// Static options are copied first. On failure nothing changes.
func (c *Control) AddOption(option string, pos int) error {
	if !c.alive("add option") {
		return ErrDeleted
	}
	c.cancel()
	if err := c.store.AddOption(option, pos); err != nil {
		return err
	}
	c.invalidate()
	return nil
}

// ClearOptions removes every option.
func (c *Control) ClearOptions() {
	if !c.alive("clear options") {
		return
	}
	c.cancel()
	c.store.Clear()
	c.invalidate()
}

// Options returns the `\n`-delimited option text.
func (c *Control) Options() string { return c.store.Text() }

// OptionCount returns the number of options.
func (c *Control) OptionCount() int { return c.store.Count() }

// Option returns the option at index i.
func (c *Control) Option(i int) (string, bool) { return c.store.Option(i) }

// =============================================================================
// Selection
// =============================================================================

// SetSelected selects option i, clamped to the last option. It does not
// notify the change handler. An open overlay scrolls to the new selection.
func (c *Control) SetSelected(i int) error {
	if !c.alive("set selected") {
		return ErrDeleted
	}
	changed, err := c.store.SetSelected(i)
	if err != nil {
		dropdownLogger.Warn("set selected: rejected", "index", i, "err", err)
		return err
	}
	if !changed {
		return nil
	}
	if ov, ok := c.overlay(); ok {
		ov.revealRow(c.store.Selected())
		c.invalidateOverlay()
	}
	c.invalidate()
	return nil
}

// Selected returns the selected index.
func (c *Control) Selected() int { return c.store.Selected() }

// SelectedText copies the selected option into buf, NUL-terminated.
// ErrTruncated reports that buf was too small.
func (c *Control) SelectedText(buf []byte) (int, error) {
	if !c.alive("selected text") {
		return 0, ErrDeleted
	}
	return c.store.SelectedText(buf)
}

// SelectedString returns the selected option.
func (c *Control) SelectedString() string { return c.store.SelectedString() }

// OnValueChanged sets the handler called after a commit changed the selection.
func (c *Control) OnValueChanged(fn ChangeHandler) { c.onChange = fn }

// =============================================================================
// Configuration
// =============================================================================

// SetDirection sets the side the overlay opens towards. It applies from the
// next open.
func (c *Control) SetDirection(d Direction) {
	if c.dir == d || !c.alive("set direction") {
		return
	}
	c.dir = d
	c.invalidate()
}

// Direction returns the preferred overlay side.
func (c *Control) Direction() Direction { return c.dir }

// SetMaxHeight bounds the overlay height (<= 0: unbounded). An open overlay
// is rebuilt.
func (c *Control) SetMaxHeight(h float32) {
	if c.maxHeight == h || !c.alive("set max height") {
		return
	}
	c.maxHeight = h
	if c.state == Open {
		c.scr.report(c.rebuild())
	}
}

// MaxHeight returns the overlay height bound.
func (c *Control) MaxHeight() float32 { return c.maxHeight }

// SetText shows text on the closed button instead of the selected option.
// "" shows the selection again.
func (c *Control) SetText(text string) {
	if !c.alive("set text") {
		return
	}
	c.text = text
	c.invalidate()
}

// Text returns the override text, or "".
func (c *Control) Text() string { return c.text }

// SetSymbol sets the symbol drawn on the closed button ("" = none).
func (c *Control) SetSymbol(symbol string) {
	if !c.alive("set symbol") {
		return
	}
	c.symbol = symbol
	c.invalidate()
}

// Symbol returns the closed-state symbol.
func (c *Control) Symbol() string { return c.symbol }

// =============================================================================
// Geometry and style
// =============================================================================

// Rect returns the closed control's screen rectangle.
func (c *Control) Rect() Rect { return c.rect }

// SetPos moves the control. An open overlay is cancelled.
func (c *Control) SetPos(x, y float32) {
	if (c.rect.X == x && c.rect.Y == y) || !c.alive("set pos") {
		return
	}
	c.invalidate()
	c.rect.X, c.rect.Y = x, y
	c.invalidate()
	c.scr.report(c.scr.send(c, Event{Kind: EventCoordChanged}))
}

// SetSize resizes the control. An open overlay is cancelled.
func (c *Control) SetSize(w, h float32) {
	if (c.rect.W == w && c.rect.H == h) || !c.alive("set size") {
		return
	}
	c.invalidate()
	c.rect.W, c.rect.H = w, h
	c.invalidate()
	c.scr.report(c.scr.send(c, Event{Kind: EventCoordChanged}))
}

// SetStyles replaces the part styles. The button height follows the main
// font and padding; an open overlay is rebuilt.
func (c *Control) SetStyles(s Styles) {
	if !c.alive("set styles") {
		return
	}
	c.styles = s
	c.scr.report(c.scr.send(c, Event{Kind: EventStyleChanged}))
}

// Styles returns the part styles.
func (c *Control) Styles() Styles { return c.styles }

// Style returns the style of part p.
func (c *Control) Style(p Part) PartStyle { return c.styles.Part(p) }

// =============================================================================
// Open / close
// =============================================================================

// Open shows the overlay. Opening an open control does nothing.
func (c *Control) Open() error {
	if !c.alive("open") {
		return ErrDeleted
	}
	return c.openOverlay()
}

// Close hides the overlay, discarding the highlighted row. Closing a closed
// control does nothing.
func (c *Control) Close() {
	if c.state == Open {
		c.cancel()
	}
}

// IsOpen reports whether the overlay is shown.
func (c *Control) IsOpen() bool { return c.state == Open }

// Overlay returns the open overlay's resolved side, rectangle and scroll
// offset.
func (c *Control) Overlay() (Placement, bool) {
	ov, ok := c.overlay()
	if !ok {
		return Placement{}, false
	}
	return Placement{Dir: ov.dir, Rect: ov.rect, ScrollY: ov.scrollY}, true
}

// State returns the overlay state.
func (c *Control) State() State { return c.state }

// HandleEvent delivers ev through the screen's event queue.
func (c *Control) HandleEvent(ev Event) error {
	if !c.alive("handle event") {
		return ErrDeleted
	}
	return c.scr.send(c, ev)
}

// Delete closes the overlay, frees owned options and removes the control
// from its screen and group.
func (c *Control) Delete() {
	if c.deleted {
		return
	}
	c.cancel()
	c.store.Clear()
	if c.group != nil {
		c.group.Remove(c)
	}
	c.invalidate()
	c.scr.removeControl(c)
	c.deleted = true
	dropdownLogger.Debug("control deleted")
}

// =============================================================================
// Transitions
// =============================================================================

func (c *Control) overlay() (*overlay, bool) {
	return c.scr.overlays.Get(c.ovH)
}

// fontOf returns the font of a part.
func (c *Control) fontOf(s PartStyle) Font {
	if s.Font != nil {
		return s.Font
	}
	return c.scr.font
}

// openOverlay creates and places the overlay. On failure the control stays
// closed and nothing is left allocated.
func (c *Control) openOverlay() error {
	if c.state == Open {
		return nil
	}
	ov, err := newOverlay(c.scr.alloc, c.handle, c.store)
	if err != nil {
		dropdownLogger.Warn("open: overlay allocation failed", "err", err)
		return fmt.Errorf("open overlay: %w", err)
	}

	list := c.styles.List
	font := c.fontOf(list)
	ov.list = list
	ov.font = font
	ov.label = MeasureLines(font, c.store.Text(), list.LineSpace)
	ov.rtl = c.scr.baseDir == BaseDirRTL

	pl := Place(PlacementInput{
		Control:    c.rect,
		Viewport:   c.scr.viewport,
		Dir:        c.dir,
		MaxHeight:  c.maxHeight,
		Content:    ov.label,
		Padding:    list.Padding,
		Selected:   c.store.Selected(),
		LineHeight: font.LineHeight(),
		LineSpace:  list.LineSpace,
	})
	ov.rect, ov.dir = pl.Rect, pl.Dir
	ov.scrollTo(pl.ScrollY)

	c.store.Discard()
	c.store.SetPreview(NoIndex)
	c.ovH = c.scr.overlays.Insert(ov)
	c.state = Open
	c.invalidateOverlay()
	dropdownLogger.Debug("opened", "dir", pl.Dir, "rect", pl.Rect, "scroll", pl.ScrollY)
	return nil
}

// closeOverlay destroys the overlay. The overlay's delete hook drops the
// handle and marks the control closed.
func (c *Control) closeOverlay() {
	if c.state != Open {
		return
	}
	c.store.SetPreview(NoIndex)
	c.scr.overlays.Delete(c.ovH)
	c.ovH = Handle{}
	c.state = Closed
}

// rebuild re-creates an open overlay for changed geometry or metrics,
// keeping the highlighted row.
func (c *Control) rebuild() error {
	pending := c.store.Pending()
	c.closeOverlay()
	if err := c.openOverlay(); err != nil {
		c.store.Discard()
		return err
	}
	c.store.SetPending(pending)
	if ov, ok := c.overlay(); ok {
		ov.revealRow(pending)
	}
	return nil
}

// cancel closes without selecting: the highlighted row is discarded.
func (c *Control) cancel() {
	if c.state != Open {
		return
	}
	c.store.Discard()
	c.closeOverlay()
	c.invalidate()
	dropdownLogger.Debug("cancelled", "selected", c.store.Selected())
}

// commit selects the highlighted row and closes. The change handler runs
// only if the selection changed. Group editing mode ends.
func (c *Control) commit() {
	changed := c.store.Commit()
	c.closeOverlay()
	c.invalidate()
	dropdownLogger.Debug("committed", "selected", c.store.Selected(), "changed", changed)

	if changed && c.onChange != nil {
		c.onChange(c, c.store.Selected())
	}
	if c.group != nil && c.group.Editing() {
		c.group.SetEditing(false)
	}
}

// restorePending drops a highlight left by a scroll gesture.
func (c *Control) restorePending() {
	c.store.Discard()
	c.invalidate()
	c.invalidateOverlay()
}

// movePending moves the highlight by delta and keeps it in view.
func (c *Control) movePending(delta int) {
	if !c.store.MovePending(delta) {
		return
	}
	if ov, ok := c.overlay(); ok {
		ov.revealRow(c.store.Pending())
	}
	c.invalidateOverlay()
}

// refreshHeight sizes the button to one line of the main font.
func (c *Control) refreshHeight() {
	main := c.styles.Main
	c.invalidate()
	c.rect.H = main.Padding.Vertical() + c.fontOf(main).LineHeight()
	c.invalidate()
}

func (c *Control) invalidate() {
	c.scr.Invalidate(c.rect)
}

func (c *Control) invalidateOverlay() {
	if ov, ok := c.overlay(); ok {
		c.scr.Invalidate(ov.rect)
	}
}

// =============================================================================
// Drawing
// =============================================================================

// Draw paints the closed button within clip. The symbol sits on the right,
// or on the left when the overlay opens leftwards or text runs right to
// left; without a symbol the text is centered.
func (c *Control) Draw(p Painter, clip Rect) {
	area, ok := c.rect.Intersect(clip)
	if !ok {
		return
	}
	main := c.styles.Main
	p.DrawRect(c.rect, area, rectDesc(main))

	f := c.fontOf(main)
	pad := main.Padding
	lh := f.LineHeight()
	inner := Rect{
		X: c.rect.X + pad.Left,
		Y: c.rect.Y + (c.rect.H-lh)/2,
		W: maxf(c.rect.W-pad.Horizontal(), 0),
		H: lh,
	}
	content, ok := Rect{X: inner.X, Y: c.rect.Y + pad.Top, W: inner.W, H: maxf(c.rect.H-pad.Vertical(), 0)}.Intersect(area)
	if !ok {
		return
	}

	text := c.text
	if text == "" {
		text = c.store.SelectedString()
	}
	label := LabelDesc{Color: main.TextColor, Font: f, LineSpace: main.LineSpace}

	if c.symbol == "" {
		label.Align = AlignCenter
		p.DrawLabel(inner, content, label, text)
		return
	}

	symW := f.TextWidth(c.symbol)
	txtW := f.TextWidth(text)
	sym := Rect{X: inner.Right() - symW, Y: inner.Y, W: symW, H: lh}
	txt := Rect{X: inner.X, Y: inner.Y, W: txtW, H: lh}
	if c.dir == DirLeft || c.scr.baseDir == BaseDirRTL {
		sym.X = inner.X
		txt.X = inner.Right() - txtW
	}
	p.DrawLabel(txt, content, label, text)
	p.DrawLabel(sym, content, label, c.symbol)
}
