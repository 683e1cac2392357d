package dropdown

// ScrollThreshold is the distance a press on a scrollable overlay must move
// before it becomes a scroll gesture.
const ScrollThreshold float32 = 10

// Renderer is the interface for rendering draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// Screen hosts controls and their overlays. It owns the viewport, the
// allocator and font every control on it uses, and the event queue through
// which all control signals pass.
//
// Events run to completion: an event sent while another is being handled is
// queued and handled after it, in order.
type Screen struct {
	viewport Rect
	alloc    Allocator
	font     Font
	baseDir  BaseDir

	controls *Arena[*Control]
	overlays *Arena[*overlay]
	order    []Handle // draw order, bottom first

	inputGroup *Group

	queue       []queuedEvent
	dispatching bool

	invalid []Rect
	press   pressState
}

type queuedEvent struct {
	target Handle
	ev     Event
}

// pressState tracks the pointer gesture in progress.
type pressState struct {
	active    bool
	target    Handle // control pressed, or owner of the overlay pressed
	onOverlay bool
	start     Vec2
	last      Vec2
	scrolling bool
	left      bool // the pointer slid off the pressed control
}

// ScreenOption configures a Screen.
type ScreenOption func(*Screen)

// WithViewport sets the visible screen area.
func WithViewport(r Rect) ScreenOption {
	return func(s *Screen) { s.viewport = r }
}

// WithAllocator sets the allocator for option buffers and overlays.
func WithAllocator(a Allocator) ScreenOption {
	return func(s *Screen) { s.alloc = a }
}

// WithFont sets the font used by parts without a font of their own.
func WithFont(f Font) ScreenOption {
	return func(s *Screen) { s.font = f }
}

// WithBaseDir sets the base text direction.
func WithBaseDir(d BaseDir) ScreenOption {
	return func(s *Screen) { s.baseDir = d }
}

// NewScreen creates a screen. Defaults: 800x600 viewport, heap allocator,
// 8x8 cell font, left-to-right.
func NewScreen(opts ...ScreenOption) *Screen {
	s := &Screen{
		viewport: Rect{W: 800, H: 600},
		alloc:    HeapAllocator{},
		font:     DefaultFont(),
		controls: NewArena[*Control](),
		overlays: NewArena[*overlay](),
	}
	for _, opt := range opts {
		opt(s)
	}

	// The overlay reports its destruction back to its owner, which drops its
	// handle. A deleted owner is simply not found.
	s.overlays.OnDelete(func(_ Handle, ov *overlay) {
		ov.release(s.alloc)
		s.Invalidate(ov.rect)
		if c, ok := s.controls.Get(ov.owner); ok {
			c.ovH = Handle{}
			c.state = Closed
		}
	})
	return s
}

// Viewport returns the visible screen area.
func (s *Screen) Viewport() Rect { return s.viewport }

// SetViewport changes the visible screen area. Open overlays keep their
// placement until they are opened again.
func (s *Screen) SetViewport(r Rect) {
	s.viewport = r
	s.Invalidate(r)
}

// Font returns the screen font.
func (s *Screen) Font() Font { return s.font }

// BaseDir returns the base text direction.
func (s *Screen) BaseDir() BaseDir { return s.baseDir }

// Allocator returns the screen allocator.
func (s *Screen) Allocator() Allocator { return s.alloc }

// SetInputGroup routes keyboard input from Update to g.
func (s *Screen) SetInputGroup(g *Group) { s.inputGroup = g }

// Controls returns the live controls in draw order.
func (s *Screen) Controls() []*Control {
	out := make([]*Control, 0, len(s.order))
	for _, h := range s.order {
		if c, ok := s.controls.Get(h); ok {
			out = append(out, c)
		}
	}
	return out
}

// OpenOverlays returns the number of open overlays.
func (s *Screen) OpenOverlays() int { return s.overlays.Len() }

func (s *Screen) addControl(c *Control) Handle {
	h := s.controls.Insert(c)
	s.order = append(s.order, h)
	return h
}

func (s *Screen) removeControl(c *Control) {
	s.controls.Delete(c.handle)
	for i, h := range s.order {
		if h == c.handle {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if s.press.target == c.handle {
		s.press = pressState{}
	}
}

// Invalidate marks r for redraw.
func (s *Screen) Invalidate(r Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	s.invalid = append(s.invalid, r)
}

// TakeInvalidated returns and clears the areas marked for redraw.
func (s *Screen) TakeInvalidated() []Rect {
	out := s.invalid
	s.invalid = nil
	return out
}

// send delivers ev to c through the event queue and returns the error of
// ev's own transition. Errors of events queued behind it are logged.
func (s *Screen) send(c *Control, ev Event) error {
	s.queue = append(s.queue, queuedEvent{target: c.handle, ev: ev})
	if s.dispatching {
		return nil
	}

	s.dispatching = true
	defer func() { s.dispatching = false }()

	var err error
	for first := true; len(s.queue) > 0; first = false {
		q := s.queue[0]
		s.queue = s.queue[1:]

		target, ok := s.controls.Get(q.target)
		if !ok {
			continue // deleted while the event was queued
		}
		attrs := []any{"kind", q.ev.Kind, "state", target.state, "device", q.ev.device().Kind()}
		if q.ev.Kind == EventKey {
			attrs = append(attrs, "key", KeyName(q.ev.Key))
		}
		dropdownLogger.Debug("event", attrs...)
		if e := target.dispatch(q.ev); e != nil {
			if first {
				err = e
			} else {
				dropdownLogger.Warn("queued event failed", "kind", q.ev.Kind, "err", e)
			}
		}
	}
	return err
}

// pointer returns a pointer snapshot at pos for the gesture in progress.
func (s *Screen) pointer(pos Vec2) DeviceState {
	return DeviceState{DevKind: DevicePointer, At: pos, Scrolling: s.press.scrolling}
}

// hit returns the control under pos, and whether pos is on its overlay.
// Overlays are above every control.
func (s *Screen) hit(pos Vec2) (*Control, bool) {
	var found *Control
	s.overlays.Each(func(_ Handle, ov *overlay) {
		if ov.rect.Contains(pos) {
			if c, ok := s.controls.Get(ov.owner); ok {
				found = c
			}
		}
	})
	if found != nil {
		return found, true
	}
	for i := len(s.order) - 1; i >= 0; i-- {
		if c, ok := s.controls.Get(s.order[i]); ok && c.rect.Contains(pos) {
			return c, false
		}
	}
	return nil, false
}

// Update turns one frame of polled input into control events.
func (s *Screen) Update(in *InputState) {
	pos := in.MousePos()
	if in.MouseClicked(MouseButtonLeft) {
		s.pointerDown(pos)
	}
	if in.MouseDown(MouseButtonLeft) && s.press.active {
		s.pointerDrag(pos)
	}
	if in.MouseReleased(MouseButtonLeft) && s.press.active {
		s.pointerUp(pos)
	}
	if in.MouseWheelY != 0 {
		s.wheel(pos, in.MouseWheelY)
	}
	if s.inputGroup != nil {
		s.inputGroup.handleKeys(in)
	}
}

func (s *Screen) pointerDown(pos Vec2) {
	s.press = pressState{active: true, start: pos, last: pos}
	c, onOverlay := s.hit(pos)
	s.dismissOthers(c)
	if c == nil {
		return
	}
	s.press.target = c.handle
	s.press.onOverlay = onOverlay

	if onOverlay {
		s.report(s.send(c, Event{Kind: EventOverlayPressed, Indev: s.pointer(pos)}))
		return
	}
	if c.group != nil {
		c.group.Focus(c)
	}
	s.report(s.send(c, Event{Kind: EventPressed, Indev: s.pointer(pos)}))
}

// dismissOthers cancels every open overlay whose owner is not keep.
func (s *Screen) dismissOthers(keep *Control) {
	var owners []*Control
	s.overlays.Each(func(_ Handle, ov *overlay) {
		if c, ok := s.controls.Get(ov.owner); ok && c != keep {
			owners = append(owners, c)
		}
	})
	for _, c := range owners {
		s.report(s.send(c, Event{Kind: EventDefocus, Indev: s.pointer(s.press.start)}))
	}
}

func (s *Screen) pointerDrag(pos Vec2) {
	p := &s.press
	dy := pos.Sub(p.last).Y
	p.last = pos

	c, ok := s.controls.Get(p.target)
	if !ok {
		return
	}
	if !p.onOverlay {
		if !p.left && !c.rect.Contains(pos) {
			p.left = true
			s.report(s.send(c, Event{Kind: EventLeave, Indev: s.pointer(pos)}))
		}
		return
	}

	ov, ok := c.overlay()
	if !ok {
		return
	}
	if !p.scrolling {
		if !ov.scrollable() || absf(pos.Sub(p.start).Y) < ScrollThreshold {
			return
		}
		p.scrolling = true
		dy = pos.Sub(p.start).Y
		s.report(s.send(c, Event{Kind: EventScrollBegin, Indev: s.pointer(pos)}))
		if ov, ok = c.overlay(); !ok {
			return
		}
	}
	ov.scrollBy(-dy)
	s.Invalidate(ov.rect)
}

func (s *Screen) pointerUp(pos Vec2) {
	ev := Event{Indev: s.pointer(pos)}
	p := s.press
	s.press = pressState{}

	c, ok := s.controls.Get(p.target)
	if !ok {
		return
	}
	switch {
	case p.onOverlay:
		if _, open := c.overlay(); !open {
			return
		}
		ev.Kind = EventOverlayReleased
	case p.left:
		return // the press was lost
	default:
		ev.Kind = EventReleased
	}
	s.report(s.send(c, ev))
}

// wheel scrolls the overlay under pos by whole rows. Like a drag scroll it
// drops the pressed-row preview.
func (s *Screen) wheel(pos Vec2, dy float32) {
	c, onOverlay := s.hit(pos)
	if c == nil || !onOverlay {
		return
	}
	ov, ok := c.overlay()
	if !ok || !ov.scrollable() {
		return
	}
	s.report(s.send(c, Event{Kind: EventScrollBegin, Indev: s.pointer(pos)}))
	if ov, ok = c.overlay(); !ok {
		return
	}
	ov.scrollBy(-dy * (ov.lineHeight() + ov.lineSpace()))
	s.Invalidate(ov.rect)
}

func (s *Screen) report(err error) {
	if err != nil {
		dropdownLogger.Warn("input event failed", "err", err)
	}
}

// Draw paints every control, then every open overlay on top.
func (s *Screen) Draw(p Painter) {
	for _, h := range s.order {
		if c, ok := s.controls.Get(h); ok {
			c.Draw(p, s.viewport)
		}
	}
	s.overlays.Each(func(_ Handle, ov *overlay) {
		if c, ok := s.controls.Get(ov.owner); ok {
			ov.draw(p, s.viewport, &c.styles)
		}
	})
}

// Render draws the screen into a pooled DrawList and hands it to r.
func (s *Screen) Render(r Renderer) error {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.FontTexture = r.FontTextureID()
	s.Draw(dl)
	dl.Finalize()
	return r.Render(dl)
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
