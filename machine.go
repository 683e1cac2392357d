package dropdown

// State is the overlay state of a control.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// EventKind identifies a signal delivered to a control.
type EventKind int

const (
	EventPressed         EventKind = iota // press on the closed button
	EventReleased                         // release on the button, or keypad Enter
	EventScrollBegin                      // a gesture on the overlay became a scroll
	EventFocus                            // the control gained focus or its group changed editing mode
	EventDefocus                          // the control lost focus
	EventLeave                            // a press slid off the control
	EventKey                              // navigation key from the focus group
	EventCoordChanged                     // the control moved or was resized
	EventStyleChanged                     // the control's styles changed
	EventOverlayPressed                   // press inside the overlay
	EventOverlayReleased                  // release inside the overlay
)

func (k EventKind) String() string {
	switch k {
	case EventPressed:
		return "pressed"
	case EventReleased:
		return "released"
	case EventScrollBegin:
		return "scroll-begin"
	case EventFocus:
		return "focus"
	case EventDefocus:
		return "defocus"
	case EventLeave:
		return "leave"
	case EventKey:
		return "key"
	case EventCoordChanged:
		return "coord-changed"
	case EventStyleChanged:
		return "style-changed"
	case EventOverlayPressed:
		return "overlay-pressed"
	case EventOverlayReleased:
		return "overlay-released"
	default:
		return "unknown"
	}
}

// Event is a signal for a control together with the device that caused it.
type Event struct {
	Kind    EventKind
	Indev   Indev // nil is treated as a keypad
	Key     Key   // EventKey only
	Editing bool  // EventFocus only: the group's editing mode
}

func (ev Event) device() Indev {
	if ev.Indev == nil {
		return Keypad()
	}
	return ev.Indev
}

// ChangeHandler is called after a commit changed the selection.
type ChangeHandler func(c *Control, index int)

type transitionKey struct {
	state State
	kind  EventKind
}

// transition handles one event kind in one state. Pairs without an entry
// are ignored.
type transition func(c *Control, ev Event) error

var transitions map[transitionKey]transition

func init() {
	transitions = map[transitionKey]transition{
		{Closed, EventReleased}:     releaseClosed,
		{Closed, EventFocus}:        focusClosed,
		{Closed, EventKey}:          keyClosed,
		{Closed, EventStyleChanged}: restyleClosed,

		{Open, EventReleased}:        releaseOpen,
		{Open, EventFocus}:           focusOpen,
		{Open, EventDefocus}:         cancelOpen,
		{Open, EventLeave}:           cancelOpen,
		{Open, EventCoordChanged}:    cancelOpen,
		{Open, EventKey}:             keyOpen,
		{Open, EventStyleChanged}:    restyleOpen,
		{Open, EventOverlayPressed}:  pressOverlay,
		{Open, EventScrollBegin}:     scrollOverlay,
		{Open, EventOverlayReleased}: releaseOverlay,
	}
}

// dispatch runs the transition for the control's current state.
func (c *Control) dispatch(ev Event) error {
	t, ok := transitions[transitionKey{c.state, ev.Kind}]
	if !ok {
		return nil
	}
	return t(c, ev)
}

// releaseClosed opens the overlay unless the release ends a scroll.
func releaseClosed(c *Control, ev Event) error {
	if ev.device().ScrollActive() {
		c.restorePending()
		return nil
	}
	return c.openOverlay()
}

// releaseOpen confirms the highlighted row.
func releaseOpen(c *Control, ev Event) error {
	if ev.device().ScrollActive() {
		c.restorePending()
		return nil
	}
	c.commit()
	return nil
}

// focusClosed opens when an encoder group enters editing mode.
func focusClosed(c *Control, ev Event) error {
	if ev.device().Kind() == DeviceEncoder && ev.Editing {
		return c.openOverlay()
	}
	return nil
}

// focusOpen closes when an encoder group goes back to navigating.
func focusOpen(c *Control, ev Event) error {
	if ev.device().Kind() == DeviceEncoder && !ev.Editing {
		c.cancel()
	}
	return nil
}

func cancelOpen(c *Control, _ Event) error {
	c.cancel()
	return nil
}

// keyClosed opens on any directional key.
func keyClosed(c *Control, ev Event) error {
	switch ev.Key {
	case KeyUp, KeyDown, KeyLeft, KeyRight:
		return c.openOverlay()
	}
	return nil
}

// keyOpen moves the highlight or cancels.
func keyOpen(c *Control, ev Event) error {
	switch ev.Key {
	case KeyDown, KeyRight:
		c.movePending(1)
	case KeyUp, KeyLeft:
		c.movePending(-1)
	case KeyEscape:
		c.cancel()
	}
	return nil
}

func restyleClosed(c *Control, _ Event) error {
	c.refreshHeight()
	return nil
}

// restyleOpen resizes the button and rebuilds the overlay for the new
// metrics, keeping the highlighted row.
func restyleOpen(c *Control, _ Event) error {
	c.refreshHeight()
	return c.rebuild()
}

// pressOverlay previews the row under the press point.
func pressOverlay(c *Control, ev Event) error {
	d := ev.device()
	if !d.Kind().pointsAt() {
		return nil
	}
	if ov, ok := c.overlay(); ok {
		c.store.SetPreview(SomeIndex(ov.rowAt(d.Point().Y)))
		c.invalidateOverlay()
	}
	return nil
}

// scrollOverlay drops the preview once a press turns into a scroll.
func scrollOverlay(c *Control, _ Event) error {
	c.store.SetPreview(NoIndex)
	c.invalidateOverlay()
	return nil
}

// releaseOverlay selects the row under the release point and commits.
// A release that ends a scroll selects nothing and puts the highlight back
// on the committed row.
func releaseOverlay(c *Control, ev Event) error {
	d := ev.device()
	if d.ScrollActive() {
		c.restorePending()
		return nil
	}
	if d.Kind().pointsAt() {
		if ov, ok := c.overlay(); ok {
			c.store.SetPending(ov.rowAt(d.Point().Y))
		}
	}
	c.commit()
	return nil
}
