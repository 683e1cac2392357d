package dropdown

// Group tracks which control has keyboard/encoder focus and whether the group
// is in editing mode. In navigation mode keys and encoder turns move focus;
// in editing mode they go to the focused control.
//
// Key features:
// - Tab / Shift+Tab cycle focus between members
// - Enter is delivered as a press and release of the focused control
// - Encoder click toggles editing mode, turning scrolls or edits
type Group struct {
	scr          *Screen
	members      []Handle
	focusedIndex int // Index into members (-1 = none)
	editing      bool
	device       DeviceKind // device that last drove the group
}

// NewGroup creates an empty focus group on scr.
func NewGroup(scr *Screen) *Group {
	return &Group{scr: scr, focusedIndex: -1, device: DeviceKeypad}
}

// Add appends c to the group. The first member gets focus. Adding a member
// again does nothing.
func (g *Group) Add(c *Control) {
	if c.group == g {
		return
	}
	if c.group != nil {
		c.group.Remove(c)
	}
	c.group = g
	g.members = append(g.members, c.handle)
	if g.focusedIndex < 0 {
		g.focusIndex(len(g.members) - 1)
	}
}

// Remove takes c out of the group. If it had focus it is defocused, which
// cancels an open overlay, and the next member gets focus.
func (g *Group) Remove(c *Control) {
	for i, h := range g.members {
		if h != c.handle {
			continue
		}
		g.members = append(g.members[:i], g.members[i+1:]...)
		c.group = nil
		switch {
		case i == g.focusedIndex:
			g.focusedIndex = -1
			g.editing = false
			g.send(c, Event{Kind: EventDefocus})
			if len(g.members) > 0 {
				g.focusIndex(i % len(g.members))
			}
		case i < g.focusedIndex:
			g.focusedIndex--
		}
		return
	}
}

// Len returns the number of members.
func (g *Group) Len() int { return len(g.members) }

// Focused returns the focused control, or nil if none.
func (g *Group) Focused() *Control {
	if g.focusedIndex < 0 || g.focusedIndex >= len(g.members) {
		return nil
	}
	c, _ := g.scr.controls.Get(g.members[g.focusedIndex])
	return c
}

// IsFocused returns true if c is the focused control.
func (g *Group) IsFocused(c *Control) bool {
	return c != nil && c == g.Focused()
}

// Focus gives focus to c, which must be a member.
func (g *Group) Focus(c *Control) {
	for i, h := range g.members {
		if h == c.handle {
			g.focusIndex(i)
			return
		}
	}
}

// FocusNext moves focus to the next member, wrapping around.
func (g *Group) FocusNext() {
	if len(g.members) == 0 {
		return
	}
	g.focusIndex((g.focusedIndex + 1) % len(g.members))
}

// FocusPrev moves focus to the previous member, wrapping around.
func (g *Group) FocusPrev() {
	if len(g.members) == 0 {
		return
	}
	i := g.focusedIndex - 1
	if i < 0 {
		i = len(g.members) - 1
	}
	g.focusIndex(i)
}

// focusIndex defocuses the current member and focuses member i. Moving focus
// leaves editing mode.
func (g *Group) focusIndex(i int) {
	if i == g.focusedIndex {
		return
	}
	old := g.Focused()
	g.focusedIndex = i
	g.editing = false
	if old != nil {
		g.send(old, Event{Kind: EventDefocus})
	}
	if c := g.Focused(); c != nil {
		g.send(c, Event{Kind: EventFocus})
	}
}

// Editing reports whether the group is in editing mode.
func (g *Group) Editing() bool { return g.editing }

// SetEditing switches between navigation and editing mode. The focused
// control is notified through a focus event carrying the new mode.
func (g *Group) SetEditing(on bool) {
	if g.editing == on {
		return
	}
	g.editing = on
	if c := g.Focused(); c != nil {
		g.send(c, Event{Kind: EventFocus, Editing: on})
	}
}

// SendKey delivers a key press from a keypad.
func (g *Group) SendKey(k Key) error {
	g.device = DeviceKeypad
	return g.key(k)
}

func (g *Group) key(k Key) error {
	c := g.Focused()
	if c == nil {
		return nil
	}
	switch k {
	case KeyTab:
		g.FocusNext()
		return nil
	case KeyEnter:
		if err := g.send(c, Event{Kind: EventPressed}); err != nil {
			return err
		}
		return g.send(c, Event{Kind: EventReleased})
	}
	return g.send(c, Event{Kind: EventKey, Key: k})
}

// Turn handles an encoder rotation of diff steps. In navigation mode it moves
// focus; in editing mode each step is a Right (positive) or Left key.
func (g *Group) Turn(diff int) error {
	g.device = DeviceEncoder
	for ; diff != 0; diff -= sign(diff) {
		if !g.editing {
			if diff > 0 {
				g.FocusNext()
			} else {
				g.FocusPrev()
			}
			continue
		}
		k := KeyRight
		if diff < 0 {
			k = KeyLeft
		}
		if err := g.key(k); err != nil {
			return err
		}
	}
	return nil
}

// Press handles the encoder button going down.
func (g *Group) Press() error {
	g.device = DeviceEncoder
	if c := g.Focused(); c != nil && g.editing {
		return g.send(c, Event{Kind: EventPressed})
	}
	return nil
}

// Release handles the encoder button coming up. In navigation mode it enters
// editing mode; in editing mode it confirms.
func (g *Group) Release() error {
	g.device = DeviceEncoder
	c := g.Focused()
	if c == nil {
		return nil
	}
	if !g.editing {
		g.SetEditing(true)
		return nil
	}
	return g.send(c, Event{Kind: EventReleased})
}

func (g *Group) send(c *Control, ev Event) error {
	if g.device == DeviceEncoder {
		ev.Indev = Encoder()
	} else {
		ev.Indev = Keypad()
	}
	return g.scr.send(c, ev)
}

// handleKeys routes one frame of keyboard input.
func (g *Group) handleKeys(in *InputState) {
	g.device = DeviceKeypad
	if in.KeyPressed(KeyTab) {
		if in.ModShift {
			g.FocusPrev()
		} else {
			g.FocusNext()
		}
	}
	for _, k := range []Key{KeyUp, KeyDown, KeyLeft, KeyRight} {
		if in.KeyRepeated(k) {
			g.scr.report(g.key(k))
		}
	}
	if in.KeyPressed(KeyEscape) {
		g.scr.report(g.key(KeyEscape))
	}
	if c := g.Focused(); c != nil {
		if in.KeyPressed(KeyEnter) {
			g.scr.report(g.send(c, Event{Kind: EventPressed}))
		}
		if in.KeyReleased(KeyEnter) {
			g.scr.report(g.send(c, Event{Kind: EventReleased}))
		}
	}
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}
