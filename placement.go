package dropdown

// PlacementInput describes everything the overlay placement depends on.
type PlacementInput struct {
	Control   Rect      // closed control in screen coordinates
	Viewport  Rect      // visible screen area
	Dir       Direction // preferred side
	MaxHeight float32   // upper bound for the overlay height (<= 0: unbounded)

	Content Vec2    // natural size of the option label
	Padding Padding // list padding around the label

	Selected   int // committed index to reveal
	LineHeight float32
	LineSpace  float32
}

// Placement is the resolved overlay geometry.
type Placement struct {
	Dir     Direction // side actually used, after flipping
	Rect    Rect      // overlay rectangle in screen coordinates
	ScrollY float32   // content scroll offset revealing the selection
}

// Place computes the overlay rectangle, resolved direction and initial scroll
// offset. The result depends only on its input.
func Place(in PlacementInput) Placement {
	pad := in.Padding
	natural := in.Content.Y + pad.Top + pad.Bottom
	h := natural
	if in.MaxHeight > 0 {
		h = minf(h, in.MaxHeight)
	}

	ctrl := in.Control
	spaceAbove := ctrl.Y - in.Viewport.Y
	spaceBelow := in.Viewport.Bottom() - ctrl.Bottom()

	dir := in.Dir
	switch in.Dir {
	case DirDown:
		if ctrl.Bottom()+h > in.Viewport.Bottom() {
			if spaceAbove > spaceBelow {
				dir = DirUp
				h = spaceAbove
			} else {
				h = spaceBelow
			}
		}
	case DirUp:
		if ctrl.Y-h < in.Viewport.Y {
			if spaceAbove < spaceBelow {
				dir = DirDown
				h = spaceBelow
			} else {
				h = spaceAbove
			}
		}
	}

	// A flip must never grow the overlay past its natural or maximum height.
	h = minf(h, natural)
	if in.MaxHeight > 0 {
		h = minf(h, in.MaxHeight)
	}
	h = maxf(h, 0)

	w := in.Content.X + pad.Left + pad.Right
	if dir.Vertical() && w < ctrl.W {
		w = ctrl.W
	}

	r := Rect{W: w, H: h}
	switch dir {
	case DirDown:
		r.X, r.Y = ctrl.X, ctrl.Bottom()
	case DirUp:
		r.X, r.Y = ctrl.X, ctrl.Y-h
	case DirLeft:
		r.X, r.Y = ctrl.X-w, ctrl.Y
	case DirRight:
		r.X, r.Y = ctrl.Right(), ctrl.Y
	}

	// Side placement never flips, it slides up to stay on screen.
	if !dir.Vertical() {
		if overflow := r.Bottom() - in.Viewport.Bottom(); overflow > 0 {
			r.Y -= overflow
		}
	}

	return Placement{
		Dir:     dir,
		Rect:    r,
		ScrollY: ScrollToSelected(in.Content.Y, h-pad.Top-pad.Bottom, in.Selected, in.LineHeight, in.LineSpace),
	}
}

// ScrollToSelected returns the scroll offset that brings row selected to the
// top of a viewport of innerHeight, without scrolling past the end of a label
// of labelHeight. Labels that fit are not scrolled.
func ScrollToSelected(labelHeight, innerHeight float32, selected int, lineHeight, lineSpace float32) float32 {
	if labelHeight <= innerHeight {
		return 0
	}
	y := float32(selected) * (lineHeight + lineSpace)
	if over := y - (labelHeight - innerHeight); over > 0 {
		y -= over
	}
	return maxf(y, 0)
}
