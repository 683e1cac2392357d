package dropdown

// Spacing constants for consistent layout.
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2 // Extra small
	SpaceSM   float32 = 4 // Small (default line space)
	SpaceMD   float32 = 8 // Medium (default padding)
	SpaceLG   float32 = 12
)

// Part names a stylable surface of the control.
type Part int

const (
	PartMain     Part = iota // closed button
	PartList                 // overlay background and label
	PartSelected             // highlighted row in the overlay
)

func (p Part) String() string {
	switch p {
	case PartMain:
		return "main"
	case PartList:
		return "list"
	case PartSelected:
		return "selected"
	default:
		return "unknown"
	}
}

// Padding is the space between a surface's edges and its content.
type Padding struct {
	Left, Top, Right, Bottom float32
}

// Uniform returns a padding of v on every side.
func Uniform(v float32) Padding {
	return Padding{Left: v, Top: v, Right: v, Bottom: v}
}

// Horizontal returns Left + Right.
func (p Padding) Horizontal() float32 { return p.Left + p.Right }

// Vertical returns Top + Bottom.
func (p Padding) Vertical() float32 { return p.Top + p.Bottom }

// PartStyle defines the visual appearance of one part.
type PartStyle struct {
	// Colors
	BgColor     uint32
	BorderColor uint32
	TextColor   uint32

	// Sizing
	Padding    Padding
	LineSpace  float32 // Gap between option lines
	BorderSize float32

	// Font overrides the screen font (nil = screen font).
	Font Font
}

// Styles holds the style of every part. SelectedPressed is used for the
// selected row while it is being pressed.
type Styles struct {
	Main            PartStyle
	List            PartStyle
	Selected        PartStyle
	SelectedPressed PartStyle
}

// Part returns the style of p.
func (s *Styles) Part(p Part) PartStyle {
	switch p {
	case PartList:
		return s.List
	case PartSelected:
		return s.Selected
	default:
		return s.Main
	}
}

// DefaultStyles returns the default styles with sensible defaults.
func DefaultStyles() Styles {
	return Styles{
		Main: PartStyle{
			BgColor:     RGBA(50, 50, 50, 255),
			BorderColor: RGBA(100, 100, 100, 255),
			TextColor:   ColorWhite,
			Padding:     Uniform(6),
			LineSpace:   SpaceSM,
			BorderSize:  1,
		},
		List: PartStyle{
			BgColor:     RGBA(25, 25, 25, 250),
			BorderColor: RGBA(80, 80, 80, 255),
			TextColor:   ColorWhite,
			Padding:     Uniform(SpaceMD),
			LineSpace:   SpaceSM,
			BorderSize:  1,
		},
		Selected: PartStyle{
			BgColor:   RGBA(50, 100, 150, 255),
			TextColor: ColorWhite,
		},
		SelectedPressed: PartStyle{
			BgColor:   RGBA(90, 90, 90, 255),
			TextColor: RGBA(255, 200, 0, 255),
		},
	}
}

// DarkStyles returns a modern dark theme.
func DarkStyles() Styles {
	s := DefaultStyles()
	s.Main.BgColor = RGBA(45, 45, 45, 255)
	s.List.BgColor = RGBA(25, 25, 25, 240)
	s.Selected.BgColor = RGBA(65, 105, 225, 255) // Royal blue
	return s
}

// LightStyles returns a light theme.
func LightStyles() Styles {
	return Styles{
		Main: PartStyle{
			BgColor:     RGBA(220, 220, 220, 255),
			BorderColor: RGBA(150, 150, 150, 255),
			TextColor:   RGBA(20, 20, 20, 255),
			Padding:     Uniform(6),
			LineSpace:   SpaceSM,
			BorderSize:  1,
		},
		List: PartStyle{
			BgColor:     RGBA(255, 255, 255, 255),
			BorderColor: RGBA(200, 200, 200, 255),
			TextColor:   RGBA(20, 20, 20, 255),
			Padding:     Uniform(SpaceMD),
			LineSpace:   SpaceSM,
			BorderSize:  1,
		},
		Selected: PartStyle{
			BgColor:   RGBA(0, 120, 215, 255),
			TextColor: ColorWhite,
		},
		SelectedPressed: PartStyle{
			BgColor:   RGBA(180, 180, 180, 255),
			TextColor: RGBA(20, 20, 20, 255),
		},
	}
}
