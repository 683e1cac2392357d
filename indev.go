package dropdown

// DeviceKind identifies the kind of input device that produced an event.
type DeviceKind int

const (
	DevicePointer DeviceKind = iota // mouse, touchpad
	DeviceButton                    // hardware button mapped to a screen point
	DeviceEncoder                   // rotary encoder with push
	DeviceKeypad                    // keyboard or keypad
)

func (k DeviceKind) String() string {
	switch k {
	case DevicePointer:
		return "pointer"
	case DeviceButton:
		return "button"
	case DeviceEncoder:
		return "encoder"
	case DeviceKeypad:
		return "keypad"
	default:
		return "unknown"
	}
}

// pointsAt reports whether the device addresses a screen point.
func (k DeviceKind) pointsAt() bool {
	return k == DevicePointer || k == DeviceButton
}

// Indev is the input device that is delivering the current event.
type Indev interface {
	Kind() DeviceKind

	// Point returns the current point in screen coordinates.
	// Only pointer and button devices have one.
	Point() Vec2

	// ScrollActive reports whether the current gesture is scrolling
	// something, so its release must not select anything.
	ScrollActive() bool
}

// DeviceState is a snapshot of an input device, taken when an event is sent.
type DeviceState struct {
	DevKind   DeviceKind
	At        Vec2
	Scrolling bool
}

// Kind implements Indev.
func (d DeviceState) Kind() DeviceKind { return d.DevKind }

// Point implements Indev.
func (d DeviceState) Point() Vec2 { return d.At }

// ScrollActive implements Indev.
func (d DeviceState) ScrollActive() bool { return d.Scrolling }

// PointerAt returns a pointer snapshot at (x, y) outside any scroll gesture.
func PointerAt(x, y float32) DeviceState {
	return DeviceState{DevKind: DevicePointer, At: Vec2{X: x, Y: y}}
}

// Keypad returns a keypad snapshot.
func Keypad() DeviceState {
	return DeviceState{DevKind: DeviceKeypad}
}

// Encoder returns an encoder snapshot.
func Encoder() DeviceState {
	return DeviceState{DevKind: DeviceEncoder}
}
