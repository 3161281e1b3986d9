// Package event defines the window events delivered to a host and the bridge
// that routes native window-system callbacks to the owning handler.
//
// Events form a closed set: CursorPosition, MouseButton, Scroll, Key,
// CursorEnter and Quit. Each reports a Type tag and its payload flattened to
// numbers via Args, which is the shape a scripting host usually expects.
package event

// Type tags an event.
type Type uint8

// Event types.
const (
	TypeCursorPos Type = iota + 1
	TypeMouseButton
	TypeScroll
	TypeKey
	TypeCursorEnter
	TypeQuit
)

// String returns the tag sent to hosts.
func (t Type) String() string {
	switch t {
	case TypeCursorPos:
		return "cursorPos"
	case TypeMouseButton:
		return "mouseButton"
	case TypeScroll:
		return "scroll"
	case TypeKey:
		return "key"
	case TypeCursorEnter:
		return "cursorEnter"
	case TypeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Arity returns the number of numeric arguments carried by events of type t.
func (t Type) Arity() int {
	switch t {
	case TypeCursorPos, TypeScroll:
		return 2
	case TypeMouseButton:
		return 3
	case TypeKey:
		return 4
	case TypeCursorEnter:
		return 1
	default:
		return 0
	}
}

// Event is one window event. The set of implementations is closed.
type Event interface {
	// Type returns the event tag.
	Type() Type
	// Args returns the payload as numbers, in declaration order.
	Args() []float64

	event()
}

// CursorPosition reports the cursor position in window coordinates.
type CursorPosition struct {
	X, Y float64
}

// MouseButton reports a mouse button press or release.
type MouseButton struct {
	Button, Action, Mods int
}

// Scroll reports a scroll wheel or touchpad offset.
type Scroll struct {
	XOffset, YOffset float64
}

// Key reports a keyboard key press, repeat or release.
type Key struct {
	Key, Scancode, Action, Mods int
}

// CursorEnter reports the cursor entering or leaving the window.
type CursorEnter struct {
	Entered bool
}

// Quit is synthesized when the user asks to close the window.
type Quit struct{}

func (CursorPosition) Type() Type { return TypeCursorPos }
func (MouseButton) Type() Type    { return TypeMouseButton }
func (Scroll) Type() Type         { return TypeScroll }
func (Key) Type() Type            { return TypeKey }
func (CursorEnter) Type() Type    { return TypeCursorEnter }
func (Quit) Type() Type           { return TypeQuit }

func (e CursorPosition) Args() []float64 { return []float64{e.X, e.Y} }

func (e MouseButton) Args() []float64 {
	return []float64{float64(e.Button), float64(e.Action), float64(e.Mods)}
}

func (e Scroll) Args() []float64 { return []float64{e.XOffset, e.YOffset} }

func (e Key) Args() []float64 {
	return []float64{float64(e.Key), float64(e.Scancode), float64(e.Action), float64(e.Mods)}
}

func (e CursorEnter) Args() []float64 {
	if e.Entered {
		return []float64{1}
	}
	return []float64{0}
}

func (Quit) Args() []float64 { return nil }

func (CursorPosition) event() {}
func (MouseButton) event()    {}
func (Scroll) event()         {}
func (Key) event()            {}
func (CursorEnter) event()    {}
func (Quit) event()           {}
