package event

import (
	"slices"
	"testing"
)

func TestEventTypeAndArgs(t *testing.T) {
	tests := []struct {
		ev   Event
		tag  string
		args []float64
	}{
		{CursorPosition{X: 10, Y: 20}, "cursorPos", []float64{10, 20}},
		{MouseButton{Button: 1, Action: 1, Mods: 4}, "mouseButton", []float64{1, 1, 4}},
		{Scroll{XOffset: -1, YOffset: 0.5}, "scroll", []float64{-1, 0.5}},
		{Key{Key: 256, Scancode: 9, Action: 0, Mods: 2}, "key", []float64{256, 9, 0, 2}},
		{CursorEnter{Entered: true}, "cursorEnter", []float64{1}},
		{CursorEnter{}, "cursorEnter", []float64{0}},
		{Quit{}, "quit", nil},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := tt.ev.Type().String(); got != tt.tag {
				t.Errorf("Type() = %q, want %q", got, tt.tag)
			}
			got := tt.ev.Args()
			if !slices.Equal(got, tt.args) {
				t.Errorf("Args() = %v, want %v", got, tt.args)
			}
			if len(got) != tt.ev.Type().Arity() {
				t.Errorf("len(Args()) = %d, Arity() = %d", len(got), tt.ev.Type().Arity())
			}
		})
	}
}

func TestTypeStringUnknown(t *testing.T) {
	if got := Type(0).String(); got != "unknown" {
		t.Errorf("Type(0).String() = %q, want unknown", got)
	}
}

func TestVariadic(t *testing.T) {
	var gotType string
	var gotArgs []float64
	h := Variadic(func(eventType string, args ...float64) {
		gotType = eventType
		gotArgs = args
	})

	h(Key{Key: 65, Scancode: 38, Action: 1, Mods: 0})
	if gotType != "key" || !slices.Equal(gotArgs, []float64{65, 38, 1, 0}) {
		t.Errorf("got (%q, %v)", gotType, gotArgs)
	}

	h(Quit{})
	if gotType != "quit" || len(gotArgs) != 0 {
		t.Errorf("got (%q, %v), want (quit, [])", gotType, gotArgs)
	}
}

func TestVariadicNil(t *testing.T) {
	if Variadic(nil) != nil {
		t.Error("Variadic(nil) should be nil")
	}
}
