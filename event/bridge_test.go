package event

import (
	"errors"
	"testing"

	"github.com/gogpu/gpuwindow/platform"
	"github.com/gogpu/gpuwindow/platform/platformtest"
)

func newWindow(t *testing.T) (*platformtest.System, platform.Handle) {
	t.Helper()
	sys := platformtest.New()
	if err := sys.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	h, err := sys.CreateWindow(640, 480, "test")
	if err != nil {
		t.Fatalf("CreateWindow: %v", err)
	}
	return sys, h
}

func TestBridgeRoutesAllHooks(t *testing.T) {
	sys, h := newWindow(t)
	b := NewBridge(sys, nil)

	var got []Event
	if err := b.Attach(h, func(e Event) { got = append(got, e) }); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if n := sys.Window(h).Hooks(); n != 5 {
		t.Fatalf("hooks after Attach = %d, want 5", n)
	}

	sys.QueueCursorPos(h, 1, 2)
	sys.QueueMouseButton(h, 0, 1, 0)
	sys.QueueScroll(h, 0, -3)
	sys.QueueKey(h, 256, 9, 1, 0)
	sys.QueueCursorEnter(h, true)
	sys.PollEvents()

	want := []Event{
		CursorPosition{X: 1, Y: 2},
		MouseButton{Button: 0, Action: 1, Mods: 0},
		Scroll{XOffset: 0, YOffset: -3},
		Key{Key: 256, Scancode: 9, Action: 1, Mods: 0},
		CursorEnter{Entered: true},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %#v, want %#v", i, got[i], want[i])
		}
	}
}

func TestBridgeRoutesPerWindow(t *testing.T) {
	sys, h1 := newWindow(t)
	h2, err := sys.CreateWindow(100, 100, "second")
	if err != nil {
		t.Fatalf("CreateWindow: %v", err)
	}
	b := NewBridge(sys, nil)

	var n1, n2 int
	_ = b.Attach(h1, func(Event) { n1++ })
	_ = b.Attach(h2, func(Event) { n2++ })

	sys.QueueScroll(h2, 1, 1)
	sys.QueueScroll(h2, 1, 1)
	sys.QueueScroll(h1, 1, 1)
	sys.PollEvents()

	if n1 != 1 || n2 != 2 {
		t.Errorf("deliveries = (%d, %d), want (1, 2)", n1, n2)
	}
}

func TestBridgeDetach(t *testing.T) {
	sys, h := newWindow(t)
	b := NewBridge(sys, nil)

	calls := 0
	_ = b.Attach(h, func(Event) { calls++ })
	b.Detach(h)

	if n := sys.Window(h).Hooks(); n != 0 {
		t.Errorf("hooks after Detach = %d, want 0", n)
	}
	if b.Attached(h) {
		t.Error("Attached after Detach")
	}

	sys.FireKey(h, 1, 1, 1, 0)
	b.Deliver(h, Quit{})
	if calls != 0 {
		t.Errorf("handler called %d times after Detach", calls)
	}

	// Detaching twice is harmless.
	b.Detach(h)
}

func TestBridgeDetachClearsHooksFirst(t *testing.T) {
	sys, h := newWindow(t)
	b := NewBridge(sys, nil)
	_ = b.Attach(h, nil)

	var ops []string
	sys.Trace = func(op string) { ops = append(ops, op) }
	b.Detach(h)

	want := []string{"clear:cursorPos", "clear:mouseButton", "clear:scroll", "clear:key", "clear:cursorEnter"}
	if len(ops) != len(want) {
		t.Fatalf("ops = %v, want %v", ops, want)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Errorf("op %d = %q, want %q", i, ops[i], want[i])
		}
	}
}

func TestBridgeAttachTwice(t *testing.T) {
	sys, h := newWindow(t)
	b := NewBridge(sys, nil)
	if err := b.Attach(h, nil); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if err := b.Attach(h, nil); !errors.Is(err, ErrAttached) {
		t.Errorf("second Attach err = %v, want ErrAttached", err)
	}
}

func TestBridgeNilHandler(t *testing.T) {
	sys, h := newWindow(t)
	b := NewBridge(sys, nil)
	_ = b.Attach(h, nil)

	sys.QueueCursorPos(h, 3, 4)
	sys.PollEvents() // must not panic
	b.Deliver(h, Quit{})
}

func TestBridgeHandlerMayDetach(t *testing.T) {
	sys, h := newWindow(t)
	b := NewBridge(sys, nil)

	calls := 0
	_ = b.Attach(h, func(Event) {
		calls++
		b.Detach(h)
	})
	sys.QueueCursorPos(h, 1, 1)
	sys.QueueCursorPos(h, 2, 2)
	sys.PollEvents()

	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}
}
