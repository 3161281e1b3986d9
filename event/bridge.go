package event

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/gogpu/gpuwindow/platform"
)

// ErrAttached is returned by Attach when the window already has a handler.
var ErrAttached = errors.New("event: window already attached")

// Bridge routes native input callbacks to per-window handlers.
//
// The hooks registered with the window system capture nothing but the
// bridge; the owning handler is looked up from the callback's window handle
// on every call. A window that was detached, or never attached, resolves to
// nothing and its events are dropped.
type Bridge struct {
	sys platform.System
	log *slog.Logger

	mu       sync.Mutex
	handlers map[platform.Handle]Handler
}

// NewBridge returns a bridge registering hooks on sys. A nil logger
// discards output.
func NewBridge(sys platform.System, logger *slog.Logger) *Bridge {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Bridge{
		sys:      sys,
		log:      logger,
		handlers: make(map[platform.Handle]Handler),
	}
}

// Attach records handler for h and registers the five input hooks.
// A nil handler is allowed; events for h are then dropped.
func (b *Bridge) Attach(h platform.Handle, handler Handler) error {
	b.mu.Lock()
	if _, ok := b.handlers[h]; ok {
		b.mu.Unlock()
		return ErrAttached
	}
	b.handlers[h] = handler
	b.mu.Unlock()

	b.sys.SetCursorPosCallback(h, func(h platform.Handle, x, y float64) {
		b.Deliver(h, CursorPosition{X: x, Y: y})
	})
	b.sys.SetMouseButtonCallback(h, func(h platform.Handle, button, action, mods int) {
		b.Deliver(h, MouseButton{Button: button, Action: action, Mods: mods})
	})
	b.sys.SetScrollCallback(h, func(h platform.Handle, xoff, yoff float64) {
		b.Deliver(h, Scroll{XOffset: xoff, YOffset: yoff})
	})
	b.sys.SetKeyCallback(h, func(h platform.Handle, key, scancode, action, mods int) {
		b.Deliver(h, Key{Key: key, Scancode: scancode, Action: action, Mods: mods})
	})
	b.sys.SetCursorEnterCallback(h, func(h platform.Handle, entered bool) {
		b.Deliver(h, CursorEnter{Entered: entered})
	})
	return nil
}

// Detach clears the five input hooks of h, then forgets its handler.
// Detaching an unknown window is a no-op.
func (b *Bridge) Detach(h platform.Handle) {
	b.mu.Lock()
	_, ok := b.handlers[h]
	b.mu.Unlock()
	if !ok {
		return
	}

	b.sys.SetCursorPosCallback(h, nil)
	b.sys.SetMouseButtonCallback(h, nil)
	b.sys.SetScrollCallback(h, nil)
	b.sys.SetKeyCallback(h, nil)
	b.sys.SetCursorEnterCallback(h, nil)

	b.mu.Lock()
	delete(b.handlers, h)
	b.mu.Unlock()
}

// Attached reports whether h has an entry in the side table.
func (b *Bridge) Attached(h platform.Handle) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.handlers[h]
	return ok
}

// Deliver calls the handler of h with e. The handler runs without the
// bridge lock held, so it may attach or detach windows.
func (b *Bridge) Deliver(h platform.Handle, e Event) {
	b.mu.Lock()
	handler, ok := b.handlers[h]
	log := b.log
	b.mu.Unlock()

	if !ok {
		log.Debug("event: dropped event for unknown window", "window", uintptr(h), "type", e.Type())
		return
	}
	if handler == nil {
		return
	}
	handler(e)
}
