package event

// Handler receives events. It is called synchronously on the goroutine that
// pumps the window system.
type Handler func(Event)

// Variadic adapts a host callback of the form fn("cursorPos", x, y) to a
// Handler. A nil fn yields a nil Handler.
func Variadic(fn func(eventType string, args ...float64)) Handler {
	if fn == nil {
		return nil
	}
	return func(e Event) {
		fn(e.Type().String(), e.Args()...)
	}
}
