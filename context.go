package gpuwindow

import (
	"fmt"
	"io"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpuwindow/driver"
	"github.com/gogpu/gpuwindow/event"
	"github.com/gogpu/gpuwindow/platform"
)

// State is the lifecycle state of a Context.
type State uint8

const (
	// StateCreated means the window and surface exist but no swap chain.
	StateCreated State = iota
	// StateConfigured means a swap chain exists and frames can be presented.
	StateConfigured
	// StateClosed means every native resource was released.
	StateClosed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "Created"
	case StateConfigured:
		return "Configured"
	case StateClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// Context is a window bound to a presentable surface.
//
// A Context exclusively owns its native window, its surface and its swap
// chain. It is not safe for concurrent use: every method must be called from
// the thread that owns the window system. The event handler runs inside
// Refresh and may call any method except Refresh, on this or any other
// Context. A Context closed from the handler is invalid at once; its window
// is destroyed when the event pump returns.
type Context struct {
	m      *Manager
	handle Handle
	window platform.Handle

	width, height int
	title         string

	surface   driver.Surface
	swapChain driver.SwapChain
	device    gpucontext.DeviceProvider

	state      State
	refreshing bool
	redraw     bool
}

var (
	_ gpucontext.WindowProvider = (*Context)(nil)
	_ io.Closer                 = (*Context)(nil)
)

// Configure creates the swap chain for the device supplied by provider.
//
// The swap chain is always BGRA8Unorm, used as a render attachment,
// presented in mailbox mode, at the window's creation size. Configuring
// again releases the previous swap chain first. If the driver rejects the
// configuration the context returns to StateCreated without a swap chain.
func (c *Context) Configure(provider gpucontext.DeviceProvider) error {
	if c.state == StateClosed {
		return ErrClosed
	}
	if provider == nil || provider.Device() == nil {
		return fmt.Errorf("%w: no device", ErrUnwrap)
	}

	desc := driver.SwapChainDescriptor{
		Label:       c.title,
		Usage:       gputypes.TextureUsageRenderAttachment,
		Format:      PreferredCanvasFormat(),
		PresentMode: gputypes.PresentModeMailbox,
		Width:       uint32(c.width),
		Height:      uint32(c.height),
	}

	if c.swapChain != nil {
		c.swapChain.Release()
		c.swapChain = nil
		c.device = nil
		c.state = StateCreated
	}

	sc, err := c.surface.Configure(provider, &desc)
	if err != nil {
		return fmt.Errorf("%w: configure swap chain: %w", ErrDriver, err)
	}
	c.swapChain = sc
	c.device = provider
	c.state = StateConfigured

	c.m.log.Debug("gpuwindow: swap chain configured",
		"handle", c.handle.String(),
		"width", desc.Width,
		"height", desc.Height,
		"format", "bgra8unorm",
		"adapter", provider.AdapterInfo().Name)
	return nil
}

// AcquireView returns a new view of the swap chain's current back buffer.
// The caller owns the view and should release it once the frame is drawn.
func (c *Context) AcquireView() (driver.TextureView, error) {
	if err := c.checkConfigured(); err != nil {
		return nil, err
	}
	v, err := c.swapChain.CurrentTextureView()
	if err != nil {
		return nil, fmt.Errorf("%w: acquire view: %w", ErrDriver, err)
	}
	return v, nil
}

// CurrentTexture returns the current frame, from which views are created.
func (c *Context) CurrentTexture() Frame {
	return Frame{c: c}
}

// Refresh presents the current frame, processes pending window events once,
// and delivers event.Quit if the user asked to close the window.
//
// Events reach the handler synchronously, before Refresh returns. A present
// failure is returned before any event is processed. Calling Refresh from
// a handler returns ErrReentrant.
func (c *Context) Refresh() error {
	if err := c.checkConfigured(); err != nil {
		return err
	}
	if c.refreshing || c.m.isPumping() {
		return ErrReentrant
	}
	c.refreshing = true
	defer func() { c.refreshing = false }()

	if err := c.swapChain.Present(); err != nil {
		return fmt.Errorf("%w: present: %w", ErrDriver, err)
	}
	c.redraw = false

	c.m.pollEvents()

	// The handler may have closed the context during the pump.
	if c.state == StateClosed {
		return nil
	}
	if c.m.sys.WindowShouldClose(c.window) {
		c.m.bridge.Deliver(c.window, event.Quit{})
	}
	return nil
}

// Close detaches input routing, then releases the swap chain, the surface
// and the window. The context's handle becomes invalid. Closing twice
// returns ErrClosed.
func (c *Context) Close() error {
	if c.state == StateClosed {
		return ErrClosed
	}
	c.m.release(c)
	c.device = nil
	c.state = StateClosed
	return nil
}

func (c *Context) checkConfigured() error {
	switch c.state {
	case StateConfigured:
		return nil
	case StateClosed:
		return ErrClosed
	default:
		return ErrNotConfigured
	}
}

// Size returns the window size in pixels.
func (c *Context) Size() (width, height int) { return c.width, c.height }

// ScaleFactor returns 1. Windows are created without a high-DPI
// framebuffer, so window and framebuffer sizes match.
func (c *Context) ScaleFactor() float64 { return 1 }

// RequestRedraw marks the context as needing a new frame. The mark is
// cleared by the next successful present.
func (c *Context) RequestRedraw() { c.redraw = true }

// RedrawRequested reports whether RequestRedraw was called since the last
// present.
func (c *Context) RedrawRequested() bool { return c.redraw }

// Title returns the NFC-normalized window title.
func (c *Context) Title() string { return c.title }

// State returns the lifecycle state.
func (c *Context) State() State { return c.state }

// Handle returns the token naming c in its Manager.
func (c *Context) Handle() Handle { return c.handle }

// Device returns the device provider passed to the last successful
// Configure, or nil.
func (c *Context) Device() gpucontext.DeviceProvider { return c.device }

// Frame is the current swap chain image of a Context.
type Frame struct {
	c *Context
}

// CreateView returns a new view of the frame. Equivalent to AcquireView.
func (f Frame) CreateView() (driver.TextureView, error) {
	return f.c.AcquireView()
}
