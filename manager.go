package gpuwindow

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/gogpu/gputypes"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/gpuwindow/adapter"
	"github.com/gogpu/gpuwindow/driver"
	"github.com/gogpu/gpuwindow/event"
	"github.com/gogpu/gpuwindow/platform"
	"github.com/gogpu/gpuwindow/surface"
)

// PreferredCanvasFormat returns the texture format swap chains are created
// with.
func PreferredCanvasFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatBGRA8Unorm
}

// Manager owns the driver instance, the adapter registry and every
// presentation context created through it.
//
// Window operations must run on the thread that owns the window system
// (on macOS, the main thread). The Manager's lock only keeps its context
// table consistent; it is never held while events are delivered.
type Manager struct {
	inst    driver.Instance
	sys     platform.System
	flags   Flags
	backend gputypes.Backend
	log     *slog.Logger
	diag    io.Writer

	registry *adapter.Registry
	binder   *surface.Binder
	bridge   *event.Bridge

	mu       sync.Mutex
	contexts arena
	sysReady bool
	pumping  bool
	doomed   []platform.Handle // destroyed once the event pump returns
}

// NewManager prepares inst for use and returns a Manager creating windows
// on sys.
//
// The instance is set up exactly once, in this order: backend validation is
// toggled, the validation level is set, the dlldir flag is applied (Windows
// only), and the default adapters are discovered. The dawn-backend flag is
// parsed here; an unrecognized value is logged and the platform default
// backend is used instead.
func NewManager(inst driver.Instance, sys platform.System, flags Flags, opts ...ManagerOption) (*Manager, error) {
	if inst == nil {
		return nil, fmt.Errorf("%w: nil driver instance", ErrInvalidArgument)
	}
	if sys == nil {
		return nil, fmt.Errorf("%w: nil window system", ErrInvalidArgument)
	}

	o := defaultManagerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = Logger()
	}
	propagateLogger(inst, log)
	propagateLogger(sys, log)

	inst.EnableBackendValidation(o.validation)
	inst.SetValidationLevel(o.level)
	if dir, ok := flags.Get(FlagDLLDir); ok {
		if err := applyDLLDir(dir, log); err != nil {
			log.Warn("gpuwindow: could not set dll directory", "dir", dir, "err", err)
		}
	}
	if err := inst.DiscoverDefaultAdapters(); err != nil {
		return nil, fmt.Errorf("%w: discover adapters: %w", ErrDriver, err)
	}

	name, _ := flags.Get(FlagBackend)
	backend, err := adapter.ParseBackend(name)
	if err != nil {
		log.Warn("gpuwindow: unknown backend, using default",
			"flag", FlagBackend, "value", name, "backend", backend.String())
	}

	m := &Manager{
		inst:     inst,
		sys:      sys,
		flags:    flags,
		backend:  backend,
		log:      log,
		diag:     o.diag,
		registry: adapter.NewRegistry(inst, o.diag, log),
		binder:   surface.NewBinder(inst, sys, log),
		bridge:   event.NewBridge(sys, log),
	}
	log.Debug("gpuwindow: manager ready",
		"backend", backend.String(),
		"validation", o.validation,
		"level", o.level.String())
	return m, nil
}

// Flags returns the flags the Manager was created with.
func (m *Manager) Flags() Flags { return m.flags }

// Backend returns the preferred backend.
func (m *Manager) Backend() gputypes.Backend { return m.backend }

// Adapters returns every adapter the driver enumerated.
func (m *Manager) Adapters() []driver.Adapter { return m.registry.Adapters() }

// RequestAdapter returns the first discrete adapter on the preferred
// backend, or an error wrapping ErrNotFound. The adapter ranking is written
// to the diagnostic writer.
func (m *Manager) RequestAdapter() (driver.Adapter, error) {
	return m.registry.Select(m.backend)
}

// CreateWindow opens a window of the given size, binds it to a surface and
// routes its input events to handler. handler may be nil.
//
// The title is normalized to NFC. The returned context is in StateCreated;
// call Configure before acquiring views or refreshing.
func (m *Manager) CreateWindow(width, height int, title string, handler event.Handler) (*Context, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: window size %dx%d", ErrInvalidArgument, width, height)
	}
	title = norm.NFC.String(title)

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.sysReady {
		m.sys.SetErrorCallback(m.platformError)
		if err := m.sys.Init(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNativeInit, err)
		}
		m.sysReady = true
	}

	window, err := m.sys.CreateWindow(width, height, title)
	if err != nil {
		m.terminateIfIdle()
		return nil, fmt.Errorf("%w: %w", ErrNativeInit, err)
	}

	if err := m.bridge.Attach(window, handler); err != nil {
		m.sys.DestroyWindow(window)
		m.terminateIfIdle()
		return nil, fmt.Errorf("%w: %w", ErrNativeInit, err)
	}

	surf, err := m.binder.Bind(window)
	if err != nil {
		m.bridge.Detach(window)
		m.sys.DestroyWindow(window)
		m.terminateIfIdle()
		if errors.Is(err, surface.ErrCreate) {
			return nil, fmt.Errorf("%w: %w", ErrDriver, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrNativeInit, err)
	}

	c := &Context{
		m:       m,
		window:  window,
		width:   width,
		height:  height,
		title:   title,
		surface: surf,
		state:   StateCreated,
	}
	c.handle = m.contexts.insert(c)

	m.log.Info("gpuwindow: window created",
		"handle", c.handle.String(),
		"width", width,
		"height", height,
		"title", title)
	return c, nil
}

// Context returns the live context named by h.
func (m *Manager) Context(h Handle) (*Context, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.contexts.get(h)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHandle, h)
	}
	return c, nil
}

// Close closes the context named by h.
func (m *Manager) Close(h Handle) error {
	c, err := m.Context(h)
	if err != nil {
		return err
	}
	return c.Close()
}

// Len returns the number of open contexts.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.contexts.len()
}

// release tears down c: input hooks are detached before anything is
// destroyed, so no event can reach c while its window goes away. The window
// system is terminated once no context remains.
//
// While events are being pumped the window is only queued for destruction;
// pollEvents destroys it after the pump returns.
func (m *Manager) release(c *Context) {
	m.bridge.Detach(c.window)

	if c.swapChain != nil {
		c.swapChain.Release()
		c.swapChain = nil
	}
	if err := m.binder.Unbind(c.window); err != nil {
		m.log.Warn("gpuwindow: unbind surface", "handle", c.handle.String(), "err", err)
	}
	c.surface = nil

	m.mu.Lock()
	m.contexts.remove(c.handle)
	deferred := m.pumping
	if deferred {
		m.doomed = append(m.doomed, c.window)
	}
	m.mu.Unlock()

	if !deferred {
		m.sys.DestroyWindow(c.window)
		m.mu.Lock()
		m.terminateIfIdle()
		m.mu.Unlock()
	}
	m.log.Info("gpuwindow: window closed", "handle", c.handle.String(), "deferred", deferred)
}

// pollEvents runs the window system's event pump once. Windows closed by a
// handler during the pump are destroyed after it returns.
func (m *Manager) pollEvents() {
	m.mu.Lock()
	m.pumping = true
	m.mu.Unlock()

	m.sys.PollEvents()

	m.mu.Lock()
	m.pumping = false
	doomed := m.doomed
	m.doomed = nil
	m.mu.Unlock()

	for _, w := range doomed {
		m.sys.DestroyWindow(w)
	}
	m.mu.Lock()
	m.terminateIfIdle()
	m.mu.Unlock()
}

func (m *Manager) isPumping() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pumping
}

// terminateIfIdle shuts the window system down when no context is open.
// Must be called with m.mu held. It does nothing while events are pumped.
func (m *Manager) terminateIfIdle() {
	if !m.sysReady || m.pumping || m.contexts.len() > 0 {
		return
	}
	m.sys.SetErrorCallback(nil)
	m.sys.Terminate()
	m.sysReady = false
	m.log.Debug("gpuwindow: window system terminated")
}

// platformError reports window-system errors. They are diagnostic only;
// failing calls also return errors.
func (m *Manager) platformError(code int, description string) {
	fmt.Fprintf(m.diag, "window system error: %d - %s\n", code, description)
	m.log.Warn("gpuwindow: window system error", "code", code, "description", description)
}
