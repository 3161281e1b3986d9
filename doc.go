// Package gpuwindow manages GPU presentation contexts: native windows bound
// to presentable surfaces, their swap chains, and the window events they
// produce.
//
// # Overview
//
// A Manager owns one graphics driver instance and one window system. It
// selects the adapter to run on, creates windows, and hands out a Context
// for each. A Context goes through three states:
//
//	Created ──Configure──▶ Configured ──Close──▶ Closed
//	   └────────────────Close────────────────────▶┘
//
// Once configured, a host renders each frame into the view returned by
// AcquireView and calls Refresh, which presents the frame, pumps window
// events into the host's handler, and reports a close request as
// event.Quit.
//
// # Quick Start
//
//	flags, err := gpuwindow.ParseFlags([]string{"dawn-backend=vulkan"})
//	m, err := gpuwindow.NewManager(inst, sys, flags)
//	adapter, err := m.RequestAdapter()
//	// ... create a device on adapter ...
//
//	ctx, err := m.CreateWindow(800, 600, "demo", func(e event.Event) {
//	    if e.Type() == event.TypeQuit {
//	        running = false
//	    }
//	})
//	err = ctx.Configure(device)
//	for running {
//	    view, _ := ctx.AcquireView()
//	    // ... draw into view ...
//	    view.Release()
//	    _ = ctx.Refresh()
//	}
//	_ = ctx.Close()
//
// # Adapter Selection
//
// RequestAdapter returns the first adapter that is a discrete GPU running
// on the preferred backend (flag "dawn-backend"; Metal on macOS and Vulkan
// elsewhere by default). Integrated and software adapters are never
// selected. The ranking of every adapter is written to the diagnostic
// writer (stderr by default) with "* " marking the selection.
//
// # Threading
//
// Window systems must be driven from one thread, on macOS the main thread.
// Call runtime.LockOSThread from an init function of the main package and
// call every Manager and Context method from main. The event handler runs
// synchronously inside Refresh.
//
// # Packages
//
//   - adapter: enumeration, scoring, backend names
//   - surface: window to surface binding
//   - event: event types and the callback bridge
//   - driver: driver contract; driver/webgpu is the gogpu/wgpu implementation
//   - platform: window-system contract; platform/glfw is the GLFW implementation
//   - blit: draws a CPU image onto an acquired frame
package gpuwindow
