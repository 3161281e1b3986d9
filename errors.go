package gpuwindow

import (
	"errors"

	"github.com/gogpu/gpuwindow/adapter"
	"github.com/gogpu/gpuwindow/driver"
)

var (
	// ErrInvalidArgument is returned for malformed flags or window parameters.
	ErrInvalidArgument = errors.New("gpuwindow: invalid argument")

	// ErrNotFound is returned by RequestAdapter when no discrete adapter runs
	// on the preferred backend.
	ErrNotFound = adapter.ErrNotFound

	// ErrUnwrap is returned by Configure when the device does not resolve to
	// a device of the driver that created the surface.
	ErrUnwrap = driver.ErrUnwrap

	// ErrNativeInit is returned when the window system fails to initialize
	// or to create a window.
	ErrNativeInit = errors.New("gpuwindow: native window initialization failed")

	// ErrDriver wraps errors reported by the graphics driver.
	ErrDriver = errors.New("gpuwindow: driver error")

	// ErrNotConfigured is returned by AcquireView and Refresh before a
	// successful Configure.
	ErrNotConfigured = errors.New("gpuwindow: context not configured")

	// ErrClosed is returned when a closed context is used.
	ErrClosed = errors.New("gpuwindow: context closed")

	// ErrInvalidHandle is returned for handles that do not name a live context.
	ErrInvalidHandle = errors.New("gpuwindow: invalid handle")

	// ErrReentrant is returned when Refresh is called from the event handler
	// of the refresh in progress.
	ErrReentrant = errors.New("gpuwindow: re-entrant refresh")
)
