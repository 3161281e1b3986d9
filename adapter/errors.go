package adapter

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
)

var (
	// ErrNotFound is returned when no adapter matches the backend preference.
	ErrNotFound = errors.New("adapter: no adapter for backend")

	// ErrUnknownBackend is returned by ParseBackend for unrecognized names.
	ErrUnknownBackend = errors.New("adapter: unknown backend")
)

// NotFoundError reports the backend for which no discrete adapter exists.
type NotFoundError struct {
	Backend gputypes.Backend
	// Enumerated is the number of adapters that were considered.
	Enumerated int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("adapter: no adapter for backend %s (%d enumerated)", e.Backend, e.Enumerated)
}

// Unwrap returns ErrNotFound.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }
