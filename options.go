package gpuwindow

import (
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/gpuwindow/driver"
)

// ManagerOption configures a Manager during creation.
//
// Example:
//
//	m, err := gpuwindow.NewManager(inst, sys, flags,
//	    gpuwindow.WithLogger(logger),
//	    gpuwindow.WithDiagnostics(io.Discard),
//	)
type ManagerOption func(*managerOptions)

// managerOptions holds optional configuration for Manager creation.
type managerOptions struct {
	logger     *slog.Logger
	diag       io.Writer
	validation bool
	level      driver.ValidationLevel
}

// defaultManagerOptions enables full backend validation and prints the
// adapter ranking to stderr.
func defaultManagerOptions() managerOptions {
	return managerOptions{
		diag:       os.Stderr,
		validation: true,
		level:      driver.ValidationFull,
	}
}

// WithLogger sets the logger of the Manager and everything it creates.
// Without it the Manager uses the package default (see SetLogger).
func WithLogger(l *slog.Logger) ManagerOption {
	return func(o *managerOptions) {
		o.logger = l
	}
}

// WithDiagnostics redirects the adapter ranking printed by RequestAdapter.
// A nil writer discards it.
func WithDiagnostics(w io.Writer) ManagerOption {
	return func(o *managerOptions) {
		if w == nil {
			w = io.Discard
		}
		o.diag = w
	}
}

// WithBackendValidation toggles backend validation layers.
// Validation is enabled by default.
func WithBackendValidation(enabled bool) ManagerOption {
	return func(o *managerOptions) {
		o.validation = enabled
	}
}

// WithValidationLevel sets the validation level used when validation is
// enabled. Defaults to driver.ValidationFull.
func WithValidationLevel(level driver.ValidationLevel) ManagerOption {
	return func(o *managerOptions) {
		o.level = level
	}
}
