// Package adapter enumerates driver adapters and selects the one to run on.
//
// Selection is deterministic: an adapter scores 1 only when it runs on the
// preferred backend and is a discrete GPU, every other adapter scores 0, and
// the first adapter with the highest positive score wins. There is no
// fallback to an integrated or software adapter.
package adapter

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpuwindow/driver"
)

// Registry caches the adapter list of one driver instance.
type Registry struct {
	inst driver.Instance
	diag io.Writer
	log  *slog.Logger

	once     sync.Once
	adapters []driver.Adapter
}

// NewRegistry returns a registry over inst. The ranking printed by Select
// goes to diag (os.Stderr when nil). A nil logger discards output.
//
// The instance must already have discovered its adapters.
func NewRegistry(inst driver.Instance, diag io.Writer, logger *slog.Logger) *Registry {
	if diag == nil {
		diag = os.Stderr
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Registry{inst: inst, diag: diag, log: logger}
}

// Adapters returns the enumerated adapters. The driver is queried once;
// later calls return the cached list.
func (r *Registry) Adapters() []driver.Adapter {
	r.once.Do(func() {
		r.adapters = r.inst.Adapters()
		r.log.Debug("adapter: enumerated", "count", len(r.adapters))
	})
	return r.adapters
}

// Select returns the first discrete adapter running on backend.
//
// The ranking of all adapters is written to the diagnostic writer, with
// "* " marking the selection. When no adapter qualifies, Select returns a
// *NotFoundError wrapping ErrNotFound.
func (r *Registry) Select(backend gputypes.Backend) (driver.Adapter, error) {
	adapters := r.Adapters()
	props := make([]driver.AdapterProperties, len(adapters))
	for i, a := range adapters {
		props[i] = a.Properties()
	}

	best := Best(props, backend)
	if err := WriteRanking(r.diag, props, best); err != nil {
		r.log.Warn("adapter: could not write ranking", "err", err)
	}
	for i, p := range props {
		r.log.Debug("adapter: candidate",
			"index", i,
			"name", p.Name,
			"type", p.AdapterType.String(),
			"backend", p.BackendType.String(),
			"score", Score(p, backend),
			"selected", i == best)
	}

	if best < 0 {
		return nil, &NotFoundError{Backend: backend, Enumerated: len(props)}
	}
	info := Info(adapters[best])
	r.log.Info("adapter: selected",
		"name", info.Name,
		"type", info.Type.String(),
		"driver", props[best].DriverDescription,
		"backend", props[best].BackendType.String())
	return adapters[best], nil
}

// Info returns the gpucontext metadata of a.
func Info(a driver.Adapter) gpucontext.AdapterInfo {
	return a.Properties().Info()
}

// Score rates p for backend: 1 if p is a discrete GPU on backend, else 0.
func Score(p driver.AdapterProperties, backend gputypes.Backend) int {
	match := 0
	if p.BackendType == backend {
		match = 1
	}
	discrete := 0
	if p.AdapterType == gputypes.DeviceTypeDiscreteGPU {
		discrete = 1
	}
	return match * discrete
}

// Best returns the index of the first adapter with the highest positive
// score, or -1 if every adapter scores 0.
func Best(props []driver.AdapterProperties, backend gputypes.Backend) int {
	best, bestScore := -1, 0
	for i, p := range props {
		if s := Score(p, backend); s > bestScore {
			best, bestScore = i, s
		}
	}
	return best
}
