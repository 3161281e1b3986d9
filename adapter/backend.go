package adapter

import (
	"fmt"
	"strings"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"golang.org/x/text/cases"
)

// aliases maps accepted backend names to backends.
var aliases = newAliases()

func newAliases() *gpucontext.Registry[gputypes.Backend] {
	r := gpucontext.NewRegistry[gputypes.Backend]()
	for _, a := range []struct {
		name    string
		backend gputypes.Backend
	}{
		{"d3d12", gputypes.BackendDX12},
		{"d3d", gputypes.BackendDX12},
		{"metal", gputypes.BackendMetal},
		{"vulkan", gputypes.BackendVulkan},
		{"vk", gputypes.BackendVulkan},
		{"gl", gputypes.BackendGL},
		{"opengl", gputypes.BackendGL},
	} {
		b := a.backend
		r.Register(a.name, func() gputypes.Backend { return b })
	}
	return r
}

// BackendNames returns every accepted backend name.
func BackendNames() []string {
	return aliases.Available()
}

// ParseBackend converts a backend name into a backend preference.
// Matching ignores case and surrounding space.
//
// An empty name selects DefaultBackend. An unrecognized name also yields
// DefaultBackend, together with an error wrapping ErrUnknownBackend so the
// caller can warn about it.
func ParseBackend(name string) (gputypes.Backend, error) {
	key := cases.Fold().String(strings.TrimSpace(name))
	if key == "" {
		return DefaultBackend(), nil
	}
	if !aliases.Has(key) {
		return DefaultBackend(), fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	return aliases.Get(key), nil
}
