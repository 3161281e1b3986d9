package gpuwindow

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Recognized flag keys.
const (
	// FlagBackend selects the preferred backend ("d3d12", "metal", "vulkan", ...).
	FlagBackend = "dawn-backend"

	// FlagDLLDir adds a directory to the driver library search path.
	// Only honored on Windows.
	FlagDLLDir = "dlldir"
)

// Flags holds key=value settings. Unknown keys are kept.
// The zero value is empty and ready to use.
type Flags struct {
	values map[string]string
}

// ParseFlags parses tokens of the form key=value. The key is everything
// before the first "="; the value may be empty or contain further "="
// characters, and the key may be empty. A later token overrides an earlier
// one with the same key.
//
// A token without "=" yields ErrInvalidArgument.
func ParseFlags(tokens []string) (Flags, error) {
	f := Flags{values: make(map[string]string, len(tokens))}
	for _, tok := range tokens {
		key, value, ok := strings.Cut(tok, "=")
		if !ok {
			return Flags{}, fmt.Errorf("%w: flags should be key=value, got %q", ErrInvalidArgument, tok)
		}
		f.values[key] = value
	}
	return f, nil
}

// Get returns the value of key and whether it was set.
func (f Flags) Get(key string) (string, bool) {
	v, ok := f.values[key]
	return v, ok
}

// Set stores value under key.
func (f *Flags) Set(key, value string) {
	if f.values == nil {
		f.values = make(map[string]string)
	}
	f.values[key] = value
}

// Merge returns a copy of f with every entry of other applied on top.
func (f Flags) Merge(other Flags) Flags {
	out := Flags{values: make(map[string]string, len(f.values)+len(other.values))}
	maps.Copy(out.values, f.values)
	maps.Copy(out.values, other.values)
	return out
}

// Keys returns the set keys in sorted order.
func (f Flags) Keys() []string {
	return slices.Sorted(maps.Keys(f.values))
}

// Len returns the number of set keys.
func (f Flags) Len() int { return len(f.values) }
