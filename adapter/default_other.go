//go:build !darwin

package adapter

import "github.com/gogpu/gputypes"

// DefaultBackend returns the backend preferred when none is requested.
func DefaultBackend() gputypes.Backend { return gputypes.BackendVulkan }
