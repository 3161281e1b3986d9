package adapter

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestParseBackend(t *testing.T) {
	tests := []struct {
		in      string
		want    gputypes.Backend
		wantErr bool
	}{
		{"d3d12", gputypes.BackendDX12, false},
		{"d3d", gputypes.BackendDX12, false},
		{"D3D12", gputypes.BackendDX12, false},
		{"metal", gputypes.BackendMetal, false},
		{"Metal", gputypes.BackendMetal, false},
		{"vulkan", gputypes.BackendVulkan, false},
		{"vk", gputypes.BackendVulkan, false},
		{" VK ", gputypes.BackendVulkan, false},
		{"gl", gputypes.BackendGL, false},
		{"opengl", gputypes.BackendGL, false},
		{"", DefaultBackend(), false},
		{"glide", DefaultBackend(), true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBackend(tt.in)
			if got != tt.want {
				t.Errorf("ParseBackend(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if tt.wantErr != errors.Is(err, ErrUnknownBackend) {
				t.Errorf("ParseBackend(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ParseBackend(%q) unexpected err %v", tt.in, err)
			}
		})
	}
}

func TestDefaultBackend(t *testing.T) {
	switch DefaultBackend() {
	case gputypes.BackendMetal, gputypes.BackendVulkan:
	default:
		t.Errorf("DefaultBackend() = %v", DefaultBackend())
	}
}

func TestBackendNames(t *testing.T) {
	if n := len(BackendNames()); n != 7 {
		t.Errorf("len(BackendNames()) = %d, want 7", n)
	}
}
