package gpuwindow

import (
	"errors"
	"slices"
	"testing"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []string
		want    map[string]string
		wantErr bool
	}{
		{name: "empty", tokens: nil, want: map[string]string{}},
		{name: "backend", tokens: []string{"dawn-backend=vulkan"}, want: map[string]string{"dawn-backend": "vulkan"}},
		{name: "empty value", tokens: []string{"dlldir="}, want: map[string]string{"dlldir": ""}},
		{name: "value with equals", tokens: []string{"k=a=b"}, want: map[string]string{"k": "a=b"}},
		{name: "later wins", tokens: []string{"k=1", "k=2"}, want: map[string]string{"k": "2"}},
		{name: "unknown keys kept", tokens: []string{"x=1", "y=2"}, want: map[string]string{"x": "1", "y": "2"}},
		{name: "no separator", tokens: []string{"dawn-backend"}, wantErr: true},
		{name: "bad token after good", tokens: []string{"a=1", "oops"}, wantErr: true},
		{name: "empty key", tokens: []string{"=v"}, want: map[string]string{"": "v"}},
		{name: "bare separator", tokens: []string{"="}, want: map[string]string{"": ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFlags(tt.tokens)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Fatalf("err = %v, want ErrInvalidArgument", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFlags: %v", err)
			}
			if f.Len() != len(tt.want) {
				t.Errorf("Len() = %d, want %d", f.Len(), len(tt.want))
			}
			for k, v := range tt.want {
				if got, ok := f.Get(k); !ok || got != v {
					t.Errorf("Get(%q) = %q, %v; want %q", k, got, ok, v)
				}
			}
		})
	}
}

func TestFlagsGetMissing(t *testing.T) {
	var f Flags
	if _, ok := f.Get(FlagBackend); ok {
		t.Error("zero Flags reports a value")
	}
}

func TestFlagsMerge(t *testing.T) {
	base, _ := ParseFlags([]string{"dawn-backend=metal", "dlldir=/opt"})
	over, _ := ParseFlags([]string{"dawn-backend=vk"})

	got := base.Merge(over)
	if v, _ := got.Get(FlagBackend); v != "vk" {
		t.Errorf("merged backend = %q, want vk", v)
	}
	if v, _ := got.Get(FlagDLLDir); v != "/opt" {
		t.Errorf("merged dlldir = %q, want /opt", v)
	}
	if v, _ := base.Get(FlagBackend); v != "metal" {
		t.Error("Merge modified the receiver")
	}
	if !slices.Equal(got.Keys(), []string{"dawn-backend", "dlldir"}) {
		t.Errorf("Keys() = %v", got.Keys())
	}
}

func TestFlagsSet(t *testing.T) {
	var f Flags
	f.Set("a", "1")
	if v, ok := f.Get("a"); !ok || v != "1" {
		t.Errorf("Get(a) = %q, %v", v, ok)
	}
}
