package adapter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpuwindow/driver"
	"github.com/gogpu/gpuwindow/driver/drivertest"
)

func newRegistry(t *testing.T, props ...driver.AdapterProperties) (*Registry, *drivertest.Instance, *bytes.Buffer) {
	t.Helper()
	inst := drivertest.NewInstance(props...)
	if err := inst.DiscoverDefaultAdapters(); err != nil {
		t.Fatalf("DiscoverDefaultAdapters: %v", err)
	}
	var diag bytes.Buffer
	return NewRegistry(inst, &diag, nil), inst, &diag
}

func TestSelect(t *testing.T) {
	vk, mtl, dx := gputypes.BackendVulkan, gputypes.BackendMetal, gputypes.BackendDX12
	tests := []struct {
		name    string
		props   []driver.AdapterProperties
		backend gputypes.Backend
		want    int
	}{
		{
			name:    "discrete on backend wins over integrated",
			props:   []driver.AdapterProperties{drivertest.Integrated("A", vk), drivertest.Discrete("B", mtl), drivertest.Discrete("A", vk)},
			backend: vk,
			want:    2,
		},
		{
			name:    "first of ties",
			props:   []driver.AdapterProperties{drivertest.Discrete("first", dx), drivertest.Discrete("second", dx)},
			backend: dx,
			want:    0,
		},
		{
			name:    "single match",
			props:   []driver.AdapterProperties{drivertest.Discrete("only", mtl)},
			backend: mtl,
			want:    0,
		},
		{
			name:    "integrated only",
			props:   []driver.AdapterProperties{drivertest.Integrated("igpu", vk)},
			backend: vk,
			want:    -1,
		},
		{
			name:    "discrete on wrong backend",
			props:   []driver.AdapterProperties{drivertest.Discrete("dgpu", dx)},
			backend: vk,
			want:    -1,
		},
		{
			name:    "no adapters",
			backend: vk,
			want:    -1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _ := newRegistry(t, tt.props...)
			a, err := r.Select(tt.backend)
			if tt.want < 0 {
				if !errors.Is(err, ErrNotFound) {
					t.Fatalf("Select err = %v, want ErrNotFound", err)
				}
				var nf *NotFoundError
				if !errors.As(err, &nf) || nf.Backend != tt.backend {
					t.Errorf("Select err = %#v, want NotFoundError{Backend: %v}", err, tt.backend)
				}
				return
			}
			if err != nil {
				t.Fatalf("Select: %v", err)
			}
			if got := a.(drivertest.Adapter).Index; got != tt.want {
				t.Errorf("selected index %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSelectWritesRanking(t *testing.T) {
	vk := gputypes.BackendVulkan
	r, _, diag := newRegistry(t,
		drivertest.Integrated("A", vk),
		drivertest.Discrete("B", gputypes.BackendMetal),
		drivertest.Discrete("A", vk),
	)
	if _, err := r.Select(vk); err != nil {
		t.Fatalf("Select: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(diag.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("ranking has %d lines, want 3:\n%s", len(lines), diag)
	}
	for i, line := range lines {
		marked := strings.HasPrefix(line, "* ")
		if marked != (i == 2) {
			t.Errorf("line %d = %q, marked = %v", i, line, marked)
		}
	}
	if !strings.HasPrefix(lines[0], "  A : fake (") {
		t.Errorf("line 0 = %q", lines[0])
	}
}

func TestSelectNotFoundStillRanks(t *testing.T) {
	r, _, diag := newRegistry(t, drivertest.Integrated("igpu", gputypes.BackendVulkan))
	if _, err := r.Select(gputypes.BackendVulkan); err == nil {
		t.Fatal("Select succeeded with integrated-only adapters")
	}
	if strings.Contains(diag.String(), "* ") {
		t.Errorf("ranking marks an adapter:\n%s", diag)
	}
	if !strings.Contains(diag.String(), "igpu") {
		t.Errorf("ranking misses adapter:\n%s", diag)
	}
}

func TestAdaptersEnumeratedOnce(t *testing.T) {
	r, inst, _ := newRegistry(t, drivertest.Discrete("d", gputypes.BackendVulkan))
	for range 3 {
		if _, err := r.Select(gputypes.BackendVulkan); err != nil {
			t.Fatalf("Select: %v", err)
		}
	}
	_ = r.Adapters()
	if n := inst.AdapterCalls(); n != 1 {
		t.Errorf("driver queried %d times, want 1", n)
	}
}

func TestScore(t *testing.T) {
	vk := gputypes.BackendVulkan
	tests := []struct {
		p    driver.AdapterProperties
		want int
	}{
		{drivertest.Discrete("d", vk), 1},
		{drivertest.Integrated("i", vk), 0},
		{drivertest.Discrete("d", gputypes.BackendMetal), 0},
		{driver.AdapterProperties{AdapterType: gputypes.DeviceTypeCPU, BackendType: vk}, 0},
	}
	for _, tt := range tests {
		if got := Score(tt.p, vk); got != tt.want {
			t.Errorf("Score(%v) = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestInfo(t *testing.T) {
	info := Info(drivertest.Adapter{Props: drivertest.Discrete("gpu", gputypes.BackendVulkan)})
	if info.Name != "gpu" || info.Type != gpucontext.AdapterTypeDiscrete {
		t.Errorf("Info = %+v", info)
	}
}

func TestWriteRankingNoSelection(t *testing.T) {
	var buf bytes.Buffer
	props := []driver.AdapterProperties{drivertest.Discrete("x", gputypes.BackendVulkan)}
	if err := WriteRanking(&buf, props, -1); err != nil {
		t.Fatalf("WriteRanking: %v", err)
	}
	if got := buf.String(); !strings.HasPrefix(got, "  x : ") {
		t.Errorf("WriteRanking = %q", got)
	}
}
