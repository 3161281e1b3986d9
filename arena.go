package gpuwindow

import "fmt"

// Handle names a Context owned by a Manager. The zero Handle is never valid.
// Closing a context invalidates its handle; a slot reused by a later context
// gets a new generation, so stale handles never resolve to it.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool { return h.gen == 0 }

func (h Handle) String() string {
	return fmt.Sprintf("ctx#%d.%d", h.index, h.gen)
}

type slot struct {
	gen uint32
	ctx *Context
}

// arena stores contexts by Handle. Not safe for concurrent use.
type arena struct {
	slots []slot
	free  []uint32
	live  int
}

func (a *arena) insert(c *Context) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot{})
	}
	s := &a.slots[idx]
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	s.ctx = c
	a.live++
	return Handle{index: idx, gen: s.gen}
}

func (a *arena) get(h Handle) (*Context, bool) {
	if h.gen == 0 || int(h.index) >= len(a.slots) {
		return nil, false
	}
	s := a.slots[h.index]
	if s.gen != h.gen || s.ctx == nil {
		return nil, false
	}
	return s.ctx, true
}

func (a *arena) remove(h Handle) bool {
	if _, ok := a.get(h); !ok {
		return false
	}
	a.slots[h.index].ctx = nil
	a.free = append(a.free, h.index)
	a.live--
	return true
}

func (a *arena) len() int { return a.live }
