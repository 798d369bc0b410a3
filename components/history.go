package components

import "github.com/golang/geo/r3"

// History is a fixed-capacity FIFO of position snapshots. Once full,
// each push evicts the oldest entry. Invariant: Len() <= Cap() always.
type History struct {
	samples    []r3.Vector
	writeIndex int
	count      int
}

// NewHistory creates a history with the given capacity.
// capacity < 1 is clamped to 1.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{
		samples: make([]r3.Vector, capacity),
	}
}

// Push appends a snapshot, evicting the oldest entry when full.
func (h *History) Push(v r3.Vector) {
	h.samples[h.writeIndex] = v
	h.writeIndex = (h.writeIndex + 1) % len(h.samples)
	if h.count < len(h.samples) {
		h.count++
	}
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return h.count
}

// Cap returns the history capacity.
func (h *History) Cap() int {
	return len(h.samples)
}

// At returns the i-th snapshot in insertion order, 0 being the oldest
// retained entry. Panics if i is out of [0, Len()).
func (h *History) At(i int) r3.Vector {
	if i < 0 || i >= h.count {
		panic("components: history index out of range")
	}
	if h.count < len(h.samples) {
		return h.samples[i]
	}
	return h.samples[(h.writeIndex+i)%len(h.samples)]
}

// Latest returns the most recent snapshot and whether one exists.
func (h *History) Latest() (r3.Vector, bool) {
	if h.count == 0 {
		return r3.Vector{}, false
	}
	idx := h.writeIndex - 1
	if idx < 0 {
		idx += len(h.samples)
	}
	return h.samples[idx], true
}

// Snapshot returns the stored positions oldest-first as a new slice.
func (h *History) Snapshot() []r3.Vector {
	out := make([]r3.Vector, h.count)
	for i := 0; i < h.count; i++ {
		out[i] = h.At(i)
	}
	return out
}
