package moire

// Edge is one drawn polygon side
type Edge struct {
	X1, Y1, X2, Y2 int
}

// TrailHistory is a fixed-capacity ring of the most recently drawn edges.
// Once full, every Record overwrites the oldest slot.
type TrailHistory struct {
	edges []Edge
	pos   int
	full  bool
}

// NewTrailHistory creates a history holding capacity edges
func NewTrailHistory(capacity int) *TrailHistory {
	if capacity < 1 {
		capacity = 1
	}
	return &TrailHistory{
		edges: make([]Edge, capacity),
	}
}

// Cap returns the fixed capacity
func (h *TrailHistory) Cap() int { return len(h.edges) }

// Len returns the number of recorded edges
func (h *TrailHistory) Len() int {
	if h.full {
		return len(h.edges)
	}
	return h.pos
}

// Evictions calls fn for each edge the next n Record calls will overwrite,
// oldest first. Empty slots are skipped.
func (h *TrailHistory) Evictions(n int, fn func(Edge)) {
	if n > len(h.edges) {
		n = len(h.edges)
	}
	for i := 0; i < n; i++ {
		slot := (h.pos + i) % len(h.edges)
		if !h.full && slot >= h.pos {
			// Slots at or past the cursor are unwritten until the first wrap
			continue
		}
		fn(h.edges[slot])
	}
}

// Record stores e in the slot under the cursor and advances it
func (h *TrailHistory) Record(e Edge) {
	h.edges[h.pos] = e
	h.pos++
	if h.pos >= len(h.edges) {
		h.pos = 0
		h.full = true
	}
}

// Edges returns the recorded edges in insertion order, oldest first
func (h *TrailHistory) Edges() []Edge {
	out := make([]Edge, h.Len())
	if h.full {
		n := copy(out, h.edges[h.pos:])
		copy(out[n:], h.edges[:h.pos])
	} else {
		copy(out, h.edges[:h.pos])
	}
	return out
}
