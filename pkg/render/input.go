package render

// MouseTracker turns absolute cursor positions into per-event deltas.
// The first sample after creation or Reset only primes the tracker so a
// freshly captured cursor does not produce a large jump.
type MouseTracker struct {
	lastX, lastY float64
	primed       bool
}

// Delta returns the movement since the previous sample.
// ok is false for the priming sample.
func (m *MouseTracker) Delta(x, y float64) (dx, dy float64, ok bool) {
	if !m.primed {
		m.lastX, m.lastY = x, y
		m.primed = true
		return 0, 0, false
	}

	dx = x - m.lastX
	dy = y - m.lastY
	m.lastX, m.lastY = x, y
	return dx, dy, true
}

// Reset forgets the last position
func (m *MouseTracker) Reset() {
	m.primed = false
}

// ApplyMouseDelta turns the camera by a cursor movement.
// Screen y grows downwards, so it is inverted for pitch.
func ApplyMouseDelta(c *Camera, dx, dy float64, sensitivity float32) {
	c.MoveView(sensitivity*float32(dx), -sensitivity*float32(dy))
}
