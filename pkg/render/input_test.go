package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMouseTrackerPrimesOnFirstSample(t *testing.T) {
	var m MouseTracker

	_, _, ok := m.Delta(400, 300)
	assert.False(t, ok)

	dx, dy, ok := m.Delta(410, 290)
	assert.True(t, ok)
	assert.Equal(t, 10.0, dx)
	assert.Equal(t, -10.0, dy)

	m.Reset()
	_, _, ok = m.Delta(0, 0)
	assert.False(t, ok)
}

func TestApplyMouseDeltaInvertsY(t *testing.T) {
	c := NewCamera()

	ApplyMouseDelta(c, 10, 20, MouseSensitivity)

	yaw, pitch := c.YawPitch()
	assert.InDelta(t, -89, yaw, tol)
	assert.InDelta(t, -2, pitch, tol)
}

func TestMouseTrackerResetOnRecapture(t *testing.T) {
	var m MouseTracker
	m.Delta(100, 100)
	m.Delta(110, 100)

	// the cursor moved freely while released; recapturing must not jump
	m.Reset()
	_, _, ok := m.Delta(900, 700)
	assert.False(t, ok)

	dx, dy, ok := m.Delta(905, 700)
	assert.True(t, ok)
	assert.Equal(t, 5.0, dx)
	assert.Zero(t, dy)
}
