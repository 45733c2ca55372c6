package app

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/go-learnopengl/pkg/render"
)

var movementKeys = map[glfw.Key]render.Direction{
	glfw.KeyW:           render.Forward,
	glfw.KeyS:           render.Backward,
	glfw.KeyA:           render.Left,
	glfw.KeyD:           render.Right,
	glfw.KeyLeftShift:   render.Up,
	glfw.KeyLeftControl: render.Down,
}

// CaptureKey releases or recaptures the cursor
const CaptureKey = glfw.KeyC

// IsCaptureToggle reports whether releasing key toggles cursor capture
func IsCaptureToggle(key glfw.Key) bool {
	return key == CaptureKey
}

// MovementDirection returns the camera direction bound to key
func MovementDirection(key glfw.Key) (render.Direction, bool) {
	dir, ok := movementKeys[key]
	return dir, ok
}

// ApplyMovementKey updates the camera's movement intent for a key event.
// It reports whether the key is a movement key. Repeats are ignored since
// the intent is already set.
func ApplyMovementKey(c *render.Camera, key glfw.Key, action glfw.Action) bool {
	dir, ok := MovementDirection(key)
	if !ok {
		return false
	}
	switch action {
	case glfw.Press:
		c.SetMoveDirection(dir, 1)
	case glfw.Release:
		c.SetMoveDirection(dir, 0)
	}
	return true
}
