package app

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/go-learnopengl/pkg/render"
	"github.com/stretchr/testify/assert"
)

func TestMovementBindings(t *testing.T) {
	cases := map[glfw.Key]render.Direction{
		glfw.KeyW:           render.Forward,
		glfw.KeyS:           render.Backward,
		glfw.KeyA:           render.Left,
		glfw.KeyD:           render.Right,
		glfw.KeyLeftShift:   render.Up,
		glfw.KeyLeftControl: render.Down,
	}
	for key, want := range cases {
		got, ok := MovementDirection(key)
		assert.True(t, ok)
		assert.Equal(t, want, got, want.String())
	}

	_, ok := MovementDirection(glfw.KeyH)
	assert.False(t, ok)
}

func TestApplyMovementKeyPressRelease(t *testing.T) {
	c := render.NewCamera()

	assert.True(t, ApplyMovementKey(c, glfw.KeyW, glfw.Press))
	assert.Equal(t, float32(1), c.MoveDirection(render.Forward))

	assert.True(t, ApplyMovementKey(c, glfw.KeyW, glfw.Repeat))
	assert.Equal(t, float32(1), c.MoveDirection(render.Forward))

	assert.True(t, ApplyMovementKey(c, glfw.KeyW, glfw.Release))
	assert.Equal(t, float32(0), c.MoveDirection(render.Forward))
}

func TestApplyMovementKeyIgnoresOthers(t *testing.T) {
	c := render.NewCamera()
	assert.False(t, ApplyMovementKey(c, glfw.KeyI, glfw.Press))
	for dir := render.Forward; dir <= render.Down; dir++ {
		assert.Zero(t, c.MoveDirection(dir))
	}
}

func TestCaptureToggleKey(t *testing.T) {
	assert.True(t, IsCaptureToggle(glfw.KeyC))
	assert.False(t, IsCaptureToggle(glfw.KeyEscape))

	// must not collide with movement or any example's own keys
	_, isMovement := MovementDirection(CaptureKey)
	assert.False(t, isMovement)
	for _, key := range []glfw.Key{glfw.Key1, glfw.Key2, glfw.KeyH, glfw.KeyI} {
		assert.False(t, IsCaptureToggle(key))
	}
}
