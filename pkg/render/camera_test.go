package render

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range 3 {
		assert.InDelta(t, want[i], got[i], tol, "component %d of %v", i, got)
	}
}

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()

	yaw, pitch := c.YawPitch()
	assert.Equal(t, float32(DefaultYaw), yaw)
	assert.Equal(t, float32(DefaultPitch), pitch)
	assert.Equal(t, mgl32.Vec3{}, c.Position())
	assertVec3(t, mgl32.Vec3{0, 0, -1}, c.Front())
	assertVec3(t, mgl32.Vec3{1, 0, 0}, c.Right())
}

func TestUpdatePositionForward(t *testing.T) {
	c := NewCamera()
	c.SetMoveDirection(Forward, 1)

	c.UpdatePosition(time.Second, 3)

	assertVec3(t, mgl32.Vec3{0, 0, -3}, c.Position())
}

func TestUpdatePositionOpposingIntentsCancel(t *testing.T) {
	c := NewCamera()
	c.SetPosition(mgl32.Vec3{1, 2, 3})
	c.SetMoveDirection(Forward, 1)
	c.SetMoveDirection(Backward, 1)
	c.SetMoveDirection(Left, 1)
	c.SetMoveDirection(Right, 1)
	c.SetMoveDirection(Up, 1)
	c.SetMoveDirection(Down, 1)

	c.UpdatePosition(time.Second, 3)

	assert.Equal(t, mgl32.Vec3{1, 2, 3}, c.Position())
}

func TestUpdatePositionStrafeAndLift(t *testing.T) {
	c := NewCamera()
	c.SetMoveDirection(Right, 1)
	c.UpdatePosition(500*time.Millisecond, 2)
	assertVec3(t, mgl32.Vec3{1, 0, 0}, c.Position())

	c.SetMoveDirection(Right, 0)
	c.SetMoveDirection(Up, 1)
	c.UpdatePosition(250*time.Millisecond, 4)
	assertVec3(t, mgl32.Vec3{1, 1, 0}, c.Position())

	c.SetMoveDirection(Up, 0)
	c.SetMoveDirection(Down, 1)
	c.UpdatePosition(time.Second, 1)
	assertVec3(t, mgl32.Vec3{1, 0, 0}, c.Position())
}

func TestUpdatePositionFollowsYaw(t *testing.T) {
	c := NewCamera()
	c.SetYawPitch(0, 0)
	c.SetMoveDirection(Forward, 1)

	c.UpdatePosition(time.Second, 1)

	assertVec3(t, mgl32.Vec3{1, 0, 0}, c.Position())
}

func TestUpdatePositionZeroDuration(t *testing.T) {
	c := NewCamera()
	c.SetMoveDirection(Forward, 1)

	c.UpdatePosition(0, 3)

	assert.Equal(t, mgl32.Vec3{}, c.Position())
}

func TestMoveViewClampsPitch(t *testing.T) {
	c := NewCamera()

	c.MoveView(10, 100)
	yaw, pitch := c.YawPitch()
	assert.Equal(t, float32(-80), yaw)
	assert.Equal(t, float32(MaxPitch), pitch)

	c.MoveView(20, -500)
	yaw, pitch = c.YawPitch()
	assert.Equal(t, float32(-60), yaw)
	assert.Equal(t, float32(MinPitch), pitch)
}

func TestFrontStaysFiniteAtPitchLimit(t *testing.T) {
	c := NewCamera()
	c.MoveView(0, 1000)

	front := c.Front()
	right := c.Right()
	assert.InDelta(t, 1, front.Len(), tol)
	assert.InDelta(t, 1, right.Len(), tol)
	assert.Greater(t, front.Y(), float32(0.99))
}

func TestSetYawPitchDoesNotClamp(t *testing.T) {
	c := NewCamera()
	c.SetYawPitch(90, 120)

	yaw, pitch := c.YawPitch()
	assert.Equal(t, float32(90), yaw)
	assert.Equal(t, float32(120), pitch)
}

func TestMirroredViewRoundTrip(t *testing.T) {
	c := NewCamera()
	c.MoveView(15, 30)
	yaw, pitch := c.YawPitch()
	front := c.Front()

	c.SetYawPitch(yaw+180, -pitch)
	mirrored := c.Front()
	assert.InDelta(t, -front.X(), mirrored.X(), tol)
	assert.InDelta(t, -front.Y(), mirrored.Y(), tol)
	assert.InDelta(t, -front.Z(), mirrored.Z(), tol)

	c.SetYawPitch(yaw, pitch)
	assertVec3(t, front, c.Front())
}

func TestSetMoveDirectionIgnoresUnknown(t *testing.T) {
	c := NewCamera()
	c.SetMoveDirection(Direction(42), 1)
	c.SetMoveDirection(Direction(-1), 1)

	for d := Forward; d < numDirections; d++ {
		assert.Zero(t, c.MoveDirection(d), d.String())
	}
	assert.Zero(t, c.MoveDirection(Direction(42)))
	assert.Equal(t, "unknown", Direction(42).String())
}

func TestViewMatrixAtOrigin(t *testing.T) {
	c := NewCamera()

	view := c.ViewMatrix()

	// cos(-90°) in float32 leaves entries near, not at, zero
	want := mgl32.Ident4()
	for i := range want {
		assert.InDelta(t, want[i], view[i], tol, "element %d of %v", i, view)
	}
}

func TestViewMatrixTranslatesWorld(t *testing.T) {
	c := NewCamera()
	c.SetPosition(mgl32.Vec3{0, 0, 5})

	p := c.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})

	assertVec3(t, mgl32.Vec3{0, 0, -5}, p.Vec3())
}

func TestPerspective(t *testing.T) {
	want := mgl32.Perspective(mgl32.DegToRad(FOV), 1920.0/1080.0, Near, Far)
	assert.Equal(t, want, Perspective(1920, 1080))

	minimized := Perspective(800, 0)
	for _, v := range minimized {
		require.False(t, v != v, "NaN in projection %v", minimized)
	}
}
