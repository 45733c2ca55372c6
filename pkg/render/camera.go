package render

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Direction indexes one slot of the camera's movement-intent vector.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down

	numDirections
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}

var worldUp = mgl32.Vec3{0, 1, 0}

// Camera implements a first-person Euler-angle camera.
//
// Input handlers record movement intent and view deltas; UpdatePosition
// integrates the intent once per frame.
type Camera struct {
	position mgl32.Vec3

	// Euler angles in degrees
	yaw   float32
	pitch float32

	movement [numDirections]float32
}

// NewCamera creates a camera at the origin looking along -Z
func NewCamera() *Camera {
	return &Camera{
		yaw:   DefaultYaw,
		pitch: DefaultPitch,
	}
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition sets the camera position
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// SetMoveDirection records how strongly the camera should move in a direction.
// Key handlers pass 1 on press and 0 on release.
func (c *Camera) SetMoveDirection(dir Direction, amount float32) {
	if dir < 0 || dir >= numDirections {
		return
	}
	c.movement[dir] = amount
}

// MoveDirection returns the recorded intent for a direction
func (c *Camera) MoveDirection(dir Direction) float32 {
	if dir < 0 || dir >= numDirections {
		return 0
	}
	return c.movement[dir]
}

// MoveView turns the camera by the given offsets in degrees.
// Pitch is clamped to avoid flipping over the vertical axis.
func (c *Camera) MoveView(xOffset, yOffset float32) {
	c.yaw += xOffset
	c.pitch = clampPitch(c.pitch + yOffset)
}

// YawPitch returns the current orientation in degrees
func (c *Camera) YawPitch() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// SetYawPitch overwrites the orientation without clamping.
func (c *Camera) SetYawPitch(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = pitch
}

// Front returns the normalized view direction
func (c *Camera) Front() mgl32.Vec3 {
	yaw := mgl32.DegToRad(c.yaw)
	pitch := mgl32.DegToRad(c.pitch)

	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	return front.Normalize()
}

// Right returns the normalized right vector
func (c *Camera) Right() mgl32.Vec3 {
	return c.Front().Cross(worldUp).Normalize()
}

// UpdatePosition integrates the movement intent over dt.
// Opposing intents cancel each other out.
func (c *Camera) UpdatePosition(dt time.Duration, sensitivity float32) {
	front := c.Front()
	right := front.Cross(worldUp).Normalize()

	factor := func(positive, negative Direction) float32 {
		return c.movement[positive] - c.movement[negative]
	}

	diff := right.Mul(factor(Right, Left)).
		Add(front.Mul(factor(Forward, Backward))).
		Add(worldUp.Mul(factor(Up, Down)))

	seconds := float32(dt.Seconds())
	c.position = c.position.Add(diff.Mul(sensitivity * seconds))
}

// ViewMatrix returns the current view matrix
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.Front()), worldUp)
}

func clampPitch(pitch float32) float32 {
	if pitch > MaxPitch {
		return MaxPitch
	}
	if pitch < MinPitch {
		return MinPitch
	}
	return pitch
}

// Perspective returns the projection used by every example for a framebuffer
// of the given size. A zero height (minimized window) is treated as 1.
func Perspective(width, height int) mgl32.Mat4 {
	if height <= 0 {
		height = 1
	}
	if width <= 0 {
		width = 1
	}
	aspect := float32(width) / float32(height)
	return mgl32.Perspective(mgl32.DegToRad(FOV), aspect, Near, Far)
}
