package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestSquaredDistance(t *testing.T) {
	assert.Equal(t, float32(0), SquaredDistance(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, 3}))
	assert.Equal(t, float32(9), SquaredDistance(mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{2, 0, 0}))
	assert.Equal(t, float32(3), SquaredDistance(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{}))
}

func TestSortBackToFront(t *testing.T) {
	windows := []mgl32.Vec3{
		{-1.5, 0, -0.48},
		{1.5, 0, 0.51},
		{0, 0, 0.7},
		{-0.3, 0, -2.3},
		{0.5, 0, -0.6},
	}

	SortBackToFront(windows, mgl32.Vec3{})

	assert.Equal(t, []mgl32.Vec3{
		{-0.3, 0, -2.3},
		{1.5, 0, 0.51},
		{-1.5, 0, -0.48},
		{0.5, 0, -0.6},
		{0, 0, 0.7},
	}, windows)
}

func TestSortBackToFrontFollowsEye(t *testing.T) {
	positions := []mgl32.Vec3{{0, 0, -5}, {0, 0, 5}}

	SortBackToFront(positions, mgl32.Vec3{0, 0, 10})
	assert.Equal(t, mgl32.Vec3{0, 0, -5}, positions[0])

	SortBackToFront(positions, mgl32.Vec3{0, 0, -10})
	assert.Equal(t, mgl32.Vec3{0, 0, 5}, positions[0])
}

func TestSortBackToFrontKeepsTiesStable(t *testing.T) {
	positions := []mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0, 0, 3}}

	SortBackToFront(positions, mgl32.Vec3{})

	assert.Equal(t, []mgl32.Vec3{{0, 0, 3}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, positions)
}

func TestSortBackToFrontEmpty(t *testing.T) {
	assert.NotPanics(t, func() { SortBackToFront(nil, mgl32.Vec3{}) })
}
