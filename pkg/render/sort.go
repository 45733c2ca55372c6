package render

import (
	"cmp"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// SquaredDistance returns |a - b|^2
func SquaredDistance(a, b mgl32.Vec3) float32 {
	d := a.Sub(b)
	return d.Dot(d)
}

// SortBackToFront orders positions farthest-from-eye first, which is the
// order translucent geometry has to be drawn in for blending to composite.
// Equal distances keep their relative order.
func SortBackToFront(positions []mgl32.Vec3, eye mgl32.Vec3) {
	slices.SortStableFunc(positions, func(a, b mgl32.Vec3) int {
		return cmp.Compare(SquaredDistance(b, eye), SquaredDistance(a, eye))
	})
}
