package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout(t *testing.T) {
	assert.Equal(t, int32(5), PositionUV.Floats())
	assert.Equal(t, int32(20), PositionUV.Stride())
	assert.Equal(t, 0, PositionUV.Offset(0))
	assert.Equal(t, 12, PositionUV.Offset(1))

	assert.Equal(t, int32(16), ScreenUV.Stride())
	assert.Equal(t, 8, ScreenUV.Offset(1))

	assert.Equal(t, int32(12), PositionOnly.Stride())
}

func TestTables(t *testing.T) {
	tests := []struct {
		mesh     Mesh
		vertices int32
	}{
		{Cube(), 36},
		{Plane(), 6},
		{Billboard(), 6},
		{ScreenQuad(), 6},
		{MirrorQuad(), 6},
		{Skybox(), 36},
	}

	for _, tt := range tests {
		t.Run(tt.mesh.Name, func(t *testing.T) {
			require.NoError(t, tt.mesh.Validate())
			assert.Equal(t, tt.vertices, tt.mesh.VertexCount())
		})
	}
}

func TestCubeBounds(t *testing.T) {
	cube := Cube()
	for i := 0; i < len(cube.Vertices); i += 5 {
		for j := range 3 {
			assert.InDelta(t, 0.5, abs(cube.Vertices[i+j]), 1e-6)
		}
		for j := 3; j < 5; j++ {
			assert.GreaterOrEqual(t, cube.Vertices[i+j], float32(0))
			assert.LessOrEqual(t, cube.Vertices[i+j], float32(1))
		}
	}
}

func TestSkyboxScalesCube(t *testing.T) {
	sky := Skybox()
	for _, v := range sky.Vertices {
		assert.Equal(t, float32(1), abs(v))
	}
}

func TestPlaneRepeatsTexture(t *testing.T) {
	plane := Plane()
	var maxUV float32
	for i := 0; i < len(plane.Vertices); i += 5 {
		assert.Equal(t, float32(-0.5), plane.Vertices[i+1])
		maxUV = max(maxUV, plane.Vertices[i+3], plane.Vertices[i+4])
	}
	assert.Equal(t, float32(2), maxUV)
}

func TestMirrorSitsAtTop(t *testing.T) {
	mirror := MirrorQuad()
	for i := 0; i < len(mirror.Vertices); i += 4 {
		assert.GreaterOrEqual(t, mirror.Vertices[i+1], float32(0.6))
	}
}

func TestValidateRejectsBrokenMeshes(t *testing.T) {
	assert.Error(t, Mesh{Name: "empty layout", Vertices: []float32{1, 2, 3}}.Validate())
	assert.Error(t, Mesh{Name: "ragged", Layout: PositionUV, Vertices: make([]float32, 7)}.Validate())
	assert.Error(t, Mesh{Name: "two vertices", Layout: PositionOnly, Vertices: make([]float32, 6)}.Validate())
	assert.Zero(t, Mesh{Name: "nothing"}.VertexCount())
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
