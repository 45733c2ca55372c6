package geometry

// Cube returns a unit cube centred on the origin with per-face texture coordinates
func Cube() Mesh {
	return Mesh{
		Name:   "cube",
		Layout: PositionUV,
		Vertices: []float32{
			// positions       // texture coords
			-0.5, -0.5, -0.5, 0.0, 0.0,
			0.5, -0.5, -0.5, 1.0, 0.0,
			0.5, 0.5, -0.5, 1.0, 1.0,
			0.5, 0.5, -0.5, 1.0, 1.0,
			-0.5, 0.5, -0.5, 0.0, 1.0,
			-0.5, -0.5, -0.5, 0.0, 0.0,

			-0.5, -0.5, 0.5, 0.0, 0.0,
			0.5, -0.5, 0.5, 1.0, 0.0,
			0.5, 0.5, 0.5, 1.0, 1.0,
			0.5, 0.5, 0.5, 1.0, 1.0,
			-0.5, 0.5, 0.5, 0.0, 1.0,
			-0.5, -0.5, 0.5, 0.0, 0.0,

			-0.5, 0.5, 0.5, 1.0, 0.0,
			-0.5, 0.5, -0.5, 1.0, 1.0,
			-0.5, -0.5, -0.5, 0.0, 1.0,
			-0.5, -0.5, -0.5, 0.0, 1.0,
			-0.5, -0.5, 0.5, 0.0, 0.0,
			-0.5, 0.5, 0.5, 1.0, 0.0,

			0.5, 0.5, 0.5, 1.0, 0.0,
			0.5, 0.5, -0.5, 1.0, 1.0,
			0.5, -0.5, -0.5, 0.0, 1.0,
			0.5, -0.5, -0.5, 0.0, 1.0,
			0.5, -0.5, 0.5, 0.0, 0.0,
			0.5, 0.5, 0.5, 1.0, 0.0,

			-0.5, -0.5, -0.5, 0.0, 1.0,
			0.5, -0.5, -0.5, 1.0, 1.0,
			0.5, -0.5, 0.5, 1.0, 0.0,
			0.5, -0.5, 0.5, 1.0, 0.0,
			-0.5, -0.5, 0.5, 0.0, 0.0,
			-0.5, -0.5, -0.5, 0.0, 1.0,

			-0.5, 0.5, -0.5, 0.0, 1.0,
			0.5, 0.5, -0.5, 1.0, 1.0,
			0.5, 0.5, 0.5, 1.0, 0.0,
			0.5, 0.5, 0.5, 1.0, 0.0,
			-0.5, 0.5, 0.5, 0.0, 0.0,
			-0.5, 0.5, -0.5, 0.0, 1.0,
		},
	}
}

// Plane returns the 10x10 floor at y = -0.5. Texture coordinates go up to 2
// so a repeating texture tiles across it.
func Plane() Mesh {
	return Mesh{
		Name:   "plane",
		Layout: PositionUV,
		Vertices: []float32{
			5.0, -0.5, 5.0, 2.0, 0.0,
			-5.0, -0.5, 5.0, 0.0, 0.0,
			-5.0, -0.5, -5.0, 0.0, 2.0,

			5.0, -0.5, 5.0, 2.0, 0.0,
			-5.0, -0.5, -5.0, 0.0, 2.0,
			5.0, -0.5, -5.0, 2.0, 2.0,
		},
	}
}

// Billboard returns a unit quad standing on the XY plane with its left edge on
// the origin. The v coordinate is flipped because images are uploaded
// top row first.
func Billboard() Mesh {
	return Mesh{
		Name:   "billboard",
		Layout: PositionUV,
		Vertices: []float32{
			0.0, 0.5, 0.0, 0.0, 0.0,
			0.0, -0.5, 0.0, 0.0, 1.0,
			1.0, -0.5, 0.0, 1.0, 1.0,

			0.0, 0.5, 0.0, 0.0, 0.0,
			1.0, -0.5, 0.0, 1.0, 1.0,
			1.0, 0.5, 0.0, 1.0, 0.0,
		},
	}
}

// ScreenQuad covers the whole viewport in clip space
func ScreenQuad() Mesh {
	return Mesh{
		Name:   "screen",
		Layout: ScreenUV,
		Vertices: []float32{
			-1.0, -1.0, 0.0, 0.0,
			-1.0, 1.0, 0.0, 1.0,
			1.0, 1.0, 1.0, 1.0,

			-1.0, -1.0, 0.0, 0.0,
			1.0, 1.0, 1.0, 1.0,
			1.0, -1.0, 1.0, 0.0,
		},
	}
}

// MirrorQuad is the rear-view mirror strip along the top edge of the viewport
func MirrorQuad() Mesh {
	return Mesh{
		Name:   "mirror",
		Layout: ScreenUV,
		Vertices: []float32{
			-0.4, 0.6, 0.0, 0.0,
			-0.4, 1.0, 0.0, 1.0,
			0.4, 1.0, 1.0, 1.0,

			-0.4, 0.6, 0.0, 0.0,
			0.4, 1.0, 1.0, 1.0,
			0.4, 0.6, 1.0, 0.0,
		},
	}
}

// Skybox returns the cube drawn around the camera for cubemap sampling.
// Positions double as sampling directions.
func Skybox() Mesh {
	cube := Cube()
	floats := cube.Layout.Floats()

	vertices := make([]float32, 0, int(cube.VertexCount())*3)
	for i := 0; i < len(cube.Vertices); i += int(floats) {
		vertices = append(vertices,
			cube.Vertices[i]*2,
			cube.Vertices[i+1]*2,
			cube.Vertices[i+2]*2,
		)
	}

	return Mesh{
		Name:     "skybox",
		Layout:   PositionOnly,
		Vertices: vertices,
	}
}
