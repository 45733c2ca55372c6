// Package geometry holds the interleaved vertex tables drawn by the examples.
package geometry

import "fmt"

// Layout lists the number of float components of each vertex attribute, in
// attribute-location order. {3, 2} is a position followed by a texture
// coordinate.
type Layout []int32

var (
	// PositionUV is a 3D position followed by a texture coordinate
	PositionUV = Layout{3, 2}
	// ScreenUV is a 2D clip-space position followed by a texture coordinate
	ScreenUV = Layout{2, 2}
	// PositionOnly is a bare 3D position
	PositionOnly = Layout{3}
)

// Floats returns the number of floats per vertex
func (l Layout) Floats() int32 {
	var n int32
	for _, size := range l {
		n += size
	}
	return n
}

// Stride returns the size of one vertex in bytes
func (l Layout) Stride() int32 {
	return l.Floats() * 4
}

// Offset returns the byte offset of the attribute at index
func (l Layout) Offset(index int) int {
	offset := 0
	for _, size := range l[:index] {
		offset += int(size) * 4
	}
	return offset
}

// Mesh is a triangle list of interleaved vertices
type Mesh struct {
	Name     string
	Vertices []float32
	Layout   Layout
}

// VertexCount returns the number of vertices in the mesh
func (m Mesh) VertexCount() int32 {
	floats := m.Layout.Floats()
	if floats == 0 {
		return 0
	}
	return int32(len(m.Vertices)) / floats
}

// Validate checks that the vertex data holds whole triangles of the layout
func (m Mesh) Validate() error {
	floats := m.Layout.Floats()
	if floats == 0 {
		return fmt.Errorf("mesh %q: empty layout", m.Name)
	}
	if len(m.Vertices)%int(floats) != 0 {
		return fmt.Errorf("mesh %q: %d floats is not a multiple of the %d-float vertex", m.Name, len(m.Vertices), floats)
	}
	if m.VertexCount()%3 != 0 {
		return fmt.Errorf("mesh %q: %d vertices do not form whole triangles", m.Name, m.VertexCount())
	}
	return nil
}
