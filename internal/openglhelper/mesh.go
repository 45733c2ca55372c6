package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/leterax/go-learnopengl/pkg/geometry"
)

// Mesh is a vertex array uploaded from a geometry table, drawn as a
// non-indexed triangle list.
type Mesh struct {
	name  string
	vao   *VertexArrayObject
	vbo   *BufferObject
	count int32
}

// NewMesh uploads the mesh vertices and configures one attribute per layout entry
func NewMesh(m geometry.Mesh) (*Mesh, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(m.Vertices, StaticDraw)

	stride := m.Layout.Stride()
	for i, size := range m.Layout {
		vao.SetVertexAttribPointer(uint32(i), size, gl.FLOAT, false, stride, m.Layout.Offset(i))
	}

	vbo.Unbind()
	vao.Unbind()

	if err := CheckError(fmt.Sprintf("uploading mesh %s", m.Name)); err != nil {
		vao.Delete()
		vbo.Delete()
		return nil, err
	}

	return &Mesh{
		name:  m.Name,
		vao:   vao,
		vbo:   vbo,
		count: m.VertexCount(),
	}, nil
}

// MustMesh is NewMesh for startup code that cannot continue without the mesh
func MustMesh(m geometry.Mesh) *Mesh {
	mesh, err := NewMesh(m)
	if err != nil {
		panic(err)
	}
	return mesh
}

// Bind binds the mesh's vertex array
func (m *Mesh) Bind() {
	m.vao.Bind()
}

// Unbind unbinds any vertex array
func (m *Mesh) Unbind() {
	m.vao.Unbind()
}

// DrawArrays issues the draw call for the whole mesh. The mesh must be bound.
func (m *Mesh) DrawArrays() {
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
}

// Draw binds, draws and unbinds the mesh
func (m *Mesh) Draw() {
	m.Bind()
	m.DrawArrays()
	m.Unbind()
}

// VertexCount returns the number of vertices drawn
func (m *Mesh) VertexCount() int32 {
	return m.count
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
}
