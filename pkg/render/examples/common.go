// Package examples holds one Scene per rendering technique. Every scene
// shares the same floor, the same two containers and the same projection.
package examples

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-learnopengl/internal/openglhelper"
	"github.com/leterax/go-learnopengl/pkg/geometry"
	"github.com/leterax/go-learnopengl/pkg/render"
	"github.com/leterax/go-learnopengl/pkg/render/app"
	"github.com/leterax/go-learnopengl/pkg/render/examples/shaders"
)

var (
	clearColour = mgl32.Vec4{0.1, 0.1, 0.1, 0.1}
	identity    = mgl32.Ident4()
)

// ContainerPositions are the world positions of the two boxes in every scene
var ContainerPositions = []mgl32.Vec3{
	{-1.0, 0.0, -1.0},
	{2.0, 0.0, 0.0},
}

func defaultSettings() app.Settings {
	return app.Settings{Sensitivity: render.DefaultMoveSensitivity}
}

// ContainerModel returns the model matrix of a container scaled about its centre
func ContainerModel(pos mgl32.Vec3, scale float32) mgl32.Mat4 {
	return mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).Mul4(mgl32.Scale3D(scale, scale, scale))
}

// drawContainers draws the bound cube mesh once per container
func drawContainers(shader *openglhelper.Shader, cube *openglhelper.Mesh, scale float32) {
	cube.Bind()
	for _, pos := range ContainerPositions {
		shader.SetMat4("model", ContainerModel(pos, scale))
		cube.DrawArrays()
	}
	cube.Unbind()
}

// drawFloor draws the plane at the origin with tex
func drawFloor(shader *openglhelper.Shader, plane *openglhelper.Mesh, tex *openglhelper.Texture) {
	shader.SetMat4("model", identity)
	tex.BindUnit(0)
	plane.Draw()
}

// setProjection sets the projection and the sampler unit on every program
func setProjection(a *app.App, sampler string, programs ...*openglhelper.Shader) {
	for _, p := range programs {
		p.Use()
		p.SetMat4("projection", a.Projection())
		if sampler != "" {
			p.SetInt(sampler, 0)
		}
	}
	gl.UseProgram(0)
}

// loadPrograms links the named programs in order
func loadPrograms(a *app.App, programs ...shaders.Program) ([]*openglhelper.Shader, error) {
	linked := make([]*openglhelper.Shader, 0, len(programs))
	for _, p := range programs {
		s, err := a.Program(p)
		if err != nil {
			return nil, err
		}
		linked = append(linked, s)
	}
	return linked, nil
}

// textureAsset names an asset and its wrap mode
type textureAsset struct {
	name string
	wrap int32
}

// loadTextures uploads each asset, releasing what was loaded on failure
func loadTextures(a *app.App, assets ...textureAsset) ([]*openglhelper.Texture, error) {
	textures := make([]*openglhelper.Texture, 0, len(assets))
	for _, asset := range assets {
		tex, err := a.Texture(asset.name, asset.wrap)
		if err != nil {
			for _, t := range textures {
				t.Delete()
			}
			return nil, fmt.Errorf("failed to load texture %s: %w", asset.name, err)
		}
		textures = append(textures, tex)
	}
	return textures, nil
}

// meshes uploads the scene geometry shared by most examples
type meshes struct {
	cube  *openglhelper.Mesh
	plane *openglhelper.Mesh
}

func newMeshes() meshes {
	return meshes{
		cube:  openglhelper.MustMesh(geometry.Cube()),
		plane: openglhelper.MustMesh(geometry.Plane()),
	}
}

func (m meshes) Delete() {
	if m.cube != nil {
		m.cube.Delete()
	}
	if m.plane != nil {
		m.plane.Delete()
	}
}
