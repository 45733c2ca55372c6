package examples

import (
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-learnopengl/internal/assets"
	"github.com/leterax/go-learnopengl/internal/openglhelper"
	"github.com/leterax/go-learnopengl/pkg/render"
	"github.com/leterax/go-learnopengl/pkg/render/app"
	"github.com/leterax/go-learnopengl/pkg/render/examples/shaders"
)

const outlineScale = 1.1

var outlineColour = mgl32.Vec3{0.04, 0.28, 0.26}

// StencilOutline writes the containers into the stencil buffer, then draws
// slightly larger flat-coloured copies wherever the stencil was not written.
// H toggles the outline.
type StencilOutline struct {
	meshes
	texture  *openglhelper.Shader
	colour   *openglhelper.Shader
	metal    *openglhelper.Texture
	marble   *openglhelper.Texture
	selected bool
}

func NewStencilOutline() *StencilOutline { return &StencilOutline{selected: true} }

func (*StencilOutline) Title() string { return "LearnOpenGL: Stencil Testing" }

func (*StencilOutline) Settings() app.Settings { return defaultSettings() }

func (s *StencilOutline) Init(a *app.App) error {
	programs, err := loadPrograms(a, shaders.Textured, shaders.Colour)
	if err != nil {
		return err
	}
	s.texture, s.colour = programs[0], programs[1]

	textures, err := loadTextures(a,
		textureAsset{assets.Metal, openglhelper.Repeat},
		textureAsset{assets.Marble, openglhelper.Repeat},
	)
	if err != nil {
		return err
	}
	s.metal, s.marble = textures[0], textures[1]
	s.meshes = newMeshes()

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.STENCIL_TEST)
	gl.StencilFunc(gl.NOTEQUAL, 1, 0xFF)
	gl.StencilOp(gl.KEEP, gl.KEEP, gl.REPLACE)
	return nil
}

func (s *StencilOutline) Configure(a *app.App) {
	setProjection(a, "texture_sampler", s.texture)
	setProjection(a, "", s.colour)
	s.colour.Use()
	s.colour.SetVec3("colour", outlineColour)
	gl.UseProgram(0)
}

func (s *StencilOutline) HandleKey(a *app.App, key glfw.Key) {
	if key == glfw.KeyH {
		s.selected = !s.selected
		a.Logger.Info("outline toggled", "selected", s.selected)
	}
}

func (s *StencilOutline) Draw(a *app.App, _ render.FrameInstant) {
	a.Window.Clear(clearColour)

	view := a.Camera.ViewMatrix()
	s.colour.Use()
	s.colour.SetMat4("view", view)
	s.texture.Use()
	s.texture.SetMat4("view", view)

	// the floor never touches the stencil buffer
	gl.StencilMask(0x00)
	drawFloor(s.texture, s.plane, s.metal)

	gl.StencilFunc(gl.ALWAYS, 1, 0xFF)
	gl.StencilMask(0xFF)
	s.marble.BindUnit(0)
	drawContainers(s.texture, s.cube, 1)

	if !s.selected {
		return
	}

	gl.StencilFunc(gl.NOTEQUAL, 1, 0xFF)
	gl.StencilMask(0x00)
	gl.Disable(gl.DEPTH_TEST)

	s.colour.Use()
	drawContainers(s.colour, s.cube, outlineScale)

	// the mask must be writable again before the next clear
	gl.StencilMask(0xFF)
	gl.StencilFunc(gl.ALWAYS, 0, 0xFF)
	gl.Enable(gl.DEPTH_TEST)
}

func (s *StencilOutline) Delete() {
	s.meshes.Delete()
	for _, t := range []*openglhelper.Texture{s.metal, s.marble} {
		if t != nil {
			t.Delete()
		}
	}
}
