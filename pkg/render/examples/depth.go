package examples

import (
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/go-learnopengl/internal/assets"
	"github.com/leterax/go-learnopengl/internal/openglhelper"
	"github.com/leterax/go-learnopengl/pkg/render"
	"github.com/leterax/go-learnopengl/pkg/render/app"
	"github.com/leterax/go-learnopengl/pkg/render/examples/shaders"
)

// depthFuncKeys maps the number keys onto depth comparison functions
var depthFuncKeys = map[glfw.Key]uint32{
	glfw.Key1: gl.LESS,
	glfw.Key2: gl.ALWAYS,
}

// DepthFunc draws marble containers on a metal floor. Keys 1 and 2 switch
// the depth function between LESS and ALWAYS.
type DepthFunc struct {
	meshes
	shader *openglhelper.Shader
	metal  *openglhelper.Texture
	marble *openglhelper.Texture
}

func NewDepthFunc() *DepthFunc { return &DepthFunc{} }

func (*DepthFunc) Title() string { return "LearnOpenGL: Depth Testing - Depth Func" }

func (*DepthFunc) Settings() app.Settings { return defaultSettings() }

func (d *DepthFunc) Init(a *app.App) error {
	shader, err := a.Program(shaders.Textured)
	if err != nil {
		return err
	}
	d.shader = shader

	textures, err := loadTextures(a,
		textureAsset{assets.Metal, openglhelper.Repeat},
		textureAsset{assets.Marble, openglhelper.Repeat},
	)
	if err != nil {
		return err
	}
	d.metal, d.marble = textures[0], textures[1]
	d.meshes = newMeshes()

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	return nil
}

func (d *DepthFunc) Configure(a *app.App) {
	setProjection(a, "texture_sampler", d.shader)
}

func (d *DepthFunc) HandleKey(a *app.App, key glfw.Key) {
	if fn, ok := depthFuncKeys[key]; ok {
		gl.DepthFunc(fn)
		a.Logger.Info("depth func changed", "func", depthFuncName(fn))
	}
}

func (d *DepthFunc) Draw(a *app.App, _ render.FrameInstant) {
	a.Window.Clear(clearColour)

	d.shader.Use()
	d.shader.SetMat4("view", a.Camera.ViewMatrix())

	d.marble.BindUnit(0)
	drawContainers(d.shader, d.cube, 1)
	drawFloor(d.shader, d.plane, d.metal)
}

func (d *DepthFunc) Delete() {
	d.meshes.Delete()
	for _, t := range []*openglhelper.Texture{d.metal, d.marble} {
		if t != nil {
			t.Delete()
		}
	}
}

func depthFuncName(fn uint32) string {
	switch fn {
	case gl.LESS:
		return "LESS"
	case gl.ALWAYS:
		return "ALWAYS"
	case gl.LEQUAL:
		return "LEQUAL"
	}
	return "other"
}

// DepthVisualisation colours every fragment by its linearised depth
type DepthVisualisation struct {
	meshes
	shader *openglhelper.Shader
}

func NewDepthVisualisation() *DepthVisualisation { return &DepthVisualisation{} }

func (*DepthVisualisation) Title() string {
	return "LearnOpenGL: Depth Testing - Visualising the depth buffer"
}

func (*DepthVisualisation) Settings() app.Settings { return defaultSettings() }

func (d *DepthVisualisation) Init(a *app.App) error {
	shader, err := a.Program(shaders.Depth)
	if err != nil {
		return err
	}
	d.shader = shader
	d.meshes = newMeshes()

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	return nil
}

func (d *DepthVisualisation) Configure(a *app.App) {
	setProjection(a, "", d.shader)
	d.shader.Use()
	d.shader.SetFloat("near", render.Near)
	d.shader.SetFloat("far", render.Far)
	gl.UseProgram(0)
}

func (d *DepthVisualisation) HandleKey(a *app.App, key glfw.Key) {
	if fn, ok := depthFuncKeys[key]; ok {
		gl.DepthFunc(fn)
		a.Logger.Info("depth func changed", "func", depthFuncName(fn))
	}
}

func (d *DepthVisualisation) Draw(a *app.App, _ render.FrameInstant) {
	a.Window.Clear(clearColour)

	d.shader.Use()
	d.shader.SetMat4("view", a.Camera.ViewMatrix())

	drawContainers(d.shader, d.cube, 1)
	d.shader.SetMat4("model", identity)
	d.plane.Draw()
}

func (d *DepthVisualisation) Delete() {
	d.meshes.Delete()
}
