package examples

import (
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-learnopengl/internal/assets"
	"github.com/leterax/go-learnopengl/internal/openglhelper"
	"github.com/leterax/go-learnopengl/pkg/geometry"
	"github.com/leterax/go-learnopengl/pkg/render"
	"github.com/leterax/go-learnopengl/pkg/render/app"
	"github.com/leterax/go-learnopengl/pkg/render/examples/shaders"
)

// SkyboxView strips the translation from a view matrix so the skybox stays
// centred on the camera.
func SkyboxView(view mgl32.Mat4) mgl32.Mat4 {
	return view.Mat3().Mat4()
}

// CubemapSkybox draws a container inside a cubemap skybox. The skybox is
// drawn last with LEQUAL so it only fills pixels nothing else covered.
type CubemapSkybox struct {
	cube       *openglhelper.Mesh
	skyboxMesh *openglhelper.Mesh

	cubeShader   *openglhelper.Shader
	skyboxShader *openglhelper.Shader

	container *openglhelper.Texture
	skybox    *openglhelper.Texture
}

func NewCubemapSkybox() *CubemapSkybox { return &CubemapSkybox{} }

func (*CubemapSkybox) Title() string { return "LearnOpenGL: Cubemaps - Skybox" }

func (*CubemapSkybox) Settings() app.Settings {
	return app.Settings{
		Sensitivity:    5.0,
		CameraPosition: mgl32.Vec3{0, 0, 5},
	}
}

func (c *CubemapSkybox) Init(a *app.App) error {
	programs, err := loadPrograms(a, shaders.Textured, shaders.Skybox)
	if err != nil {
		return err
	}
	c.cubeShader, c.skyboxShader = programs[0], programs[1]

	c.skybox, err = a.Cubemap(assets.SkyboxFaces)
	if err != nil {
		return err
	}
	c.container, err = a.Texture(assets.Container, openglhelper.Repeat)
	if err != nil {
		return err
	}

	c.cube = openglhelper.MustMesh(geometry.Cube())
	c.skyboxMesh = openglhelper.MustMesh(geometry.Skybox())

	gl.Enable(gl.DEPTH_TEST)
	return nil
}

func (c *CubemapSkybox) Configure(a *app.App) {
	setProjection(a, "texture_sampler", c.cubeShader)
	setProjection(a, "fragment_texture", c.skyboxShader)
}

func (c *CubemapSkybox) Draw(a *app.App, _ render.FrameInstant) {
	a.Window.Clear(clearColour)
	view := a.Camera.ViewMatrix()

	gl.DepthFunc(gl.LESS)
	c.cubeShader.Use()
	c.cubeShader.SetMat4("view", view)
	c.cubeShader.SetMat4("model", identity)
	c.container.BindUnit(0)
	c.cube.Draw()

	gl.DepthFunc(gl.LEQUAL)
	c.skyboxShader.Use()
	c.skyboxShader.SetMat4("view", SkyboxView(view))
	c.skybox.BindUnit(0)
	c.skyboxMesh.Draw()
	gl.DepthFunc(gl.LESS)
}

func (c *CubemapSkybox) Delete() {
	for _, mesh := range []*openglhelper.Mesh{c.cube, c.skyboxMesh} {
		if mesh != nil {
			mesh.Delete()
		}
	}
	for _, t := range []*openglhelper.Texture{c.container, c.skybox} {
		if t != nil {
			t.Delete()
		}
	}
}
