package examples

import (
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/go-learnopengl/internal/assets"
	"github.com/leterax/go-learnopengl/internal/openglhelper"
	"github.com/leterax/go-learnopengl/pkg/geometry"
	"github.com/leterax/go-learnopengl/pkg/render"
	"github.com/leterax/go-learnopengl/pkg/render/app"
	"github.com/leterax/go-learnopengl/pkg/render/examples/shaders"
)

// RearView returns the yaw and pitch of a camera looking back the way it came
func RearView(yaw, pitch float32) (float32, float32) {
	return yaw + 180, -pitch
}

// ReverseMirror renders the scene into an off-screen framebuffer twice a
// frame: once to fill the screen and once looking backwards for a mirror
// strip along the top edge. I toggles "inception", texturing the containers
// with the framebuffer image.
type ReverseMirror struct {
	meshes
	screenQuad *openglhelper.Mesh
	mirrorQuad *openglhelper.Mesh

	scene  *openglhelper.Shader
	screen *openglhelper.Shader

	metal     *openglhelper.Texture
	container *openglhelper.Texture
	fbo       *openglhelper.Framebuffer

	inception bool
}

func NewReverseMirror() *ReverseMirror { return &ReverseMirror{} }

func (*ReverseMirror) Title() string { return "LearnOpenGL: Framebuffers - Reverse Mirror" }

func (*ReverseMirror) Settings() app.Settings { return defaultSettings() }

func (m *ReverseMirror) Init(a *app.App) error {
	programs, err := loadPrograms(a, shaders.Textured, shaders.Screen)
	if err != nil {
		return err
	}
	m.scene, m.screen = programs[0], programs[1]

	textures, err := loadTextures(a,
		textureAsset{assets.Metal, openglhelper.Repeat},
		textureAsset{assets.Container, openglhelper.Repeat},
	)
	if err != nil {
		return err
	}
	m.metal, m.container = textures[0], textures[1]

	m.meshes = newMeshes()
	m.screenQuad = openglhelper.MustMesh(geometry.ScreenQuad())
	m.mirrorQuad = openglhelper.MustMesh(geometry.MirrorQuad())

	width, height := a.Window.Size()
	m.fbo, err = openglhelper.NewFramebuffer(width, height)
	if err != nil {
		return err
	}

	gl.DepthFunc(gl.LESS)
	return nil
}

func (m *ReverseMirror) Configure(a *app.App) {
	setProjection(a, "texture_sampler", m.scene)
	m.screen.Use()
	m.screen.SetInt("fragment_texture", 0)
	gl.UseProgram(0)
}

func (m *ReverseMirror) Resize(a *app.App, width, height int) error {
	if err := m.fbo.Resize(width, height); err != nil {
		return err
	}
	a.Logger.Debug("framebuffer resized", "width", width, "height", height)
	return nil
}

func (m *ReverseMirror) HandleKey(a *app.App, key glfw.Key) {
	if key == glfw.KeyI {
		m.inception = !m.inception
		a.Logger.Info("inception toggled", "enabled", m.inception)
	}
}

// renderOffscreen draws floor and containers into the framebuffer
func (m *ReverseMirror) renderOffscreen(a *app.App) {
	m.fbo.Bind()
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(clearColour.X(), clearColour.Y(), clearColour.Z(), clearColour.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	m.scene.Use()
	m.scene.SetMat4("view", a.Camera.ViewMatrix())

	drawFloor(m.scene, m.plane, m.metal)
	m.container.BindUnit(0)
	drawContainers(m.scene, m.cube, 1)

	m.fbo.Unbind()
	openglhelper.MustNoError("off-screen pass")
}

func (m *ReverseMirror) Draw(a *app.App, _ render.FrameInstant) {
	m.renderOffscreen(a)

	a.Window.Clear(clearColour)
	gl.Disable(gl.DEPTH_TEST)
	m.screen.Use()
	m.fbo.Texture().BindUnit(0)
	m.screenQuad.Draw()

	if m.inception {
		gl.Enable(gl.DEPTH_TEST)
		m.scene.Use()
		m.fbo.Texture().BindUnit(0)
		drawContainers(m.scene, m.cube, 1)
	}

	yaw, pitch := a.Camera.YawPitch()
	a.Camera.SetYawPitch(RearView(yaw, pitch))
	m.renderOffscreen(a)
	a.Camera.SetYawPitch(yaw, pitch)

	// the mirror quad sits at NDC z=0 (window depth 0.5); inception cubes in front would hide it
	gl.Disable(gl.DEPTH_TEST)
	m.screen.Use()
	m.fbo.Texture().BindUnit(0)
	m.mirrorQuad.Draw()
	gl.Enable(gl.DEPTH_TEST)
}

func (m *ReverseMirror) Delete() {
	m.meshes.Delete()
	for _, mesh := range []*openglhelper.Mesh{m.screenQuad, m.mirrorQuad} {
		if mesh != nil {
			mesh.Delete()
		}
	}
	for _, t := range []*openglhelper.Texture{m.metal, m.container} {
		if t != nil {
			t.Delete()
		}
	}
	if m.fbo != nil {
		m.fbo.Delete()
	}
}
