package examples

import (
	"slices"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-learnopengl/internal/assets"
	"github.com/leterax/go-learnopengl/internal/openglhelper"
	"github.com/leterax/go-learnopengl/pkg/geometry"
	"github.com/leterax/go-learnopengl/pkg/render"
	"github.com/leterax/go-learnopengl/pkg/render/app"
	"github.com/leterax/go-learnopengl/pkg/render/examples/shaders"
)

// BillboardPositions is where the grass tufts and windows stand
var BillboardPositions = []mgl32.Vec3{
	{-1.5, 0.0, -0.48},
	{1.5, 0.0, 0.51},
	{0.0, 0.0, 0.7},
	{-0.3, 0.0, -2.3},
	{0.5, 0.0, -0.6},
}

// GrassModels returns two crossed quads per position: one facing +Z and one
// turned 90° about Y around the tuft's centre.
func GrassModels(positions []mgl32.Vec3) []mgl32.Mat4 {
	models := make([]mgl32.Mat4, 0, 2*len(positions))
	for _, pos := range positions {
		translation := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z())
		crossed := translation.
			Mul4(mgl32.Translate3D(0.5, 0, 0.5)).
			Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(90)))
		models = append(models, translation, crossed)
	}
	return models
}

// billboardScene is the floor, the containers and one textured quad mesh
type billboardScene struct {
	meshes
	quad      *openglhelper.Mesh
	shader    *openglhelper.Shader
	metal     *openglhelper.Texture
	marble    *openglhelper.Texture
	billboard *openglhelper.Texture
}

func (b *billboardScene) init(a *app.App, program shaders.Program, billboard string) error {
	shader, err := a.Program(program)
	if err != nil {
		return err
	}
	b.shader = shader

	textures, err := loadTextures(a,
		textureAsset{assets.Metal, openglhelper.Repeat},
		textureAsset{assets.Marble, openglhelper.Repeat},
		// clamped so the transparent top rows do not bleed onto the bottom edge
		textureAsset{billboard, openglhelper.ClampToEdge},
	)
	if err != nil {
		return err
	}
	b.metal, b.marble, b.billboard = textures[0], textures[1], textures[2]

	b.meshes = newMeshes()
	b.quad = openglhelper.MustMesh(geometry.Billboard())

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	return nil
}

func (b *billboardScene) Configure(a *app.App) {
	setProjection(a, "texture_sampler", b.shader)
}

// drawOpaque draws the floor and containers and leaves the shader bound
func (b *billboardScene) drawOpaque(a *app.App) {
	a.Window.Clear(clearColour)

	b.shader.Use()
	b.shader.SetMat4("view", a.Camera.ViewMatrix())

	drawFloor(b.shader, b.plane, b.metal)
	b.marble.BindUnit(0)
	drawContainers(b.shader, b.cube, 1)
}

func (b *billboardScene) drawBillboards(models []mgl32.Mat4) {
	b.billboard.BindUnit(0)
	b.quad.Bind()
	for _, model := range models {
		b.shader.SetMat4("model", model)
		b.quad.DrawArrays()
	}
	b.quad.Unbind()
}

func (b *billboardScene) Delete() {
	b.meshes.Delete()
	if b.quad != nil {
		b.quad.Delete()
	}
	for _, t := range []*openglhelper.Texture{b.metal, b.marble, b.billboard} {
		if t != nil {
			t.Delete()
		}
	}
}

// BlendingDiscard draws grass whose transparent texels are discarded in the
// fragment shader, so no sorting is needed.
type BlendingDiscard struct {
	billboardScene
	models []mgl32.Mat4
}

func NewBlendingDiscard() *BlendingDiscard {
	return &BlendingDiscard{models: GrassModels(BillboardPositions)}
}

func (*BlendingDiscard) Title() string { return "LearnOpenGL: Blending - Discard" }

func (*BlendingDiscard) Settings() app.Settings { return defaultSettings() }

func (b *BlendingDiscard) Init(a *app.App) error {
	return b.init(a, shaders.Discard, assets.Grass)
}

func (b *BlendingDiscard) Draw(a *app.App, _ render.FrameInstant) {
	b.drawOpaque(a)
	b.drawBillboards(b.models)
}

// BlendingSort draws translucent windows with alpha blending, farthest from
// the camera first.
type BlendingSort struct {
	billboardScene
	windows []mgl32.Vec3
	models  []mgl32.Mat4
}

func NewBlendingSort() *BlendingSort {
	return &BlendingSort{windows: slices.Clone(BillboardPositions)}
}

func (*BlendingSort) Title() string { return "LearnOpenGL: Blending - Sort" }

func (*BlendingSort) Settings() app.Settings { return defaultSettings() }

func (b *BlendingSort) Init(a *app.App) error {
	if err := b.init(a, shaders.Textured, assets.Window); err != nil {
		return err
	}
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return nil
}

func (b *BlendingSort) Draw(a *app.App, _ render.FrameInstant) {
	b.drawOpaque(a)

	render.SortBackToFront(b.windows, a.Camera.Position())
	b.models = b.models[:0]
	for _, pos := range b.windows {
		b.models = append(b.models, mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()))
	}
	b.drawBillboards(b.models)
}
