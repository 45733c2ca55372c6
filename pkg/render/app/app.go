package app

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-learnopengl/internal/assets"
	"github.com/leterax/go-learnopengl/internal/config"
	"github.com/leterax/go-learnopengl/internal/openglhelper"
	"github.com/leterax/go-learnopengl/internal/shaderwatch"
	"github.com/leterax/go-learnopengl/pkg/render"
	"github.com/leterax/go-learnopengl/pkg/render/examples/shaders"
)

// App is the state shared between the runner and the running Scene
type App struct {
	Window *openglhelper.Window
	Camera *render.Camera
	Logger *slog.Logger

	assets  *assets.Loader
	shaders *ShaderLibrary
	watcher *shaderwatch.Watcher

	scene      Scene
	frame      *render.Frame
	mouse      render.MouseTracker
	projection mgl32.Mat4

	sensitivity      float32
	mouseSensitivity float32

	// err is set by callbacks that cannot return one; it stops the loop
	err error
}

// Projection returns the perspective matrix for the current framebuffer size
func (a *App) Projection() mgl32.Mat4 {
	return a.projection
}

// Program returns a linked shader program
func (a *App) Program(p shaders.Program) (*openglhelper.Shader, error) {
	return a.shaders.Load(p)
}

// Texture loads a named asset and uploads it as a 2D texture
func (a *App) Texture(name string, wrap int32) (*openglhelper.Texture, error) {
	img, err := a.assets.Load(name)
	if err != nil {
		return nil, err
	}
	tex, err := openglhelper.NewTexture2D(img, wrap)
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", name, err)
	}
	return tex, nil
}

// Cubemap loads six named faces and uploads them as a cubemap
func (a *App) Cubemap(faces [6]string) (*openglhelper.Texture, error) {
	images, err := a.assets.LoadCubemap(faces)
	if err != nil {
		return nil, err
	}
	return openglhelper.NewCubemap(images)
}

// Run opens a window for scene and drives it until the window closes.
// GL errors inside the loop panic; setup errors are returned.
func Run(cfg config.Config, scene Scene) error {
	logger := cfg.NewLogger(os.Stderr)
	settings := scene.Settings()

	title := scene.Title()
	if cfg.Window.Title != "" {
		title = cfg.Window.Title
	}

	window, err := openglhelper.NewWindow(openglhelper.WindowOptions{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  title,
		VSync:  cfg.Window.VSync,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer window.Close()

	a := &App{
		Window:           window,
		Camera:           render.NewCamera(),
		Logger:           logger,
		assets:           assets.NewLoader(cfg.Assets.Dir, logger),
		scene:            scene,
		sensitivity:      settings.Sensitivity,
		mouseSensitivity: cfg.Camera.MouseSensitivity,
	}
	a.Camera.SetPosition(settings.CameraPosition)
	if cfg.Camera.Sensitivity > 0 {
		a.sensitivity = cfg.Camera.Sensitivity
	}
	if a.sensitivity <= 0 {
		a.sensitivity = render.DefaultMoveSensitivity
	}
	if a.mouseSensitivity <= 0 {
		a.mouseSensitivity = render.MouseSensitivity
	}

	var shaderFS fs.FS = shaders.FS()
	if cfg.Shaders.Dir != "" {
		shaderFS = os.DirFS(cfg.Shaders.Dir)
		if cfg.Shaders.Watch {
			a.watcher, err = shaderwatch.New(cfg.Shaders.Dir, logger)
			if err != nil {
				return err
			}
			defer a.watcher.Close()
		}
	}
	a.shaders = NewShaderLibrary(shaderFS, logger)
	defer a.shaders.Delete()

	glfwWindow := window.GLFWWindow()
	glfwWindow.SetKeyCallback(a.keyCallback)
	glfwWindow.SetCursorPosCallback(a.cursorPosCallback)
	glfwWindow.SetFramebufferSizeCallback(a.framebufferSizeCallback)
	a.setMouseCaptured(true)

	if err := initScene(a, scene); err != nil {
		return err
	}
	defer scene.Delete()

	width, height := window.Size()
	a.projection = render.Perspective(width, height)
	a.configure()
	openglhelper.MustNoError("scene setup")

	logger.Info("running example", "title", title, "width", width, "height", height)

	a.frame = render.NewFrame()
	for !window.ShouldClose() {
		fi := a.frame.MarkNewFrame()

		window.PollEvents()
		a.reloadShaders()

		a.Camera.UpdatePosition(fi.LastFrameDuration(), a.sensitivity)
		scene.Draw(a, fi)
		openglhelper.MustNoError("frame")

		window.SwapBuffers()
	}

	logger.Info("example closed", "title", title, "runtime", a.frame.MarkNewFrame().TotalDuration())
	return a.err
}

// initScene runs scene.Init and, when it fails, releases whatever Init had
// already created before the context goes away
func initScene(a *App, scene Scene) error {
	if err := scene.Init(a); err != nil {
		scene.Delete()
		return fmt.Errorf("failed to initialise %s: %w", scene.Title(), err)
	}
	return nil
}

func (a *App) configure() {
	if c, ok := a.scene.(Configurer); ok {
		c.Configure(a)
	}
}

func (a *App) reloadShaders() {
	if a.watcher == nil {
		return
	}
	changed := a.watcher.Pending()
	if len(changed) == 0 {
		return
	}
	if a.shaders.Reload(changed) > 0 {
		// relinked programs lose their uniforms
		a.configure()
	}
}

// fail records err and stops the loop after the current frame
func (a *App) fail(err error) {
	if a.err == nil {
		a.err = err
	}
	a.Window.SetShouldClose(true)
}

func (a *App) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if ApplyMovementKey(a.Camera, key, action) {
		return
	}
	if action != glfw.Release {
		return
	}

	if key == glfw.KeyEscape {
		a.Window.SetShouldClose(true)
		return
	}
	if IsCaptureToggle(key) {
		a.setMouseCaptured(!a.Window.IsMouseCaptured())
		return
	}
	if h, ok := a.scene.(KeyHandler); ok {
		h.HandleKey(a, key)
	}
}

// setMouseCaptured forgets the last cursor position so the first sample after
// a recapture does not turn the camera
func (a *App) setMouseCaptured(captured bool) {
	a.Window.SetMouseCaptured(captured)
	a.mouse.Reset()
}

func (a *App) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	if !a.Window.IsMouseCaptured() {
		return
	}
	if dx, dy, ok := a.mouse.Delta(xpos, ypos); ok {
		render.ApplyMouseDelta(a.Camera, dx, dy, a.mouseSensitivity)
	}
}

func (a *App) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	a.Window.OnResize(width, height)
	if width == 0 || height == 0 {
		// minimised
		return
	}

	a.projection = render.Perspective(width, height)
	if r, ok := a.scene.(Resizer); ok {
		if err := r.Resize(a, width, height); err != nil {
			a.fail(fmt.Errorf("failed to resize to %dx%d: %w", width, height, err))
			return
		}
	}
	a.configure()
}
