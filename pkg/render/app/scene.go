// Package app runs a Scene inside a GLFW window: it owns the camera, the
// frame timer, input callbacks and the shader programs, and calls the
// scene once per frame.
package app

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-learnopengl/pkg/render"
)

// Settings are the per-example defaults a Scene asks the runner for
type Settings struct {
	// Sensitivity is the camera speed in units per second
	Sensitivity    float32
	CameraPosition mgl32.Vec3
}

// Scene is one example program
type Scene interface {
	Title() string
	Settings() Settings
	// Init creates GL resources. The context is current and the window open.
	Init(a *App) error
	Draw(a *App, fi render.FrameInstant)
	Delete()
}

// KeyHandler receives keys that are not bound to camera movement, on release
type KeyHandler interface {
	HandleKey(a *App, key glfw.Key)
}

// Configurer sets uniforms that only change with the projection or when a
// program is relinked. It runs after Init, after every resize and after a
// shader reload.
type Configurer interface {
	Configure(a *App)
}

// Resizer reallocates size-dependent resources such as framebuffers
type Resizer interface {
	Resize(a *App, width, height int) error
}
