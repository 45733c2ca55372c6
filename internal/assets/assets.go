// Package assets loads the texture images used by the examples.
//
// Images are read from a directory on disk. When a known asset is missing a
// procedural stand-in is generated instead, so every example can run without
// downloading the original texture pack.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log/slog"
	"os"
	"path"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Texture names used by the examples
const (
	Metal     = "metal.png"
	Marble    = "marble.jpg"
	Container = "container.jpg"
	Grass     = "grass.png"
	Window    = "window.png"
)

// SkyboxFaces lists the cubemap faces in +X, -X, +Y, -Y, +Z, -Z order
var SkyboxFaces = [6]string{
	"skybox/right.jpg",
	"skybox/left.jpg",
	"skybox/top.jpg",
	"skybox/bottom.jpg",
	"skybox/front.jpg",
	"skybox/back.jpg",
}

// Loader reads images from a file system
type Loader struct {
	fsys   fs.FS
	logger *slog.Logger

	// Fallback disables procedural stand-ins when false
	Fallback bool
}

// NewLoader creates a loader rooted at dir
func NewLoader(dir string, logger *slog.Logger) *Loader {
	return NewLoaderFS(os.DirFS(dir), logger)
}

// NewLoaderFS creates a loader over an arbitrary file system
func NewLoaderFS(fsys fs.FS, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		fsys:     fsys,
		logger:   logger,
		Fallback: true,
	}
}

// Load decodes the named image, or generates its stand-in when the file is
// missing and one exists.
func (l *Loader) Load(name string) (image.Image, error) {
	l.logger.Info("loading asset", "name", name)

	img, err := l.decode(name)
	if errors.Is(err, fs.ErrNotExist) && l.Fallback {
		if gen, ok := generators[name]; ok {
			img = gen()
			l.logger.Warn("asset missing, using generated texture", "name", name)
			err = nil
		}
	}
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	l.logger.Info("loaded asset", "name", name, "width", b.Dx(), "height", b.Dy())
	return img, nil
}

// LoadCubemap loads the six skybox faces
func (l *Loader) LoadCubemap(faces [6]string) ([6]image.Image, error) {
	var images [6]image.Image
	for i, name := range faces {
		img, err := l.Load(name)
		if err != nil {
			return images, fmt.Errorf("cubemap face %d: %w", i, err)
		}
		images[i] = img
	}
	return images, nil
}

func (l *Loader) decode(name string) (image.Image, error) {
	f, err := l.fsys.Open(path.Clean(name))
	if err != nil {
		return nil, fmt.Errorf("failed to open asset %s: %w", name, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode asset %s: %w", name, err)
	}
	l.logger.Debug("decoded asset", "name", name, "format", format)
	return img, nil
}
