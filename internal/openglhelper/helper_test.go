package openglhelper

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGLErrorMessage(t *testing.T) {
	err := error(&GLError{Code: gl.INVALID_OPERATION, Stage: "frame"})
	assert.Equal(t, "OpenGL error GL_INVALID_OPERATION (0x0502) after frame", err.Error())

	var glErr *GLError
	require.True(t, errors.As(err, &glErr))
	assert.Equal(t, uint32(gl.INVALID_OPERATION), glErr.Code)
}

func TestErrorName(t *testing.T) {
	assert.Equal(t, "GL_INVALID_ENUM", ErrorName(gl.INVALID_ENUM))
	assert.Equal(t, "GL_OUT_OF_MEMORY", ErrorName(gl.OUT_OF_MEMORY))
	assert.Equal(t, "GL_INVALID_FRAMEBUFFER_OPERATION", ErrorName(gl.INVALID_FRAMEBUFFER_OPERATION))
	assert.Equal(t, "unknown", ErrorName(0x1234))
}

func TestToNRGBAConvertsAndRebases(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 10, 13, 12))
	src.SetNRGBA(10, 10, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(12, 11, color.NRGBA{B: 255, A: 128})

	pixels := toNRGBA(src)
	assert.Equal(t, image.Rect(0, 0, 3, 2), pixels.Rect)
	assert.Equal(t, 3*4, pixels.Stride)

	// top-left texel is the first four bytes
	assert.Equal(t, []uint8{255, 0, 0, 255}, pixels.Pix[0:4])

	// colour is not multiplied by alpha
	assert.Equal(t, []uint8{0, 0, 255, 128}, pixels.Pix[len(pixels.Pix)-4:])
}

func TestToNRGBAKeepsStraightAlpha(t *testing.T) {
	// a translucent window pane texel
	pane := color.NRGBA{R: 200, G: 40, B: 40, A: 100}

	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(1, 1, pane)
	sub := src.SubImage(image.Rect(1, 1, 2, 2))
	assert.Equal(t, []uint8{200, 40, 40, 100}, toNRGBA(sub).Pix)

	// premultiplied sources are converted back to straight alpha
	premul := image.NewRGBA(image.Rect(0, 0, 1, 1))
	premul.Set(0, 0, pane)
	got := toNRGBA(premul).Pix
	assert.InDelta(t, 200, int(got[0]), 2)
	assert.InDelta(t, 40, int(got[1]), 2)
	assert.InDelta(t, 40, int(got[2]), 2)
	assert.Equal(t, uint8(100), got[3])
}

func TestToNRGBAKeepsPackedImages(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	assert.Same(t, src, toNRGBA(src))

	sub := src.SubImage(image.Rect(1, 1, 3, 3)).(*image.NRGBA)
	assert.NotSame(t, sub, toNRGBA(sub))
}

func TestReadSources(t *testing.T) {
	fsys := fstest.MapFS{
		"a.vert": {Data: []byte("vertex")},
		"a.frag": {Data: []byte("fragment")},
	}

	vert, frag, err := ReadSources(fsys, "a.vert", "a.frag")
	require.NoError(t, err)
	assert.Equal(t, "vertex", vert)
	assert.Equal(t, "fragment", frag)

	_, _, err = ReadSources(fsys, "a.vert", "missing.frag")
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.frag")
}
