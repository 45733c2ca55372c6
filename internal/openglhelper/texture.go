package openglhelper

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.6-core/gl"
	"golang.org/x/image/draw"
)

// Wrap modes accepted by NewTexture2D
const (
	Repeat      int32 = gl.REPEAT
	ClampToEdge int32 = gl.CLAMP_TO_EDGE
)

// Texture is a 2D or cubemap texture object
type Texture struct {
	ID     uint32
	Target uint32
	Width  int32
	Height int32
}

// toNRGBA returns img as tightly packed straight-alpha RGBA rows, top row
// first. Blending with SRC_ALPHA expects colour not yet multiplied by alpha.
func toNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Stride == nrgba.Rect.Dx()*4 && nrgba.Rect.Min == (image.Point{}) {
		return nrgba
	}
	b := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	return nrgba
}

// NewTexture2D uploads img with mipmaps and the given wrap mode on S and T.
// Minification is trilinear, magnification linear.
func NewTexture2D(img image.Image, wrap int32) (*Texture, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty image", ErrUnsupportedImage)
	}
	pixels := toNRGBA(img)
	width, height := int32(pixels.Rect.Dx()), int32(pixels.Rect.Dy())

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	if err := CheckError("uploading 2D texture"); err != nil {
		gl.DeleteTextures(1, &id)
		return nil, err
	}

	return &Texture{ID: id, Target: gl.TEXTURE_2D, Width: width, Height: height}, nil
}

// NewCubemap uploads six faces in +X, -X, +Y, -Y, +Z, -Z order.
// Faces are clamped to edge on all three axes and filtered linearly.
func NewCubemap(faces [6]image.Image) (*Texture, error) {
	for i, face := range faces {
		if face == nil || face.Bounds().Empty() {
			return nil, fmt.Errorf("%w: cubemap face %d is empty", ErrUnsupportedImage, i)
		}
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, id)

	for i, face := range faces {
		pixels := toNRGBA(face)
		gl.TexImage2D(
			gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i),
			0,
			gl.RGBA8,
			int32(pixels.Rect.Dx()),
			int32(pixels.Rect.Dy()),
			0,
			gl.RGBA,
			gl.UNSIGNED_BYTE,
			gl.Ptr(pixels.Pix),
		)
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)

	if err := CheckError("uploading cubemap"); err != nil {
		gl.DeleteTextures(1, &id)
		return nil, err
	}

	b := faces[0].Bounds()
	return &Texture{ID: id, Target: gl.TEXTURE_CUBE_MAP, Width: int32(b.Dx()), Height: int32(b.Dy())}, nil
}

// Bind binds the texture to the active texture unit
func (t *Texture) Bind() {
	gl.BindTexture(t.Target, t.ID)
}

// BindUnit activates the given texture unit and binds the texture to it
func (t *Texture) BindUnit(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(t.Target, t.ID)
}

// Unbind clears the texture's target on the active unit
func (t *Texture) Unbind() {
	gl.BindTexture(t.Target, 0)
}

// Delete releases the texture
func (t *Texture) Delete() {
	gl.DeleteTextures(1, &t.ID)
}
