package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// Framebuffer is an off-screen render target with an RGB colour texture and
// a combined 24-bit depth / 8-bit stencil renderbuffer.
type Framebuffer struct {
	ID     uint32
	colour *Texture
	rbo    uint32
	width  int32
	height int32
}

// NewFramebuffer creates a complete framebuffer of the given size
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", ErrFramebufferIncomplete, width, height)
	}

	fb := &Framebuffer{}
	gl.GenFramebuffers(1, &fb.ID)

	if err := fb.allocate(int32(width), int32(height)); err != nil {
		fb.Delete()
		return nil, err
	}
	return fb, nil
}

// allocate (re)creates both attachments and checks completeness
func (fb *Framebuffer) allocate(width, height int32) error {
	fb.releaseAttachments()
	fb.width, fb.height = width, height

	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.ID)
	defer gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, width, height, 0, gl.RGB, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, tex, 0)
	fb.colour = &Texture{ID: tex, Target: gl.TEXTURE_2D, Width: width, Height: height}

	gl.GenRenderbuffers(1, &fb.rbo)
	gl.BindRenderbuffer(gl.RENDERBUFFER, fb.rbo)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH24_STENCIL8, width, height)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_STENCIL_ATTACHMENT, gl.RENDERBUFFER, fb.rbo)

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("%w: status 0x%X", ErrFramebufferIncomplete, status)
	}
	return CheckError("allocating framebuffer")
}

func (fb *Framebuffer) releaseAttachments() {
	if fb.colour != nil {
		fb.colour.Delete()
		fb.colour = nil
	}
	if fb.rbo != 0 {
		gl.DeleteRenderbuffers(1, &fb.rbo)
		fb.rbo = 0
	}
}

// Resize reallocates the attachments when the size changed.
// A zero size, as reported for a minimised window, is ignored.
func (fb *Framebuffer) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	if int32(width) == fb.width && int32(height) == fb.height {
		return nil
	}
	return fb.allocate(int32(width), int32(height))
}

// Bind makes this framebuffer the read and draw target
func (fb *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.ID)
}

// Unbind restores the default framebuffer
func (fb *Framebuffer) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// Texture returns the colour attachment
func (fb *Framebuffer) Texture() *Texture {
	return fb.colour
}

// Delete releases the framebuffer and its attachments
func (fb *Framebuffer) Delete() {
	fb.releaseAttachments()
	gl.DeleteFramebuffers(1, &fb.ID)
}
