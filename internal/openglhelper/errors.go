package openglhelper

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
)

var (
	// ErrFramebufferIncomplete is returned when a framebuffer fails its completeness check
	ErrFramebufferIncomplete = errors.New("framebuffer is not complete")
	// ErrUnsupportedImage is returned for images that cannot be uploaded as textures
	ErrUnsupportedImage = errors.New("unsupported image")
)

// GLError is a non-zero code reported by glGetError
type GLError struct {
	Code  uint32
	Stage string
}

func (e *GLError) Error() string {
	return fmt.Sprintf("OpenGL error %s (0x%04X) after %s", ErrorName(e.Code), e.Code, e.Stage)
}

// ErrorName returns the symbolic name of a glGetError code
func ErrorName(code uint32) string {
	switch code {
	case gl.NO_ERROR:
		return "GL_NO_ERROR"
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.STACK_OVERFLOW:
		return "GL_STACK_OVERFLOW"
	case gl.STACK_UNDERFLOW:
		return "GL_STACK_UNDERFLOW"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	}
	return "unknown"
}

// CheckError returns the first pending GL error, draining the rest.
func CheckError(stage string) error {
	code := gl.GetError()
	if code == gl.NO_ERROR {
		return nil
	}
	// GL keeps one flag per error kind; clear them so the next check starts fresh
	for range 8 {
		if gl.GetError() == gl.NO_ERROR {
			break
		}
	}
	return &GLError{Code: code, Stage: stage}
}

// MustNoError panics when the driver reports an error.
// Examples treat any unexpected GL error as a bug.
func MustNoError(stage string) {
	if err := CheckError(stage); err != nil {
		panic(err)
	}
}
