// Package shaders embeds the GLSL sources shared by the examples.
package shaders

import (
	"embed"
	"io/fs"
)

//go:embed *.vert *.frag
var files embed.FS

// FS returns the embedded sources
func FS() fs.FS {
	return files
}

// Program names the vertex and fragment stage of one shader program
type Program struct {
	Vertex   string
	Fragment string
}

// Programs used by the examples
var (
	Textured = Program{Vertex: "scene.vert", Fragment: "texture.frag"}
	Depth    = Program{Vertex: "scene.vert", Fragment: "depth.frag"}
	Colour   = Program{Vertex: "scene.vert", Fragment: "colour.frag"}
	Discard  = Program{Vertex: "scene.vert", Fragment: "discard.frag"}
	Screen   = Program{Vertex: "screen.vert", Fragment: "screen.frag"}
	Skybox   = Program{Vertex: "skybox.vert", Fragment: "skybox.frag"}
)

// All lists every program, for validation
var All = []Program{Textured, Depth, Colour, Discard, Screen, Skybox}

// Uses reports whether name is one of the program's stages
func (p Program) Uses(name string) bool {
	return p.Vertex == name || p.Fragment == name
}
