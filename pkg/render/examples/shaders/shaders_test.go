package shaders

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryProgramHasSources(t *testing.T) {
	for _, p := range All {
		for _, name := range []string{p.Vertex, p.Fragment} {
			src, err := fs.ReadFile(FS(), name)
			require.NoError(t, err, name)
			assert.True(t, strings.HasPrefix(string(src), "#version 330 core"), name)
			assert.Contains(t, string(src), "void main()", name)
		}
	}
}

func TestNoUnusedSources(t *testing.T) {
	entries, err := fs.ReadDir(FS(), ".")
	require.NoError(t, err)

	for _, e := range entries {
		used := false
		for _, p := range All {
			used = used || p.Uses(e.Name())
		}
		assert.True(t, used, "%s is not part of any program", e.Name())
	}
}

func TestStageInterfacesMatch(t *testing.T) {
	read := func(name string) string {
		src, err := fs.ReadFile(FS(), name)
		require.NoError(t, err)
		return string(src)
	}

	for _, p := range All {
		vert, frag := read(p.Vertex), read(p.Fragment)
		if strings.Contains(frag, "in vec2 frag_tex_coord") {
			assert.Contains(t, vert, "out vec2 frag_tex_coord", p.Fragment)
		}
		if strings.Contains(frag, "in vec3 frag_tex_coord") {
			assert.Contains(t, vert, "out vec3 frag_tex_coord", p.Fragment)
		}
	}
}

func TestSkyboxSitsOnFarPlane(t *testing.T) {
	src, err := fs.ReadFile(FS(), Skybox.Vertex)
	require.NoError(t, err)
	assert.Contains(t, string(src), "pos.xyww")
}

func TestScreenQuadsSitAtClipDepthZero(t *testing.T) {
	src, err := fs.ReadFile(FS(), Screen.Vertex)
	require.NoError(t, err)
	// z=0 maps to window depth 0.5, so the mirror needs depth testing off
	assert.Contains(t, string(src), "gl_Position = vec4(position, 0.0, 1.0);")
}
