package app

import (
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/leterax/go-learnopengl/internal/openglhelper"
	"github.com/leterax/go-learnopengl/pkg/render/examples/shaders"
)

// ShaderLibrary links each program once and relinks programs whose sources
// changed on disk.
type ShaderLibrary struct {
	fsys     fs.FS
	programs map[shaders.Program]*openglhelper.Shader
	logger   *slog.Logger
}

// NewShaderLibrary reads sources from fsys
func NewShaderLibrary(fsys fs.FS, logger *slog.Logger) *ShaderLibrary {
	return &ShaderLibrary{
		fsys:     fsys,
		programs: make(map[shaders.Program]*openglhelper.Shader),
		logger:   logger,
	}
}

// Load returns the linked program, compiling it on first use
func (l *ShaderLibrary) Load(p shaders.Program) (*openglhelper.Shader, error) {
	if s, ok := l.programs[p]; ok {
		return s, nil
	}

	s, err := openglhelper.LoadShaderFromFS(l.fsys, p.Vertex, p.Fragment)
	if err != nil {
		return nil, fmt.Errorf("failed to build program %s+%s: %w", p.Vertex, p.Fragment, err)
	}
	l.logger.Debug("linked program", "vertex", p.Vertex, "fragment", p.Fragment, "id", s.ID)

	l.programs[p] = s
	return s, nil
}

// Reload relinks every loaded program that uses one of the changed files.
// A program that fails to build keeps running its previous version.
// It returns the number of programs relinked.
func (l *ShaderLibrary) Reload(changed []string) int {
	reloaded := 0
	for p, s := range l.programs {
		if !usesAny(p, changed) {
			continue
		}

		vert, frag, err := openglhelper.ReadSources(l.fsys, p.Vertex, p.Fragment)
		if err == nil {
			err = s.Replace(vert, frag)
		}
		if err != nil {
			l.logger.Error("shader reload failed, keeping previous program",
				"vertex", p.Vertex, "fragment", p.Fragment, "error", err)
			continue
		}

		l.logger.Info("reloaded program", "vertex", p.Vertex, "fragment", p.Fragment)
		reloaded++
	}
	return reloaded
}

func usesAny(p shaders.Program, names []string) bool {
	for _, name := range names {
		if p.Uses(name) {
			return true
		}
	}
	return false
}

// Delete releases every program
func (l *ShaderLibrary) Delete() {
	for p, s := range l.programs {
		s.Delete()
		delete(l.programs, p)
	}
}
