package app

import (
	"errors"
	"testing"

	"github.com/leterax/go-learnopengl/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNoTexture = errors.New("no texture")

// countingScene records lifecycle calls; Init creates one resource and
// then fails when failInit is set
type countingScene struct {
	failInit bool
	created  int
	deleted  int
}

func (s *countingScene) Title() string      { return "counting" }
func (s *countingScene) Settings() Settings { return Settings{} }

func (s *countingScene) Init(*App) error {
	s.created++
	if s.failInit {
		return errNoTexture
	}
	return nil
}

func (s *countingScene) Draw(*App, render.FrameInstant) {}

func (s *countingScene) Delete() {
	s.deleted++
}

func TestInitSceneReleasesPartialInit(t *testing.T) {
	s := &countingScene{failInit: true}

	err := initScene(&App{}, s)
	require.ErrorIs(t, err, errNoTexture)
	assert.Contains(t, err.Error(), "failed to initialise counting")
	assert.Equal(t, 1, s.created)
	assert.Equal(t, 1, s.deleted)
}

func TestInitSceneLeavesSuccessfulSceneAlive(t *testing.T) {
	s := &countingScene{}

	require.NoError(t, initScene(&App{}, s))
	assert.Equal(t, 1, s.created)
	assert.Zero(t, s.deleted)
}
