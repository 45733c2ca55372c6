package config

import (
	"bytes"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1920, cfg.Window.Width)
	assert.Equal(t, 1080, cfg.Window.Height)
	assert.Equal(t, float32(0.1), cfg.Camera.MouseSensitivity)
}

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Parse([]byte(`
[window]
width = 800
height = 600

[camera]
sensitivity = 4.5

[log]
level = "debug"
`))
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.True(t, cfg.Window.VSync)
	assert.Equal(t, float32(4.5), cfg.Camera.Sensitivity)
	assert.Equal(t, float32(0.1), cfg.Camera.MouseSensitivity)
	assert.Equal(t, "assets", cfg.Assets.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseRejectsMalformedTOML(t *testing.T) {
	_, err := Parse([]byte("[window\nwidth = "))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative height", func(c *Config) { c.Window.Height = -1 }},
		{"negative speed", func(c *Config) { c.Camera.Sensitivity = -1 }},
		{"zero mouse sensitivity", func(c *Config) { c.Camera.MouseSensitivity = 0 }},
		{"watch without dir", func(c *Config) { c.Shaders.Watch = true }},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestNewLoggerHonoursLevel(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "warn"

	var buf bytes.Buffer
	logger := cfg.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "asset", "metal.png")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "asset=metal.png")
}

func TestFromFlagsDefaults(t *testing.T) {
	cfg, err := FromFlags(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestFromFlagsOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[window]
width = 640
height = 480
title = "from file"

[assets]
dir = "/srv/textures"
`)

	cfg, err := FromFlags(newFlagSet(), []string{
		"-config", path,
		"-height", "720",
		"-speed", "5",
		"-shaders", "shaders",
		"-watch",
	})
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, "from file", cfg.Window.Title)
	assert.Equal(t, "/srv/textures", cfg.Assets.Dir)
	assert.Equal(t, float32(5), cfg.Camera.Sensitivity)
	assert.Equal(t, "shaders", cfg.Shaders.Dir)
	assert.True(t, cfg.Shaders.Watch)
}

func TestFromFlagsRejectsInvalid(t *testing.T) {
	_, err := FromFlags(newFlagSet(), []string{"-width", "0"})
	assert.Error(t, err)

	_, err = FromFlags(newFlagSet(), []string{"-watch"})
	assert.Error(t, err)

	_, err = FromFlags(newFlagSet(), []string{"-no-such-flag"})
	assert.Error(t, err)
}
