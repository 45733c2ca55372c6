// Package config loads example settings from an optional TOML file and
// command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds every tunable shared by the example binaries.
type Config struct {
	Window  WindowConfig  `toml:"window"`
	Camera  CameraConfig  `toml:"camera"`
	Assets  AssetsConfig  `toml:"assets"`
	Shaders ShadersConfig `toml:"shaders"`
	Log     LogConfig     `toml:"log"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"` // empty uses the example's own title
	VSync  bool   `toml:"vsync"`
}

type CameraConfig struct {
	// Sensitivity overrides the example's movement speed when > 0
	Sensitivity      float32 `toml:"sensitivity"`
	MouseSensitivity float32 `toml:"mouse_sensitivity"`
}

type AssetsConfig struct {
	Dir string `toml:"dir"`
}

type ShadersConfig struct {
	// Dir replaces the embedded shader sources when set
	Dir   string `toml:"dir"`
	Watch bool   `toml:"watch"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the settings used when nothing is configured
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  1920,
			Height: 1080,
			VSync:  true,
		},
		Camera: CameraConfig{
			MouseSensitivity: 0.1,
		},
		Assets: AssetsConfig{
			Dir: "assets",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Parse decodes TOML on top of the defaults
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Load reads and decodes a TOML config file
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Camera.Sensitivity < 0 {
		return errors.New("camera sensitivity must not be negative")
	}
	if c.Camera.MouseSensitivity <= 0 {
		return errors.New("mouse sensitivity must be positive")
	}
	if c.Shaders.Watch && c.Shaders.Dir == "" {
		return errors.New("watching shaders requires a shader directory")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a level name onto a slog level
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", name)
}

// NewLogger builds the text logger every example writes to
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := ParseLevel(c.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// FromFlags registers the example flags on fs, parses args, loads the config
// file named by -config (if any) and applies explicitly set flags on top.
func FromFlags(fs *flag.FlagSet, args []string) (Config, error) {
	def := Default()

	path := fs.String("config", "", "Path to a TOML config file")
	width := fs.Int("width", def.Window.Width, "Window width")
	height := fs.Int("height", def.Window.Height, "Window height")
	title := fs.String("title", "", "Window title (defaults to the example name)")
	vsync := fs.Bool("vsync", def.Window.VSync, "Synchronise buffer swaps with the display")
	sensitivity := fs.Float64("speed", 0, "Camera movement speed in units per second (0 keeps the example default)")
	assetsDir := fs.String("assets", def.Assets.Dir, "Directory holding texture assets")
	shaderDir := fs.String("shaders", "", "Directory of GLSL sources overriding the embedded shaders")
	watch := fs.Bool("watch", false, "Recompile shaders when files in -shaders change")
	level := fs.String("log-level", def.Log.Level, "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := def
	if *path != "" {
		loaded, err := Load(*path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	// Only flags given on the command line override the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Window.Width = *width
		case "height":
			cfg.Window.Height = *height
		case "title":
			cfg.Window.Title = *title
		case "vsync":
			cfg.Window.VSync = *vsync
		case "speed":
			cfg.Camera.Sensitivity = float32(*sensitivity)
		case "assets":
			cfg.Assets.Dir = *assetsDir
		case "shaders":
			cfg.Shaders.Dir = *shaderDir
		case "watch":
			cfg.Shaders.Watch = *watch
		case "log-level":
			cfg.Log.Level = *level
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
