// Package config loads the application configuration from TOML.
package config

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/futura-engine/futura/pkg/camera"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

// Config is the full application configuration.
type Config struct {
	Window WindowConfig `toml:"window"`
	Camera camera.State `toml:"camera"`
	Scene  SceneConfig  `toml:"scene"`
	Debug  DebugConfig  `toml:"debug"`
}

// WindowConfig describes the OS window and GL context.
type WindowConfig struct {
	Title          string     `toml:"title"`
	Width          int        `toml:"width"`
	Height         int        `toml:"height"`
	VSync          bool       `toml:"vsync"`
	CaptureMouse   bool       `toml:"capture_mouse"`
	RawMouseMotion bool       `toml:"raw_mouse_motion"`
	ClearColor     mgl32.Vec4 `toml:"clear_color"`
}

// SceneConfig points at the few assets the demo scene uses.
// Empty shader paths select the built-in shaders.
type SceneConfig struct {
	Texture        string `toml:"texture"`
	FlipTexture    bool   `toml:"flip_texture"`
	// TextureWrap is repeat, mirrored_repeat, clamp_to_edge or clamp_to_border.
	TextureWrap    string `toml:"texture_wrap"`
	VertexShader   string `toml:"vertex_shader"`
	FragmentShader string `toml:"fragment_shader"`
	// WatchShaders reloads the shader files when they change on disk.
	WatchShaders   bool   `toml:"watch_shaders"`
}

// DebugConfig controls logging and GL diagnostics.
type DebugConfig struct {
	GLDebugOutput bool     `toml:"gl_debug_output"`
	LogLevel      string   `toml:"log_level"`
	StatsInterval Duration `toml:"stats_interval"`
}

// Duration is a time.Duration that reads and writes as a string such as "1s".
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:          "Futura",
			Width:          800,
			Height:         600,
			VSync:          true,
			CaptureMouse:   true,
			RawMouseMotion: true,
			ClearColor:     mgl32.Vec4{0.25, 0.15, 0.75, 1.0},
		},
		Camera: camera.DefaultState(mgl32.Vec3{0, 0, 3}),
		Scene: SceneConfig{
			FlipTexture: true,
			TextureWrap: "repeat",
		},
		Debug: DebugConfig{
			GLDebugOutput: false,
			LogLevel:      "info",
			StatsInterval: Duration(time.Second),
		},
	}
}

// Load reads a TOML file on top of the defaults. Keys missing from the file
// keep their default values; unknown keys are an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports configuration values the application cannot start with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Camera.MovementSpeed < 0 {
		return fmt.Errorf("camera movement speed must not be negative, got %v", c.Camera.MovementSpeed)
	}
	switch c.Debug.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Debug.LogLevel)
	}
	switch c.Scene.TextureWrap {
	case "repeat", "mirrored_repeat", "clamp_to_edge", "clamp_to_border":
	default:
		return fmt.Errorf("unknown texture wrap %q", c.Scene.TextureWrap)
	}
	if (c.Scene.VertexShader == "") != (c.Scene.FragmentShader == "") {
		return fmt.Errorf("vertex and fragment shader paths must be set together")
	}
	if c.Scene.WatchShaders && c.Scene.VertexShader == "" {
		return fmt.Errorf("watch_shaders needs shader file paths")
	}
	return nil
}

// Encode renders the configuration as TOML.
func (c Config) Encode() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
