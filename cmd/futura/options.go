package main

import (
	"github.com/futura-engine/futura/internal/config"

	"github.com/spf13/cobra"
)

// options holds the command line flags. Flags that were not set leave the
// configuration file's value in place.
type options struct {
	configPath  string
	width       int
	height      int
	title       string
	vsync       bool
	texture     string
	glDebug     bool
	logLevel    string
	noColor     bool
	saveCamera  string
	printConfig bool
}

func (o *options) register(cmd *cobra.Command) {
	defaults := config.Default()

	f := cmd.Flags()
	f.StringVarP(&o.configPath, "config", "c", "", "TOML configuration file")
	f.IntVar(&o.width, "width", defaults.Window.Width, "window width in pixels")
	f.IntVar(&o.height, "height", defaults.Window.Height, "window height in pixels")
	f.StringVar(&o.title, "title", defaults.Window.Title, "window title")
	f.BoolVar(&o.vsync, "vsync", defaults.Window.VSync, "synchronize buffer swaps with the display")
	f.StringVar(&o.texture, "texture", "", "image file to texture the scene with")
	f.BoolVar(&o.glDebug, "gl-debug", false, "request a debug context and log GL debug messages")
	f.StringVar(&o.logLevel, "log-level", defaults.Debug.LogLevel, "log level: debug, info, warn or error")
	f.BoolVar(&o.noColor, "no-color", false, "disable colored log output")
	f.StringVar(&o.saveCamera, "save-camera", "", "write the final camera state to this TOML file on exit")
	f.BoolVar(&o.printConfig, "print-config", false, "print the effective configuration and exit")
}

// load reads the config file, if any, and applies the flags that were set.
func (o *options) load(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return config.Config{}, err
		}
	}

	o.apply(cmd, &cfg)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func (o *options) apply(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("width") {
		cfg.Window.Width = o.width
	}
	if f.Changed("height") {
		cfg.Window.Height = o.height
	}
	if f.Changed("title") {
		cfg.Window.Title = o.title
	}
	if f.Changed("vsync") {
		cfg.Window.VSync = o.vsync
	}
	if f.Changed("texture") {
		cfg.Scene.Texture = o.texture
	}
	if f.Changed("gl-debug") {
		cfg.Debug.GLDebugOutput = o.glDebug
	}
	if f.Changed("log-level") {
		cfg.Debug.LogLevel = o.logLevel
	}
}
