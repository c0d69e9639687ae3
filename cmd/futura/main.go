// Command futura opens a window with a small textured scene and a
// first-person camera that walks on the ground plane.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/futura-engine/futura/internal/logging"
	"github.com/futura-engine/futura/pkg/camera"
	"github.com/futura-engine/futura/pkg/render"

	"github.com/spf13/cobra"
)

func init() {
	// GLFW and OpenGL calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "futura",
		Short:         "Walk around a small OpenGL scene",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}
	opts.register(cmd)
	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, err := opts.load(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "futura: %v\n", err)
		return err
	}

	level, err := logging.ParseLevel(cfg.Debug.LogLevel)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "futura: %v\n", err)
		return err
	}
	core, app := logging.Loggers(cmd.ErrOrStderr(), logging.Options{
		Level: level,
		Color: !opts.noColor,
	})

	if opts.printConfig {
		data, err := cfg.Encode()
		if err != nil {
			core.Error("failed to print config", "error", err)
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	app.Info("starting", "title", cfg.Window.Title, "config", opts.configPath)

	renderer, err := render.NewRenderer(cfg, core)
	if err != nil {
		core.Error("failed to initialize renderer", "error", err)
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer.Run(ctx)

	if opts.saveCamera != "" {
		if err := saveCamera(opts.saveCamera, renderer.Camera()); err != nil {
			app.Warn("failed to save camera", "path", opts.saveCamera, "error", err)
		} else {
			app.Info("camera saved", "path", opts.saveCamera)
		}
	}

	if err := renderer.Close(); err != nil {
		core.Error("failed to release resources", "error", err)
		return err
	}
	app.Info("shut down")
	return nil
}

// saveCamera writes the camera state as TOML so it can be pasted into the
// [camera] table of a config file.
func saveCamera(path string, cam *camera.Camera) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return camera.EncodeState(f, cam.State())
}

