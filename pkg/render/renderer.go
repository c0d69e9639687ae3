// Package render owns the window, camera and scene and runs the frame loop.
package render

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/futura-engine/futura/internal/config"
	"github.com/futura-engine/futura/internal/openglhelper"
	"github.com/futura-engine/futura/pkg/camera"
	"github.com/futura-engine/futura/pkg/clock"
	"github.com/futura-engine/futura/pkg/input"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer handles the window, input and the frame loop
type Renderer struct {
	logger *slog.Logger

	window     *openglhelper.Window
	camera     *camera.Camera
	dispatcher *input.Dispatcher
	clock      *clock.FrameClock
	stats      *clock.Stats

	scene      config.SceneConfig
	shader     *openglhelper.Swappable[*openglhelper.Shader]
	watcher    *shaderWatcher
	textures   *openglhelper.TextureCache
	diffuse    *openglhelper.Texture
	objects    []sceneObject
	clearColor mgl32.Vec4

	resources openglhelper.Resources
}

// windowOptions maps the window section of the config onto window creation options.
func windowOptions(cfg config.Config) openglhelper.WindowOptions {
	return openglhelper.WindowOptions{
		Width:        cfg.Window.Width,
		Height:       cfg.Window.Height,
		Title:        cfg.Window.Title,
		VSync:        cfg.Window.VSync,
		DebugContext: cfg.Debug.GLDebugOutput,
	}
}

// textureOptions is how the scene texture is sampled.
func textureOptions(scene config.SceneConfig) (openglhelper.TextureOptions, error) {
	opts := openglhelper.DefaultTextureOptions()
	wrap, err := openglhelper.ParseWrap(scene.TextureWrap)
	if err != nil {
		return opts, err
	}
	opts.Wrap = wrap
	opts.FlipVertically = scene.FlipTexture
	return opts, nil
}

// NewRenderer creates the window and uploads the scene. Everything acquired
// before a failure is released again.
func NewRenderer(cfg config.Config, logger *slog.Logger) (_ *Renderer, err error) {
	r := &Renderer{
		logger:     logger,
		dispatcher: input.NewDispatcher(input.DefaultBindings()),
		stats:      clock.NewStats(logger, time.Duration(cfg.Debug.StatsInterval)),
		clearColor: cfg.Window.ClearColor,
		scene:      cfg.Scene,
	}
	defer func() {
		if err != nil {
			r.resources.Close()
		}
	}()

	window, err := openglhelper.NewWindow(windowOptions(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	r.window = openglhelper.Track(&r.resources, window)

	if cfg.Debug.GLDebugOutput {
		openglhelper.EnableDebugOutput(logger.WithGroup("gl"))
	}

	r.camera = camera.FromState(cfg.Camera)
	width, height := window.Size()
	r.camera.UpdateProjectionMatrix(width, height)

	shader, err := loadSceneShader(cfg.Scene)
	if err != nil {
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}
	r.shader = openglhelper.Track(&r.resources, openglhelper.NewSwappable(shader))

	if cfg.Scene.WatchShaders && usesShaderFiles(cfg.Scene) {
		watcher, err := newShaderWatcher(logger, cfg.Scene.VertexShader, cfg.Scene.FragmentShader)
		if err != nil {
			return nil, err
		}
		r.watcher = openglhelper.Track(&r.resources, watcher)
		logger.Info("watching shaders",
			slog.String("vertex", cfg.Scene.VertexShader),
			slog.String("fragment", cfg.Scene.FragmentShader),
		)
	}

	r.objects, err = buildScene(&r.resources)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}
	for _, obj := range r.objects {
		logger.Debug("mesh uploaded",
			slog.String("name", obj.name),
			slog.Int("vertices", obj.mesh.VertexCount()),
			slog.Int("indices", obj.mesh.IndexCount()),
		)
	}

	texOpts, err := textureOptions(cfg.Scene)
	if err != nil {
		return nil, err
	}
	r.textures = openglhelper.Track(&r.resources, openglhelper.NewTextureCache(texOpts, textureCacheSize))
	if cfg.Scene.Texture != "" {
		r.diffuse, err = r.textures.Load(cfg.Scene.Texture)
		if err != nil {
			return nil, fmt.Errorf("failed to load scene texture: %w", err)
		}
		logger.Info("texture loaded",
			slog.String("path", cfg.Scene.Texture),
			slog.Int("width", r.diffuse.Width),
			slog.Int("height", r.diffuse.Height),
		)
	}

	shader.Use()
	shader.SetInt(uniformDiffuse, diffuseUnit)

	// Set up callbacks
	glfwWindow := window.GLFWWindow()
	glfwWindow.SetKeyCallback(r.keyCallback)
	glfwWindow.SetCursorPosCallback(r.cursorPosCallback)
	glfwWindow.SetScrollCallback(r.scrollCallback)
	glfwWindow.SetFramebufferSizeCallback(r.framebufferSizeCallback)

	if cfg.Window.CaptureMouse {
		window.SetMouseCaptured(true)
		window.SetRawMouseMotion(cfg.Window.RawMouseMotion)
	}

	r.clock = clock.New(glfw.GetTime)

	return r, nil
}

// Camera returns the camera driven by the renderer.
func (r *Renderer) Camera() *camera.Camera {
	return r.camera
}

// Run steps frames until the window is asked to close or ctx is done.
func (r *Renderer) Run(ctx context.Context) {
	r.logger.Info("entering frame loop")

	for !r.window.ShouldClose() {
		if ctx.Err() != nil {
			r.window.SetShouldClose(true)
			break
		}

		r.reloadChangedShaders()

		dt := r.clock.Tick()
		r.stats.Record(dt)

		// Input first, so the frame renders the camera it produced
		r.dispatcher.Process(r.window, r.camera, dt)

		r.render()

		r.window.SwapBuffers()
		r.window.PollEvents()
	}

	r.logger.Info("frame loop stopped",
		slog.Uint64("frames", r.clock.Frames()),
		slog.Float64("elapsed", r.clock.Elapsed()),
	)
}

// reloadChangedShaders swaps in a rebuilt shader after its files changed.
// A shader that fails to build is reported and the current one stays in use.
func (r *Renderer) reloadChangedShaders() {
	if r.watcher == nil {
		return
	}
	select {
	case <-r.watcher.Changed():
	default:
		return
	}

	shader, err := loadSceneShader(r.scene)
	if err != nil {
		r.logger.Warn("shader reload failed", slog.Any("error", err))
		return
	}

	if err := r.shader.Swap(shader); err != nil {
		r.logger.Warn("failed to release previous shader", slog.Any("error", err))
	}
	shader.Use()
	shader.SetInt(uniformDiffuse, diffuseUnit)
	r.logger.Info("shader reloaded")
}

// render draws every scene object with the current camera.
func (r *Renderer) render() {
	r.window.Clear(r.clearColor)

	shader := r.shader.Get()
	shader.Use()
	shader.SetMat4(uniformView, r.camera.ViewMatrix())
	shader.SetMat4(uniformProjection, r.camera.ProjectionMatrix())

	textured := r.diffuse != nil
	if textured {
		openglhelper.BindTextures(r.diffuse)
	}

	for _, obj := range r.objects {
		obj.draw(shader, textured)
	}
}

// Close releases the scene, the shader and finally the window.
func (r *Renderer) Close() error {
	return r.resources.Close()
}

// Callback functions
func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == r.dispatcher.Bindings().ToggleCapture && action == glfw.Press {
		r.window.ToggleMouseCaptured()
		r.dispatcher.Mouse().Reset()
		r.logger.Debug("mouse capture toggled", slog.Bool("captured", r.window.IsMouseCaptured()))
	}
}

func (r *Renderer) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	if r.window.IsMouseCaptured() {
		r.dispatcher.CursorMoved(r.camera, xpos, ypos)
	}
}

func (r *Renderer) scrollCallback(_ *glfw.Window, _, yoffset float64) {
	r.dispatcher.Scrolled(r.camera, yoffset)
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	r.window.OnResize(width, height)
	r.camera.UpdateProjectionMatrix(width, height)
}
