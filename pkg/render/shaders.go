package render

import (
	_ "embed"

	"github.com/futura-engine/futura/internal/config"
	"github.com/futura-engine/futura/internal/openglhelper"
)

//go:embed shaders/scene.vert
var sceneVertexSource string

//go:embed shaders/scene.frag
var sceneFragmentSource string

// usesShaderFiles reports whether the scene config overrides the built-in shaders.
func usesShaderFiles(scene config.SceneConfig) bool {
	return scene.VertexShader != "" && scene.FragmentShader != ""
}

// loadSceneShader builds the configured shader program, falling back to the embedded sources.
func loadSceneShader(scene config.SceneConfig) (*openglhelper.Shader, error) {
	if usesShaderFiles(scene) {
		return openglhelper.LoadShaderFromFiles(scene.VertexShader, scene.FragmentShader)
	}
	return openglhelper.NewShader(sceneVertexSource, sceneFragmentSource)
}
