package render

import (
	"testing"

	"github.com/futura-engine/futura/internal/config"
	"github.com/futura-engine/futura/internal/openglhelper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// floatsPerVertex sums the attribute sizes of a layout.
func floatsPerVertex(layout []openglhelper.Attribute) int {
	n := 0
	for _, a := range layout {
		n += int(a.Size)
	}
	return n
}

func TestGroundGeometry(t *testing.T) {
	vertices := groundVertices()
	stride := floatsPerVertex(groundLayout)
	require.Equal(t, 5, stride)
	require.Zero(t, len(vertices)%stride)
	assert.Equal(t, 6, len(vertices)/stride)

	// The ground lies flat below the walking height
	for i := 0; i < len(vertices); i += stride {
		assert.Equal(t, float32(-0.5), vertices[i+1])
	}
}

func TestContainerGeometry(t *testing.T) {
	vertices, indices := containerVertices()
	stride := floatsPerVertex(containerLayout)
	require.Equal(t, 8, stride)
	require.Zero(t, len(vertices)%stride)

	count := len(vertices) / stride
	assert.Equal(t, 4, count)
	assert.Len(t, indices, 6)
	for _, idx := range indices {
		assert.Less(t, int(idx), count)
	}
}

func TestLayoutsShareLocations(t *testing.T) {
	locations := func(layout []openglhelper.Attribute) map[uint32]int32 {
		m := make(map[uint32]int32)
		for _, a := range layout {
			m[a.Location] = a.Size
		}
		return m
	}

	ground := locations(groundLayout)
	container := locations(containerLayout)

	assert.Equal(t, int32(3), ground[0])
	assert.Equal(t, int32(2), ground[1])
	assert.Equal(t, ground[0], container[0])
	assert.Equal(t, ground[1], container[1])
	assert.Equal(t, int32(3), container[2])
}

func TestWindowOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Window.Title = "Sandbox"
	cfg.Window.Width = 1280
	cfg.Window.Height = 720
	cfg.Window.VSync = false
	cfg.Debug.GLDebugOutput = true

	opts := windowOptions(cfg)
	assert.Equal(t, openglhelper.WindowOptions{
		Width:        1280,
		Height:       720,
		Title:        "Sandbox",
		VSync:        false,
		DebugContext: true,
	}, opts)
}

func TestTextureOptions(t *testing.T) {
	opts, err := textureOptions(config.SceneConfig{FlipTexture: false})
	require.NoError(t, err)
	assert.False(t, opts.FlipVertically)
	assert.Equal(t, openglhelper.Repeat, opts.Wrap)
	assert.Equal(t, openglhelper.LinearMipmapLinear, opts.Filter)

	opts, err = textureOptions(config.SceneConfig{FlipTexture: true, TextureWrap: "clamp_to_edge"})
	require.NoError(t, err)
	assert.True(t, opts.FlipVertically)
	assert.Equal(t, openglhelper.ClampToEdge, opts.Wrap)

	_, err = textureOptions(config.SceneConfig{TextureWrap: "tile"})
	assert.Error(t, err)
}

func TestUsesShaderFiles(t *testing.T) {
	assert.False(t, usesShaderFiles(config.SceneConfig{}))
	assert.False(t, usesShaderFiles(config.SceneConfig{VertexShader: "a.vert"}))
	assert.True(t, usesShaderFiles(config.SceneConfig{VertexShader: "a.vert", FragmentShader: "a.frag"}))
}

func TestEmbeddedShaders(t *testing.T) {
	for _, src := range []string{sceneVertexSource, sceneFragmentSource} {
		assert.Contains(t, src, "#version 460 core")
	}
	for _, name := range []string{uniformModel, uniformView, uniformProjection} {
		assert.Contains(t, sceneVertexSource, "uniform mat4 "+name)
	}
	for _, name := range []string{uniformDiffuse, uniformUseTexture, uniformUseVertexColor, uniformTint} {
		assert.Contains(t, sceneFragmentSource, name)
	}
}
