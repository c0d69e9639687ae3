package render

import "github.com/go-gl/mathgl/mgl32"

// Uniform names shared with the scene shaders
const (
	uniformModel          = "model"
	uniformView           = "view"
	uniformProjection     = "projection"
	uniformDiffuse        = "diffuse"
	uniformUseTexture     = "useTexture"
	uniformUseVertexColor = "useVertexColor"
	uniformTint           = "tint"
)

// Scene constants
const (
	// diffuseUnit is the texture unit the diffuse sampler reads from, the first one BindTextures fills
	diffuseUnit = 0
	// textureCacheSize bounds the number of textures kept on the GPU
	textureCacheSize = 16
)

var (
	// groundTint darkens the ground so the container stands out
	groundTint = mgl32.Vec3{0.6, 0.6, 0.6}
	// containerTint leaves the container colors unchanged
	containerTint = mgl32.Vec3{1, 1, 1}
	// containerPosition places the container at the origin, in front of the start position
	containerPosition = mgl32.Vec3{0, 0, 0}
)
