package render

import (
	"github.com/futura-engine/futura/internal/openglhelper"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex layouts matching the attribute locations in scene.vert
var (
	groundLayout    = openglhelper.LayoutPosTex
	containerLayout = openglhelper.LayoutPosColorTex
)

// groundVertices is a 10x10 plane half a unit below the walking height,
// drawn as two triangles with the texture repeated twice along each side.
func groundVertices() []float32 {
	return []float32{
		// x, y, z, u, v
		5.0, -0.5, 5.0, 2.0, 0.0,
		-5.0, -0.5, 5.0, 0.0, 0.0,
		-5.0, -0.5, -5.0, 0.0, 2.0,

		5.0, -0.5, 5.0, 2.0, 0.0,
		-5.0, -0.5, -5.0, 0.0, 2.0,
		5.0, -0.5, -5.0, 2.0, 2.0,
	}
}

// containerVertices is a unit quad with a color per corner.
func containerVertices() ([]float32, []uint32) {
	vertices := []float32{
		// x, y, z, r, g, b, u, v
		0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0,
		0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0, 0.0,
		-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0,
		-0.5, 0.5, 0.0, 1.0, 1.0, 0.0, 0.0, 1.0,
	}
	indices := []uint32{
		0, 1, 3,
		1, 2, 3,
	}
	return vertices, indices
}

// sceneObject is a mesh with its placement and shading switches.
type sceneObject struct {
	name           string
	mesh           *openglhelper.Mesh
	model          mgl32.Mat4
	tint           mgl32.Vec3
	useVertexColor bool
}

func (o sceneObject) draw(shader *openglhelper.Shader, textured bool) {
	shader.SetMat4(uniformModel, o.model)
	shader.SetVec3(uniformTint, o.tint)
	shader.SetBool(uniformUseVertexColor, o.useVertexColor)
	shader.SetBool(uniformUseTexture, textured)
	o.mesh.Draw()
}

// buildScene uploads the ground and the container.
func buildScene(res *openglhelper.Resources) ([]sceneObject, error) {
	ground, err := openglhelper.NewMesh(groundVertices(), nil, groundLayout)
	if err != nil {
		return nil, err
	}
	res.Add(ground)

	vertices, indices := containerVertices()
	container, err := openglhelper.NewMesh(vertices, indices, containerLayout)
	if err != nil {
		return nil, err
	}
	res.Add(container)

	return []sceneObject{
		{name: "ground", mesh: ground, model: mgl32.Ident4(), tint: groundTint},
		{name: "container", mesh: container, model: mgl32.Translate3D(containerPosition.Elem()), tint: containerTint, useVertexColor: true},
	}, nil
}
