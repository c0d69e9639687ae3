package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// Attribute is one float vertex attribute in an interleaved layout.
type Attribute struct {
	Location uint32
	Size     int32 // number of float components, 1 to 4
}

// Common layouts. Texture coordinates are always at location 1 and color at
// location 2, so one shader can draw both.
var (
	// LayoutPosTex is position (vec3) then texture coordinates (vec2).
	LayoutPosTex = []Attribute{{Location: 0, Size: 3}, {Location: 1, Size: 2}}
	// LayoutPosColorTex is position (vec3), color (vec3), then texture coordinates (vec2).
	LayoutPosColorTex = []Attribute{{Location: 0, Size: 3}, {Location: 2, Size: 3}, {Location: 1, Size: 2}}
)

// layoutOffsets returns the stride in floats and each attribute's offset in floats.
func layoutOffsets(layout []Attribute) (stride int, offsets []int, err error) {
	if len(layout) == 0 {
		return 0, nil, fmt.Errorf("vertex layout is empty")
	}
	offsets = make([]int, len(layout))
	for i, attr := range layout {
		if attr.Size < 1 || attr.Size > 4 {
			return 0, nil, fmt.Errorf("attribute %d has %d components, want 1 to 4", attr.Location, attr.Size)
		}
		offsets[i] = stride
		stride += int(attr.Size)
	}
	return stride, offsets, nil
}

// vertexCount returns how many whole vertices floats holds for stride.
func vertexCount(floats, stride int) (int, error) {
	if floats%stride != 0 {
		return 0, fmt.Errorf("%d floats is not a multiple of the %d float stride", floats, stride)
	}
	return floats / stride, nil
}

// Mesh is geometry uploaded to the GPU. It draws indexed when it has indices
// and as a plain triangle list otherwise.
type Mesh struct {
	vao         *VertexArrayObject
	vbo         *BufferObject
	ebo         *BufferObject
	vertexCount int32
	indexCount  int32
}

// NewMesh uploads interleaved vertices and optional indices described by layout.
func NewMesh(vertices []float32, indices []uint32, layout []Attribute) (*Mesh, error) {
	stride, offsets, err := layoutOffsets(layout)
	if err != nil {
		return nil, err
	}
	count, err := vertexCount(len(vertices), stride)
	if err != nil {
		return nil, err
	}
	for _, idx := range indices {
		if int(idx) >= count {
			return nil, fmt.Errorf("index %d out of range for %d vertices", idx, count)
		}
	}

	mesh := &Mesh{
		vertexCount: int32(count),
		indexCount:  int32(len(indices)),
	}

	mesh.vao = NewVAO()
	mesh.vao.Bind()

	mesh.vbo = NewVBO(vertices, StaticDraw)
	if len(indices) > 0 {
		mesh.ebo = NewEBO(indices, StaticDraw)
	}

	strideBytes := int32(stride * float32Size)
	for i, attr := range layout {
		mesh.vao.SetVertexAttribPointer(attr.Location, attr.Size, gl.FLOAT, false, strideBytes, offsets[i]*float32Size)
	}

	mesh.vao.Unbind()

	return mesh, nil
}

// Draw issues the draw call with whatever program is in use.
func (m *Mesh) Draw() {
	m.vao.Bind()
	if m.indexCount > 0 {
		gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
	}
	m.vao.Unbind()
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return int(m.vertexCount)
}

// IndexCount returns the number of indices, zero for non-indexed meshes.
func (m *Mesh) IndexCount() int {
	return int(m.indexCount)
}

// Close releases the vertex array and buffers.
func (m *Mesh) Close() error {
	m.vao.Close()
	m.vbo.Close()
	if m.ebo != nil {
		m.ebo.Close()
	}
	return nil
}
