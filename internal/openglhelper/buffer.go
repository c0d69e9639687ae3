// Package openglhelper wraps the OpenGL and GLFW objects the renderer needs:
// window, shader programs, buffers, meshes and textures. Every GPU object has a
// Close method so it can be registered with a Resources stack.
package openglhelper

import (
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// BufferUsage represents the expected access pattern of a buffer's data store.
type BufferUsage uint32

// StaticDraw is for data uploaded once and drawn many times
const StaticDraw BufferUsage = gl.STATIC_DRAW

const (
	float32Size = int(unsafe.Sizeof(float32(0)))
	uint32Size  = int(unsafe.Sizeof(uint32(0)))
)

// BufferObject is a GL buffer bound to a single target (array, element, ...).
type BufferObject struct {
	ID    uint32
	Type  uint32 // GL_ARRAY_BUFFER, GL_ELEMENT_ARRAY_BUFFER, ...
	Size  int    // Size of the data store in bytes
	Usage BufferUsage
}

// NewBufferObject creates a buffer of sizeInBytes on target bufferType and
// uploads data, which may be nil to only allocate.
func NewBufferObject(bufferType uint32, sizeInBytes int, data unsafe.Pointer, usage BufferUsage) *BufferObject {
	var id uint32
	gl.GenBuffers(1, &id)

	buffer := &BufferObject{
		ID:    id,
		Type:  bufferType,
		Size:  sizeInBytes,
		Usage: usage,
	}

	buffer.Bind()
	gl.BufferData(bufferType, sizeInBytes, data, uint32(usage))

	return buffer
}

// NewVBO uploads interleaved vertex floats to a new array buffer.
func NewVBO(vertices []float32, usage BufferUsage) *BufferObject {
	var ptr unsafe.Pointer
	if len(vertices) > 0 {
		ptr = gl.Ptr(vertices)
	}
	return NewBufferObject(gl.ARRAY_BUFFER, len(vertices)*float32Size, ptr, usage)
}

// NewEBO uploads indices to a new element buffer. The currently bound VAO records it.
func NewEBO(indices []uint32, usage BufferUsage) *BufferObject {
	var ptr unsafe.Pointer
	if len(indices) > 0 {
		ptr = gl.Ptr(indices)
	}
	return NewBufferObject(gl.ELEMENT_ARRAY_BUFFER, len(indices)*uint32Size, ptr, usage)
}

// Bind binds the buffer to its target.
func (bo *BufferObject) Bind() {
	gl.BindBuffer(bo.Type, bo.ID)
}

// Unbind clears the buffer's target.
func (bo *BufferObject) Unbind() {
	gl.BindBuffer(bo.Type, 0)
}

// Close deletes the buffer. Calling it again is a no-op.
func (bo *BufferObject) Close() error {
	if bo.ID != 0 {
		gl.DeleteBuffers(1, &bo.ID)
		bo.ID = 0
	}
	return nil
}

// VertexArrayObject stores vertex attribute layout and the bound element buffer.
type VertexArrayObject struct {
	ID uint32
}

// NewVAO creates a vertex array object.
func NewVAO() *VertexArrayObject {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return &VertexArrayObject{ID: id}
}

// Bind binds the vertex array object.
func (vao *VertexArrayObject) Bind() {
	gl.BindVertexArray(vao.ID)
}

// Unbind unbinds any vertex array object.
func (vao *VertexArrayObject) Unbind() {
	gl.BindVertexArray(0)
}

// SetVertexAttribPointer describes one float attribute of the bound array buffer and enables it.
// stride and offset are in bytes.
func (vao *VertexArrayObject) SetVertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(offset))
	gl.EnableVertexAttribArray(index)
}

// Close deletes the vertex array object. Calling it again is a no-op.
func (vao *VertexArrayObject) Close() error {
	if vao.ID != 0 {
		gl.DeleteVertexArrays(1, &vao.ID)
		vao.ID = 0
	}
	return nil
}
