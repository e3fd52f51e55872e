// Package opengl provides the OpenGL 4.1 and GLFW backend for the draw and
// gui packages. Everything here must run on the thread that owns the GL
// context.
package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/WaxieDLL/OpenGLPlayground/draw"
)

// Device implements draw.Device on the current GL context.
type Device struct{}

// NewDevice returns a device bound to the current GL context.
func NewDevice() *Device {
	return &Device{}
}

func (*Device) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (*Device) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (*Device) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (*Device) BufferVertices(vbo uint32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.DYNAMIC_DRAW)
}

func (*Device) BufferIndices(ebo uint32, data []uint32) {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	if len(data) == 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
		return
	}
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.DYNAMIC_DRAW)
}

func (*Device) VertexAttrib(location uint32, components int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(location, components, gl.FLOAT, false, components*4, offset)
	gl.EnableVertexAttribArray(location)
}

func (*Device) UseProgram(p draw.Program) {
	gl.UseProgram(uint32(p))
}

func (*Device) DrawTriangles(count int32) {
	gl.DrawElementsWithOffset(gl.TRIANGLES, count, gl.UNSIGNED_INT, 0)
}

func (*Device) UnbindArrayBuffer() {
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (*Device) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (*Device) DeleteBuffer(buf uint32) {
	gl.DeleteBuffers(1, &buf)
}

var _ draw.Device = (*Device)(nil)
