package draw

// Program is a linked shader program. It must bind attribute location 0 to
// a vec2 position and location 1 to a vec4 color.
type Program uint32

// Device is the subset of the graphics API the renderer needs.
// Every method is called on the goroutine that owns the GL context.
type Device interface {
	Releaser

	GenVertexArray() uint32
	GenBuffer() uint32
	BindVertexArray(vao uint32)

	// BufferVertices binds vbo as the array buffer and replaces its contents.
	BufferVertices(vbo uint32, data []float32)
	// BufferIndices binds ebo as the element buffer and replaces its contents.
	BufferIndices(ebo uint32, data []uint32)
	// VertexAttrib describes and enables a tightly packed float attribute
	// of the bound array buffer starting at offset bytes.
	VertexAttrib(location uint32, components int32, offset uintptr)

	UseProgram(p Program)
	// DrawTriangles draws count indices of the bound element buffer.
	DrawTriangles(count int32)
	UnbindArrayBuffer()
}

// DisplaySizer reports the current drawable size in pixels.
type DisplaySizer interface {
	DisplaySize() (width, height float32)
}

// DisplaySizeFunc adapts a function to DisplaySizer.
type DisplaySizeFunc func() (width, height float32)

// DisplaySize calls f.
func (f DisplaySizeFunc) DisplaySize() (width, height float32) {
	return f()
}

// FixedDisplay is a DisplaySizer with a constant size.
type FixedDisplay struct {
	Width, Height float32
}

// DisplaySize returns the fixed size.
func (d FixedDisplay) DisplaySize() (width, height float32) {
	return d.Width, d.Height
}
