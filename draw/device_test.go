package draw_test

import "github.com/WaxieDLL/OpenGLPlayground/draw"

// drawCall records the state bound when DrawTriangles was called.
type drawCall struct {
	vao, vbo, ebo uint32
	program       draw.Program
	count         int32
	vertices      []float32
}

// fakeDevice is a draw.Device that hands out increasing names and records
// what the renderer did with them.
type fakeDevice struct {
	next uint32

	boundVAO uint32
	boundVBO uint32
	boundEBO uint32
	program  draw.Program

	buffers map[uint32][]float32
	indices map[uint32][]uint32
	attribs map[uint32]uintptr

	genVAO, genBuf int
	draws          []drawCall
	deletedVAOs    []uint32
	deletedBufs    []uint32
	unbinds        int
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		buffers: make(map[uint32][]float32),
		indices: make(map[uint32][]uint32),
		attribs: make(map[uint32]uintptr),
	}
}

func (d *fakeDevice) GenVertexArray() uint32 {
	d.genVAO++
	d.next++
	return d.next
}

func (d *fakeDevice) GenBuffer() uint32 {
	d.genBuf++
	d.next++
	return d.next
}

func (d *fakeDevice) BindVertexArray(vao uint32) { d.boundVAO = vao }

func (d *fakeDevice) BufferVertices(vbo uint32, data []float32) {
	d.boundVBO = vbo
	d.buffers[vbo] = append([]float32(nil), data...)
}

func (d *fakeDevice) BufferIndices(ebo uint32, data []uint32) {
	d.boundEBO = ebo
	d.indices[ebo] = append([]uint32(nil), data...)
}

func (d *fakeDevice) VertexAttrib(location uint32, components int32, offset uintptr) {
	d.attribs[location] = offset
}

func (d *fakeDevice) UseProgram(p draw.Program) { d.program = p }

func (d *fakeDevice) DrawTriangles(count int32) {
	d.draws = append(d.draws, drawCall{
		vao:      d.boundVAO,
		vbo:      d.boundVBO,
		ebo:      d.boundEBO,
		program:  d.program,
		count:    count,
		vertices: d.buffers[d.boundVBO],
	})
}

func (d *fakeDevice) UnbindArrayBuffer() {
	d.boundVBO = 0
	d.unbinds++
}

func (d *fakeDevice) DeleteVertexArray(vao uint32) { d.deletedVAOs = append(d.deletedVAOs, vao) }

func (d *fakeDevice) DeleteBuffer(buf uint32) { d.deletedBufs = append(d.deletedBufs, buf) }

// zeroDevice always fails allocation by returning name 0.
type zeroDevice struct{ *fakeDevice }

func (zeroDevice) GenVertexArray() uint32 { return 0 }
func (zeroDevice) GenBuffer() uint32      { return 0 }
