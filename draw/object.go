package draw

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ShapeKind identifies the geometry an Object represents.
type ShapeKind uint8

const (
	ShapeRectangle ShapeKind = iota
	ShapeTriangle            // reserved, no render path
	ShapeCircle              // reserved, no render path
)

// String returns the lower-case shape name.
func (k ShapeKind) String() string {
	switch k {
	case ShapeRectangle:
		return "rectangle"
	case ShapeTriangle:
		return "triangle"
	case ShapeCircle:
		return "circle"
	default:
		return fmt.Sprintf("shape(%d)", uint8(k))
	}
}

// Object is one named shape in a Registry.
//
// Position, Size and Color may be changed at any time through the pointer
// returned by Registry.Get; the renderer reads them fresh every frame.
// Nothing clamps them after creation.
type Object struct {
	name  string
	index int
	kind  ShapeKind

	Position mgl32.Vec2 // top-left corner (rectangles) or center (circles), pixels, y-down
	Size     mgl32.Vec2 // width/height in pixels; (r, r) for circles
	Color    mgl32.Vec4 // RGBA in [0,1]

	res Resource
}

// Name returns the registry key of the object.
func (o *Object) Name() string { return o.name }

// Index returns the number of objects that existed when this one was created.
// It is bookkeeping only and does not affect draw order.
func (o *Object) Index() int { return o.index }

// Kind returns the shape kind.
func (o *Object) Kind() ShapeKind { return o.kind }

// Resource returns a copy of the object's GPU resource state.
func (o *Object) Resource() Resource { return o.res }

// handle is a GPU object name that is either allocated or not.
// The id is never inspected to decide allocation.
type handle struct {
	id    uint32
	valid bool
}

// Handles holds the GPU object names owned by one Object.
type Handles struct {
	VertexArray  uint32
	VertexBuffer uint32
	IndexBuffer  uint32
}

// Resource is the GPU resource state of an Object.
//
// It moves from unallocated to allocated on the first frame that renders
// the object and never goes back until Registry.Cleanup.
type Resource struct {
	vao handle
	vbo handle
	ebo handle
}

// Allocated reports whether all three handles have been generated.
func (r Resource) Allocated() bool {
	return r.vao.valid && r.vbo.valid && r.ebo.valid
}

// Handles returns the generated handles and whether all of them exist.
func (r Resource) Handles() (Handles, bool) {
	return Handles{
		VertexArray:  r.vao.id,
		VertexBuffer: r.vbo.id,
		IndexBuffer:  r.ebo.id,
	}, r.Allocated()
}

// normalizeColor maps an RGBA color in [0,255] to [0,1].
func normalizeColor(rgba mgl32.Vec4) mgl32.Vec4 {
	return mgl32.Vec4{rgba[0] / 255, rgba[1] / 255, rgba[2] / 255, rgba[3] / 255}
}
