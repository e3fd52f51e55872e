package draw

import "github.com/go-gl/mathgl/mgl32"

// Corner indices of a rectangle's vertices.
const (
	CornerTopLeft uint32 = iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight
)

// RectIndices is the triangle list drawn for every rectangle.
var RectIndices = [6]uint32{
	CornerTopLeft, CornerTopRight, CornerBottomRight,
	CornerTopLeft, CornerBottomLeft, CornerBottomRight,
}

// Vertex attribute layout of a flattened rectangle.
// Positions for all four corners come first, then colors.
const (
	AttribPosition uint32 = 0
	AttribColor    uint32 = 1

	PositionComponents = 2
	ColorComponents    = 4

	rectCorners = 4

	// ColorOffset is the byte offset of the color block.
	ColorOffset = rectCorners * PositionComponents * 4
)

// RectVertices is a rectangle in normalized device coordinates, indexed by
// the Corner constants.
type RectVertices struct {
	Points [4]mgl32.Vec2
	Colors [4]mgl32.Vec4
}

// ToNDC maps a pixel coordinate on an axis of the given length to [-1, 1].
func ToNDC(pixel, dimension float32) float32 {
	return 2*pixel/dimension - 1
}

// RectGeometry converts a rectangle given in window pixels (origin top-left,
// y down) to NDC (y up) for a viewport of the given size.
func RectGeometry(pos, size mgl32.Vec2, color mgl32.Vec4, viewport mgl32.Vec2) RectVertices {
	nx := ToNDC(pos.X(), viewport.X())
	ny := ToNDC(pos.Y(), viewport.Y())
	nw := size.X() / viewport.X() * 2
	nh := size.Y() / viewport.Y() * 2

	return RectVertices{
		Points: [4]mgl32.Vec2{
			CornerTopLeft:     {nx, -ny},
			CornerTopRight:    {nx + nw, -ny},
			CornerBottomLeft:  {nx, -ny - nh},
			CornerBottomRight: {nx + nw, -ny - nh},
		},
		Colors: [4]mgl32.Vec4{color, color, color, color},
	}
}

// Flatten writes the vertices into dst in upload order and returns it.
// dst is reused when it has enough capacity.
func (v RectVertices) Flatten(dst []float32) []float32 {
	dst = dst[:0]
	for _, p := range v.Points {
		dst = append(dst, p[0], p[1])
	}
	for _, c := range v.Colors {
		dst = append(dst, c[0], c[1], c[2], c[3])
	}
	return dst
}
