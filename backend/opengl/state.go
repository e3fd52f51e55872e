package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/WaxieDLL/OpenGLPlayground/backend/opengl/glstate"
)

// liveGL binds glstate to the current context.
type liveGL struct{}

var queryEnums = [...]uint32{
	glstate.QueryProgram:       gl.CURRENT_PROGRAM,
	glstate.QueryVertexArray:   gl.VERTEX_ARRAY_BINDING,
	glstate.QueryBlendSrcRGB:   gl.BLEND_SRC_RGB,
	glstate.QueryBlendDstRGB:   gl.BLEND_DST_RGB,
	glstate.QueryBlendSrcAlpha: gl.BLEND_SRC_ALPHA,
	glstate.QueryBlendDstAlpha: gl.BLEND_DST_ALPHA,
	glstate.QueryPolygonMode:   gl.POLYGON_MODE,
	glstate.QueryScissorBox:    gl.SCISSOR_BOX,
}

var capabilityEnums = [...]uint32{
	glstate.CapBlend:       gl.BLEND,
	glstate.CapDepthTest:   gl.DEPTH_TEST,
	glstate.CapCullFace:    gl.CULL_FACE,
	glstate.CapScissorTest: gl.SCISSOR_TEST,
}

func (liveGL) Integers(q glstate.Query, dst []int32) {
	// GL may write up to four values; never hand it a shorter slice.
	var buf [4]int32
	gl.GetIntegerv(queryEnums[q], &buf[0])
	copy(dst, buf[:])
}

func (liveGL) IsEnabled(c glstate.Capability) bool {
	return gl.IsEnabled(capabilityEnums[c])
}

func (liveGL) UseProgram(program uint32)  { gl.UseProgram(program) }
func (liveGL) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }
func (liveGL) PolygonMode(mode uint32)    { gl.PolygonMode(gl.FRONT_AND_BACK, mode) }
func (liveGL) Scissor(x, y, w, h int32)   { gl.Scissor(x, y, w, h) }

func (liveGL) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha uint32) {
	gl.BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha)
}

func (liveGL) SetEnabled(c glstate.Capability, on bool) {
	if on {
		gl.Enable(capabilityEnums[c])
	} else {
		gl.Disable(capabilityEnums[c])
	}
}
