// Package glstate snapshots and restores the pipeline state an overlay
// pass overwrites. It talks to GL through the Querier and Setter
// interfaces, so it builds without cgo.
package glstate

// Query names an integer state value.
type Query int

const (
	QueryProgram Query = iota
	QueryVertexArray
	QueryBlendSrcRGB
	QueryBlendDstRGB
	QueryBlendSrcAlpha
	QueryBlendDstAlpha
	QueryPolygonMode
	QueryScissorBox // four values
)

// Capability names a toggle set with glEnable/glDisable.
type Capability int

const (
	CapBlend Capability = iota
	CapDepthTest
	CapCullFace
	CapScissorTest
	capCount
)

// Querier reads state.
type Querier interface {
	// Integers writes the value(s) of q into dst.
	Integers(q Query, dst []int32)
	IsEnabled(c Capability) bool
}

// Setter writes state.
type Setter interface {
	UseProgram(program uint32)
	BindVertexArray(vao uint32)
	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha uint32)
	PolygonMode(mode uint32)
	SetEnabled(c Capability, on bool)
	Scissor(x, y, w, h int32)
}

// Blend holds separate color and alpha blend factors.
type Blend struct {
	SrcRGB, DstRGB     uint32
	SrcAlpha, DstAlpha uint32
}

// State is a snapshot taken by Capture.
type State struct {
	Program     uint32
	VertexArray uint32
	Blend       Blend
	PolygonMode uint32
	Scissor     [4]int32
	Enabled     [capCount]bool
}

// Capture reads the current state.
func Capture(q Querier) State {
	var s State
	one := func(query Query) uint32 {
		var v [1]int32
		q.Integers(query, v[:])
		return uint32(v[0])
	}
	s.Program = one(QueryProgram)
	s.VertexArray = one(QueryVertexArray)
	s.Blend = Blend{
		SrcRGB:   one(QueryBlendSrcRGB),
		DstRGB:   one(QueryBlendDstRGB),
		SrcAlpha: one(QueryBlendSrcAlpha),
		DstAlpha: one(QueryBlendDstAlpha),
	}
	// Core profiles report one mode for both faces; compatibility ones two.
	var mode [2]int32
	q.Integers(QueryPolygonMode, mode[:])
	s.PolygonMode = uint32(mode[0])
	q.Integers(QueryScissorBox, s.Scissor[:])
	for c := range capCount {
		s.Enabled[c] = q.IsEnabled(c)
	}
	return s
}

// Restore writes s back.
func (s State) Restore(w Setter) {
	w.BindVertexArray(s.VertexArray)
	w.UseProgram(s.Program)
	w.BlendFuncSeparate(s.Blend.SrcRGB, s.Blend.DstRGB, s.Blend.SrcAlpha, s.Blend.DstAlpha)
	w.PolygonMode(s.PolygonMode)
	for c := range capCount {
		w.SetEnabled(c, s.Enabled[c])
	}
	w.Scissor(s.Scissor[0], s.Scissor[1], s.Scissor[2], s.Scissor[3])
}
