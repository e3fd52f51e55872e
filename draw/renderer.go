package draw

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrInvalidViewport is returned by RenderAll when the display has a
	// non-positive width or height, e.g. while the window is minimized.
	ErrInvalidViewport = errors.New("draw: invalid viewport")

	// ErrUnsupportedShape marks objects whose kind has no render path.
	ErrUnsupportedShape = errors.New("draw: unsupported shape")
)

// FrameStats summarizes one RenderAll call.
type FrameStats struct {
	DrawCalls   int // indexed draw calls issued
	Uploads     int // vertex+index buffer pairs uploaded
	Allocations int // GPU handles generated this frame
	Unsupported int // objects skipped because their kind has no render path
}

// Renderer draws every object of a Registry through a Device.
type Renderer struct {
	reg     *Registry
	dev     Device
	display DisplaySizer
	logger  *slog.Logger

	// scratch holds flattened vertices between objects.
	scratch []float32
	// reported tracks objects whose unsupported kind was already logged.
	reported map[string]struct{}
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithLogger sets the renderer logger.
func WithLogger(l *slog.Logger) RendererOption {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRenderer creates a renderer for reg. display is queried once per frame.
func NewRenderer(reg *Registry, dev Device, display DisplaySizer, opts ...RendererOption) *Renderer {
	r := &Renderer{
		reg:      reg,
		dev:      dev,
		display:  display,
		logger:   drawLogger,
		scratch:  make([]float32, 0, rectCorners*(PositionComponents+ColorComponents)),
		reported: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Registry returns the registry the renderer draws.
func (r *Renderer) Registry() *Registry {
	return r.reg
}

// RenderAll draws every rectangle in registry order with program.
//
// Geometry is rebuilt and uploaded for every rectangle on every call, so
// edits made through Registry.Get since the last frame are always visible.
// Objects of other kinds are skipped and counted in FrameStats.Unsupported.
func (r *Renderer) RenderAll(program Program) (FrameStats, error) {
	var stats FrameStats

	w, h := r.display.DisplaySize()
	if w <= 0 || h <= 0 {
		return stats, fmt.Errorf("%w: %gx%g", ErrInvalidViewport, w, h)
	}
	viewport := mgl32.Vec2{w, h}

	for name, obj := range r.reg.All() {
		err := r.render(obj, program, viewport, &stats)
		if errors.Is(err, ErrUnsupportedShape) {
			stats.Unsupported++
			if _, seen := r.reported[name]; !seen {
				r.reported[name] = struct{}{}
				r.logger.Debug("skipping object", "name", name, "err", err)
			}
			continue
		}
		if err != nil {
			return stats, fmt.Errorf("render %q: %w", name, err)
		}
	}

	return stats, nil
}

// render draws a single object.
func (r *Renderer) render(obj *Object, program Program, viewport mgl32.Vec2, stats *FrameStats) error {
	switch obj.kind {
	case ShapeRectangle:
		r.renderRect(obj, program, viewport, stats)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedShape, obj.kind)
	}
}

func (r *Renderer) renderRect(obj *Object, program Program, viewport mgl32.Vec2, stats *FrameStats) {
	verts := RectGeometry(obj.Position, obj.Size, obj.Color, viewport)
	r.scratch = verts.Flatten(r.scratch)

	res := &obj.res

	if !res.vao.valid {
		res.vao = r.allocate(obj.name, "vertex array", r.dev.GenVertexArray)
		stats.Allocations++
	}
	r.dev.BindVertexArray(res.vao.id)

	if !res.vbo.valid {
		res.vbo = r.allocate(obj.name, "vertex buffer", r.dev.GenBuffer)
		stats.Allocations++
	}
	r.dev.BufferVertices(res.vbo.id, r.scratch)

	if !res.ebo.valid {
		res.ebo = r.allocate(obj.name, "index buffer", r.dev.GenBuffer)
		stats.Allocations++
	}
	r.dev.BufferIndices(res.ebo.id, RectIndices[:])
	stats.Uploads++

	r.dev.VertexAttrib(AttribPosition, PositionComponents, 0)
	r.dev.VertexAttrib(AttribColor, ColorComponents, ColorOffset)

	r.dev.UseProgram(program)
	r.dev.DrawTriangles(int32(len(RectIndices)))
	stats.DrawCalls++

	r.dev.UnbindArrayBuffer()
}

// allocate generates one handle. A zero name means the driver failed; it is
// logged and kept, there is no retry.
func (r *Renderer) allocate(name, what string, gen func() uint32) handle {
	id := gen()
	if id == 0 {
		r.logger.Error("GPU allocation returned no name", "object", name, "resource", what)
	} else {
		r.logger.Debug("GPU resource allocated", "object", name, "resource", what, "id", id)
	}
	return handle{id: id, valid: true}
}

// Cleanup releases all GPU resources owned by the registry's objects and
// empties the registry.
func (r *Renderer) Cleanup() {
	r.reg.Cleanup(r.dev)
	clear(r.reported)
}
