package draw

import (
	"iter"
	"log/slog"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Registry maps unique names to drawable objects.
//
// Iteration is in ascending name order, so the overlay's object list and
// the renderer see the same sequence every frame.
type Registry struct {
	objects map[string]*Object
	names   []string // sorted keys of objects
	logger  *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRegistryLogger sets the logger used for creation and cleanup events.
func WithRegistryLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		objects: make(map[string]*Object),
		names:   make([]string, 0, 8),
		logger:  drawLogger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CreateRectangle adds a rectangle with its top-left corner at corner and the
// given extent. The color is given in [0,255] per channel.
//
// If name is already taken the call does nothing and returns false.
func (r *Registry) CreateRectangle(name string, corner, extent mgl32.Vec2, rgba mgl32.Vec4) bool {
	return r.insert(name, ShapeRectangle, corner, extent, rgba)
}

// CreateCircle adds a circle centered at center. The size is stored as
// (radius, radius). Circles have no render path yet.
//
// If name is already taken the call does nothing and returns false.
func (r *Registry) CreateCircle(name string, center mgl32.Vec2, radius float32, rgba mgl32.Vec4) bool {
	return r.insert(name, ShapeCircle, center, mgl32.Vec2{radius, radius}, rgba)
}

// CreateTriangle adds a triangle bounded by the rectangle at corner with the
// given extent. Triangles have no render path yet.
//
// If name is already taken the call does nothing and returns false.
func (r *Registry) CreateTriangle(name string, corner, extent mgl32.Vec2, rgba mgl32.Vec4) bool {
	return r.insert(name, ShapeTriangle, corner, extent, rgba)
}

func (r *Registry) insert(name string, kind ShapeKind, pos, size mgl32.Vec2, rgba mgl32.Vec4) bool {
	i, found := slices.BinarySearch(r.names, name)
	if found {
		r.logger.Debug("object exists, create ignored", "name", name, "kind", kind)
		return false
	}

	r.objects[name] = &Object{
		name:     name,
		index:    len(r.objects),
		kind:     kind,
		Position: pos,
		Size:     size,
		Color:    normalizeColor(rgba),
	}
	r.names = slices.Insert(r.names, i, name)

	r.logger.Debug("object created", "name", name, "kind", kind, "index", len(r.objects)-1)
	return true
}

// Get returns the object registered under name.
// The pointer stays valid until Cleanup.
func (r *Registry) Get(name string) (*Object, bool) {
	o, ok := r.objects[name]
	return o, ok
}

// All iterates over every object in ascending name order.
// Creating objects while iterating is not supported.
func (r *Registry) All() iter.Seq2[string, *Object] {
	return func(yield func(string, *Object) bool) {
		for _, name := range r.names {
			if !yield(name, r.objects[name]) {
				return
			}
		}
	}
}

// Names returns the object names in iteration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Len returns the number of registered objects.
func (r *Registry) Len() int {
	return len(r.objects)
}

// Releaser deletes GPU objects.
type Releaser interface {
	DeleteVertexArray(vao uint32)
	DeleteBuffer(buf uint32)
}

// Cleanup releases every allocated GPU handle through rel and empties the
// registry. It must run while the GL context that created the handles is
// still current.
func (r *Registry) Cleanup(rel Releaser) {
	released := 0
	for _, name := range r.names {
		o := r.objects[name]
		if o.res.vao.valid {
			rel.DeleteVertexArray(o.res.vao.id)
			released++
		}
		if o.res.vbo.valid {
			rel.DeleteBuffer(o.res.vbo.id)
			released++
		}
		if o.res.ebo.valid {
			rel.DeleteBuffer(o.res.ebo.id)
			released++
		}
		o.res = Resource{}
	}

	if len(r.objects) > 0 {
		r.logger.Info("draw registry cleaned up", "objects", len(r.objects), "handles", released)
	}
	clear(r.objects)
	r.names = r.names[:0]
}
