// Package draw keeps a registry of named 2D shapes and renders them with
// one indexed draw call per shape each frame.
//
// Objects are created by name (first writer wins), looked up by name to be
// edited in place, and drawn in ascending name order. Positions and sizes are
// in window pixels with the origin at the top-left corner; the renderer
// converts them to normalized device coordinates every frame.
//
// GPU access goes through the Device interface so the registry and renderer
// carry no cgo dependency. See backend/opengl for the go-gl implementation.
//
// The package is not safe for concurrent use. The registry, renderer and
// device belong to the goroutine that owns the GL context.
package draw
