// Package shaders holds the built-in GLSL sources for the scene renderer.
package shaders

import _ "embed"

// RectVertex positions NDC vertices at attribute 0 and forwards the
// color at attribute 1.
//
//go:embed rect_vertex.glsl
var RectVertex string

// RectFragment writes the interpolated vertex color.
//
//go:embed rect_fragment.glsl
var RectFragment string
