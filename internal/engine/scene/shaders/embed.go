// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// TerrainVertexShader is the vertex shader for terrain tile rendering.
//
//go:embed terrain.vert
var TerrainVertexShader string

// TerrainFragmentShader is the fragment shader for terrain tile rendering.
//
//go:embed terrain.frag
var TerrainFragmentShader string

// WaterVertexShader is the vertex shader for the water plane.
//
//go:embed water.vert
var WaterVertexShader string

// WaterFragmentShader is the fragment shader for the water plane.
//
//go:embed water.frag
var WaterFragmentShader string

// LineVertexShader is the vertex shader for debug line rendering.
//
//go:embed lines.vert
var LineVertexShader string

// LineFragmentShader is the fragment shader for debug line rendering.
//
//go:embed lines.frag
var LineFragmentShader string
