// Package debug provides debug visualization utilities.
package debug

import (
	"github.com/SettlerNVG/go-terrain/internal/engine/lod"
)

// LineVertex is one endpoint of a debug line, position plus color.
type LineVertex struct {
	X, Y, Z float32
	R, G, B float32
}

// BoxWireframeVertexCount is the number of vertices for a box wireframe (12 edges × 2).
const BoxWireframeVertexCount = 24

// levelColors distinguishes detail levels in the overlay, finest first.
var levelColors = [][3]float32{
	{0.9, 0.3, 0.3},
	{0.9, 0.7, 0.3},
	{0.4, 0.8, 0.3},
	{0.3, 0.7, 0.8},
	{0.4, 0.4, 0.9},
	{0.7, 0.4, 0.8},
}

// LevelColor returns the overlay color for a detail level.
func LevelColor(level int) [3]float32 {
	if level < 0 {
		level = 0
	}
	return levelColors[level%len(levelColors)]
}

// AppendBoxWireframe appends 24 line vertices outlining the box between the
// two corners to dst and returns the extended slice.
func AppendBoxWireframe(dst []LineVertex, minX, minY, minZ, maxX, maxY, maxZ float32, color [3]float32) []LineVertex {
	v := func(x, y, z float32) LineVertex {
		return LineVertex{X: x, Y: y, Z: z, R: color[0], G: color[1], B: color[2]}
	}
	return append(dst,
		// Bottom face
		v(minX, minY, minZ), v(maxX, minY, minZ),
		v(maxX, minY, minZ), v(maxX, minY, maxZ),
		v(maxX, minY, maxZ), v(minX, minY, maxZ),
		v(minX, minY, maxZ), v(minX, minY, minZ),
		// Top face
		v(minX, maxY, minZ), v(maxX, maxY, minZ),
		v(maxX, maxY, minZ), v(maxX, maxY, maxZ),
		v(maxX, maxY, maxZ), v(minX, maxY, maxZ),
		v(minX, maxY, maxZ), v(minX, maxY, minZ),
		// Vertical edges
		v(minX, minY, minZ), v(minX, maxY, minZ),
		v(maxX, minY, minZ), v(maxX, maxY, minZ),
		v(maxX, minY, maxZ), v(maxX, maxY, maxZ),
		v(minX, minY, maxZ), v(minX, maxY, maxZ),
	)
}

// BuildTileOutlines returns wireframe boxes for the selected tiles, one box
// per draw, colored by detail level. The boxes span the terrain height range
// so culling decisions are visible from any angle.
func BuildTileOutlines(draws []lod.DrawDescriptor, minHeight, maxHeight float32) []LineVertex {
	vertices := make([]LineVertex, 0, len(draws)*BoxWireframeVertexCount)
	for _, d := range draws {
		vertices = AppendBoxWireframe(vertices,
			d.OriginX, minHeight, d.OriginZ,
			d.OriginX+d.Size, maxHeight, d.OriginZ+d.Size,
			LevelColor(d.Level))
	}
	return vertices
}
