package cull

import (
	"github.com/SettlerNVG/go-terrain/pkg/math"
)

// AABB is an axis-aligned box described by its center and half-widths.
// Extents components are never negative.
type AABB struct {
	Center  math.Vec3
	Extents math.Vec3
}

// FromMinMax builds an AABB from opposite corners.
func FromMinMax(min, max math.Vec3) AABB {
	return AABB{
		Center:  min.Add(max).Scale(0.5),
		Extents: max.Sub(min).Scale(0.5),
	}
}

// Min returns the minimum corner.
func (b AABB) Min() math.Vec3 {
	return b.Center.Sub(b.Extents)
}

// Max returns the maximum corner.
func (b AABB) Max() math.Vec3 {
	return b.Center.Add(b.Extents)
}
