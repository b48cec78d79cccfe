package cull

import (
	"github.com/SettlerNVG/go-terrain/pkg/math"
)

// Plane indices within a Frustum.
const (
	PlaneLeft = iota
	PlaneRight
	PlaneBottom
	PlaneTop
	PlaneNear
	PlaneFar
)

// Frustum is the six inward-facing planes of a view volume.
type Frustum [6]Plane

// ExtractFrustum derives the six planes from a combined view-projection
// matrix using the Gribb/Hartmann row combinations. The matrix follows the
// OpenGL column-vector convention (clip = M * world), so each plane is a
// combination of the matrix rows; the near plane uses row4 + row3 because
// GL clip depth spans [-w, w].
func ExtractFrustum(viewProj math.Mat4) Frustum {
	r0 := viewProj.Row(0)
	r1 := viewProj.Row(1)
	r2 := viewProj.Row(2)
	r3 := viewProj.Row(3)

	var f Frustum
	f[PlaneLeft] = Normalized(r3[0]+r0[0], r3[1]+r0[1], r3[2]+r0[2], r3[3]+r0[3])
	f[PlaneRight] = Normalized(r3[0]-r0[0], r3[1]-r0[1], r3[2]-r0[2], r3[3]-r0[3])
	f[PlaneBottom] = Normalized(r3[0]+r1[0], r3[1]+r1[1], r3[2]+r1[2], r3[3]+r1[3])
	f[PlaneTop] = Normalized(r3[0]-r1[0], r3[1]-r1[1], r3[2]-r1[2], r3[3]-r1[3])
	f[PlaneNear] = Normalized(r3[0]+r2[0], r3[1]+r2[1], r3[2]+r2[2], r3[3]+r2[3])
	f[PlaneFar] = Normalized(r3[0]-r2[0], r3[1]-r2[1], r3[2]-r2[2], r3[3]-r2[3])
	return f
}

// ContainsAABB reports whether the box is at least partially inside the
// frustum. For each plane the box vertex farthest along the plane normal is
// tested; if that vertex is behind any plane the whole box is outside and
// the test short-circuits. The test is conservative: a box near a frustum
// corner can pass all six plane tests while being outside, which only costs
// a wasted draw, never a missing one. Degenerate planes are skipped.
func (f *Frustum) ContainsAABB(box AABB) bool {
	for i := range f {
		p := f[i]
		if p.Degenerate() {
			continue
		}

		// Positive vertex: per axis, the extent that lies farthest in the
		// direction of the plane normal.
		v := box.Center
		if p.A >= 0 {
			v.X += box.Extents.X
		} else {
			v.X -= box.Extents.X
		}
		if p.B >= 0 {
			v.Y += box.Extents.Y
		} else {
			v.Y -= box.Extents.Y
		}
		if p.C >= 0 {
			v.Z += box.Extents.Z
		} else {
			v.Z -= box.Extents.Z
		}

		if p.DistanceTo(v) < 0 {
			return false
		}
	}
	return true
}
