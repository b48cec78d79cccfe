// Package cull implements frustum extraction and bounding-volume visibility tests.
package cull

import (
	gomath "math"

	"github.com/SettlerNVG/go-terrain/pkg/math"
)

// Plane is the plane Ax + By + Cz + D = 0 with a unit-length normal (A, B, C).
// A plane whose normal could not be normalized is left zeroed and treated as
// degenerate: it never rejects anything, so a broken projection over-renders
// instead of culling the whole scene.
type Plane struct {
	A, B, C, D float32
}

// Normalized builds a plane from raw coefficients, dividing by the normal
// magnitude. Returns a degenerate (zero) plane if the magnitude underflows.
func Normalized(a, b, c, d float32) Plane {
	l := float32(gomath.Sqrt(float64(a*a + b*b + c*c)))
	if l < 1e-8 {
		return Plane{}
	}
	return Plane{a / l, b / l, c / l, d / l}
}

// Degenerate reports whether the plane has a zero normal.
func (p Plane) Degenerate() bool {
	return p.A == 0 && p.B == 0 && p.C == 0
}

// DistanceTo returns the signed distance from the point to the plane.
// Positive means the point lies in the half-space the normal points into.
func (p Plane) DistanceTo(v math.Vec3) float32 {
	return p.A*v.X + p.B*v.Y + p.C*v.Z + p.D
}
