// Package picking provides ray casting against the terrain.
package picking

import (
	gomath "math"

	"github.com/SettlerNVG/go-terrain/internal/engine/cull"
	"github.com/SettlerNVG/go-terrain/pkg/math"
)

// Ray is a world-space ray with a normalized direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// ScreenToRay converts a pixel position to a world-space ray through the
// camera. forward, right, and up are the camera's orthonormal basis; fovY is
// the vertical field of view in radians.
func ScreenToRay(screenX, screenY, viewportW, viewportH, fovY float32, eye, forward, right, up math.Vec3) Ray {
	// Normalized device coords, Y up.
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH

	halfH := float32(gomath.Tan(float64(fovY) / 2))
	halfW := halfH * viewportW / viewportH

	dir := forward.
		Add(right.Scale(ndcX * halfW)).
		Add(up.Scale(ndcY * halfH)).
		Normalize()

	return Ray{Origin: eye, Direction: dir}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectPlaneY intersects the ray with a horizontal plane at the given Y
// level and reports whether a forward intersection exists.
func (r Ray) IntersectPlaneY(planeY float32) (x, z float32, ok bool) {
	if gomath.Abs(float64(r.Direction.Y)) < 0.001 {
		return 0, 0, false // Ray parallel to plane
	}

	t := (planeY - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return 0, 0, false // Intersection behind ray origin
	}

	p := r.At(t)
	return p.X, p.Z, true
}

// IntersectAABB tests intersection with an axis-aligned bounding box.
// Returns the entry distance, or the exit distance when the ray starts
// inside the box.
func (r Ray) IntersectAABB(box cull.AABB) (t float32, hit bool) {
	min := box.Min()
	max := box.Max()
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	slab := func(origin, dir, lo, hi float32) bool {
		if dir != 0 {
			t1 := (lo - origin) / dir
			t2 := (hi - origin) / dir
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			if t1 > tmin {
				tmin = t1
			}
			if t2 < tmax {
				tmax = t2
			}
			return true
		}
		return origin >= lo && origin <= hi
	}

	if !slab(r.Origin.X, r.Direction.X, min.X, max.X) ||
		!slab(r.Origin.Y, r.Direction.Y, min.Y, max.Y) ||
		!slab(r.Origin.Z, r.Direction.Z, min.Z, max.Z) {
		return 0, false
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// MarchHeight walks the ray against a height field and returns the first
// point below the surface, refined by bisection. heightAt returns the
// surface Y at a world XZ position.
func (r Ray) MarchHeight(heightAt func(x, z float32) float32, maxDist, step float32) (math.Vec3, bool) {
	if step <= 0 || maxDist <= 0 {
		return math.Vec3{}, false
	}

	prev := float32(0)
	for t := step; t <= maxDist; t += step {
		p := r.At(t)
		if p.Y <= heightAt(p.X, p.Z) {
			// Bisect between the last point above and this one below.
			lo, hi := prev, t
			for i := 0; i < 16; i++ {
				mid := (lo + hi) / 2
				q := r.At(mid)
				if q.Y <= heightAt(q.X, q.Z) {
					hi = mid
				} else {
					lo = mid
				}
			}
			return r.At(hi), true
		}
		prev = t
	}
	return math.Vec3{}, false
}
