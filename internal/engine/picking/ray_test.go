package picking

import (
	gomath "math"
	"testing"

	"github.com/SettlerNVG/go-terrain/internal/engine/cull"
	"github.com/SettlerNVG/go-terrain/pkg/math"
)

func TestScreenToRayCenter(t *testing.T) {
	eye := math.Vec3{Y: 100}
	forward := math.Vec3{Z: -1}
	right := math.Vec3{X: 1}
	up := math.Vec3{Y: 1}

	r := ScreenToRay(640, 360, 1280, 720, 0.785398, eye, forward, right, up)

	if r.Origin != eye {
		t.Errorf("origin = %v, want %v", r.Origin, eye)
	}
	// The center pixel looks straight along the view direction.
	if gomath.Abs(float64(r.Direction.Z+1)) > 1e-4 ||
		gomath.Abs(float64(r.Direction.X)) > 1e-4 ||
		gomath.Abs(float64(r.Direction.Y)) > 1e-4 {
		t.Errorf("center ray direction = %v, want (0,0,-1)", r.Direction)
	}
}

func TestScreenToRayCorners(t *testing.T) {
	eye := math.Vec3{}
	forward := math.Vec3{Z: -1}
	right := math.Vec3{X: 1}
	up := math.Vec3{Y: 1}

	left := ScreenToRay(0, 360, 1280, 720, 0.785398, eye, forward, right, up)
	if left.Direction.X >= 0 {
		t.Errorf("left edge ray should point left, got %v", left.Direction)
	}
	top := ScreenToRay(640, 0, 1280, 720, 0.785398, eye, forward, right, up)
	if top.Direction.Y <= 0 {
		t.Errorf("top edge ray should point up, got %v", top.Direction)
	}
}

func TestIntersectPlaneY(t *testing.T) {
	r := Ray{Origin: math.Vec3{Y: 100}, Direction: math.Vec3{Y: -1}}
	x, z, ok := r.IntersectPlaneY(0)
	if !ok || x != 0 || z != 0 {
		t.Errorf("straight-down ray should hit origin, got (%v,%v,%v)", x, z, ok)
	}

	// Ray pointing away never hits.
	r = Ray{Origin: math.Vec3{Y: 100}, Direction: math.Vec3{Y: 1}}
	if _, _, ok := r.IntersectPlaneY(0); ok {
		t.Error("upward ray should miss a plane below")
	}

	// Parallel ray never hits.
	r = Ray{Origin: math.Vec3{Y: 100}, Direction: math.Vec3{X: 1}}
	if _, _, ok := r.IntersectPlaneY(0); ok {
		t.Error("horizontal ray should miss")
	}
}

func TestIntersectAABB(t *testing.T) {
	box := cull.AABB{Center: math.Vec3{}, Extents: math.Vec3{X: 10, Y: 10, Z: 10}}

	r := Ray{Origin: math.Vec3{Z: 100}, Direction: math.Vec3{Z: -1}}
	tHit, hit := r.IntersectAABB(box)
	if !hit {
		t.Fatal("ray toward box should hit")
	}
	if gomath.Abs(float64(tHit-90)) > 1e-3 {
		t.Errorf("entry distance = %v, want 90", tHit)
	}

	r = Ray{Origin: math.Vec3{Z: 100}, Direction: math.Vec3{Z: 1}}
	if _, hit := r.IntersectAABB(box); hit {
		t.Error("ray away from box should miss")
	}

	// Starting inside returns the exit distance.
	r = Ray{Origin: math.Vec3{}, Direction: math.Vec3{Z: 1}}
	tHit, hit = r.IntersectAABB(box)
	if !hit || gomath.Abs(float64(tHit-10)) > 1e-3 {
		t.Errorf("inside ray exit = (%v,%v), want (10,true)", tHit, hit)
	}
}

func TestMarchHeightFlat(t *testing.T) {
	flat := func(x, z float32) float32 { return 50 }

	r := Ray{Origin: math.Vec3{Y: 100}, Direction: math.Vec3{Y: -1}}
	p, hit := r.MarchHeight(flat, 1000, 4)
	if !hit {
		t.Fatal("downward ray should hit the surface")
	}
	if gomath.Abs(float64(p.Y-50)) > 0.5 {
		t.Errorf("hit Y = %v, want ~50", p.Y)
	}

	// A ray above and parallel to the surface never hits.
	r = Ray{Origin: math.Vec3{Y: 100}, Direction: math.Vec3{X: 1}}
	if _, hit := r.MarchHeight(flat, 1000, 4); hit {
		t.Error("parallel ray above the surface should miss")
	}
}
