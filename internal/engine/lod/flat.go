package lod

import (
	"github.com/SettlerNVG/go-terrain/internal/engine/cull"
	"github.com/SettlerNVG/go-terrain/pkg/math"
)

// Flat is the single-mesh policy: the whole terrain renders at one detail
// level chosen from the camera's distance to the terrain center, and is
// either fully drawn or fully skipped by one bounding-box test.
type Flat struct {
	Bands  *Bands
	Bounds cull.AABB

	// AlwaysDraw skips the visibility test and renders the terrain even
	// when its bounding box is outside the frustum. The original demo drew
	// unconditionally in one code path; both behaviors are kept selectable.
	AlwaysDraw bool
}

// Evaluate returns whether the terrain should be drawn this frame and at
// which detail level. Level is always within [0, Bands.Levels()-1].
func (f *Flat) Evaluate(eye math.Vec3, fr *cull.Frustum) (visible bool, level int) {
	level = f.Bands.Select(eye.Distance(f.Bounds.Center))
	if f.AlwaysDraw || fr == nil {
		return true, level
	}
	return fr.ContainsAABB(f.Bounds), level
}
