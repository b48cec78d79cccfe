// Package terrain builds the static height-field data the renderer draws:
// a procedural heightmap and a set of shared grid meshes, one per detail
// level.
package terrain

import (
	"fmt"

	"github.com/SettlerNVG/go-terrain/internal/engine/cull"
	"github.com/SettlerNVG/go-terrain/pkg/math"
)

// Config describes the terrain footprint and its heightmap generation.
type Config struct {
	Size      float32 // edge length of the square footprint, centered at origin
	MinHeight float32
	MaxHeight float32

	// Heightmap generation
	Resolution int   // heightmap texels per side
	Seed       int64 // noise seed; same seed, same terrain
	Frequency  float32
	Octaves    int
}

// Terrain is the immutable terrain data set up once at startup.
type Terrain struct {
	cfg     Config
	heights *Heightmap
}

// New generates the terrain from the config.
func New(cfg Config) (*Terrain, error) {
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("terrain: size must be positive, got %v", cfg.Size)
	}
	if cfg.MaxHeight < cfg.MinHeight {
		return nil, fmt.Errorf("terrain: max height %v below min height %v", cfg.MaxHeight, cfg.MinHeight)
	}
	if cfg.Resolution < 2 {
		return nil, fmt.Errorf("terrain: heightmap resolution %d too small", cfg.Resolution)
	}
	if cfg.Octaves < 1 {
		return nil, fmt.Errorf("terrain: need at least one noise octave, got %d", cfg.Octaves)
	}

	return &Terrain{
		cfg:     cfg,
		heights: GenerateHeightmap(cfg.Resolution, cfg.Resolution, cfg.Seed, cfg.Frequency, cfg.Octaves),
	}, nil
}

// Size returns the footprint edge length.
func (t *Terrain) Size() float32 { return t.cfg.Size }

// MinHeight returns the lowest terrain height.
func (t *Terrain) MinHeight() float32 { return t.cfg.MinHeight }

// MaxHeight returns the highest terrain height.
func (t *Terrain) MaxHeight() float32 { return t.cfg.MaxHeight }

// Heightmap returns the generated heightmap.
func (t *Terrain) Heightmap() *Heightmap { return t.heights }

// Bounds returns the whole-terrain bounding box used by the flat policy.
func (t *Terrain) Bounds() cull.AABB {
	half := t.cfg.Size / 2
	return cull.FromMinMax(
		math.Vec3{X: -half, Y: t.cfg.MinHeight, Z: -half},
		math.Vec3{X: half, Y: t.cfg.MaxHeight, Z: half},
	)
}

// HeightAt returns the terrain height at a world position, bilinearly
// interpolated from the heightmap. Positions outside the footprint clamp to
// the nearest edge.
func (t *Terrain) HeightAt(worldX, worldZ float32) float32 {
	half := t.cfg.Size / 2
	u := (worldX + half) / t.cfg.Size
	v := (worldZ + half) / t.cfg.Size
	n := t.heights.Sample(u, v)
	return t.cfg.MinHeight + n*(t.cfg.MaxHeight-t.cfg.MinHeight)
}
