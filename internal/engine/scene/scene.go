// Package scene renders the terrain tile set produced by the LOD policies.
package scene

import (
	"fmt"

	"github.com/SettlerNVG/go-terrain/internal/engine/debug"
	"github.com/SettlerNVG/go-terrain/internal/engine/frames"
	"github.com/SettlerNVG/go-terrain/internal/engine/lod"
	"github.com/SettlerNVG/go-terrain/internal/engine/terrain"
	"github.com/SettlerNVG/go-terrain/pkg/math"
)

// Config contains scene configuration options.
type Config struct {
	WaterEnabled bool
	WaterLevel   float32
	TintLevels   bool

	// LightDir is the sun light travel direction; zero keeps the default.
	LightDir math.Vec3
}

// Scene owns the renderers for one terrain and draws a complete frame from
// the visible tile set.
type Scene struct {
	terrain *terrain.Terrain

	terrainRenderer *TerrainRenderer
	waterRenderer   *WaterRenderer
	lineRenderer    *LineRenderer

	// ShowTileBounds overlays a wireframe box per selected tile.
	ShowTileBounds bool
}

// New creates a scene for the given terrain.
func New(t *terrain.Terrain, mesh *terrain.GridMesh, cfg Config) (*Scene, error) {
	s := &Scene{terrain: t}

	tr, err := NewTerrainRenderer(t, mesh)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	tr.TintLevels = cfg.TintLevels
	if cfg.LightDir != (math.Vec3{}) {
		tr.LightDir = cfg.LightDir
	}
	s.terrainRenderer = tr

	wr, err := NewWaterRenderer()
	if err != nil {
		s.Destroy()
		return nil, fmt.Errorf("scene: %w", err)
	}
	if cfg.WaterEnabled {
		wr.SetupWater(cfg.WaterLevel, t.Size())
	}
	s.waterRenderer = wr

	lr, err := NewLineRenderer()
	if err != nil {
		s.Destroy()
		return nil, fmt.Errorf("scene: %w", err)
	}
	s.lineRenderer = lr

	return s, nil
}

// Update advances time-driven effects.
func (s *Scene) Update(dt float32) {
	s.waterRenderer.Update(dt)
}

// UploadTiles writes the slot's tile constants to the GPU. Call after the
// slot's fence has been waited on and before Render for the same slot.
func (s *Scene) UploadTiles(slot *frames.Slot) error {
	return s.terrainRenderer.UploadTiles(slot)
}

// Render draws terrain, water, and the optional tile-bounds overlay.
func (s *Scene) Render(viewProj math.Mat4, draws []lod.DrawDescriptor, slotIndex int) {
	s.terrainRenderer.Render(viewProj, draws, slotIndex)
	s.waterRenderer.Render(viewProj)

	if s.ShowTileBounds {
		s.lineRenderer.SetLines(debug.BuildTileOutlines(draws, s.terrain.MinHeight(), s.terrain.MaxHeight()))
		s.lineRenderer.Render(viewProj)
	}
}

// SetTintLevels switches per-level tile coloring.
func (s *Scene) SetTintLevels(enabled bool) {
	s.terrainRenderer.TintLevels = enabled
}

// TintLevels reports whether per-level coloring is active.
func (s *Scene) TintLevels() bool {
	return s.terrainRenderer.TintLevels
}

// Destroy releases all GL resources.
func (s *Scene) Destroy() {
	if s.terrainRenderer != nil {
		s.terrainRenderer.Destroy()
		s.terrainRenderer = nil
	}
	if s.waterRenderer != nil {
		s.waterRenderer.Destroy()
		s.waterRenderer = nil
	}
	if s.lineRenderer != nil {
		s.lineRenderer.Destroy()
		s.lineRenderer = nil
	}
}
