package debug

import (
	"testing"

	"github.com/SettlerNVG/go-terrain/internal/engine/lod"
)

func TestBuildTileOutlines(t *testing.T) {
	draws := []lod.DrawDescriptor{
		{OriginX: 0, OriginZ: 0, Size: 64, Level: 0, Slot: 1},
		{OriginX: 64, OriginZ: 0, Size: 64, Level: 2, Slot: 2},
	}

	vertices := BuildTileOutlines(draws, 0, 150)
	if len(vertices) != 2*BoxWireframeVertexCount {
		t.Fatalf("got %d vertices, want %d", len(vertices), 2*BoxWireframeVertexCount)
	}

	// Every vertex of a box stays within that tile's bounds.
	for i, v := range vertices[:BoxWireframeVertexCount] {
		if v.X < 0 || v.X > 64 || v.Z < 0 || v.Z > 64 || v.Y < 0 || v.Y > 150 {
			t.Errorf("vertex %d out of tile bounds: %+v", i, v)
		}
	}

	// Boxes carry their level color.
	c0 := LevelColor(0)
	if v := vertices[0]; [3]float32{v.R, v.G, v.B} != c0 {
		t.Errorf("level 0 color = %v, want %v", [3]float32{v.R, v.G, v.B}, c0)
	}
	c2 := LevelColor(2)
	if v := vertices[BoxWireframeVertexCount]; [3]float32{v.R, v.G, v.B} != c2 {
		t.Errorf("level 2 color = %v, want %v", [3]float32{v.R, v.G, v.B}, c2)
	}
}

func TestLevelColorNeverPanics(t *testing.T) {
	for _, level := range []int{-1, 0, 5, 6, 100} {
		c := LevelColor(level)
		if c == [3]float32{} {
			t.Errorf("level %d has zero color", level)
		}
	}
}
