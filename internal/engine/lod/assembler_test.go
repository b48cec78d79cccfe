package lod

import (
	"testing"

	"github.com/SettlerNVG/go-terrain/internal/engine/cull"
	"github.com/SettlerNVG/go-terrain/pkg/math"
)

func TestAssembleWritesSlotConstants(t *testing.T) {
	tree := testTree(t, flatTreeConfig())
	asm := NewAssembler(tree.NodeCount())
	tiles := make([]TileConstants, tree.NodeCount())

	visible := tree.Update(math.Vec3{Y: 199}, nil)
	draws, err := asm.Assemble(tree, visible, tiles)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if len(draws) != len(visible) {
		t.Fatalf("draws = %d, want %d", len(draws), len(visible))
	}

	for _, d := range draws {
		n := tree.Node(int32(d.Slot))
		if d.OriginX != n.X-n.Size/2 || d.OriginZ != n.Z-n.Size/2 {
			t.Errorf("slot %d origin (%v,%v) does not match node center (%v,%v)",
				d.Slot, d.OriginX, d.OriginZ, n.X, n.Z)
		}
		if d.Level != int(n.Level) {
			t.Errorf("slot %d level %d, want %d", d.Slot, d.Level, n.Level)
		}

		tc := tiles[d.Slot]
		if tc.OriginX != d.OriginX || tc.OriginZ != d.OriginZ || tc.Size != d.Size || tc.Level != float32(d.Level) {
			t.Errorf("slot %d constants %+v do not match descriptor %+v", d.Slot, tc, d)
		}
	}
}

func TestAssembleSlotsStableAcrossFrames(t *testing.T) {
	tree := testTree(t, flatTreeConfig())
	asm := NewAssembler(tree.NodeCount())
	tiles := make([]TileConstants, tree.NodeCount())

	first := map[int]DrawDescriptor{}
	draws, err := asm.Assemble(tree, tree.Update(math.Vec3{Y: 199}, nil), tiles)
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range draws {
		first[d.Slot] = d
	}

	// Move the camera and come back; revisited tiles keep their slots.
	if _, err := asm.Assemble(tree, tree.Update(math.Vec3{Z: 5000}, nil), tiles); err != nil {
		t.Fatal(err)
	}
	draws, err = asm.Assemble(tree, tree.Update(math.Vec3{Y: 199}, nil), tiles)
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range draws {
		prev, ok := first[d.Slot]
		if !ok {
			t.Errorf("slot %d appeared that was not used on the first frame", d.Slot)
			continue
		}
		if prev != d {
			t.Errorf("slot %d changed between frames: %+v vs %+v", d.Slot, prev, d)
		}
	}
}

func TestAssembleOverflowIsAnError(t *testing.T) {
	tree := testTree(t, flatTreeConfig())
	asm := NewAssembler(2)
	tiles := make([]TileConstants, 2)

	visible := tree.Update(math.Vec3{Y: 199}, nil) // 4 tiles
	if _, err := asm.Assemble(tree, visible, tiles); err == nil {
		t.Error("expected capacity overflow error, got nil")
	}
}

func TestAssembleSingle(t *testing.T) {
	asm := NewAssembler(1)
	tiles := make([]TileConstants, 1)

	draws, err := asm.AssembleSingle(512, 3, tiles)
	if err != nil {
		t.Fatalf("AssembleSingle: %v", err)
	}
	if len(draws) != 1 {
		t.Fatalf("draws = %d, want 1", len(draws))
	}
	d := draws[0]
	if d.Slot != 0 || d.OriginX != -256 || d.OriginZ != -256 || d.Size != 512 || d.Level != 3 {
		t.Errorf("descriptor = %+v", d)
	}
	if tiles[0].Size != 512 || tiles[0].Level != 3 {
		t.Errorf("tile constants = %+v", tiles[0])
	}
}

func TestFlatPolicy(t *testing.T) {
	bands, err := NewBands([]float32{150, 300, 500, 800})
	if err != nil {
		t.Fatal(err)
	}
	bounds := cull.FromMinMax(math.Vec3{X: -256, Z: -256}, math.Vec3{X: 256, Y: 150, Z: 256})
	flat := &Flat{Bands: bands, Bounds: bounds}

	// Behind-the-terrain camera looking away: culled unless AlwaysDraw.
	eye := math.Vec3{Z: 2000}
	proj := math.Perspective(1.0, 1.0, 1, 3000)
	view := math.LookAt(eye, math.Vec3{Z: 4000}, math.Vec3{Y: 1})
	fr := cull.ExtractFrustum(proj.Mul(view))

	visible, level := flat.Evaluate(eye, &fr)
	if visible {
		t.Error("terrain behind the camera reported visible")
	}
	if level != bands.Levels()-1 {
		t.Errorf("level = %d, want coarsest %d", level, bands.Levels()-1)
	}

	flat.AlwaysDraw = true
	if visible, _ = flat.Evaluate(eye, &fr); !visible {
		t.Error("AlwaysDraw did not force the terrain visible")
	}

	// Close camera in front: finest level.
	flat.AlwaysDraw = false
	neye := math.Vec3{Y: 100, Z: 300}
	nview := math.LookAt(neye, math.Vec3{}, math.Vec3{Y: 1})
	nfr := cull.ExtractFrustum(proj.Mul(nview))
	visible, level = flat.Evaluate(math.Vec3{Y: 75}, &nfr)
	if !visible || level != 0 {
		t.Errorf("visible=%v level=%d, want visible at level 0", visible, level)
	}
}
