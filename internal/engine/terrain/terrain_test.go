package terrain

import (
	"testing"

	"github.com/SettlerNVG/go-terrain/pkg/math"
)

func testConfig() Config {
	return Config{
		Size:       512,
		MinHeight:  0,
		MaxHeight:  150,
		Resolution: 64,
		Seed:       42,
		Frequency:  4,
		Octaves:    6,
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero size", func(c *Config) { c.Size = 0 }},
		{"inverted heights", func(c *Config) { c.MinHeight = 10; c.MaxHeight = 0 }},
		{"tiny resolution", func(c *Config) { c.Resolution = 1 }},
		{"zero octaves", func(c *Config) { c.Octaves = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			if _, err := New(cfg); err == nil {
				t.Error("expected config error, got nil")
			}
		})
	}
}

func TestHeightmapDeterministic(t *testing.T) {
	a := GenerateHeightmap(32, 32, 7, 4, 4)
	b := GenerateHeightmap(32, 32, 7, 4, 4)
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			t.Fatalf("same seed produced different heightmaps at texel %d", i)
		}
	}

	c := GenerateHeightmap(32, 32, 8, 4, 4)
	same := true
	for i := range a.Data {
		if a.Data[i] != c.Data[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical heightmaps")
	}
}

func TestHeightmapSpansUnitRange(t *testing.T) {
	hm := GenerateHeightmap(64, 64, 42, 4, 6)
	lo, hi := float32(1), float32(0)
	for _, h := range hm.Data {
		if h < 0 || h > 1 {
			t.Fatalf("height %v outside [0,1]", h)
		}
		if h < lo {
			lo = h
		}
		if h > hi {
			hi = h
		}
	}
	if lo != 0 || hi != 1 {
		t.Errorf("heights span [%v,%v], want [0,1] after rescale", lo, hi)
	}
}

func TestHeightmapSampleInterpolates(t *testing.T) {
	hm := &Heightmap{
		Data:   []float32{0, 1, 0, 1},
		Width:  2,
		Height: 2,
	}
	if got := hm.Sample(0, 0); got != 0 {
		t.Errorf("Sample(0,0) = %v, want 0", got)
	}
	if got := hm.Sample(1, 0); got != 1 {
		t.Errorf("Sample(1,0) = %v, want 1", got)
	}
	if got := hm.Sample(0.5, 0.5); got != 0.5 {
		t.Errorf("Sample(0.5,0.5) = %v, want 0.5", got)
	}
	// Clamped outside the grid
	if got := hm.Sample(-1, 0); got != 0 {
		t.Errorf("Sample(-1,0) = %v, want 0", got)
	}
}

func TestTerrainBoundsAndHeightRange(t *testing.T) {
	tr, err := New(testConfig())
	if err != nil {
		t.Fatal(err)
	}

	b := tr.Bounds()
	if b.Center != (math.Vec3{Y: 75}) {
		t.Errorf("bounds center = %v", b.Center)
	}
	if b.Extents != (math.Vec3{X: 256, Y: 75, Z: 256}) {
		t.Errorf("bounds extents = %v", b.Extents)
	}

	for _, p := range [][2]float32{{0, 0}, {-256, -256}, {255, -100}, {300, 300}} {
		h := tr.HeightAt(p[0], p[1])
		if h < tr.MinHeight() || h > tr.MaxHeight() {
			t.Errorf("HeightAt(%v,%v) = %v outside [%v,%v]", p[0], p[1], h, tr.MinHeight(), tr.MaxHeight())
		}
	}
}

func TestBuildGridMeshLevels(t *testing.T) {
	m := BuildGridMesh(5, 64)
	if len(m.Levels) != 5 {
		t.Fatalf("levels = %d, want 5", len(m.Levels))
	}

	res := 64
	for l, r := range m.Levels {
		wantCount := uint32(res * res * 6)
		if r.Count != wantCount {
			t.Errorf("level %d index count = %d, want %d", l, r.Count, wantCount)
		}
		if res > 1 {
			res /= 2
		}
	}

	// Ranges are contiguous and cover the whole index buffer.
	var next uint32
	for l, r := range m.Levels {
		if r.First != next {
			t.Errorf("level %d starts at %d, want %d", l, r.First, next)
		}
		next = r.First + r.Count
	}
	if next != uint32(len(m.Indices)) {
		t.Errorf("ranges cover %d indices, buffer has %d", next, len(m.Indices))
	}
}

func TestBuildGridMeshGeometry(t *testing.T) {
	m := BuildGridMesh(1, 2)

	// 3x3 vertices, all inside the unit tile.
	if len(m.Vertices) != 9*2 {
		t.Fatalf("vertex floats = %d, want 18", len(m.Vertices))
	}
	for i := 0; i < len(m.Vertices); i++ {
		if m.Vertices[i] < 0 || m.Vertices[i] > 1 {
			t.Fatalf("vertex coordinate %v outside unit tile", m.Vertices[i])
		}
	}

	vertCount := uint32(len(m.Vertices) / 2)
	for _, idx := range m.Indices {
		if idx >= vertCount {
			t.Fatalf("index %d out of range (%d vertices)", idx, vertCount)
		}
	}
}

func TestBuildGridMeshCoarsestStopsAtOneQuad(t *testing.T) {
	m := BuildGridMesh(4, 4) // resolutions 4, 2, 1, 1
	want := []uint32{4 * 4 * 6, 2 * 2 * 6, 6, 6}
	for l, r := range m.Levels {
		if r.Count != want[l] {
			t.Errorf("level %d count = %d, want %d", l, r.Count, want[l])
		}
	}
}
