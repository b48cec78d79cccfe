package frames

import "testing"

func TestNewRingValidation(t *testing.T) {
	if _, err := NewRing(0); err == nil {
		t.Error("expected error for zero tile capacity")
	}
	r, err := NewRing(341)
	if err != nil {
		t.Fatalf("NewRing: %v", err)
	}
	for i := 0; i < SlotCount; i++ {
		s := r.Advance()
		if len(s.Tiles) != 341 {
			t.Errorf("slot %d holds %d tile constants, want 341", s.Index, len(s.Tiles))
		}
	}
}

func TestRingAdvanceCycles(t *testing.T) {
	r, err := NewRing(1)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{0, 1, 2, 0, 1, 2, 0}
	for i, w := range want {
		s := r.Advance()
		if s.Index != w {
			t.Fatalf("advance %d returned slot %d, want %d", i, s.Index, w)
		}
		if r.Current() != s {
			t.Fatalf("Current() does not match the slot Advance returned")
		}
	}
}

func TestRingSlotsAreDistinct(t *testing.T) {
	r, err := NewRing(4)
	if err != nil {
		t.Fatal(err)
	}
	a := r.Advance()
	b := r.Advance()
	a.Tiles[0].Size = 512
	if b.Tiles[0].Size != 0 {
		t.Error("slots share a tile constants array")
	}
	a.Fence = 7
	if b.Fence != 0 {
		t.Error("slots share fence state")
	}
}
