// Package frames implements the per-frame resource ring that lets the CPU
// record one frame while the GPU still consumes the previous ones.
package frames

import (
	"fmt"

	"github.com/SettlerNVG/go-terrain/internal/engine/lod"
)

// SlotCount is the ring depth: the CPU can run at most SlotCount-1 frames
// ahead of the GPU.
const SlotCount = 3

// Slot is one frame's CPU-written, GPU-read resources. Tiles is the per-node
// constant upload array the assembler fills; nothing writes to it between
// that frame's submission and the fence confirming the GPU is done with it.
type Slot struct {
	Index int
	Fence uint64
	Tiles []lod.TileConstants
}

// Ring cycles through SlotCount slots. It is an explicit context handed to
// the frame loop rather than a global: the caller advances it once per
// frame and must wait on the returned slot's fence before writing.
type Ring struct {
	slots   [SlotCount]*Slot
	current int
}

// NewRing creates a ring whose slots each hold tileCapacity constant
// entries (the total node count of the active policy's tree).
func NewRing(tileCapacity int) (*Ring, error) {
	if tileCapacity < 1 {
		return nil, fmt.Errorf("frames: tile capacity must be positive, got %d", tileCapacity)
	}
	r := &Ring{current: SlotCount - 1}
	for i := range r.slots {
		r.slots[i] = &Slot{
			Index: i,
			Tiles: make([]lod.TileConstants, tileCapacity),
		}
	}
	return r, nil
}

// Advance moves to the next slot and returns it. The caller must block on
// the slot's fence (renderer-side) before touching Tiles, since the GPU may
// still be reading the slot's previous contents.
func (r *Ring) Advance() *Slot {
	r.current = (r.current + 1) % SlotCount
	return r.slots[r.current]
}

// Current returns the slot most recently handed out by Advance.
func (r *Ring) Current() *Slot {
	return r.slots[r.current]
}
