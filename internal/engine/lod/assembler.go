package lod

import (
	"fmt"
)

// DrawDescriptor is one renderer draw of a terrain tile: where the tile
// sits, which detail mesh to use, and which constant-buffer slot holds its
// per-tile constants.
type DrawDescriptor struct {
	OriginX, OriginZ float32 // minimum-corner world position
	Size             float32
	Level            int
	Slot             int
}

// TileConstants is the per-tile GPU constant block, one array element per
// slot. Level is stored as float so the block matches the shader's vec4
// std140 layout.
type TileConstants struct {
	OriginX, OriginZ float32
	Size             float32
	Level            float32
}

// Assembler turns a frame's selected tiles into an ordered draw list and
// fills the frame slot's constant upload array. Slot assignments come from
// the tree's build-time arena indices, so a tile keeps the same slot on
// every frame it is visible and no two visible tiles ever share one.
type Assembler struct {
	capacity int
	draws    []DrawDescriptor
}

// NewAssembler creates an assembler for a tree with the given node count.
func NewAssembler(capacity int) *Assembler {
	return &Assembler{
		capacity: capacity,
		draws:    make([]DrawDescriptor, 0, capacity),
	}
}

// Capacity returns the number of constant-buffer slots provisioned.
func (a *Assembler) Capacity() int {
	return a.capacity
}

// Assemble builds the draw list for the tree's current visible set and
// writes each tile's constants into tiles at its slot. The visible count
// exceeding capacity cannot happen with a correctly built tree; it is
// reported as an error rather than truncated, since dropping tiles would
// silently hole the terrain. The returned slice is reused across frames.
func (a *Assembler) Assemble(tree *QuadTree, visible []int32, tiles []TileConstants) ([]DrawDescriptor, error) {
	if len(visible) > a.capacity {
		return nil, fmt.Errorf("lod: %d visible tiles exceed %d constant slots", len(visible), a.capacity)
	}
	if len(tiles) < a.capacity {
		return nil, fmt.Errorf("lod: frame slot holds %d tile constants, need %d", len(tiles), a.capacity)
	}

	a.draws = a.draws[:0]
	for _, idx := range visible {
		n := tree.Node(idx)
		half := n.Size / 2
		d := DrawDescriptor{
			OriginX: n.X - half,
			OriginZ: n.Z - half,
			Size:    n.Size,
			Level:   int(n.Level),
			Slot:    int(idx),
		}
		tiles[d.Slot] = TileConstants{
			OriginX: d.OriginX,
			OriginZ: d.OriginZ,
			Size:    d.Size,
			Level:   float32(d.Level),
		}
		a.draws = append(a.draws, d)
	}
	return a.draws, nil
}

// AssembleSingle emits the one whole-terrain draw the flat policy produces,
// always in slot 0.
func (a *Assembler) AssembleSingle(size float32, level int, tiles []TileConstants) ([]DrawDescriptor, error) {
	if a.capacity < 1 || len(tiles) < 1 {
		return nil, fmt.Errorf("lod: no constant slot available for the terrain draw")
	}

	a.draws = a.draws[:0]
	half := size / 2
	d := DrawDescriptor{
		OriginX: -half,
		OriginZ: -half,
		Size:    size,
		Level:   level,
		Slot:    0,
	}
	tiles[0] = TileConstants{
		OriginX: d.OriginX,
		OriginZ: d.OriginZ,
		Size:    d.Size,
		Level:   float32(d.Level),
	}
	a.draws = append(a.draws, d)
	return a.draws, nil
}
