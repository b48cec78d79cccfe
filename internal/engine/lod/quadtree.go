package lod

import (
	"fmt"

	"github.com/SettlerNVG/go-terrain/internal/engine/cull"
	"github.com/SettlerNVG/go-terrain/pkg/math"
)

// noChild marks an empty child slot in a Node.
const noChild int32 = -1

// Node is one square tile of the terrain quadtree. Nodes live in a flat
// arena and reference their children by arena index; the arena index also
// serves as the node's stable per-frame constant-buffer slot, so it never
// changes after the tree is built.
type Node struct {
	X, Z     float32 // world-space tile center
	Size     float32 // edge length
	Level    int32   // depth, 0 = root (coarsest)
	Children [4]int32
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Children[0] == noChild
}

// TreeConfig describes the static terrain footprint the tree is built over.
type TreeConfig struct {
	Size        float32 // footprint edge length, centered at the origin
	MinTileSize float32 // smallest allowed tile edge
	MaxLevels   int     // depth bound; levels 0..MaxLevels-1
	MinHeight   float32
	MaxHeight   float32

	// SubdivideDistances[d] is the camera distance below which a node at
	// depth d splits into its children. One entry per level; the last entry
	// only matters when MaxLevels is raised later, since bottom-level nodes
	// never split. Entries should shrink with depth (finer detail demands a
	// closer camera).
	SubdivideDistances []float32
}

// QuadTree is the hierarchical LOD policy. The node arena is built once and
// never mutated; per-frame state is limited to the visible-leaf index list
// rebuilt by Update.
type QuadTree struct {
	nodes  []Node
	levels int

	midHeight    float32
	heightExtent float32
	distances    []float32

	visible []int32
	culled  int
}

// NewQuadTree eagerly builds the full node hierarchy. The effective leaf
// tile size is the footprint halved as many times as it takes to reach
// MinTileSize; a MinTileSize that does not divide the footprint evenly is
// clamped down to the next exact halving so subdivision always terminates.
func NewQuadTree(cfg TreeConfig) (*QuadTree, error) {
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("lod: terrain size must be positive, got %v", cfg.Size)
	}
	if cfg.MinTileSize <= 0 {
		return nil, fmt.Errorf("lod: min tile size must be positive, got %v", cfg.MinTileSize)
	}
	if cfg.MaxLevels < 1 {
		return nil, fmt.Errorf("lod: need at least one level, got %d", cfg.MaxLevels)
	}
	if cfg.MaxHeight < cfg.MinHeight {
		return nil, fmt.Errorf("lod: max height %v below min height %v", cfg.MaxHeight, cfg.MinHeight)
	}

	levels := 1
	for size := cfg.Size; size > cfg.MinTileSize && levels < cfg.MaxLevels; size /= 2 {
		levels++
	}

	if len(cfg.SubdivideDistances) < levels {
		return nil, fmt.Errorf("lod: need %d subdivide distances, got %d", levels, len(cfg.SubdivideDistances))
	}

	// 1 + 4 + 16 + ... nodes over all levels.
	total := 0
	for l, c := 0, 1; l < levels; l, c = l+1, c*4 {
		total += c
	}

	t := &QuadTree{
		nodes:        make([]Node, 0, total),
		levels:       levels,
		midHeight:    (cfg.MinHeight + cfg.MaxHeight) / 2,
		heightExtent: (cfg.MaxHeight - cfg.MinHeight) / 2,
		distances:    append([]float32(nil), cfg.SubdivideDistances[:levels]...),
		visible:      make([]int32, 0, total),
	}
	t.build(0, 0, cfg.Size, 0)
	return t, nil
}

// build appends the node and, below the bottom level, its four quadrant
// children. Returns the node's arena index.
func (t *QuadTree) build(x, z, size float32, level int32) int32 {
	idx := int32(len(t.nodes))
	t.nodes = append(t.nodes, Node{
		X: x, Z: z, Size: size, Level: level,
		Children: [4]int32{noChild, noChild, noChild, noChild},
	})

	if int(level)+1 < t.levels {
		q := size / 4
		half := size / 2
		t.nodes[idx].Children[0] = t.build(x-q, z-q, half, level+1)
		t.nodes[idx].Children[1] = t.build(x+q, z-q, half, level+1)
		t.nodes[idx].Children[2] = t.build(x-q, z+q, half, level+1)
		t.nodes[idx].Children[3] = t.build(x+q, z+q, half, level+1)
	}
	return idx
}

// NodeCount returns the arena size, which is also the constant-buffer slot
// capacity the renderer must provision.
func (t *QuadTree) NodeCount() int {
	return len(t.nodes)
}

// Levels returns the number of depth levels in the tree.
func (t *QuadTree) Levels() int {
	return t.levels
}

// Node returns the arena node at the given index.
func (t *QuadTree) Node(i int32) *Node {
	return &t.nodes[i]
}

// CulledCount returns how many subtrees the last Update pruned.
func (t *QuadTree) CulledCount() int {
	return t.culled
}

// bounds returns the node's world-space cull volume. The vertical span
// always covers the terrain's full height range since tiles do not track
// per-tile height bounds.
func (t *QuadTree) bounds(n *Node) cull.AABB {
	half := n.Size / 2
	return cull.AABB{
		Center:  math.Vec3{X: n.X, Y: t.midHeight, Z: n.Z},
		Extents: math.Vec3{X: half, Y: t.heightExtent, Z: half},
	}
}

// Update re-selects visible leaf tiles for this frame, walking depth-first
// from the root. A nil frustum disables culling (used by debug views and
// tests). The returned slice of arena indices is reused across frames; it
// is valid until the next Update call.
func (t *QuadTree) Update(eye math.Vec3, fr *cull.Frustum) []int32 {
	t.visible = t.visible[:0]
	t.culled = 0
	if len(t.nodes) > 0 {
		t.walk(0, eye, fr)
	}
	return t.visible
}

func (t *QuadTree) walk(idx int32, eye math.Vec3, fr *cull.Frustum) {
	n := &t.nodes[idx]

	if fr != nil && !fr.ContainsAABB(t.bounds(n)) {
		t.culled++
		return
	}

	// Full 3D distance so an elevated camera sees coarser tiles.
	dist := eye.Distance(math.Vec3{X: n.X, Y: t.midHeight, Z: n.Z})

	// Stop at this depth when the camera is at or beyond the subdivide
	// distance (strict < keeps threshold ties on the coarser side), or when
	// there is nothing finer.
	if n.IsLeaf() || dist >= t.distances[n.Level] {
		t.visible = append(t.visible, idx)
		return
	}

	for _, c := range n.Children {
		t.walk(c, eye, fr)
	}
}
