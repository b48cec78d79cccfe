// Package lod selects terrain detail levels per frame. Two policies exist:
// a flat policy that picks one level for the whole terrain mesh (Flat), and
// a hierarchical quadtree policy that picks a level per tile (QuadTree).
package lod

import "fmt"

// Bands maps a viewer distance to one of N discrete detail levels using
// N-1 ascending distance thresholds. Level 0 is the finest.
type Bands struct {
	thresholds []float32
}

// NewBands creates a band table from ascending thresholds. len(thresholds)+1
// detail levels result.
func NewBands(thresholds []float32) (*Bands, error) {
	if len(thresholds) == 0 {
		return nil, fmt.Errorf("lod: band table needs at least one threshold")
	}
	for i, d := range thresholds {
		if d < 0 {
			return nil, fmt.Errorf("lod: negative threshold %v at index %d", d, i)
		}
		if i > 0 && d <= thresholds[i-1] {
			return nil, fmt.Errorf("lod: thresholds not ascending at index %d (%v <= %v)", i, d, thresholds[i-1])
		}
	}
	out := make([]float32, len(thresholds))
	copy(out, thresholds)
	return &Bands{thresholds: out}, nil
}

// Levels returns the number of detail levels.
func (b *Bands) Levels() int {
	return len(b.thresholds) + 1
}

// Select returns the smallest level i with distance < thresholds[i], or the
// coarsest level when every threshold is exceeded. A distance exactly on a
// threshold falls into the coarser band (strict less-than).
func (b *Bands) Select(distance float32) int {
	for i, d := range b.thresholds {
		if distance < d {
			return i
		}
	}
	return len(b.thresholds)
}
