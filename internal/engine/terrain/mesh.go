package terrain

// GridMesh holds every detail level's grid in one shared vertex/index
// buffer. Vertices are 2D positions on the unit tile [0,1]x[0,1]; the
// vertex shader places them in the world using the tile's origin and size
// and lifts them by the heightmap, so one set of grids serves every tile.
type GridMesh struct {
	Vertices []float32 // x, z pairs
	Indices  []uint32
	Levels   []IndexRange // one draw range per detail level, 0 = finest
}

// IndexRange addresses one level's triangles within the shared index buffer.
type IndexRange struct {
	First uint32
	Count uint32
}

// BuildGridMesh builds levels grids. Level 0 has baseResolution quads per
// side; each coarser level halves the resolution, stopping at one quad.
func BuildGridMesh(levels, baseResolution int) *GridMesh {
	if levels < 1 {
		levels = 1
	}
	if baseResolution < 1 {
		baseResolution = 1
	}

	m := &GridMesh{Levels: make([]IndexRange, 0, levels)}
	res := baseResolution
	for l := 0; l < levels; l++ {
		m.appendGrid(res)
		if res > 1 {
			res /= 2
		}
	}
	return m
}

// appendGrid adds an res x res quad grid and records its index range.
func (m *GridMesh) appendGrid(res int) {
	base := uint32(len(m.Vertices) / 2)
	first := uint32(len(m.Indices))

	verts := res + 1
	for z := 0; z <= res; z++ {
		for x := 0; x <= res; x++ {
			m.Vertices = append(m.Vertices,
				float32(x)/float32(res),
				float32(z)/float32(res),
			)
		}
	}

	for z := 0; z < res; z++ {
		for x := 0; x < res; x++ {
			i0 := base + uint32(z*verts+x)
			i1 := i0 + 1
			i2 := i0 + uint32(verts)
			i3 := i2 + 1
			m.Indices = append(m.Indices,
				i0, i2, i1,
				i1, i2, i3,
			)
		}
	}

	m.Levels = append(m.Levels, IndexRange{
		First: first,
		Count: uint32(len(m.Indices)) - first,
	})
}
