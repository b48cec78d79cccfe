package terrain

import gomath "math"

// Heightmap is a square grid of normalized heights in [0, 1].
type Heightmap struct {
	Data   []float32 // row-major, Width*Height entries
	Width  int
	Height int
}

// GenerateHeightmap produces a deterministic fractal heightmap from seeded
// value noise: octaves of hash-based lattice noise summed with halving
// amplitude and doubling frequency, then rescaled to span [0, 1] exactly.
func GenerateHeightmap(width, height int, seed int64, frequency float32, octaves int) *Heightmap {
	hm := &Heightmap{
		Data:   make([]float32, width*height),
		Width:  width,
		Height: height,
	}

	lo := float32(gomath.Inf(1))
	hi := float32(gomath.Inf(-1))
	for z := 0; z < height; z++ {
		for x := 0; x < width; x++ {
			u := float32(x) / float32(width-1)
			v := float32(z) / float32(height-1)
			h := fbm(u*frequency, v*frequency, seed, octaves)
			hm.Data[z*width+x] = h
			if h < lo {
				lo = h
			}
			if h > hi {
				hi = h
			}
		}
	}

	// Rescale so the configured min/max world heights are actually reached.
	span := hi - lo
	if span > 0 {
		for i, h := range hm.Data {
			hm.Data[i] = (h - lo) / span
		}
	}
	return hm
}

// At returns the texel at (x, z), clamped to the grid.
func (h *Heightmap) At(x, z int) float32 {
	if x < 0 {
		x = 0
	}
	if z < 0 {
		z = 0
	}
	if x >= h.Width {
		x = h.Width - 1
	}
	if z >= h.Height {
		z = h.Height - 1
	}
	return h.Data[z*h.Width+x]
}

// Sample returns the bilinearly interpolated height at normalized
// coordinates (u, v) in [0, 1]. Out-of-range coordinates clamp.
func (h *Heightmap) Sample(u, v float32) float32 {
	fx := clamp01(u) * float32(h.Width-1)
	fz := clamp01(v) * float32(h.Height-1)
	x := int(fx)
	z := int(fz)
	tx := fx - float32(x)
	tz := fz - float32(z)

	h00 := h.At(x, z)
	h10 := h.At(x+1, z)
	h01 := h.At(x, z+1)
	h11 := h.At(x+1, z+1)

	south := h00*(1-tx) + h10*tx
	north := h01*(1-tx) + h11*tx
	return south*(1-tz) + north*tz
}

// fbm sums octaves of value noise, each octave at double frequency and half
// amplitude.
func fbm(x, z float32, seed int64, octaves int) float32 {
	var sum, amp, norm float32 = 0, 1, 0
	for o := 0; o < octaves; o++ {
		sum += amp * valueNoise(x, z, seed+int64(o)*7919)
		norm += amp
		x *= 2
		z *= 2
		amp *= 0.5
	}
	return sum / norm
}

// valueNoise interpolates hashed lattice values with a smoothstep fade.
func valueNoise(x, z float32, seed int64) float32 {
	x0 := int32(gomath.Floor(float64(x)))
	z0 := int32(gomath.Floor(float64(z)))
	tx := smooth(x - float32(x0))
	tz := smooth(z - float32(z0))

	v00 := latticeValue(x0, z0, seed)
	v10 := latticeValue(x0+1, z0, seed)
	v01 := latticeValue(x0, z0+1, seed)
	v11 := latticeValue(x0+1, z0+1, seed)

	a := v00*(1-tx) + v10*tx
	b := v01*(1-tx) + v11*tx
	return a*(1-tz) + b*tz
}

// latticeValue hashes integer lattice coordinates to [0, 1).
func latticeValue(x, z int32, seed int64) float32 {
	h := uint64(uint32(x))*0x9E3779B97F4A7C15 ^ uint64(uint32(z))*0xC2B2AE3D27D4EB4F ^ uint64(seed)
	h ^= h >> 33
	h *= 0xFF51AFD7ED558CCD
	h ^= h >> 33
	return float32(h>>40) / float32(1<<24)
}

func smooth(t float32) float32 {
	return t * t * (3 - 2*t)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
