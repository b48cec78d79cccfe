package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/SettlerNVG/go-terrain/internal/engine/frames"
	"github.com/SettlerNVG/go-terrain/internal/engine/lod"
	"github.com/SettlerNVG/go-terrain/internal/engine/scene/shaders"
	"github.com/SettlerNVG/go-terrain/internal/engine/shader"
	"github.com/SettlerNVG/go-terrain/internal/engine/terrain"
	"github.com/SettlerNVG/go-terrain/pkg/math"
)

// MaxUBOTiles is the tile constant array length in the shader's uniform
// block. 1024 vec4s fits the 16KB minimum UBO size with room to spare.
const MaxUBOTiles = 1024

// TerrainRenderer draws the visible tile set. All tiles share one unit-grid
// mesh per detail level; the vertex shader displaces it by the heightmap and
// places it with per-tile constants read from a uniform block.
type TerrainRenderer struct {
	program *shader.Program

	// Shared grid mesh
	vao       uint32
	vbo       uint32
	ebo       uint32
	levels    []terrain.IndexRange
	heightTex uint32

	// One tile-constant UBO per frame slot, so the CPU never rewrites a
	// buffer the GPU may still be reading.
	ubos [frames.SlotCount]uint32

	terrainSize float32
	minHeight   float32
	heightScale float32

	// TintLevels colors each tile by its detail level.
	TintLevels bool
	// LightDir is the directional light for terrain shading.
	LightDir math.Vec3
}

// NewTerrainRenderer builds the shared meshes and uploads the heightmap.
func NewTerrainRenderer(t *terrain.Terrain, mesh *terrain.GridMesh) (*TerrainRenderer, error) {
	tr := &TerrainRenderer{
		terrainSize: t.Size(),
		minHeight:   t.MinHeight(),
		heightScale: t.MaxHeight() - t.MinHeight(),
		levels:      mesh.Levels,
		LightDir:    math.Vec3{X: -0.5, Y: -1, Z: -0.3}.Normalize(),
	}

	program, err := shader.NewProgram(shaders.TerrainVertexShader, shaders.TerrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}
	tr.program = program
	program.BindUniformBlock("TileBlock", 0)

	tr.uploadGridMesh(mesh)
	tr.uploadHeightmap(t.Heightmap())
	tr.createTileBuffers()

	return tr, nil
}

func (tr *TerrainRenderer) uploadGridMesh(mesh *terrain.GridMesh) {
	gl.GenVertexArrays(1, &tr.vao)
	gl.BindVertexArray(tr.vao)

	gl.GenBuffers(1, &tr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)

	// Grid position (location 0), xz in [0,1]
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &tr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, tr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
}

func (tr *TerrainRenderer) uploadHeightmap(hm *terrain.Heightmap) {
	gl.GenTextures(1, &tr.heightTex)
	gl.BindTexture(gl.TEXTURE_2D, tr.heightTex)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R32F,
		int32(hm.Width), int32(hm.Height),
		0, gl.RED, gl.FLOAT, unsafe.Pointer(&hm.Data[0]))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
}

func (tr *TerrainRenderer) createTileBuffers() {
	for i := range tr.ubos {
		gl.GenBuffers(1, &tr.ubos[i])
		gl.BindBuffer(gl.UNIFORM_BUFFER, tr.ubos[i])
		gl.BufferData(gl.UNIFORM_BUFFER, MaxUBOTiles*16, nil, gl.DYNAMIC_DRAW)
	}
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

// UploadTiles writes the slot's tile constants into that slot's UBO. The
// caller must have waited on the slot's fence first.
func (tr *TerrainRenderer) UploadTiles(slot *frames.Slot) error {
	if len(slot.Tiles) > MaxUBOTiles {
		return fmt.Errorf("scene: %d tile constants exceed UBO capacity %d", len(slot.Tiles), MaxUBOTiles)
	}
	gl.BindBuffer(gl.UNIFORM_BUFFER, tr.ubos[slot.Index])
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, len(slot.Tiles)*16, unsafe.Pointer(&slot.Tiles[0]))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	return nil
}

// Render draws the tile set recorded for the given slot.
func (tr *TerrainRenderer) Render(viewProj math.Mat4, draws []lod.DrawDescriptor, slotIndex int) {
	if len(draws) == 0 {
		return
	}

	tr.program.Use()
	tr.program.SetMat4("uViewProj", viewProj)
	tr.program.SetFloat("uTerrainSize", tr.terrainSize)
	tr.program.SetFloat("uMinHeight", tr.minHeight)
	tr.program.SetFloat("uHeightScale", tr.heightScale)
	tr.program.SetVec3("uLightDir", tr.LightDir)
	if tr.TintLevels {
		tr.program.SetInt("uTintLevels", 1)
	} else {
		tr.program.SetInt("uTintLevels", 0)
	}

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tr.heightTex)
	tr.program.SetInt("uHeightmap", 0)

	gl.BindBufferBase(gl.UNIFORM_BUFFER, 0, tr.ubos[slotIndex])

	gl.BindVertexArray(tr.vao)
	for _, d := range draws {
		level := d.Level
		if level >= len(tr.levels) {
			level = len(tr.levels) - 1
		}
		rng := tr.levels[level]
		tr.program.SetInt("uTileIndex", int32(d.Slot))
		gl.DrawElementsWithOffset(gl.TRIANGLES, int32(rng.Count), gl.UNSIGNED_INT, uintptr(rng.First*4))
	}
	gl.BindVertexArray(0)
}

// Destroy releases all GL resources.
func (tr *TerrainRenderer) Destroy() {
	if tr.vao != 0 {
		gl.DeleteVertexArrays(1, &tr.vao)
		tr.vao = 0
	}
	if tr.vbo != 0 {
		gl.DeleteBuffers(1, &tr.vbo)
		tr.vbo = 0
	}
	if tr.ebo != 0 {
		gl.DeleteBuffers(1, &tr.ebo)
		tr.ebo = 0
	}
	if tr.heightTex != 0 {
		gl.DeleteTextures(1, &tr.heightTex)
		tr.heightTex = 0
	}
	for i := range tr.ubos {
		if tr.ubos[i] != 0 {
			gl.DeleteBuffers(1, &tr.ubos[i])
			tr.ubos[i] = 0
		}
	}
	if tr.program != nil {
		tr.program.Delete()
		tr.program = nil
	}
}
