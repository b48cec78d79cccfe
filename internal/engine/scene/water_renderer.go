package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/SettlerNVG/go-terrain/internal/engine/scene/shaders"
	"github.com/SettlerNVG/go-terrain/internal/engine/shader"
	"github.com/SettlerNVG/go-terrain/pkg/math"
)

// WaterRenderer draws a translucent water plane at a fixed height. Terrain
// below the water level reads as lakes without any extra terrain work.
type WaterRenderer struct {
	program *shader.Program

	vao uint32
	vbo uint32

	waterLevel float32
	hasWater   bool
	waterTime  float32

	Color math.Vec3
}

// NewWaterRenderer creates a new water renderer.
func NewWaterRenderer() (*WaterRenderer, error) {
	wr := &WaterRenderer{
		Color: math.Vec3{X: 0.1, Y: 0.3, Z: 0.5},
	}

	program, err := shader.NewProgram(shaders.WaterVertexShader, shaders.WaterFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("water shader: %w", err)
	}
	wr.program = program

	return wr, nil
}

// SetupWater creates a water plane at the specified level covering the
// terrain footprint with some padding.
func (wr *WaterRenderer) SetupWater(level, terrainSize float32) {
	wr.waterLevel = level
	wr.hasWater = true

	padding := float32(50.0)
	half := terrainSize/2 + padding
	y := level

	// Two triangles, position only, wound to face up.
	vertices := []float32{
		-half, y, -half,
		half, y, half,
		half, y, -half,
		-half, y, -half,
		-half, y, half,
		half, y, half,
	}

	gl.GenVertexArrays(1, &wr.vao)
	gl.BindVertexArray(wr.vao)

	gl.GenBuffers(1, &wr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, wr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
}

// Update advances the water animation.
func (wr *WaterRenderer) Update(dt float32) {
	wr.waterTime += dt
}

// Render draws the water plane with alpha blending.
func (wr *WaterRenderer) Render(viewProj math.Mat4) {
	if !wr.hasWater {
		return
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)
	gl.Disable(gl.CULL_FACE) // visible from below the surface too

	wr.program.Use()
	wr.program.SetMat4("uViewProj", viewProj)
	wr.program.SetFloat("uTime", wr.waterTime)
	wr.program.SetVec3("uWaterColor", wr.Color)

	gl.BindVertexArray(wr.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	gl.Enable(gl.CULL_FACE)
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

// Destroy releases all resources.
func (wr *WaterRenderer) Destroy() {
	if wr.vao != 0 {
		gl.DeleteVertexArrays(1, &wr.vao)
		wr.vao = 0
	}
	if wr.vbo != 0 {
		gl.DeleteBuffers(1, &wr.vbo)
		wr.vbo = 0
	}
	if wr.program != nil {
		wr.program.Delete()
		wr.program = nil
	}
}
