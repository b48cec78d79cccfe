package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/SettlerNVG/go-terrain/internal/engine/debug"
	"github.com/SettlerNVG/go-terrain/internal/engine/scene/shaders"
	"github.com/SettlerNVG/go-terrain/internal/engine/shader"
	"github.com/SettlerNVG/go-terrain/pkg/math"
)

// LineRenderer draws colored debug lines from a dynamic vertex buffer,
// re-uploaded each frame it is used.
type LineRenderer struct {
	program *shader.Program

	vao      uint32
	vbo      uint32
	capacity int
	count    int32
}

// NewLineRenderer creates a line renderer with an empty buffer.
func NewLineRenderer() (*LineRenderer, error) {
	lr := &LineRenderer{}

	program, err := shader.NewProgram(shaders.LineVertexShader, shaders.LineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("line shader: %w", err)
	}
	lr.program = program

	gl.GenVertexArrays(1, &lr.vao)
	gl.BindVertexArray(lr.vao)

	gl.GenBuffers(1, &lr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, lr.vbo)

	stride := int32(unsafe.Sizeof(debug.LineVertex{}))
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return lr, nil
}

// SetLines replaces the buffered line set. The buffer grows as needed and
// is reused between frames.
func (lr *LineRenderer) SetLines(vertices []debug.LineVertex) {
	lr.count = int32(len(vertices))
	if len(vertices) == 0 {
		return
	}

	size := len(vertices) * int(unsafe.Sizeof(debug.LineVertex{}))
	gl.BindBuffer(gl.ARRAY_BUFFER, lr.vbo)
	if len(vertices) > lr.capacity {
		gl.BufferData(gl.ARRAY_BUFFER, size, unsafe.Pointer(&vertices[0]), gl.DYNAMIC_DRAW)
		lr.capacity = len(vertices)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, unsafe.Pointer(&vertices[0]))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Render draws the buffered lines.
func (lr *LineRenderer) Render(viewProj math.Mat4) {
	if lr.count == 0 {
		return
	}

	lr.program.Use()
	lr.program.SetMat4("uViewProj", viewProj)

	gl.BindVertexArray(lr.vao)
	gl.DrawArrays(gl.LINES, 0, lr.count)
	gl.BindVertexArray(0)
}

// Destroy releases all resources.
func (lr *LineRenderer) Destroy() {
	if lr.vao != 0 {
		gl.DeleteVertexArrays(1, &lr.vao)
		lr.vao = 0
	}
	if lr.vbo != 0 {
		gl.DeleteBuffers(1, &lr.vbo)
		lr.vbo = 0
	}
	if lr.program != nil {
		lr.program.Delete()
		lr.program = nil
	}
}
