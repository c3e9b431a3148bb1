package renderer

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"github.com/richinsley/goshaderparams/device"
	"github.com/richinsley/goshaderparams/glbackend"
	"github.com/richinsley/goshaderparams/graphics"
	"github.com/richinsley/goshaderparams/shade"
)

// Frame describes the frame being drawn.
type Frame struct {
	Time   float64
	Count  int32
	Cursor [2]float32
	Width  int
	Height int
}

// Renderer draws program shells as full-screen quads into a context.
type Renderer struct {
	context graphics.Context
	quadVAO uint32
	quadVBO uint32
}

var quadVertices = []float32{
	-1.0, 1.0, -1.0, -1.0, 1.0, -1.0,
	-1.0, 1.0, 1.0, -1.0, 1.0, 1.0,
}

// NewRenderer makes ctx current, loads GL and uploads the quad mesh. Alpha
// blending is enabled so overlays can be drawn over earlier shells.
func NewRenderer(ctx graphics.Context) (*Renderer, error) {
	r := &Renderer{context: ctx}
	r.context.MakeCurrent()
	if err := glbackend.Init(); err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	gl.GenVertexArrays(1, &r.quadVAO)
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return r, nil
}

// Draw asks shell for its program and parameters, binds them and draws the
// quad.
func (r *Renderer) Draw(shell shade.ProgramShell) {
	program := shell.GetProgram()
	values := device.NewParamValues(program.Info)
	shell.FillParams(values)

	glbackend.Bind(program, values)
	gl.BindVertexArray(r.quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	glbackend.Unbind(program)
}

// Run calls frame once per frame until the context is closed. The
// framebuffer is cleared before each call and presented after it.
func (r *Renderer) Run(frame func(f Frame)) {
	startTime := r.context.Time()
	var frameCount int32
	for !r.context.ShouldClose() {
		fbWidth, fbHeight := r.context.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		gl.Clear(gl.COLOR_BUFFER_BIT)

		frame(Frame{
			Time:   r.context.Time() - startTime,
			Count:  frameCount,
			Cursor: r.context.Cursor(),
			Width:  fbWidth,
			Height: fbHeight,
		})

		r.context.EndFrame()
		frameCount++
	}
}

// Shutdown releases the mesh. The context is owned by the caller.
func (r *Renderer) Shutdown() {
	gl.DeleteBuffers(1, &r.quadVBO)
	gl.DeleteVertexArrays(1, &r.quadVAO)
}
