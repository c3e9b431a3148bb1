// Package glfwcontext provides the demo window: a GLFW 4.1 core context with
// key bindings and a cursor in framebuffer pixels.
package glfwcontext

import (
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/richinsley/goshaderparams/options"
)

// Context is a GLFW window that implements graphics.Context.
type Context struct {
	window   *glfw.Window
	bindings map[glfw.Key]func()
}

// New opens a window sized from opts. A bit depth above 8 asks for a 16-bit
// color buffer.
func New(opts *options.Options, title string) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	if *opts.BitDepth > 8 {
		glfw.WindowHint(glfw.RedBits, 16)
		glfw.WindowHint(glfw.GreenBits, 16)
		glfw.WindowHint(glfw.BlueBits, 16)
	}

	win, err := glfw.CreateWindow(*opts.Width, *opts.Height, title, nil, nil)
	if err != nil {
		return nil, err
	}
	c := &Context{window: win, bindings: make(map[glfw.Key]func())}
	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		if key == glfw.KeyEscape {
			w.SetShouldClose(true)
			return
		}
		if f := c.bindings[key]; f != nil {
			f()
		}
	})
	return c, nil
}

// Bind runs f on each press of key. Escape always closes the window.
func (c *Context) Bind(key glfw.Key, f func()) {
	c.bindings[key] = f
}

// Cursor returns the cursor position in framebuffer pixels with the origin
// at the bottom left, matching gl_FragCoord.
func (c *Context) Cursor() [2]float32 {
	fbWidth, fbHeight := c.window.GetFramebufferSize()
	winWidth, winHeight := c.window.GetSize()
	x, y := c.window.GetCursorPos()
	if winWidth > 0 && winHeight > 0 {
		x *= float64(fbWidth) / float64(winWidth)
		y *= float64(fbHeight) / float64(winHeight)
	}
	return [2]float32{float32(x), float32(fbHeight) - float32(y)}
}

func (c *Context) MakeCurrent()                   { c.window.MakeContextCurrent() }
func (c *Context) ShouldClose() bool              { return c.window.ShouldClose() }
func (c *Context) GetFramebufferSize() (int, int) { return c.window.GetFramebufferSize() }
func (c *Context) Time() float64                  { return glfw.GetTime() }

// EndFrame presents the frame and processes pending window events.
func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

// Close destroys the window.
func (c *Context) Close() {
	c.window.Destroy()
}

// Init starts GLFW on the calling goroutine's OS thread, which must stay the
// main thread for every later window call.
func Init() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// Terminate shuts GLFW down.
func Terminate() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
