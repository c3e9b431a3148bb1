// Package graphics defines what the renderer needs from a window.
package graphics

// Context is a current-able GL context with a presentable framebuffer.
type Context interface {
	MakeCurrent()
	ShouldClose() bool
	// EndFrame presents the drawn frame and polls input.
	EndFrame()
	GetFramebufferSize() (int, int)
	// Time is in seconds from an arbitrary origin.
	Time() float64
	// Cursor is in framebuffer pixels, origin bottom left.
	Cursor() [2]float32
}
