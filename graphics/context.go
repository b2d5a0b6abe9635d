package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/ignite-laboratories/core"

	"github.com/mxtt-mmxix/GameProject-1/window"
)

// Context is an OpenGL context bound to one window. It is the consumer of the
// window's native handle.
type Context struct {
	win *window.Window
}

// Attach makes the window's GL context current on the calling thread and
// loads the OpenGL function pointers. The window must be initialized, and the
// calling goroutine should be locked to its OS thread.
func Attach(win *window.Window) (*Context, error) {
	handle := win.NativeHandle()
	if handle == nil {
		return nil, fmt.Errorf("window has no native handle, call Init first")
	}
	handle.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	core.Verbosef(ModuleName, "context initialized with %s\n", version)
	return &Context{win: win}, nil
}

// Clear wipes the color and depth buffers with the given color.
func (c *Context) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Viewport matches the GL viewport to the window's current framebuffer size.
func (c *Context) Viewport() {
	data := c.win.GetWindowData()
	gl.Viewport(0, 0, int32(data.FramebufferWidth), int32(data.FramebufferHeight))
}

func (c *Context) SwapBuffers() {
	c.win.NativeHandle().SwapBuffers()
}
