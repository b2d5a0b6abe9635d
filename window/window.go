package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/ignite-laboratories/core"

	gp1 "github.com/mxtt-mmxix/GameProject-1"
	"github.com/mxtt-mmxix/GameProject-1/event"
)

// Window owns one native GLFW window and forwards its input and resize
// notifications into the injected event handler.
//
// Lifecycle: New → hint configuration → Init → per-frame OnUpdate → DeInit.
// All other operations require a successful Init. Callbacks fire
// synchronously on the thread calling OnUpdate.
type Window struct {
	data   gp1.WindowData
	hints  map[glfw.Hint]int
	handle *glfw.Window
	events *event.Handler
}

// New prepares a window without touching the OS. A nil events handler drops
// all notifications.
func New(data gp1.WindowData, events *event.Handler) *Window {
	return &Window{
		data:   data,
		hints:  make(map[glfw.Hint]int),
		events: events,
	}
}

func (w *Window) push(e event.Event) {
	if w.events != nil {
		w.events.Push(e)
	}
}

// Init acquires the windowing subsystem, applies the accumulated hints and
// creates the native window for the configured mode. Fullscreen and
// borderless take their dimensions from the primary monitor's current video
// mode; windowed uses the explicit dimensions.
func (w *Window) Init() error {
	if err := shared.acquire(w); err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		shared.release(w)
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.DefaultWindowHints()
	for hint, value := range w.hints {
		glfw.WindowHint(hint, value)
	}

	monitor := glfw.GetPrimaryMonitor()
	vid := monitor.GetVideoMode()
	params := creationFor(w.data, vid)
	if params.matchVideoMode {
		glfw.WindowHint(glfw.RedBits, vid.RedBits)
		glfw.WindowHint(glfw.GreenBits, vid.GreenBits)
		glfw.WindowHint(glfw.BlueBits, vid.BlueBits)
		glfw.WindowHint(glfw.RefreshRate, vid.RefreshRate)
	}
	var target *glfw.Monitor
	if params.useMonitor {
		target = monitor
	}

	handle, err := glfw.CreateWindow(params.width, params.height, w.data.Title, target, nil)
	if err != nil {
		glfw.Terminate()
		shared.release(w)
		return fmt.Errorf("failed to create window: %w", err)
	}
	w.handle = handle
	w.installCallbacks()

	core.Verbosef(ModuleName, "window %q created in %s mode\n", w.data.Title, w.data.Mode)
	return nil
}

func (w *Window) installCallbacks() {
	w.handle.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		w.data.Width = width
		w.data.Height = height
		w.push(event.WindowResize{Width: width, Height: height})
	})

	// Framebuffer dimensions track the resize silently; the renderer reads
	// them from WindowData when it needs a viewport.
	w.handle.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.data.FramebufferWidth = width
		w.data.FramebufferHeight = height
	})

	w.handle.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if e, ok := keyEvent(key, action); ok {
			w.push(e)
		}
	})

	w.handle.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if e, ok := mouseButtonEvent(button, action); ok {
			w.push(e)
		}
	})

	w.handle.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.push(event.MouseMoved{X: x, Y: y})
	})

	w.handle.SetScrollCallback(func(_ *glfw.Window, x, y float64) {
		w.push(event.MouseScrolled{XOffset: x, YOffset: y})
	})
}

// DeInit destroys the native window and terminates the windowing subsystem.
// The window cannot be reused afterwards.
func (w *Window) DeInit() {
	if w.handle != nil {
		w.handle.Destroy()
		w.handle = nil
	}
	glfw.Terminate()
	shared.release(w)
	core.Verbosef(ModuleName, "window %q terminated\n", w.data.Title)
}

// OnUpdate drains pending OS events once. Queued input and resize callbacks
// fire synchronously on the calling thread.
func (w *Window) OnUpdate() {
	glfw.PollEvents()
}

func (w *Window) SetVSync(vsync bool) {
	w.data.VSync = vsync
	if w.handle == nil {
		return
	}
	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
}

// SetWidth stores the new width, then asks the OS to resize. The resize
// callback writes the dimensions again once the OS honors the request.
func (w *Window) SetWidth(width int) {
	w.data.Width = width
	w.requestResize()
}

func (w *Window) SetHeight(height int) {
	w.data.Height = height
	w.requestResize()
}

func (w *Window) SetSize(width, height int) {
	w.data.Width = width
	w.data.Height = height
	w.requestResize()
}

func (w *Window) requestResize() {
	if w.handle != nil {
		w.handle.SetSize(w.data.Width, w.data.Height)
	}
}

func (w *Window) SetTitle(title string) {
	w.data.Title = title
	if w.handle != nil {
		w.handle.SetTitle(title)
	}
}

// GetInputMode queries an input mode flag, e.g. glfw.CursorMode.
func (w *Window) GetInputMode(mode glfw.InputMode) int {
	return w.handle.GetInputMode(mode)
}

func (w *Window) SetInputMode(mode glfw.InputMode, value int) {
	w.handle.SetInputMode(mode, value)
}

// GetWindowData returns a snapshot of the current window state.
func (w *Window) GetWindowData() gp1.WindowData {
	return w.data
}

// IsCloseRequested polls whether the OS has signaled a close request, e.g.
// the user clicked the close button.
func (w *Window) IsCloseRequested() bool {
	return w.handle.ShouldClose()
}

// DefaultWindowHints clears the accumulated hint set.
func (w *Window) DefaultWindowHints() {
	w.hints = make(map[glfw.Hint]int)
}

// SetWindowHint inserts or overwrites one creation hint. Hints take effect at
// the next Init.
func (w *Window) SetWindowHint(hint glfw.Hint, value int) {
	w.hints[hint] = value
}

// NativeHandle exposes the underlying GLFW window for collaborators that need
// direct subsystem access, such as a renderer attaching a graphics context.
func (w *Window) NativeHandle() *glfw.Window {
	return w.handle
}
