package sdl2

import (
	"fmt"

	"github.com/ignite-laboratories/core"
	"github.com/veandco/go-sdl2/sdl"

	gp1 "github.com/mxtt-mmxix/GameProject-1"
	"github.com/mxtt-mmxix/GameProject-1/event"
)

// Window mirrors the GLFW-backed window surface on SDL2. SDL reports window
// notifications through its event queue instead of per-window callbacks, so
// OnUpdate translates the queue and latches the close request for polling.
type Window struct {
	data           gp1.WindowData
	attrs          map[sdl.GLattr]int
	handle         *sdl.Window
	events         *event.Handler
	windowID       uint32
	closeRequested bool
}

// New prepares a window without touching the OS. A nil events handler drops
// all notifications.
func New(data gp1.WindowData, events *event.Handler) *Window {
	return &Window{
		data:   data,
		attrs:  make(map[sdl.GLattr]int),
		events: events,
	}
}

func (w *Window) push(e event.Event) {
	if w.events != nil {
		w.events.Push(e)
	}
}

// Init initializes SDL's video and event subsystems, applies the accumulated
// GL attributes and creates the native window for the configured mode.
func (w *Window) Init() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("failed to initialize SDL2: %w", err)
	}

	for attr, value := range w.attrs {
		sdl.GLSetAttribute(attr, value)
	}

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE)
	width, height := w.data.Width, w.data.Height
	switch w.data.Mode {
	case gp1.Fullscreen:
		flags |= sdl.WINDOW_FULLSCREEN
		if mode, err := sdl.GetCurrentDisplayMode(0); err == nil {
			width, height = int(mode.W), int(mode.H)
		}
	case gp1.Borderless:
		// Desktop fullscreen keeps the current video mode, the closest SDL
		// gets to a borderless window.
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
		if mode, err := sdl.GetCurrentDisplayMode(0); err == nil {
			width, height = int(mode.W), int(mode.H)
		}
	default:
		if width <= 0 {
			width = gp1.DefaultSize.X
		}
		if height <= 0 {
			height = gp1.DefaultSize.Y
		}
	}

	handle, err := sdl.CreateWindow(
		w.data.Title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(width), int32(height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("failed to create window: %w", err)
	}
	w.handle = handle
	w.windowID, _ = handle.GetID()

	core.Verbosef(ModuleName, "window %q created in %s mode\n", w.data.Title, w.data.Mode)
	return nil
}

// DeInit destroys the native window and shuts SDL down. The window cannot be
// reused afterwards.
func (w *Window) DeInit() {
	if w.handle != nil {
		w.handle.Destroy()
		w.handle = nil
	}
	sdl.Quit()
	core.Verbosef(ModuleName, "window %q terminated\n", w.data.Title)
}

// OnUpdate drains the SDL event queue once, translating each event on the
// calling thread.
func (w *Window) OnUpdate() {
	for polled := sdl.PollEvent(); polled != nil; polled = sdl.PollEvent() {
		w.handleEvent(polled)
	}
}

func (w *Window) handleEvent(polled sdl.Event) {
	switch e := polled.(type) {
	case *sdl.QuitEvent:
		w.closeRequested = true
	case *sdl.WindowEvent:
		if e.WindowID != w.windowID {
			return
		}
		switch e.Event {
		case sdl.WINDOWEVENT_CLOSE:
			w.closeRequested = true
		case sdl.WINDOWEVENT_SIZE_CHANGED, sdl.WINDOWEVENT_RESIZED:
			w.data.Width = int(e.Data1)
			w.data.Height = int(e.Data2)
			if w.handle != nil {
				fw, fh := w.handle.GLGetDrawableSize()
				w.data.FramebufferWidth = int(fw)
				w.data.FramebufferHeight = int(fh)
			}
			w.push(event.WindowResize{Width: int(e.Data1), Height: int(e.Data2)})
		}
	case *sdl.KeyboardEvent:
		switch e.Type {
		case sdl.KEYDOWN:
			w.push(event.KeyPressed{Key: int(e.Keysym.Sym), Repeat: e.Repeat != 0})
		case sdl.KEYUP:
			w.push(event.KeyReleased{Key: int(e.Keysym.Sym)})
		}
	case *sdl.MouseButtonEvent:
		switch e.Type {
		case sdl.MOUSEBUTTONDOWN:
			w.push(event.MouseButtonPressed{Button: int(e.Button)})
		case sdl.MOUSEBUTTONUP:
			w.push(event.MouseButtonReleased{Button: int(e.Button)})
		}
	case *sdl.MouseMotionEvent:
		w.push(event.MouseMoved{X: float64(e.X), Y: float64(e.Y)})
	case *sdl.MouseWheelEvent:
		w.push(event.MouseScrolled{XOffset: float64(e.X), YOffset: float64(e.Y)})
	}
}

func (w *Window) SetVSync(vsync bool) {
	w.data.VSync = vsync
	if w.handle == nil {
		return
	}
	interval := 0
	if vsync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		core.Verbosef(ModuleName, "failed to set swap interval: %v\n", err)
	}
}

// SetWidth stores the new width, then asks the OS to resize. The size-changed
// event writes the dimensions again once the OS honors the request.
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
		w.handle.SetSize(int32(w.data.Width), int32(w.data.Height))
	}
}

func (w *Window) SetTitle(title string) {
	w.data.Title = title
	if w.handle != nil {
		w.handle.SetTitle(title)
	}
}

// ShowCursor toggles cursor visibility, the SDL counterpart of the GLFW
// cursor input mode.
func (w *Window) ShowCursor(visible bool) {
	toggle := sdl.DISABLE
	if visible {
		toggle = sdl.ENABLE
	}
	sdl.ShowCursor(toggle)
}

func (w *Window) SetRelativeMouseMode(enabled bool) {
	sdl.SetRelativeMouseMode(enabled)
}

// GetWindowData returns a snapshot of the current window state.
func (w *Window) GetWindowData() gp1.WindowData {
	return w.data
}

// IsCloseRequested reports whether a close request was seen during an
// earlier OnUpdate.
func (w *Window) IsCloseRequested() bool {
	return w.closeRequested
}

// DefaultAttributes clears the accumulated GL attribute set, the SDL
// counterpart of resetting window hints.
func (w *Window) DefaultAttributes() {
	w.attrs = make(map[sdl.GLattr]int)
}

// SetAttribute inserts or overwrites one GL attribute. Attributes take effect
// at the next Init.
func (w *Window) SetAttribute(attr sdl.GLattr, value int) {
	w.attrs[attr] = value
}

// NativeHandle exposes the underlying SDL window for collaborators that need
// direct subsystem access.
func (w *Window) NativeHandle() *sdl.Window {
	return w.handle
}
