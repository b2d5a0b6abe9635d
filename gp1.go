package gp1

import "github.com/ignite-laboratories/core/std"

// WindowMode selects the creation path for a window.
type WindowMode int

const (
	Windowed WindowMode = iota
	Fullscreen
	Borderless
)

func (m WindowMode) String() string {
	switch m {
	case Fullscreen:
		return "fullscreen"
	case Borderless:
		return "borderless"
	default:
		return "windowed"
	}
}

// WindowData holds the observable state of a single window. It is owned by
// the window for its entire life and mutated both by explicit setters and by
// OS resize notifications.
type WindowData struct {
	Width             int
	Height            int
	FramebufferWidth  int
	FramebufferHeight int
	Title             string
	Mode              WindowMode
	VSync             bool
}

// DefaultSize sets the default window size for new windows.
//
// If not overridden, it defaults to 640x480px
var DefaultSize = std.XY[int]{
	X: 640,
	Y: 480,
}
