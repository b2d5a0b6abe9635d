package window

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	gp1 "github.com/mxtt-mmxix/GameProject-1"
)

// creation holds the parameters selected for glfw.CreateWindow.
type creation struct {
	width, height int
	useMonitor    bool
	// matchVideoMode copies the monitor's color depth and refresh rate into
	// the hint set before creation. This approximates a borderless window;
	// GLFW has no dedicated mode for it.
	matchVideoMode bool
}

func creationFor(data gp1.WindowData, vid *glfw.VidMode) creation {
	switch data.Mode {
	case gp1.Fullscreen:
		return creation{width: vid.Width, height: vid.Height, useMonitor: true}
	case gp1.Borderless:
		return creation{width: vid.Width, height: vid.Height, useMonitor: true, matchVideoMode: true}
	default:
		width, height := data.Width, data.Height
		if width <= 0 {
			width = gp1.DefaultSize.X
		}
		if height <= 0 {
			height = gp1.DefaultSize.Y
		}
		return creation{width: width, height: height}
	}
}
