package window

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/mxtt-mmxix/GameProject-1/event"
)

// keyEvent translates a GLFW key action. Auto-repeat is reported as a press
// carrying the repeat flag.
func keyEvent(key glfw.Key, action glfw.Action) (event.Event, bool) {
	switch action {
	case glfw.Press:
		return event.KeyPressed{Key: int(key)}, true
	case glfw.Repeat:
		return event.KeyPressed{Key: int(key), Repeat: true}, true
	case glfw.Release:
		return event.KeyReleased{Key: int(key)}, true
	default:
		return nil, false
	}
}

func mouseButtonEvent(button glfw.MouseButton, action glfw.Action) (event.Event, bool) {
	switch action {
	case glfw.Press:
		return event.MouseButtonPressed{Button: int(button)}, true
	case glfw.Release:
		return event.MouseButtonReleased{Button: int(button)}, true
	default:
		return nil, false
	}
}
