package event

// Event is any notification produced by a window backend.
type Event interface{}

type WindowResize struct {
	Width  int
	Height int
}

// KeyPressed carries a backend key code. Key auto-repeat is reported as a
// press with Repeat set.
type KeyPressed struct {
	Key    int
	Repeat bool
}

type KeyReleased struct {
	Key int
}

type MouseButtonPressed struct {
	Button int
}

type MouseButtonReleased struct {
	Button int
}

type MouseMoved struct {
	X, Y float64
}

type MouseScrolled struct {
	XOffset, YOffset float64
}
