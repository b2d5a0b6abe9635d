package window

import (
	"fmt"
	"sync"
)

// GLFW carries process-wide state, so exactly one window may hold the
// subsystem at a time. Init acquires, DeInit releases.
type subsystem struct {
	mu    sync.Mutex
	owner *Window
}

var shared subsystem

func (s *subsystem) acquire(w *Window) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.owner != nil {
		return fmt.Errorf("windowing subsystem already owned by window %q", s.owner.data.Title)
	}
	s.owner = w
	return nil
}

func (s *subsystem) release(w *Window) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.owner == w {
		s.owner = nil
	}
}
