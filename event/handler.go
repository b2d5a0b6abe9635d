package event

import "sync"

// Handler queues events in push order until a consumer drains them. A window
// backend pushes during its update poll; the engine loop dispatches once per
// frame.
type Handler struct {
	mu    sync.Mutex
	queue []Event
}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Push(e Event) {
	h.mu.Lock()
	h.queue = append(h.queue, e)
	h.mu.Unlock()
}

// Dispatch drains everything queued so far, calling fn once per event in push
// order. Events pushed from within fn stay queued for the next call.
func (h *Handler) Dispatch(fn func(Event)) {
	h.mu.Lock()
	pending := h.queue
	h.queue = nil
	h.mu.Unlock()

	for _, e := range pending {
		fn(e)
	}
}

// Len reports the number of events waiting to be dispatched.
func (h *Handler) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.queue)
}
