package event

import "testing"

func TestHandler_DispatchPreservesPushOrder(t *testing.T) {
	h := NewHandler()
	h.Push(KeyPressed{Key: 65})
	h.Push(KeyPressed{Key: 65, Repeat: true})
	h.Push(KeyReleased{Key: 65})

	var got []Event
	h.Dispatch(func(e Event) {
		got = append(got, e)
	})

	want := []Event{
		KeyPressed{Key: 65},
		KeyPressed{Key: 65, Repeat: true},
		KeyReleased{Key: 65},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d: expected %#v, got %#v", i, want[i], got[i])
		}
	}
}

func TestHandler_DispatchDrainsQueue(t *testing.T) {
	h := NewHandler()
	h.Push(WindowResize{Width: 800, Height: 600})
	if h.Len() != 1 {
		t.Fatalf("expected 1 pending event, got %d", h.Len())
	}

	h.Dispatch(func(Event) {})
	if h.Len() != 0 {
		t.Fatalf("expected queue to be drained, got %d pending", h.Len())
	}

	calls := 0
	h.Dispatch(func(Event) { calls++ })
	if calls != 0 {
		t.Fatalf("expected no calls on an empty queue, got %d", calls)
	}
}

func TestHandler_PushDuringDispatchStaysQueued(t *testing.T) {
	h := NewHandler()
	h.Push(MouseMoved{X: 1, Y: 2})

	h.Dispatch(func(Event) {
		h.Push(MouseScrolled{YOffset: -1})
	})

	if h.Len() != 1 {
		t.Fatalf("expected the event pushed during dispatch to stay queued, got %d", h.Len())
	}
	var got Event
	h.Dispatch(func(e Event) { got = e })
	if got != (MouseScrolled{YOffset: -1}) {
		t.Fatalf("expected MouseScrolled, got %#v", got)
	}
}
