package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// Camera event types pushed by the pan/zoom systems.
const (
	EventZoomStarted = "pancam.zoom_started"
	EventZoomSettled = "pancam.zoom_settled"
)

// CameraEvent is the payload of the pancam.* events.
type CameraEvent struct {
	Entity Entity
	Scale  float64
	Target float64
}

// EventQueue is a simple FIFO queue. Whoever drains it owns the events;
// undrained events accumulate until the host drains or flushes them.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Flush discards queued events.
func (q *EventQueue) Flush() {
	if q == nil {
		return
	}
	q.items = nil
}
