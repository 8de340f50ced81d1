package ecs

// EventType identifies world events.
type EventType string

const (
	EventDeath EventType = "death"
	EventJump  EventType = "jump"
	EventFlip  EventType = "gravity_flip"
)

// DeathCause says which loss condition ended a run.
type DeathCause string

const (
	DeathCollision DeathCause = "collision"
	DeathCeiling   DeathCause = "ceiling"
	DeathFloor     DeathCause = "floor"
)

// Event is a world event payload.
type Event struct {
	Type EventType
	Data any
}

// DeathEvent is emitted once when the player is lost.
type DeathEvent struct {
	Cause DeathCause
	Other Entity
}

// EventQueue is a simple FIFO queue.
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

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
