package system

// EventType identifies world events.
type EventType string

const (
	// EventLevelStarted carries the level index as Data.
	EventLevelStarted EventType = "level_started"
	// EventCoinCollected carries the collected *obj.Actor as Data.
	EventCoinCollected EventType = "coin_collected"
	EventLevelWon      EventType = "level_won"
	EventLevelLost     EventType = "level_lost"
	EventGameComplete  EventType = "game_complete"
)

// Event is a world event payload.
type Event struct {
	Type EventType
	Data any
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

// Len reports how many events are waiting.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
