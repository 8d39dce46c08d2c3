package event

import (
	"sync"

	"dirscan/internal/metrics"
)

// DefaultQueueCapacity bounds the pending event queue when no explicit
// capacity is configured.
const DefaultQueueCapacity = 256

var droppedEvents = metrics.GetCounter(
	"dirscan_events_dropped_total",
	"Events evicted from a full queue before dispatch",
)

// Queue is a bounded FIFO of pending events shared between the host
// adapter's input callbacks and the driver's per-frame drain. When full,
// Push evicts the oldest discardable event rather than the newest, so
// stale motion is shed while fresh input survives. Protected events
// (key, button, clipboard results) are only evicted when the queue holds
// nothing discardable and the incoming event is itself protected; an
// incoming discardable event is dropped instead. Memory stays bounded
// either way.
type Queue struct {
	mu     sync.Mutex
	events []Event
	cap    int
}

// NewQueue creates a queue bounded to capacity events. A capacity of
// zero or less uses DefaultQueueCapacity.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &Queue{
		events: make([]Event, 0, capacity),
		cap:    capacity,
	}
}

// Push appends e, applying the eviction policy when the queue is full.
func (q *Queue) Push(e Event) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) < q.cap {
		q.events = append(q.events, e)
		return
	}

	// Full. Shed the oldest discardable event to make room.
	for i := range q.events {
		if q.events[i].Discardable() {
			copy(q.events[i:], q.events[i+1:])
			q.events[len(q.events)-1] = e
			droppedEvents.Inc()
			return
		}
	}

	// Nothing sheddable. Drop an incoming discardable event; for a
	// protected incoming event evict the oldest so memory stays bounded.
	if e.Discardable() {
		droppedEvents.Inc()
		return
	}
	copy(q.events, q.events[1:])
	q.events[len(q.events)-1] = e
	droppedEvents.Inc()
}

// Drain removes and returns all pending events in arrival order. The
// returned slice is owned by the caller.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]Event, 0, q.cap)
	return out
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
