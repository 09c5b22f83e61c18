package kernel

import "container/heap"

// Action is the body of a timed event: a testbench callback fired when
// simulation time reaches the event's fire time. An action may stage writes
// and/or reschedule itself — this is how a clock generator sustains
// oscillation.
type Action func()

// EventHandle is a stable, opaque reference to a scheduled event, returned
// by ScheduleAfter/ScheduleAt so callers can later Cancel it. It carries a
// generation so a stale handle (from an event that already fired, or was
// already cancelled) can never accidentally tombstone an unrelated event
// that reused the same heap slot.
type EventHandle struct {
	seq uint64
}

// timedEvent is one entry in the kernel's timed-event queue: a fire time, an
// action, and the monotonically increasing insertion counter used to break
// ties between events scheduled for the same time.
type timedEvent struct {
	fireTime  Time
	seq       uint64
	action    Action
	cancelled bool
}

// eventHeap is a min-heap of timedEvents ordered by (fireTime, seq), so ties
// resolve in insertion order. Modelled directly on the timer-heap pattern
// (container/heap over a slice of struct pointers, Push/Pop via the standard
// any-boxing signature).
type eventHeap []*timedEvent

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].fireTime != h[j].fireTime {
		return h[i].fireTime < h[j].fireTime
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(*timedEvent))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	ev := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return ev
}

// eventQueue is the kernel's timed-event queue: §4.5's min-heap of
// (fire_time, action) pairs, keyed by fire time with ties broken by
// insertion order, plus O(1) tombstone-based cancellation.
type eventQueue struct {
	heap     eventHeap
	nextSeq  uint64
	byHandle map[uint64]*timedEvent
}

func newEventQueue() *eventQueue {
	q := &eventQueue{byHandle: make(map[uint64]*timedEvent)}
	heap.Init(&q.heap)
	return q
}

// schedule inserts (fireTime, action) and returns a handle for cancellation.
func (q *eventQueue) schedule(fireTime Time, action Action) EventHandle {
	seq := q.nextSeq
	q.nextSeq++
	ev := &timedEvent{fireTime: fireTime, seq: seq, action: action}
	heap.Push(&q.heap, ev)
	q.byHandle[seq] = ev
	return EventHandle{seq: seq}
}

// cancel tombstones the event referenced by h. Returns false if the handle
// is unknown or the event already fired/was cancelled.
func (q *eventQueue) cancel(h EventHandle) bool {
	ev, ok := q.byHandle[h.seq]
	if !ok || ev.cancelled {
		return false
	}
	ev.cancelled = true
	delete(q.byHandle, h.seq)
	return true
}

// empty reports whether any live (non-cancelled) event remains.
func (q *eventQueue) empty() bool {
	q.dropCancelled()
	return q.heap.Len() == 0
}

// nextTime returns the fire time of the earliest live event, and whether one
// exists.
func (q *eventQueue) nextTime() (Time, bool) {
	q.dropCancelled()
	if q.heap.Len() == 0 {
		return 0, false
	}
	return q.heap[0].fireTime, true
}

// drainAt fires, in FIFO order, every live event with fireTime exactly t,
// popping each before invoking its action (so an action that reschedules
// itself for time t lands in the queue for the *next* outer-loop iteration,
// not this one, preserving phase separation per the design notes).
func (q *eventQueue) drainAt(t Time) {
	limit := q.nextSeq
	for {
		q.dropCancelled()
		if q.heap.Len() == 0 || q.heap[0].fireTime != t || q.heap[0].seq >= limit {
			return
		}
		ev := heap.Pop(&q.heap).(*timedEvent)
		delete(q.byHandle, ev.seq)
		ev.action()
	}
}

func (q *eventQueue) dropCancelled() {
	for q.heap.Len() > 0 && q.heap[0].cancelled {
		heap.Pop(&q.heap)
	}
}
