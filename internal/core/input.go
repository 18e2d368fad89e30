package core

// InputQueue buffers actions that arrive between simulation ticks.
// The simulation consumes at most one action per tick, so key repeats
// that outpace the tick rate are queued up to a limit and the rest dropped.
type InputQueue[A any] struct {
	pending []A
	limit   int
}

// NewInputQueue creates a queue that holds at most limit actions.
// A limit below 1 is treated as 1.
func NewInputQueue[A any](limit int) *InputQueue[A] {
	limit = max(limit, 1)
	return &InputQueue[A]{
		pending: make([]A, 0, limit),
		limit:   limit,
	}
}

// Push appends an action. It reports false if the queue was full.
func (q *InputQueue[A]) Push(a A) bool {
	if len(q.pending) >= q.limit {
		return false
	}
	q.pending = append(q.pending, a)
	return true
}

// Pop removes and returns the oldest action.
// The zero value and false are returned when the queue is empty.
func (q *InputQueue[A]) Pop() (A, bool) {
	var zero A
	if len(q.pending) == 0 {
		return zero, false
	}
	a := q.pending[0]
	copy(q.pending, q.pending[1:])
	q.pending[len(q.pending)-1] = zero
	q.pending = q.pending[:len(q.pending)-1]
	return a, true
}

// Len returns the number of queued actions.
func (q *InputQueue[A]) Len() int {
	return len(q.pending)
}

// Clear drops every queued action.
func (q *InputQueue[A]) Clear() {
	clear(q.pending)
	q.pending = q.pending[:0]
}
