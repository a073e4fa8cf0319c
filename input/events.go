package input

import "fmt"

// Source identifies the device an event came from.
type Source int

const (
	Mouse Source = iota
	Touch
)

func (s Source) String() string {
	switch s {
	case Mouse:
		return "mouse"
	case Touch:
		return "touch"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// Press is a primary pointer activation in screen pixels.
type Press struct {
	Source Source
	X, Y   int
}

// Queue is a simple FIFO queue.
type Queue struct {
	items []Press
}

// Push adds an event.
func (q *Queue) Push(p Press) {
	if q == nil {
		return
	}
	q.items = append(q.items, p)
}

// Drain returns all events and clears the queue.
func (q *Queue) Drain() []Press {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
