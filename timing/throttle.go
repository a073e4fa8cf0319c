package timing

import (
	"fmt"
	"strings"
	"time"
)

// Edge selects when a throttled call runs relative to its window.
type Edge int

const (
	// Trailing defers the first call in a window until the window closes.
	Trailing Edge = iota
	// Leading runs the first call immediately and drops the rest of the window.
	Leading
)

func (e Edge) String() string {
	switch e {
	case Trailing:
		return "trailing"
	case Leading:
		return "leading"
	default:
		return fmt.Sprintf("Edge(%d)", int(e))
	}
}

// ParseEdge accepts "trailing" or "leading". An empty string is Trailing.
func ParseEdge(s string) (Edge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "trailing":
		return Trailing, nil
	case "leading":
		return Leading, nil
	default:
		return Trailing, fmt.Errorf("timing: unknown throttle edge %q", s)
	}
}

// Throttle limits fn to one run per window. It never starts goroutines or
// timers: the owner calls Poll from its update loop, so fn always runs on
// the caller's goroutine.
type Throttle[T any] struct {
	window time.Duration
	edge   Edge
	fn     func(T)

	armed    bool
	deadline time.Time
	value    T

	dropped int
}

func NewThrottle[T any](window time.Duration, edge Edge, fn func(T)) *Throttle[T] {
	return &Throttle[T]{window: window, edge: edge, fn: fn}
}

// Call offers an event to the throttle. It returns false when the event is
// dropped because a window is already open.
func (t *Throttle[T]) Call(now time.Time, v T) bool {
	if t.armed {
		if now.Before(t.deadline) {
			t.dropped++
			return false
		}
		// The window closed without a Poll; settle it before opening another.
		t.Poll(now)
	}

	if t.window <= 0 {
		t.run(v)
		return true
	}

	t.armed = true
	t.deadline = now.Add(t.window)
	if t.edge == Leading {
		t.run(v)
		return true
	}
	t.value = v
	return true
}

// Poll closes the current window once its deadline has passed, running the
// deferred call for a trailing throttle. It reports whether fn ran.
func (t *Throttle[T]) Poll(now time.Time) bool {
	if !t.armed || now.Before(t.deadline) {
		return false
	}
	t.armed = false
	if t.edge == Leading {
		return false
	}
	v := t.value
	var zero T
	t.value = zero
	t.run(v)
	return true
}

// Armed reports whether a window is open.
func (t *Throttle[T]) Armed() bool {
	return t.armed
}

// Dropped returns how many events were discarded inside open windows.
func (t *Throttle[T]) Dropped() int {
	return t.dropped
}

func (t *Throttle[T]) run(v T) {
	if t.fn != nil {
		t.fn(v)
	}
}
