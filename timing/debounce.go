package timing

import "time"

// Debounce runs fn once a burst of calls has been quiet for the settle
// delay, with the value of the last call in the burst.
type Debounce[T any] struct {
	delay time.Duration
	fn    func(T)

	pending  bool
	deadline time.Time
	value    T
}

func NewDebounce[T any](delay time.Duration, fn func(T)) *Debounce[T] {
	return &Debounce[T]{delay: delay, fn: fn}
}

// Call replaces any pending value and restarts the settle delay.
func (d *Debounce[T]) Call(now time.Time, v T) {
	d.value = v
	d.deadline = now.Add(d.delay)
	d.pending = true
}

// Poll runs fn if the settle delay has elapsed since the last Call.
func (d *Debounce[T]) Poll(now time.Time) bool {
	if !d.pending || now.Before(d.deadline) {
		return false
	}
	return d.Flush()
}

// Flush runs a pending call immediately.
func (d *Debounce[T]) Flush() bool {
	if !d.pending {
		return false
	}
	d.pending = false
	v := d.value
	var zero T
	d.value = zero
	if d.fn != nil {
		d.fn(v)
	}
	return true
}

// Cancel drops a pending call without running it.
func (d *Debounce[T]) Cancel() {
	d.pending = false
	var zero T
	d.value = zero
}

func (d *Debounce[T]) Pending() bool {
	return d.pending
}
