package loop

// FrameFunc runs once on the next display frame.
type FrameFunc func()

// Scheduler holds callbacks requested for the next frame. The host calls
// RunFrame once per tick; callbacks requested while a frame runs are held
// for the following tick.
type Scheduler struct {
	pending []FrameFunc
	frames  int
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// RequestFrame queues fn for the next RunFrame.
func (s *Scheduler) RequestFrame(fn FrameFunc) {
	if fn == nil {
		return
	}
	s.pending = append(s.pending, fn)
}

// Pending reports how many callbacks wait for the next frame.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Frames returns the number of frames that ran at least one callback.
func (s *Scheduler) Frames() int {
	return s.frames
}

// RunFrame runs every callback queued before the call, in request order.
func (s *Scheduler) RunFrame() int {
	if len(s.pending) == 0 {
		return 0
	}
	run := s.pending
	s.pending = nil
	for _, fn := range run {
		fn()
	}
	s.frames++
	return len(run)
}
