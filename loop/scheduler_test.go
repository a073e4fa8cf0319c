package loop

import "testing"

func TestSchedulerRunsOncePerFrame(t *testing.T) {
	s := NewScheduler()
	calls := 0
	var tick FrameFunc
	tick = func() {
		calls++
		if calls < 3 {
			s.RequestFrame(tick)
		}
	}

	s.RequestFrame(tick)
	for i := 1; i <= 3; i++ {
		if ran := s.RunFrame(); ran != 1 {
			t.Fatalf("frame %d: expected 1 callback, ran %d", i, ran)
		}
		if calls != i {
			t.Fatalf("frame %d: expected %d calls, got %d", i, i, calls)
		}
	}

	if s.Pending() != 0 {
		t.Fatalf("expected no pending callbacks, got %d", s.Pending())
	}
	if ran := s.RunFrame(); ran != 0 {
		t.Fatalf("expected idle frame, ran %d", ran)
	}
	if s.Frames() != 3 {
		t.Fatalf("expected 3 frames, got %d", s.Frames())
	}
}

func TestSchedulerIgnoresNil(t *testing.T) {
	s := NewScheduler()
	s.RequestFrame(nil)
	if s.Pending() != 0 {
		t.Fatalf("nil callback should not be queued")
	}
}

func TestSchedulerPreservesRequestOrder(t *testing.T) {
	s := NewScheduler()
	var order []int
	for i := 0; i < 4; i++ {
		s.RequestFrame(func() { order = append(order, i) })
	}
	s.RunFrame()
	for i, v := range order {
		if v != i {
			t.Fatalf("expected order 0..3, got %v", order)
		}
	}
}
