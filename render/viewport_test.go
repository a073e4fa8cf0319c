package render

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

func TestViewportResizesOnceWithFinalSize(t *testing.T) {
	s := NewSurface(800, 600)
	var calls []Size
	v := NewViewport(s, 250*time.Millisecond, func(sz Size) { calls = append(calls, sz) })

	sizes := []Size{{820, 610}, {900, 640}, {1024, 768}}
	for i, sz := range sizes {
		if !v.Observe(at(i*40), sz.W, sz.H) {
			t.Fatalf("Observe(%v) should queue a resize", sz)
		}
		if v.Poll(at(i*40 + 10)) {
			t.Fatalf("surface resized during the burst")
		}
	}
	if v.Observe(at(100), 1024, 768) {
		t.Fatalf("a repeated size should be ignored")
	}

	if w, h := s.Size(); w != 800 || h != 600 {
		t.Fatalf("surface changed before settling: %dx%d", w, h)
	}
	if v.Poll(at(80 + 249)) {
		t.Fatalf("resized before the settle delay")
	}
	if !v.Poll(at(80 + 250)) {
		t.Fatalf("expected a resize once settled")
	}
	if w, h := s.Size(); w != 1024 || h != 768 {
		t.Fatalf("surface = %dx%d, want 1024x768", w, h)
	}
	if v.Poll(at(2000)) {
		t.Fatalf("resized twice")
	}
	if len(calls) != 1 || calls[0] != (Size{1024, 768}) {
		t.Fatalf("onResize calls = %v, want one with 1024x768", calls)
	}
}

func TestViewportBurstBackToStartSize(t *testing.T) {
	s := NewSurface(640, 480)
	calls := 0
	v := NewViewport(s, 100*time.Millisecond, func(Size) { calls++ })

	if v.Observe(at(0), 640, 480) {
		t.Fatalf("the starting size should not queue a resize")
	}
	v.Observe(at(10), 700, 500)
	v.Observe(at(20), 640, 480)
	if !v.Pending() {
		t.Fatalf("expected a pending resize")
	}
	if v.Poll(at(500)) {
		t.Fatalf("settling on the current size should not resize")
	}
	if calls != 0 {
		t.Fatalf("onResize ran %d times", calls)
	}
}

func TestSurfaceResizeClampsToOnePixel(t *testing.T) {
	s := NewSurface(0, -5)
	if w, h := s.Size(); w != 1 || h != 1 {
		t.Fatalf("Size() = %dx%d, want 1x1", w, h)
	}
	if s.Resize(1, 1) {
		t.Fatalf("resizing to the same size should be a no-op")
	}
}
