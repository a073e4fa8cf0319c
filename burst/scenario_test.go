package burst_test

import (
	"image/color"
	"testing"
	"time"

	"github.com/milk9111/clickburst/burst"
	"github.com/milk9111/clickburst/loop"
	"github.com/milk9111/clickburst/page"
	"github.com/milk9111/clickburst/prefabs"
	"github.com/milk9111/clickburst/timing"
)

type press struct {
	x, y   float64
	target *page.Element
}

type nopCanvas struct{}

func (nopCanvas) Clear() {}

func (nopCanvas) FillCircle(float64, float64, float64, color.Color, float64) {}

type harness struct {
	engine *burst.Engine
	frames *loop.Scheduler
	spawn  *timing.Throttle[press]
	doc    *page.Element
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	cfg, err := prefabs.LoadBurstConfig("")
	if err != nil {
		t.Fatalf("LoadBurstConfig: %v", err)
	}
	spec, err := prefabs.LoadPageSpec("")
	if err != nil {
		t.Fatalf("LoadPageSpec: %v", err)
	}

	h := &harness{frames: loop.NewScheduler(), doc: page.FromSpec(spec.Root)}
	h.engine, err = burst.New(cfg, nopCanvas{}, h.frames,
		burst.WithExcluder(page.DefaultInertRegions()),
		burst.WithSeed(7),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h.spawn = timing.NewThrottle(cfg.ThrottleWindow, cfg.ThrottleEdge, func(p press) {
		var target any
		if p.target != nil {
			target = p.target
		}
		h.engine.Spawn(p.x, p.y, target)
	})
	return h
}

func (h *harness) find(t *testing.T, tag string) *page.Element {
	t.Helper()
	var found *page.Element
	var walk func(*page.Element)
	walk = func(e *page.Element) {
		if found != nil {
			return
		}
		if e.Tag == tag {
			found = e
			return
		}
		for _, c := range e.Children() {
			walk(c)
		}
	}
	walk(h.doc)
	if found == nil {
		t.Fatalf("demo page has no <%s>", tag)
	}
	return found
}

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestClickOnEmptySpaceBurstsAndSettles(t *testing.T) {
	h := newHarness(t)

	h.spawn.Call(t0, press{x: 100, y: 100})
	h.spawn.Poll(t0.Add(100 * time.Millisecond))
	if h.engine.Active() != 30 {
		t.Fatalf("expected 30 particles, got %d", h.engine.Active())
	}

	limit := h.engine.Config().Lifespan() + 2
	for i := 0; i < limit && h.frames.Pending() > 0; i++ {
		h.frames.RunFrame()
	}
	if h.engine.Active() != 0 || h.engine.State() != burst.Idle || h.frames.Pending() != 0 {
		t.Fatalf("expected the loop to stop empty, got %d particles state %v", h.engine.Active(), h.engine.State())
	}
}

func TestClickOnButtonDoesNothing(t *testing.T) {
	h := newHarness(t)

	h.spawn.Call(t0, press{x: 50, y: 50, target: h.find(t, "button")})
	h.spawn.Poll(t0.Add(time.Second))
	if h.engine.Active() != 0 || h.frames.Pending() != 0 {
		t.Fatalf("button click should not spawn, got %d particles", h.engine.Active())
	}
	if h.engine.Stats().Excluded != 1 {
		t.Fatalf("expected one excluded burst, got %+v", h.engine.Stats())
	}
}

func TestClickInsideSpanBursts(t *testing.T) {
	h := newHarness(t)

	h.spawn.Call(t0, press{x: 50, y: 50, target: h.find(t, "span")})
	h.spawn.Poll(t0.Add(time.Second))
	if h.engine.Active() != 30 {
		t.Fatalf("plain text should burst, got %d particles", h.engine.Active())
	}
}

func TestTwoQuickClicksSpawnOnce(t *testing.T) {
	h := newHarness(t)

	h.spawn.Call(t0, press{x: 10, y: 10})
	h.spawn.Call(t0.Add(10*time.Millisecond), press{x: 20, y: 20})
	h.spawn.Poll(t0.Add(200 * time.Millisecond))

	if h.engine.Active() != 30 || h.engine.Stats().Bursts != 1 {
		t.Fatalf("expected a single burst of 30, got %d particles in %d bursts", h.engine.Active(), h.engine.Stats().Bursts)
	}
	if got := h.engine.Particles()[0]; got.X != 10 || got.Y != 10 {
		t.Fatalf("the first click should win, burst started at (%g, %g)", got.X, got.Y)
	}
}
