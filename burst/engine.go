package burst

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/milk9111/clickburst/loop"
	"go.uber.org/zap"
)

// State is the frame loop state.
type State int

const (
	// Idle means no frame callback is scheduled.
	Idle State = iota
	// Running means exactly one frame callback is scheduled.
	Running
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// FrameScheduler runs a callback on the next display frame.
type FrameScheduler interface {
	RequestFrame(fn loop.FrameFunc)
}

// Excluder decides whether an interaction target lies inside a region the
// effect must leave alone. A nil target is never excluded by the engine.
type Excluder interface {
	Excludes(target any) bool
}

// ExcluderFunc adapts a function to Excluder.
type ExcluderFunc func(target any) bool

func (f ExcluderFunc) Excludes(target any) bool {
	return f(target)
}

// Stats counts spawn decisions since the engine was built.
type Stats struct {
	Bursts    int
	Excluded  int
	Truncated int
	Spawned   int
}

// Engine owns the active particles and drives their frame loop.
type Engine struct {
	cfg     Config
	canvas  Canvas
	frames  FrameScheduler
	exclude Excluder
	rng     *rand.Rand
	log     *zap.SugaredLogger

	active []Particle
	state  State
	stats  Stats
}

type Option func(*Engine)

func WithExcluder(x Excluder) Option {
	return func(e *Engine) { e.exclude = x }
}

func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithSeed seeds the engine's PCG source.
func WithSeed(seed uint64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

func WithLogger(log *zap.SugaredLogger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// New builds an idle engine. canvas and frames are required.
func New(cfg Config, canvas Canvas, frames FrameScheduler, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if canvas == nil {
		return nil, fmt.Errorf("burst: nil canvas")
	}
	if frames == nil {
		return nil, fmt.Errorf("burst: nil frame scheduler")
	}

	e := &Engine{
		cfg:    cfg,
		canvas: canvas,
		frames: frames,
		log:    zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		seed := uint64(time.Now().UnixNano())
		e.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	if cfg.Count > 0 {
		e.active = make([]Particle, 0, cfg.Count)
	}
	return e, nil
}

// Spawn adds a burst at (x, y) unless target is inside an excluded region.
// It returns the number of particles added.
func (e *Engine) Spawn(x, y float64, target any) int {
	if target != nil && e.exclude != nil && e.exclude.Excludes(target) {
		e.stats.Excluded++
		e.log.Debugw("burst excluded", "x", x, "y", y)
		return 0
	}

	n := e.cfg.Count
	if e.cfg.MaxActive > 0 {
		room := e.cfg.MaxActive - len(e.active)
		if room <= 0 {
			e.stats.Truncated++
			e.log.Debugw("burst dropped at cap", "active", len(e.active), "cap", e.cfg.MaxActive)
			return 0
		}
		if n > room {
			e.stats.Truncated++
			n = room
		}
	}

	for i := 0; i < n; i++ {
		e.active = append(e.active, NewParticle(x, y, &e.cfg, e.rng))
	}
	e.stats.Bursts++
	e.stats.Spawned += n
	e.log.Debugw("burst spawned", "x", x, "y", y, "count", n, "active", len(e.active))

	if e.state == Idle {
		e.state = Running
		e.frames.RequestFrame(e.tick)
	}
	return n
}

// tick is the frame callback: update, reap, draw, and reschedule while any
// particle survives.
func (e *Engine) tick() {
	if len(e.active) == 0 {
		e.state = Idle
		return
	}

	e.canvas.Clear()
	kept := e.active[:0]
	for i := range e.active {
		p := e.active[i]
		if !Update(&p, e.cfg.Gravity) {
			continue
		}
		Draw(&p, e.canvas)
		kept = append(kept, p)
	}
	clear(e.active[len(kept):])
	e.active = kept

	if len(e.active) == 0 {
		e.state = Idle
		e.log.Debugw("burst loop idle")
		return
	}
	e.frames.RequestFrame(e.tick)
}

// Active returns the number of live particles.
func (e *Engine) Active() int {
	return len(e.active)
}

// Particles returns a copy of the live particles in insertion order.
func (e *Engine) Particles() []Particle {
	out := make([]Particle, len(e.active))
	copy(out, e.active)
	return out
}

func (e *Engine) State() State {
	return e.state
}

func (e *Engine) Stats() Stats {
	return e.stats
}

func (e *Engine) Config() Config {
	return e.cfg
}
