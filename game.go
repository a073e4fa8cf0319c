package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/clickburst/burst"
	"github.com/milk9111/clickburst/input"
	"github.com/milk9111/clickburst/loop"
	"github.com/milk9111/clickburst/page"
	"github.com/milk9111/clickburst/prefabs"
	"github.com/milk9111/clickburst/render"
	"github.com/milk9111/clickburst/timing"
	"go.uber.org/zap"
)

const (
	baseWidth  = 1024
	baseHeight = 720
)

type spawnRequest struct {
	x, y   float64
	target *page.Element
}

type GameOptions struct {
	Config   burst.Config
	Page     prefabs.PageSpec
	PagePath string
	Watch    bool
	Seed     uint64
	Debug    bool
	Log      *zap.SugaredLogger
}

type Game struct {
	log   *zap.SugaredLogger
	debug bool

	page     *page.Page
	pagePath string
	clip     *page.Clipboard
	watcher  *prefabs.Watcher

	engine  *burst.Engine
	frames  *loop.Scheduler
	surface *render.Surface

	poller   *input.Poller
	presses  input.Queue
	spawn    *timing.Throttle[spawnRequest]
	viewport *render.Viewport
}

func NewGame(opts GameOptions) (*Game, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	g := &Game{
		log:      log,
		debug:    opts.Debug,
		pagePath: opts.PagePath,
		frames:   loop.NewScheduler(),
		poller:   input.NewPoller(),
	}
	w, h := baseWidth, baseHeight
	if ww, wh := ebiten.WindowSize(); ww > 0 && wh > 0 {
		w, h = ww, wh
	}
	g.surface = render.NewSurface(w, h)
	g.clip = page.NewSystemClipboard(log)

	pg, err := page.Build(opts.Page, page.WithClipboard(g.clip), page.WithLogger(log))
	if err != nil {
		return nil, err
	}
	pg.Layout(w, h)
	g.page = pg

	engineOpts := []burst.Option{
		burst.WithExcluder(page.DefaultInertRegions()),
		burst.WithLogger(log),
	}
	if opts.Seed != 0 {
		engineOpts = append(engineOpts, burst.WithSeed(opts.Seed))
	}
	g.engine, err = burst.New(opts.Config, g.surface, g.frames, engineOpts...)
	if err != nil {
		return nil, err
	}

	g.spawn = timing.NewThrottle(opts.Config.ThrottleWindow, opts.Config.ThrottleEdge, g.spawnBurst)
	g.viewport = render.NewViewport(g.surface, opts.Config.ResizeSettle, g.applyResize)

	if opts.Watch && opts.PagePath != "" {
		g.watcher, err = prefabs.NewWatcher(filepath.Dir(opts.PagePath))
		if err != nil {
			log.Warnw("page watch disabled", "path", opts.PagePath, "err", err)
		} else {
			log.Infow("watching page", "path", opts.PagePath)
		}
	}

	log.Infow("clickburst ready",
		"count", opts.Config.Count,
		"throttle", opts.Config.ThrottleWindow,
		"edge", opts.Config.ThrottleEdge,
		"lifespan_frames", opts.Config.Lifespan(),
		"settle", opts.Config.ResizeSettle,
		"size", fmt.Sprintf("%dx%d", w, h),
		"page", pg.String(),
	)
	return g, nil
}

func (g *Game) Update() error {
	now := time.Now()

	g.poller.Poll(&g.presses)
	for _, p := range g.presses.Drain() {
		req := spawnRequest{x: float64(p.X), y: float64(p.Y), target: g.page.TargetAt(p.X, p.Y)}
		if !g.spawn.Call(now, req) {
			g.log.Debugw("press throttled", "source", p.Source, "x", p.X, "y", p.Y)
		}
	}
	g.spawn.Poll(now)
	g.viewport.Poll(now)

	if focused, changed := g.poller.FocusChanged(); changed {
		g.visibilityChanged(focused)
	}
	g.reloadPage()

	g.page.Update()
	g.frames.RunFrame()
	return nil
}

func (g *Game) spawnBurst(req spawnRequest) {
	var target any
	if req.target != nil {
		target = req.target
	}
	g.engine.Spawn(req.x, req.y, target)
}

func (g *Game) applyResize(sz render.Size) {
	g.page.Layout(sz.W, sz.H)
	g.log.Debugw("overlay resized", "w", sz.W, "h", sz.H)
}

// visibilityChanged is where pausing on hidden windows would go. Bursts
// keep running; the change is only logged.
func (g *Game) visibilityChanged(visible bool) {
	g.log.Debugw("visibility changed", "visible", visible, "active", g.engine.Active())
}

func (g *Game) reloadPage() {
	if g.watcher == nil {
		return
	}
	paths, errs := g.watcher.Drain()
	for _, err := range errs {
		g.log.Warnw("page watch error", "err", err)
	}
	for _, p := range paths {
		if !prefabs.SamePath(p, g.pagePath) {
			continue
		}
		spec, err := prefabs.LoadPageSpec(g.pagePath)
		if err != nil {
			g.log.Warnw("page reload failed; keeping current page", "err", err)
			return
		}
		pg, err := page.Build(spec, page.WithClipboard(g.clip), page.WithLogger(g.log))
		if err != nil {
			g.log.Warnw("page rebuild failed; keeping current page", "err", err)
			return
		}
		pg.Layout(g.surface.Size())
		g.page = pg
		ebiten.SetWindowTitle(pg.Title())
		g.log.Infow("page reloaded", "path", g.pagePath, "page", pg.String())
		return
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.page.Draw(screen)
	g.surface.DrawTo(screen)

	if g.debug {
		st := g.engine.Stats()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  particles: %d  loop: %s  bursts: %d  excluded: %d  throttled: %d",
			ebiten.ActualFPS(), g.engine.Active(), g.engine.State(), st.Bursts, st.Excluded, g.spawn.Dropped()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.viewport.Observe(time.Now(), outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
