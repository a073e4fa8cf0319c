package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/clickburst/prefabs"
)

func main() {
	configPath := flag.String("config", "", "burst.yaml to load instead of the embedded one")
	pagePath := flag.String("page", "", "page.yaml to load instead of the embedded one")
	watch := flag.Bool("watch", false, "rebuild the page when its file changes")
	logLevel := flag.String("log", "info", "log level: debug, info, warn, error")
	logFile := flag.String("logfile", "", "write logs to this file")
	seed := flag.Uint64("seed", 0, "particle RNG seed (0 = time based)")
	debug := flag.Bool("debug", false, "draw FPS and particle counters")
	flag.Parse()

	if err := run(*configPath, *pagePath, *watch, *logLevel, *logFile, *seed, *debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, pagePath string, watch bool, logLevel, logFile string, seed uint64, debug bool) error {
	log, err := newLogger(logLevel, logFile)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg, err := prefabs.LoadBurstConfig(configPath)
	if err != nil {
		return err
	}

	if watch && pagePath == "" {
		// Load prefers prefabs/ on disk, so watch that copy when it exists.
		if _, err := os.Stat(filepath.Join("prefabs", "page.yaml")); err == nil {
			pagePath = filepath.Join("prefabs", "page.yaml")
		} else {
			log.Warnw("-watch needs -page or prefabs/page.yaml on disk; watching disabled")
		}
	}
	spec, err := prefabs.LoadPageSpec(pagePath)
	if err != nil {
		return err
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)

	game, err := NewGame(GameOptions{
		Config:   cfg,
		Page:     spec,
		PagePath: pagePath,
		Watch:    watch,
		Seed:     seed,
		Debug:    debug,
		Log:      log,
	})
	if err != nil {
		return err
	}
	defer func() { _ = game.Close() }()
	ebiten.SetWindowTitle(game.page.Title())

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
