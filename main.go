package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"portfolio-arcade/achievement"
	"portfolio-arcade/audio"
	"portfolio-arcade/cube"
	"portfolio-arcade/game"
	"portfolio-arcade/storage"
	"portfolio-arcade/tui"
	"portfolio-arcade/ui"

	"golang.org/x/exp/rand"
)

// firstVisitDelay is how long the arcade waits before welcoming the player.
const firstVisitDelay = 2 * time.Second

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		// parseConfig has already printed the error
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg Config) error {
	if cfg.Store != storage.KindMemory || cfg.Frontend == frontendTUI {
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}

	// The terminal owns stdout, so the tui logs to a file
	var out io.Writer = os.Stderr
	if cfg.Frontend == frontendTUI {
		f, err := os.OpenFile(filepath.Join(cfg.DataDir, "arcade.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := log.New(out, "[arcade] ", log.LstdFlags)

	store, err := storage.Open(cfg.Store, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store, err)
	}
	defer store.Close()

	registry := achievement.NewRegistry(store, logger)
	toasts := achievement.NewToasts(achievement.ToastDuration)
	registry.Subscribe(toasts.Add)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	latest := &game.Latest{}
	engine := game.NewEngine(game.Options{
		Store:    store,
		Logger:   logger,
		Notifier: registry,
		Listener: latest,
		Rand:     rand.New(rand.NewSource(seed)),
	})
	loop := game.NewLoop(engine, cfg.Speed)
	model := cube.NewModel(registry, logger)
	player := audio.NewPlayer(cfg.Muted, logger)

	welcome := time.AfterFunc(firstVisitDelay, func() {
		registry.NotifyEvent(achievement.FirstVisit)
	})
	defer welcome.Stop()

	logger.Printf("starting %s frontend, store=%s speed=%s", cfg.Frontend, cfg.Store, cfg.Speed)

	switch cfg.Frontend {
	case frontendTUI:
		return tui.NewApp(tui.Options{
			Loop:     loop,
			Latest:   latest,
			Cube:     model,
			Registry: registry,
			Toasts:   toasts,
			Player:   player,
			Logger:   logger,
		}).Run()
	default:
		return ui.NewApp(ui.Options{
			Loop:     loop,
			Latest:   latest,
			Cube:     model,
			Registry: registry,
			Toasts:   toasts,
			Player:   player,
			Logger:   logger,
		}).Run()
	}
}
