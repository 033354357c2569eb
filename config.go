package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"portfolio-arcade/game/types"
	"portfolio-arcade/storage"
)

// Frontends accepted by -frontend.
const (
	frontendRaylib = "raylib"
	frontendTUI    = "tui"
)

// Config is the command line of the arcade.
type Config struct {
	Frontend string
	Store    string
	DataDir  string
	Speed    time.Duration
	Seed     uint64
	Muted    bool
}

func parseConfig(args []string, output io.Writer) (Config, error) {
	fs := flag.NewFlagSet("arcade", flag.ContinueOnError)
	fs.SetOutput(output)

	var cfg Config
	speed := fs.Int("speed", int(types.TickInterval/time.Millisecond), "Snake tick in milliseconds")
	fs.StringVar(&cfg.Frontend, "frontend", frontendRaylib, "Frontend to run (raylib, tui)")
	fs.StringVar(&cfg.Store, "store", storage.KindJSON, "Persistence backend (json, sqlite, memory)")
	fs.StringVar(&cfg.DataDir, "data", "data", "Directory for saved scores and achievements")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "Food placement seed (0 = time based)")
	fs.BoolVar(&cfg.Muted, "mute", false, "Start with sound off")
	// flag reports its own parse errors to output
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Speed = time.Duration(*speed) * time.Millisecond
	if err := cfg.validate(); err != nil {
		fmt.Fprintln(output, err)
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Frontend {
	case frontendRaylib, frontendTUI:
	default:
		return fmt.Errorf("unknown frontend %q", c.Frontend)
	}
	switch c.Store {
	case storage.KindJSON, storage.KindSQLite, storage.KindMemory:
	default:
		return fmt.Errorf("unknown store %q", c.Store)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("speed must be positive, got %s", c.Speed)
	}
	return nil
}
