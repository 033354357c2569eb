// Package storage provides the small key-value store that holds the best
// score and the achievement set between sessions.
package storage

import (
	"fmt"
	"log"
	"path/filepath"
)

// Well-known keys.
const (
	BestScoreKey    = "snake-best-score"
	AchievementsKey = "portfolio-achievements"
)

// Backend kinds accepted by Open.
const (
	KindMemory = "memory"
	KindJSON   = "json"
	KindSQLite = "sqlite"
)

// Store is a string key-value store. Get reports ok=false for missing keys.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Close() error
}

// Open creates the backend named by kind, rooted at dir.
func Open(kind, dir string) (Store, error) {
	switch kind {
	case KindMemory:
		return NewMemoryStore(), nil
	case KindJSON, "":
		return NewFileStore(filepath.Join(dir, "arcade.json"))
	case KindSQLite:
		return NewSQLiteStore(filepath.Join(dir, "arcade.db"))
	default:
		return nil, fmt.Errorf("unknown store kind %q", kind)
	}
}

// Persist writes value under key and swallows any failure after logging it.
// Gameplay never depends on a write succeeding.
func Persist(logger *log.Logger, store Store, key, value string) {
	if store == nil {
		return
	}
	if err := store.Set(key, value); err != nil && logger != nil {
		logger.Printf("storage: failed to persist %s: %v", key, err)
	}
}

// Load reads key, treating errors like a missing key after logging them.
func Load(logger *log.Logger, store Store, key string) (string, bool) {
	if store == nil {
		return "", false
	}
	value, ok, err := store.Get(key)
	if err != nil {
		if logger != nil {
			logger.Printf("storage: failed to load %s: %v", key, err)
		}
		return "", false
	}
	return value, ok
}
