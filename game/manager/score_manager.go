package manager

import (
	"log"
	"strconv"
	"strings"
	"sync"

	"portfolio-arcade/storage"
)

// ScoreManager owns the persisted best score.
type ScoreManager struct {
	mu        sync.RWMutex
	store     storage.Store
	logger    *log.Logger
	bestScore int
}

// NewScoreManager loads the saved best score. A missing or unreadable value
// starts from zero.
func NewScoreManager(store storage.Store, logger *log.Logger) *ScoreManager {
	sm := &ScoreManager{
		store:  store,
		logger: logger,
	}
	sm.load()
	return sm
}

func (sm *ScoreManager) load() {
	raw, ok := storage.Load(sm.logger, sm.store, storage.BestScoreKey)
	if !ok {
		return
	}
	best, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || best < 0 {
		if sm.logger != nil {
			sm.logger.Printf("score: ignoring saved best score %q", raw)
		}
		return
	}
	sm.bestScore = best
}

// Submit records a finished game's score. It returns the best score after
// the update and whether score beat the previous best.
func (sm *ScoreManager) Submit(score int) (best int, newBest bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if score <= sm.bestScore {
		return sm.bestScore, false
	}
	sm.bestScore = score
	storage.Persist(sm.logger, sm.store, storage.BestScoreKey, strconv.Itoa(score))
	return sm.bestScore, true
}

func (sm *ScoreManager) GetBestScore() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.bestScore
}
