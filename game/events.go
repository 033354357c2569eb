package game

import (
	"sync"
	"time"

	"portfolio-arcade/game/manager"
	"portfolio-arcade/game/types"
)

// State is the lifecycle of one snake widget.
type State int

const (
	StateStart State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "start"
	}
}

// Overlay tells the presentation layer which panel covers the board.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayStart
	OverlayGameOver
)

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Grid      types.Grid
	State     State
	Overlay   Overlay
	Snake     []types.Point
	Food      types.Point
	Direction types.Direction
	Score     int
	BestScore int
	NewBest   bool
	Tick      uint64
}

// GameOverEvent is delivered once when a game ends.
type GameOverEvent struct {
	Score     int
	BestScore int
	NewBest   bool
	Reason    manager.CollisionType
	Length    int
	Duration  time.Duration
	RecordID  string
}

// Listener receives engine output. Methods run with the engine unlocked, on
// whichever goroutine drove the tick.
type Listener interface {
	OnFrame(Snapshot)
	OnGameOver(GameOverEvent)
}

type nopListener struct{}

func (nopListener) OnFrame(Snapshot)         {}
func (nopListener) OnGameOver(GameOverEvent) {}

// Latest is a Listener that keeps the most recent frame and game over for a
// renderer polling at its own rate.
type Latest struct {
	mu    sync.Mutex
	frame Snapshot
	over  *GameOverEvent
}

func (l *Latest) OnFrame(s Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.frame = s
	if s.State != StateGameOver {
		l.over = nil
	}
}

func (l *Latest) OnGameOver(ev GameOverEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.over = &ev
}

// GameOver returns the event of the finished game until the board leaves
// the game-over state.
func (l *Latest) GameOver() (GameOverEvent, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.over == nil {
		return GameOverEvent{}, false
	}
	return *l.over, true
}

// Frame returns the last delivered snapshot.
func (l *Latest) Frame() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frame
}
