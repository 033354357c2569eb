package game

import (
	"log"
	"sync"
	"time"

	"portfolio-arcade/achievement"
	"portfolio-arcade/game/entity"
	"portfolio-arcade/game/manager"
	"portfolio-arcade/game/types"
	"portfolio-arcade/storage"

	"golang.org/x/exp/rand"
)

// Options configures an Engine. Zero values fall back to defaults.
type Options struct {
	Grid     types.Grid
	Store    storage.Store
	Logger   *log.Logger
	Notifier achievement.Notifier
	Listener Listener
	Rand     *rand.Rand
	Stats    *manager.GameStats
	Now      func() time.Time
}

// Engine is the snake state machine. All methods are safe for concurrent use;
// the tick loop and input handlers may run on different goroutines.
type Engine struct {
	mu sync.Mutex

	grid    types.Grid
	state   State
	snake   *entity.Snake
	food    types.Point
	pending types.Direction
	score   int
	newBest bool
	ticks   uint64
	started time.Time

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	scores       *manager.ScoreManager
	stats        *manager.GameStats

	notifier achievement.Notifier
	listener Listener
	logger   *log.Logger
	now      func() time.Time
}

func NewEngine(opts Options) *Engine {
	grid := opts.Grid
	if grid.CellSize == 0 {
		grid = types.DefaultGrid()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	stats := opts.Stats
	if stats == nil {
		stats = manager.NewGameStats(manager.GroupSize)
	}
	listener := opts.Listener
	if listener == nil {
		listener = nopListener{}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	collisionMgr := manager.NewCollisionManager(grid)
	e := &Engine{
		grid:         grid,
		state:        StateStart,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, rng),
		scores:       manager.NewScoreManager(opts.Store, opts.Logger),
		stats:        stats,
		notifier:     achievement.OrDiscard(opts.Notifier),
		listener:     listener,
		logger:       opts.Logger,
		now:          now,
	}
	e.snake = entity.NewSnake(grid, grid.Center(), types.Right)
	return e
}

// Start begins a new game from the Start or GameOver state.
func (e *Engine) Start() bool {
	e.mu.Lock()
	if e.state == StatePlaying {
		e.mu.Unlock()
		return false
	}

	e.snake = entity.NewSnake(e.grid, e.grid.Center(), types.Right)
	e.pending = types.None
	e.score = 0
	e.newBest = false
	e.ticks = 0
	e.started = e.now()
	e.state = StatePlaying

	food, ok := e.foodMgr.GenerateFood(e.snake)
	if !ok {
		// a board with a single cell has no room for food
		ev := e.gameOverLocked(manager.BoardFull)
		e.mu.Unlock()
		e.emitGameOver(ev)
		return true
	}
	e.food = food
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.logf("snake: game started, food at %v", food)
	e.listener.OnFrame(snap)
	return true
}

// QueueDirection records d for the next tick. Reversals of the applied
// direction and calls outside Playing are ignored. The last accepted call
// before a tick wins.
func (e *Engine) QueueDirection(d types.Direction) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StatePlaying {
		return
	}
	if !types.ResolveDirection(e.snake.Direction, d) {
		return
	}
	e.pending = d
}

// Stop returns the widget to the Start state from any state.
func (e *Engine) Stop() {
	e.mu.Lock()
	e.state = StateStart
	e.pending = types.None
	e.newBest = false
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.listener.OnFrame(snap)
}

// Tick advances one step. It reports whether the game is still running.
func (e *Engine) Tick() bool {
	e.mu.Lock()
	if e.state != StatePlaying {
		e.mu.Unlock()
		return false
	}
	e.ticks++

	if e.pending != types.None {
		e.snake.SetDirection(e.pending)
		e.pending = types.None
	}

	newHead := e.snake.NextHead()
	if collision := e.collisionMgr.CheckCollision(newHead, e.snake); collision != manager.NoCollision {
		ev := e.gameOverLocked(collision)
		e.mu.Unlock()
		e.emitGameOver(ev)
		return false
	}

	ate := e.collisionMgr.IsFoodCollision(newHead, e.food)
	if ate {
		e.snake.Grow(newHead)
		e.score += types.FoodPoints
		food, ok := e.foodMgr.GenerateFood(e.snake)
		if !ok {
			ev := e.gameOverLocked(manager.BoardFull)
			e.mu.Unlock()
			e.notifier.NotifyEvent(achievement.FoodCollector)
			e.emitGameOver(ev)
			return false
		}
		e.food = food
	} else {
		e.snake.Advance(newHead)
	}
	snap := e.snapshotLocked()
	e.mu.Unlock()

	if ate {
		e.notifier.NotifyEvent(achievement.FoodCollector)
	}
	e.listener.OnFrame(snap)
	return true
}

// gameOverLocked finishes the current game. Caller holds mu and must deliver
// the returned event after unlocking.
func (e *Engine) gameOverLocked(reason manager.CollisionType) GameOverEvent {
	e.state = StateGameOver
	e.pending = types.None

	best, newBest := e.scores.Submit(e.score)
	e.newBest = newBest

	end := e.now()
	record := e.stats.AddGame(e.score, e.started, end)

	e.logf("snake: game over (%s) score=%d best=%d newBest=%t", reason, e.score, best, newBest)

	return GameOverEvent{
		Score:     e.score,
		BestScore: best,
		NewBest:   newBest,
		Reason:    reason,
		Length:    e.snake.Len(),
		Duration:  end.Sub(e.started),
		RecordID:  record.ID,
	}
}

func (e *Engine) emitGameOver(ev GameOverEvent) {
	if ev.Score >= types.MasterScore {
		e.notifier.NotifyEvent(achievement.SnakeMaster)
	}
	e.listener.OnGameOver(ev)
}

// Snapshot returns the current board for rendering.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	overlay := OverlayNone
	switch e.state {
	case StateStart:
		overlay = OverlayStart
	case StateGameOver:
		overlay = OverlayGameOver
	}
	return Snapshot{
		Grid:      e.grid,
		State:     e.state,
		Overlay:   overlay,
		Snake:     e.snake.Cells(),
		Food:      e.food,
		Direction: e.snake.Direction,
		Score:     e.score,
		BestScore: e.scores.GetBestScore(),
		NewBest:   e.newBest,
		Tick:      e.ticks,
	}
}

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) Score() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.score
}

func (e *Engine) BestScore() int {
	return e.scores.GetBestScore()
}

// Stats exposes the session history.
func (e *Engine) Stats() *manager.GameStats {
	return e.stats
}

func (e *Engine) logf(format string, args ...any) {
	if e.logger != nil {
		e.logger.Printf(format, args...)
	}
}
