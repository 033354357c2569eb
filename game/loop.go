package game

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"portfolio-arcade/game/types"
)

// Loop drives an Engine on a fixed period. The timer is one-shot and only
// re-armed after a tick body returns, so ticks never overlap and a slow
// tick pushes the next one back.
type Loop struct {
	engine   *Engine
	interval time.Duration

	mutex   sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewLoop creates a loop for engine. A non-positive interval uses the
// default 150ms tick.
func NewLoop(engine *Engine, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = types.TickInterval
	}
	return &Loop{
		engine:   engine,
		interval: interval,
	}
}

// Engine returns the driven engine.
func (l *Loop) Engine() *Engine {
	return l.engine
}

// Start starts (or restarts after game over) a game and its tick loop. It is
// a no-op while a game is being played.
func (l *Loop) Start() bool {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.engine.State() == StatePlaying {
		return false
	}
	l.halt()

	if !l.engine.Start() {
		return false
	}
	if l.engine.State() != StatePlaying {
		return true
	}

	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.running.Store(true)
	l.wg.Add(1)
	go l.run(ctx)
	return true
}

// Stop halts the tick loop and returns the engine to its start state. It
// waits for an in-flight tick, so it must not be called from a Listener.
func (l *Loop) Stop() {
	l.mutex.Lock()
	l.halt()
	l.mutex.Unlock()

	l.engine.Stop()
}

// Running reports whether the tick goroutine is alive.
func (l *Loop) Running() bool {
	return l.running.Load()
}

// halt cancels the tick goroutine and waits for it. Caller holds mutex.
func (l *Loop) halt() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.wg.Wait()
	l.running.Store(false)
}

func (l *Loop) run(ctx context.Context) {
	defer l.wg.Done()

	timer := time.NewTimer(l.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			if !l.engine.Tick() {
				l.running.Store(false)
				return
			}
			timer.Reset(l.interval)
		}
	}
}
