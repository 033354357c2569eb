package game

import (
	"testing"
	"time"

	"portfolio-arcade/game/manager"
	"portfolio-arcade/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopRunsUntilGameOver(t *testing.T) {
	e, rec := newTestEngine(t, nil)
	loop := NewLoop(e, 2*time.Millisecond)

	require.True(t, loop.Start())
	assert.Equal(t, StatePlaying, e.State())
	assert.False(t, loop.Start(), "start while playing is a no-op")

	// nothing steers, so the snake runs into the right wall
	require.Eventually(t, func() bool { return !loop.Running() }, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, StateGameOver, e.State())
	_, ok := rec.lastGameOver()
	assert.True(t, ok)

	require.True(t, loop.Start(), "restart after game over")
	assert.True(t, loop.Running())
	loop.Stop()
}

func TestLoopStop(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	loop := NewLoop(e, time.Hour)

	require.True(t, loop.Start())
	assert.True(t, loop.Running())

	loop.Stop()
	assert.False(t, loop.Running())
	assert.Equal(t, StateStart, e.State())
	assert.Same(t, e, loop.Engine())

	// stopping twice is harmless
	loop.Stop()
	assert.Equal(t, StateStart, e.State())
}

func TestLoopDefaultInterval(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	loop := NewLoop(e, 0)
	assert.Equal(t, 150*time.Millisecond, loop.interval)
}

func TestLatestListener(t *testing.T) {
	latest := &Latest{}
	e := NewEngine(Options{Listener: latest})

	require.True(t, e.Start())
	assert.Equal(t, StatePlaying, latest.Frame().State)
	_, over := latest.GameOver()
	assert.False(t, over)

	placeSnake(e, types.Up, types.Point{X: 100, Y: 0})
	require.False(t, e.Tick())
	ev, over := latest.GameOver()
	require.True(t, over)
	assert.Equal(t, manager.WallCollision, ev.Reason)

	require.True(t, e.Start())
	_, over = latest.GameOver()
	assert.False(t, over, "cleared by the next game")
}
