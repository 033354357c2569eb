package input

import (
	"testing"
	"time"

	"portfolio-arcade/cube"
	"portfolio-arcade/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnakeDirection(t *testing.T) {
	cases := map[string]types.Direction{
		"w": types.Up, "W": types.Up, "ArrowUp": types.Up,
		"s": types.Down, "arrowdown": types.Down,
		"a": types.Left, "ArrowLeft": types.Left,
		"d": types.Right, "D": types.Right, "arrowright": types.Right,
	}
	for key, want := range cases {
		got, ok := SnakeDirection(key)
		assert.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}

	for _, key := range []string{"q", " ", "r", ""} {
		_, ok := SnakeDirection(key)
		assert.False(t, ok, "%q", key)
	}
}

func TestClassifySwipe(t *testing.T) {
	cases := []struct {
		dx, dy float64
		want   types.Direction
		ok     bool
	}{
		{dx: 80, dy: 10, want: types.Right, ok: true},
		{dx: -31, dy: 0, want: types.Left, ok: true},
		{dx: 5, dy: 60, want: types.Down, ok: true},
		{dx: 0, dy: -45, want: types.Up, ok: true},
		{dx: 30, dy: 0},
		{dx: 10, dy: -20},
		{dx: 40, dy: 40, want: types.Down, ok: true},
	}
	for _, tc := range cases {
		got, ok := ClassifySwipe(tc.dx, tc.dy)
		assert.Equal(t, tc.ok, ok, "(%v,%v)", tc.dx, tc.dy)
		assert.Equal(t, tc.want, got, "(%v,%v)", tc.dx, tc.dy)
	}
}

func TestSwipeStroke(t *testing.T) {
	var s Swipe
	_, ok := s.End(100, 100)
	assert.False(t, ok, "no stroke in progress")

	s.Begin(100, 100)
	d, ok := s.End(100, 20)
	require.True(t, ok)
	assert.Equal(t, types.Up, d)

	_, ok = s.End(300, 20)
	assert.False(t, ok, "stroke already ended")
}

func TestCubeCommandFor(t *testing.T) {
	cmd, ok := CubeCommandFor("ArrowLeft")
	require.True(t, ok)
	assert.Equal(t, CubeCommand{Kind: CommandImpulse, Axis: cube.AxisY, Magnitude: -10}, cmd)

	cmd, _ = CubeCommandFor("arrowdown")
	assert.Equal(t, CubeCommand{Kind: CommandImpulse, Axis: cube.AxisX, Magnitude: 10}, cmd)

	cmd, _ = CubeCommandFor("R")
	assert.Equal(t, CommandReset, cmd.Kind)

	cmd, _ = CubeCommandFor(" ")
	assert.Equal(t, CommandHalt, cmd.Kind)

	_, ok = CubeCommandFor("w")
	assert.False(t, ok)
}

func TestApplyCubeCommands(t *testing.T) {
	m := cube.NewModel(nil, nil)
	now := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)

	for _, key := range []string{KeyRight, KeyUp} {
		cmd, ok := CubeCommandFor(key)
		require.True(t, ok)
		Apply(m, cmd, now)
	}
	assert.Equal(t, cube.Velocity{X: -10, Y: 10}, m.Velocity())

	Apply(m, CubeCommand{Kind: CommandHalt}, now)
	assert.True(t, m.Velocity().IsZero())

	Apply(m, CubeCommand{Kind: CommandSpinReset}, now)
	assert.True(t, m.ResetPending())

	Apply(m, CubeCommand{Kind: CommandReset}, now)
	assert.False(t, m.ResetPending())
}

func TestDoubleClick(t *testing.T) {
	var d DoubleClick
	t0 := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)

	assert.False(t, d.Click(t0, 10, 10))
	assert.True(t, d.Click(t0.Add(300*time.Millisecond), 12, 11))
	assert.False(t, d.Click(t0.Add(350*time.Millisecond), 12, 11), "pair already consumed")

	assert.False(t, d.Click(t0.Add(time.Second), 12, 11), "outside the window")
	assert.False(t, d.Click(t0.Add(2*time.Second), 10, 10))
	assert.False(t, d.Click(t0.Add(2100*time.Millisecond), 80, 80), "too far away")
}

func TestKonami(t *testing.T) {
	var k Konami
	seq := []string{"x", "ArrowUp", "ArrowUp", "ArrowDown", "ArrowDown",
		"ArrowLeft", "ArrowRight", "ArrowLeft", "ArrowRight", "B"}

	for _, key := range seq {
		assert.False(t, k.Press(key), key)
	}
	assert.True(t, k.Press("a"))
	assert.False(t, k.Press("a"), "sequence restarts after a match")
}
