package input

import (
	"time"

	"portfolio-arcade/cube"
)

// CommandKind is what a cube command does.
type CommandKind int

const (
	CommandImpulse CommandKind = iota
	CommandReset
	CommandHalt
	CommandSpinReset
)

// CubeCommand is one keyboard or pointer action on the cube.
type CubeCommand struct {
	Kind      CommandKind
	Axis      cube.Axis
	Magnitude float64
}

// CubeCommandFor maps the cube's keyboard controls.
func CubeCommandFor(key string) (CubeCommand, bool) {
	switch Normalize(key) {
	case KeyLeft:
		return CubeCommand{Kind: CommandImpulse, Axis: cube.AxisY, Magnitude: -cube.ImpulseMagnitude}, true
	case KeyRight:
		return CubeCommand{Kind: CommandImpulse, Axis: cube.AxisY, Magnitude: cube.ImpulseMagnitude}, true
	case KeyUp:
		return CubeCommand{Kind: CommandImpulse, Axis: cube.AxisX, Magnitude: -cube.ImpulseMagnitude}, true
	case KeyDown:
		return CubeCommand{Kind: CommandImpulse, Axis: cube.AxisX, Magnitude: cube.ImpulseMagnitude}, true
	case "r":
		return CubeCommand{Kind: CommandReset}, true
	case KeySpace:
		return CubeCommand{Kind: CommandHalt}, true
	}
	return CubeCommand{}, false
}

// Apply runs cmd against m.
func Apply(m *cube.Model, cmd CubeCommand, now time.Time) {
	switch cmd.Kind {
	case CommandImpulse:
		m.ApplyImpulse(cmd.Axis, cmd.Magnitude)
	case CommandReset:
		m.Reset()
	case CommandHalt:
		m.Halt()
	case CommandSpinReset:
		m.SpinReset(now)
	}
}
