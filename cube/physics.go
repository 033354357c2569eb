package cube

import "time"

const (
	Friction      = 0.95
	MaxVelocity   = 15.0
	RestThreshold = 0.1

	// DragRotation maps pointer pixels to degrees while dragging.
	DragRotation = 0.8
	// ReleaseDamping maps the last pointer delta to the throw velocity.
	ReleaseDamping = 0.2

	FloatStep      = 0.02
	FloatAmplitude = 3.0

	MinScale     = 0.5
	MaxScale     = 2.0
	DefaultScale = 1.0
	ZoomStep     = 0.1

	ImpulseMagnitude  = 10.0
	SpinVelocity      = 12.0
	SpinResetDelay    = 800 * time.Millisecond
	ExplorerThreshold = 10
)

// Axis selects one rotation axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Orientation is the rotation in degrees around each axis. It is never
// wrapped.
type Orientation struct {
	X, Y float64
}

// Velocity is the angular velocity in degrees per frame.
type Velocity struct {
	X, Y float64
}

// IsZero reports whether both components are exactly zero.
func (v Velocity) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// moving reports whether either component is above the rest threshold.
func (v Velocity) moving() bool {
	return abs(v.X) > RestThreshold || abs(v.Y) > RestThreshold
}

// resting reports whether both components are below the rest threshold.
func (v Velocity) resting() bool {
	return abs(v.X) < RestThreshold && abs(v.Y) < RestThreshold
}

// decay applies one frame of friction and snaps slow components to zero.
func (v Velocity) decay() Velocity {
	v.X *= Friction
	v.Y *= Friction
	if abs(v.X) < RestThreshold {
		v.X = 0
	}
	if abs(v.Y) < RestThreshold {
		v.Y = 0
	}
	return v
}

// Pointer is a pointer or touch position in screen pixels.
type Pointer struct {
	X, Y float64
}

// ClampVelocity limits each component to [-MaxVelocity, MaxVelocity]. Every
// input path that sets velocity goes through it.
func ClampVelocity(v Velocity) Velocity {
	return Velocity{
		X: clamp(v.X, -MaxVelocity, MaxVelocity),
		Y: clamp(v.Y, -MaxVelocity, MaxVelocity),
	}
}

// ClampScale limits s to [MinScale, MaxScale].
func ClampScale(s float64) float64 {
	return clamp(s, MinScale, MaxScale)
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
