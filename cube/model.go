package cube

import (
	"log"
	"math"
	"sync"
	"time"

	"portfolio-arcade/achievement"
)

// dragSession exists only between BeginDrag and EndDrag.
type dragSession struct {
	last      Pointer
	candidate Velocity
}

// Model is the cube interaction state. Methods are safe for concurrent use.
type Model struct {
	mu sync.Mutex

	rotation Orientation
	velocity Velocity
	scale    float64

	drag      *dragSession
	floatTime float64

	interactions    int
	explorerAwarded bool
	resetAt         time.Time

	notifier achievement.Notifier
	logger   *log.Logger
}

// NewModel creates a cube at rest. notifier and logger may be nil.
func NewModel(notifier achievement.Notifier, logger *log.Logger) *Model {
	return &Model{
		scale:    DefaultScale,
		notifier: achievement.OrDiscard(notifier),
		logger:   logger,
	}
}

// BeginDrag opens a drag session at p and cancels any momentum.
func (m *Model) BeginDrag(p Pointer) {
	m.mu.Lock()
	m.drag = &dragSession{last: p}
	m.velocity = Velocity{}
	m.interactions++
	award := m.interactions >= ExplorerThreshold && !m.explorerAwarded
	if award {
		m.explorerAwarded = true
	}
	m.mu.Unlock()

	if award {
		m.logf("cube: %d interactions", ExplorerThreshold)
		m.notifier.NotifyEvent(achievement.CubeExplorer)
	}
}

// UpdateDrag rotates by the pointer delta since the last position. It
// reports false when no drag is active. A move to the same position keeps
// the previous throw velocity.
func (m *Model) UpdateDrag(p Pointer) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.drag == nil {
		return false
	}
	dx := p.X - m.drag.last.X
	dy := p.Y - m.drag.last.Y
	if dx == 0 && dy == 0 {
		return true
	}

	m.rotation.Y += dx * DragRotation
	m.rotation.X += dy * DragRotation
	m.drag.candidate = Velocity{X: dy * ReleaseDamping, Y: dx * ReleaseDamping}
	m.drag.last = p
	return true
}

// EndDrag closes the session and throws the cube with the last candidate
// velocity.
func (m *Model) EndDrag() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.drag == nil {
		return
	}
	m.velocity = ClampVelocity(m.drag.candidate)
	m.drag = nil
}

// Tick advances one display frame and returns the transform to draw.
func (m *Model) Tick(now time.Time) Transform {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.resetAt.IsZero() && !now.Before(m.resetAt) {
		m.resetLocked()
	}

	m.floatTime += FloatStep

	if m.drag == nil && m.velocity.moving() {
		m.rotation.X += m.velocity.X
		m.rotation.Y += m.velocity.Y
		m.velocity = m.velocity.decay()
	} else if m.drag == nil && !m.velocity.IsZero() {
		// a component sitting exactly on the threshold would never decay
		m.velocity = Velocity{}
	}

	offset := 0.0
	if m.drag == nil && m.velocity.resting() {
		offset = math.Sin(m.floatTime) * FloatAmplitude
	}
	return Transform{
		RotationX:   m.rotation.X,
		RotationY:   m.rotation.Y,
		Scale:       m.scale,
		FloatOffset: offset,
	}
}

// Zoom handles one wheel step. Positive deltaY scrolls down and zooms out;
// zero is ignored.
func (m *Model) Zoom(deltaY float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case deltaY > 0:
		m.scale = ClampScale(m.scale - ZoomStep)
	case deltaY < 0:
		m.scale = ClampScale(m.scale + ZoomStep)
	}
}

// ApplyImpulse sets one velocity axis to magnitude, clamped.
func (m *Model) ApplyImpulse(axis Axis, magnitude float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := m.velocity
	if axis == AxisY {
		v.Y = magnitude
	} else {
		v.X = magnitude
	}
	m.velocity = ClampVelocity(v)
}

// Halt stops any spin without touching orientation or scale.
func (m *Model) Halt() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.velocity = Velocity{}
}

// Reset returns the cube to its home pose.
func (m *Model) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetLocked()
}

func (m *Model) resetLocked() {
	m.rotation = Orientation{}
	m.velocity = Velocity{}
	m.scale = DefaultScale
	m.resetAt = time.Time{}
}

// SpinReset spins the cube and schedules a Reset SpinResetDelay after now.
// The reset happens on the first Tick at or after the deadline.
func (m *Model) SpinReset(now time.Time) {
	m.mu.Lock()
	m.velocity.Y = SpinVelocity
	m.resetAt = now.Add(SpinResetDelay)
	m.mu.Unlock()

	m.notifier.NotifyEvent(achievement.CubeMaster)
}

func (m *Model) Orientation() Orientation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rotation
}

func (m *Model) Velocity() Velocity {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.velocity
}

func (m *Model) Scale() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scale
}

func (m *Model) Dragging() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.drag != nil
}

// Interactions counts BeginDrag calls.
func (m *Model) Interactions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.interactions
}

// ResetPending reports whether a SpinReset is waiting for its deadline.
func (m *Model) ResetPending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.resetAt.IsZero()
}

func (m *Model) logf(format string, args ...any) {
	if m.logger != nil {
		m.logger.Printf(format, args...)
	}
}
