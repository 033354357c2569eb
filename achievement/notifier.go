// Package achievement tracks the unlock-once milestones reported by the
// snake and cube widgets.
package achievement

// Event ids emitted by the simulation cores.
const (
	FirstVisit    = "first-visit"
	Explorer      = "explorer"
	KonamiMaster  = "konami-master"
	ThemeSwitcher = "theme-switcher"
	FoodCollector = "food-collector"
	SnakeMaster   = "snake-master"
	CubeExplorer  = "cube-explorer"
	CubeMaster    = "cube-master"
)

// Notifier receives fire-and-forget achievement events. Implementations own
// the unlock-once semantics; callers never look at the outcome.
type Notifier interface {
	NotifyEvent(id string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(id string)

func (f NotifierFunc) NotifyEvent(id string) { f(id) }

// Discard drops every event.
var Discard Notifier = NotifierFunc(func(string) {})

// OrDiscard returns n, or Discard when n is nil.
func OrDiscard(n Notifier) Notifier {
	if n == nil {
		return Discard
	}
	return n
}
