package achievement

import (
	"sync"
	"time"
)

// ToastDuration is how long an unlock notification stays on screen.
const ToastDuration = 3 * time.Second

type toast struct {
	text  string
	until time.Time
}

// Toasts collects unlock notifications for display. Subscribe its Add method
// to a Registry.
type Toasts struct {
	mu    sync.Mutex
	items []toast
	ttl   time.Duration
	now   func() time.Time
}

func NewToasts(ttl time.Duration) *Toasts {
	if ttl <= 0 {
		ttl = ToastDuration
	}
	return &Toasts{ttl: ttl, now: time.Now}
}

func (t *Toasts) Add(a Achievement) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items = append(t.items, toast{
		text:  "Achievement unlocked: " + a.Name + " - " + a.Description,
		until: t.now().Add(t.ttl),
	})
}

// Active drops expired notifications and returns the rest, oldest first.
func (t *Toasts) Active(now time.Time) []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.items[:0]
	for _, it := range t.items {
		if now.Before(it.until) {
			kept = append(kept, it)
		}
	}
	t.items = kept

	texts := make([]string, len(kept))
	for i, it := range kept {
		texts[i] = it.text
	}
	return texts
}
