package achievement

import (
	"encoding/json"
	"log"
	"sync"

	"portfolio-arcade/storage"
)

// Achievement is one entry of the persisted set.
type Achievement struct {
	ID          string `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

// deprecatedIDs are dropped from saved sets on load.
var deprecatedIDs = []string{"sound-lover"}

var catalog = []Achievement{
	{ID: FirstVisit, Name: "Welcome!", Description: "Visited the portfolio"},
	{ID: Explorer, Name: "Explorer", Description: "Visited all sections"},
	{ID: KonamiMaster, Name: "Konami Master", Description: "Used the Konami code"},
	{ID: ThemeSwitcher, Name: "Style Master", Description: "Changed the theme"},
	{ID: FoodCollector, Name: "Food Collector", Description: "Ate food in Snake game"},
	{ID: SnakeMaster, Name: "Snake Master", Description: "Scored 50+ in Snake game"},
	{ID: CubeExplorer, Name: "Cube Explorer", Description: "Interacted with the 3D cube 10 times"},
	{ID: CubeMaster, Name: "Cube Master", Description: "Found the cube reset feature"},
}

// Registry is the achievement set. It implements Notifier.
type Registry struct {
	mu          sync.Mutex
	order       []string
	entries     map[string]*Achievement
	subscribers []func(Achievement)
	store       storage.Store
	logger      *log.Logger
}

// NewRegistry builds the catalog and overlays whatever store holds.
func NewRegistry(store storage.Store, logger *log.Logger) *Registry {
	r := &Registry{
		entries: make(map[string]*Achievement, len(catalog)),
		store:   store,
		logger:  logger,
	}
	for _, a := range catalog {
		a := a
		r.order = append(r.order, a.ID)
		r.entries[a.ID] = &a
	}
	r.load()
	return r
}

func (r *Registry) load() {
	raw, ok := storage.Load(r.logger, r.store, storage.AchievementsKey)
	if !ok {
		return
	}

	saved := make(map[string]Achievement)
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		r.logf("achievements: ignoring malformed saved set: %v", err)
		return
	}

	migrated := false
	for _, id := range deprecatedIDs {
		if _, ok := saved[id]; ok {
			delete(saved, id)
			migrated = true
		}
	}

	for id, a := range saved {
		a.ID = id
		if _, known := r.entries[id]; !known {
			r.order = append(r.order, id)
		}
		a := a
		r.entries[id] = &a
	}

	if migrated {
		r.save()
	}
}

// save must be called with mu held or before the registry is shared.
func (r *Registry) save() {
	data, err := json.Marshal(r.entries)
	if err != nil {
		r.logf("achievements: marshal failed: %v", err)
		return
	}
	storage.Persist(r.logger, r.store, storage.AchievementsKey, string(data))
}

// Unlock marks id as unlocked. Unknown and already unlocked ids are ignored.
// It reports whether this call performed the unlock.
func (r *Registry) Unlock(id string) bool {
	r.mu.Lock()
	a, ok := r.entries[id]
	if !ok || a.Unlocked {
		r.mu.Unlock()
		return false
	}
	a.Unlocked = true
	r.save()
	unlocked := *a
	subs := make([]func(Achievement), len(r.subscribers))
	copy(subs, r.subscribers)
	r.mu.Unlock()

	r.logf("achievement unlocked: %s", unlocked.Name)
	for _, fn := range subs {
		fn(unlocked)
	}
	return true
}

// NotifyEvent implements Notifier.
func (r *Registry) NotifyEvent(id string) {
	r.Unlock(id)
}

// Subscribe registers fn to be called after every new unlock. fn runs on the
// goroutine that reported the event.
func (r *Registry) Subscribe(fn func(Achievement)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subscribers = append(r.subscribers, fn)
}

// Get returns a copy of the entry for id.
func (r *Registry) Get(id string) (Achievement, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.entries[id]
	if !ok {
		return Achievement{}, false
	}
	return *a, true
}

// List returns all entries in catalog order.
func (r *Registry) List() []Achievement {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Achievement, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.entries[id])
	}
	return out
}

// Unlocked counts unlocked entries.
func (r *Registry) Unlocked() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, a := range r.entries {
		if a.Unlocked {
			n++
		}
	}
	return n
}

func (r *Registry) logf(format string, args ...any) {
	if r.logger != nil {
		r.logger.Printf(format, args...)
	}
}
