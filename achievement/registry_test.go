package achievement

import (
	"encoding/json"
	"testing"

	"portfolio-arcade/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDefaultsAllLocked(t *testing.T) {
	r := NewRegistry(storage.NewMemoryStore(), nil)

	list := r.List()
	require.Len(t, list, 8)
	assert.Equal(t, FirstVisit, list[0].ID)
	assert.Equal(t, CubeMaster, list[7].ID)
	for _, a := range list {
		assert.False(t, a.Unlocked, a.ID)
	}
	assert.Equal(t, 0, r.Unlocked())
}

func TestRegistryUnlockOnce(t *testing.T) {
	store := storage.NewMemoryStore()
	r := NewRegistry(store, nil)

	var notified []string
	r.Subscribe(func(a Achievement) { notified = append(notified, a.ID) })

	assert.True(t, r.Unlock(CubeExplorer))
	assert.False(t, r.Unlock(CubeExplorer))
	r.NotifyEvent(CubeExplorer)
	assert.False(t, r.Unlock("no-such-achievement"))

	assert.Equal(t, []string{CubeExplorer}, notified)
	assert.Equal(t, 1, r.Unlocked())

	raw, ok, err := store.Get(storage.AchievementsKey)
	require.NoError(t, err)
	require.True(t, ok)

	saved := map[string]Achievement{}
	require.NoError(t, json.Unmarshal([]byte(raw), &saved))
	assert.True(t, saved[CubeExplorer].Unlocked)
	assert.Equal(t, "Cube Explorer", saved[CubeExplorer].Name)
}

func TestRegistryReloadsSavedSet(t *testing.T) {
	store := storage.NewMemoryStore()
	first := NewRegistry(store, nil)
	first.Unlock(SnakeMaster)

	second := NewRegistry(store, nil)
	a, ok := second.Get(SnakeMaster)
	require.True(t, ok)
	assert.True(t, a.Unlocked)
	assert.False(t, second.Unlock(SnakeMaster))
}

func TestRegistryMigratesDeprecatedEntries(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(storage.AchievementsKey,
		`{"sound-lover":{"name":"Sound Lover","description":"x","unlocked":true},
		  "food-collector":{"name":"Food Collector","description":"Ate food in Snake game","unlocked":true}}`))

	r := NewRegistry(store, nil)

	_, ok := r.Get("sound-lover")
	assert.False(t, ok)
	fc, _ := r.Get(FoodCollector)
	assert.True(t, fc.Unlocked)

	raw, _, _ := store.Get(storage.AchievementsKey)
	assert.NotContains(t, raw, "sound-lover")
}

func TestRegistryToleratesMalformedSet(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(storage.AchievementsKey, "not json"))

	r := NewRegistry(store, nil)
	assert.Len(t, r.List(), 8)
	assert.Equal(t, 0, r.Unlocked())
}

func TestOrDiscard(t *testing.T) {
	assert.NotPanics(t, func() { OrDiscard(nil).NotifyEvent(FirstVisit) })

	var got string
	n := OrDiscard(NotifierFunc(func(id string) { got = id }))
	n.NotifyEvent(CubeMaster)
	assert.Equal(t, CubeMaster, got)
}
