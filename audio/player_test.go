package audio

import (
	"errors"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestPlayer returns a player whose speaker hooks only count calls.
func newTestPlayer(muted bool, openErr error) (*Player, *int) {
	opened := 0
	p := NewPlayer(muted, nil)
	p.openSpeaker = func(beep.SampleRate, int) error {
		opened++
		return openErr
	}
	p.playSpeaker = func(...beep.Streamer) {}
	return p, &opened
}

func TestMutedPlayerIsSilent(t *testing.T) {
	p, _ := newTestPlayer(true, nil)
	require.NoError(t, p.Init())
	assert.True(t, p.Muted())

	p.PlayHover()
	assert.Zero(t, p.mixer.Len())
	p.Close()
}

func TestStartMutedThenUnmute(t *testing.T) {
	p, opened := newTestPlayer(true, nil)
	require.NoError(t, p.Init())
	assert.Equal(t, 1, *opened, "speaker opens even when muted")

	p.PlayHover()
	assert.Zero(t, p.mixer.Len())

	p.SetMuted(false)
	p.PlayHover()
	assert.Equal(t, 1, p.mixer.Len())

	require.NoError(t, p.Init())
	assert.Equal(t, 1, *opened)
	p.Close()
	assert.Zero(t, p.mixer.Len())
}

func TestPlayerWithoutSpeaker(t *testing.T) {
	p, _ := newTestPlayer(false, errors.New("no device"))
	assert.Error(t, p.Init())

	p.PlayHover()
	assert.Zero(t, p.mixer.Len())
}
