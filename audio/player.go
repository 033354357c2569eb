// Package audio plays the cube's hover tone. Audio is optional: every
// method is a no-op when the speaker could not be opened.
package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player owns the speaker and a mixer that one-shot tones are added to.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	logger      *log.Logger

	// speaker hooks, replaced in tests
	openSpeaker func(beep.SampleRate, int) error
	playSpeaker func(...beep.Streamer)
}

func NewPlayer(muted bool, logger *log.Logger) *Player {
	return &Player{
		mixer:       &beep.Mixer{},
		muted:       muted,
		logger:      logger,
		openSpeaker: speaker.Init,
		playSpeaker: speaker.Play,
	}
}

// Init opens the speaker, muted or not, so unmuting later is audible.
// Callers treat failure as non-fatal.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := p.openSpeaker(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("open speaker: %w", err)
	}
	p.playSpeaker(p.mixer)
	p.initialized = true
	return nil
}

// PlayHover queues the hover tone.
func (p *Player) PlayHover() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	tone, err := HoverTone(SampleRate)
	if err != nil {
		if p.logger != nil {
			p.logger.Printf("audio: hover tone: %v", err)
		}
		return
	}
	speaker.Lock()
	p.mixer.Add(tone)
	speaker.Unlock()
}

func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Close silences anything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
