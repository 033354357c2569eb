package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

const (
	SampleRate = beep.SampleRate(44100)

	HoverFrequency = 400.0
	HoverDuration  = 100 * time.Millisecond
	HoverGainStart = 0.02
	HoverGainEnd   = 0.001
)

// HoverTone is the short blip played when the pointer enters the cube.
func HoverTone(rate beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, HoverFrequency)
	if err != nil {
		return nil, err
	}
	n := rate.N(HoverDuration)
	return NewExpRamp(beep.Take(n, sine), n, HoverGainStart, HoverGainEnd), nil
}

// expRamp scales a stream by a gain that moves exponentially from start to
// end over total samples.
type expRamp struct {
	streamer beep.Streamer
	position int
	total    int
	start    float64
	end      float64
}

// NewExpRamp wraps s with an exponential gain ramp. start and end must be
// positive.
func NewExpRamp(s beep.Streamer, total int, start, end float64) beep.Streamer {
	return &expRamp{
		streamer: s,
		total:    total,
		start:    start,
		end:      end,
	}
}

// Gain returns the ramp value at sample pos.
func (r *expRamp) Gain(pos int) float64 {
	if r.total <= 1 || pos >= r.total-1 {
		return r.end
	}
	frac := float64(pos) / float64(r.total-1)
	return r.start * math.Pow(r.end/r.start, frac)
}

func (r *expRamp) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = r.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := r.Gain(r.position)
		samples[i][0] *= g
		samples[i][1] *= g
		r.position++
	}
	return n, ok
}

func (r *expRamp) Err() error { return r.streamer.Err() }
