// Package audio plays the TV hum. Its loudness follows the screen glow.
package audio

import (
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const (
	// Mains hum and its first harmonic
	humFrequency    = 60.0
	humHarmonic     = 120.0
	harmonicWeight  = 0.35
	levelSlewPerSec = 4.0
)

// Hum is an endless two-tone drone. Its target level may be changed from any
// goroutine; the played level slews toward it to avoid clicks.
type Hum struct {
	rate   beep.SampleRate
	phase  [2]float64
	level  float64
	target atomic.Uint64
}

func NewHum(rate beep.SampleRate) *Hum {
	return &Hum{rate: rate}
}

// SetLevel sets the target level, clamped to [0, 1]
func (h *Hum) SetLevel(level float64) {
	level = math.Max(0, math.Min(1, level))
	h.target.Store(math.Float64bits(level))
}

// Level returns the target level
func (h *Hum) Level() float64 {
	return math.Float64frombits(h.target.Load())
}

func (h *Hum) Stream(samples [][2]float64) (n int, ok bool) {
	target := h.Level()
	step := levelSlewPerSec / float64(h.rate)

	for i := range samples {
		switch {
		case h.level < target:
			h.level = math.Min(target, h.level+step)
		case h.level > target:
			h.level = math.Max(target, h.level-step)
		}

		val := math.Sin(2*math.Pi*h.phase[0]) + harmonicWeight*math.Sin(2*math.Pi*h.phase[1])
		val *= h.level / (1 + harmonicWeight)

		samples[i][0] = val
		samples[i][1] = val

		h.phase[0] = advance(h.phase[0], humFrequency, h.rate)
		h.phase[1] = advance(h.phase[1], humHarmonic, h.rate)
	}

	return len(samples), true
}

func (h *Hum) Err() error { return nil }

func advance(phase, freq float64, rate beep.SampleRate) float64 {
	phase += freq / float64(rate)
	return phase - math.Floor(phase)
}

// math.Log2(0) is -Inf, so a zero volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
