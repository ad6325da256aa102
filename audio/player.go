package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/akmonengine/hearth"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player owns the speaker and the hum streamer
type Player struct {
	mu          sync.Mutex
	hum         *Hum
	ctrl        *beep.Ctrl
	volume      float64
	initialized bool
}

// NewPlayer creates a player. Volume scales the hum, 1 being full scale.
func NewPlayer(volume float64) *Player {
	hum := NewHum(sampleRate)
	return &Player{
		hum:    hum,
		ctrl:   &beep.Ctrl{Streamer: newVolume(hum, volume)},
		volume: volume,
	}
}

// Start opens the speaker and starts the hum
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.ctrl)
	p.initialized = true

	slog.Debug("audio started", "sampleRate", int(sampleRate), "volume", p.volume)
	return nil
}

// Attach makes the hum follow the screen glow published with every frame
func (p *Player) Attach(events *hearth.Events) *hearth.Subscription {
	return events.Subscribe(hearth.FRAME, func(event hearth.Event) {
		p.hum.SetLevel(event.(hearth.FrameEvent).Ambient.EmissiveIntensity)
	})
}

// Hum returns the streamer driven by Attach
func (p *Player) Hum() *Hum {
	return p.hum
}

// Close silences the hum and releases the speaker. Safe to call without Start.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()

	speaker.Close()
	p.initialized = false
}
