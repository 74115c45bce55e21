// Package audio plays the short pulse the player hears when an NPC lands a
// hit. Audio is optional: if the speaker cannot be opened the player is
// silent and the game carries on.
package audio

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	// PulseDuration is how long one hit pulse sounds.
	PulseDuration = 120 * time.Millisecond
	pulseFreq     = 90.0
	pulseVolume   = 0.3
)

// ErrClosed is returned when initialising a player that was closed.
var ErrClosed = errors.New("audio player closed")

// Player mixes pulses onto the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	closed      bool
}

// NewPlayer creates a player. Call Init before Pulse has any effect.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker. It is safe to call more than once.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Pulse plays one hit pulse. Louder hits are not distinguished.
func (p *Player) Pulse() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(NewPulse(sampleRate, PulseDuration))
	speaker.Unlock()
}

// Close silences the player.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}

// pulse is a low square wave with a linear fade out.
type pulse struct {
	rate     beep.SampleRate
	length   int
	position int
}

// NewPulse returns a streamer producing one pulse of duration d.
func NewPulse(rate beep.SampleRate, d time.Duration) beep.Streamer {
	return &pulse{rate: rate, length: rate.N(d)}
}

func (s *pulse) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.length {
			return i, i > 0
		}
		t := float64(s.position) / float64(s.rate)
		phase := t*pulseFreq - math.Floor(t*pulseFreq)

		val := pulseVolume
		if phase >= 0.5 {
			val = -pulseVolume
		}
		val *= 1 - float64(s.position)/float64(s.length)

		samples[i][0] = val
		samples[i][1] = val
		s.position++
	}
	return len(samples), true
}

func (s *pulse) Err() error { return nil }
