package audio

import (
	"log"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"

	"breathbox/internal/core/breath"
)

const (
	chimeSampleRate = beep.SampleRate(44100)
	chimeLength     = 200 * time.Millisecond
)

// Chime plays a short tone when a breathing movement begins: one pitch for
// the inhale, a lower one for the exhale. The holds stay silent. A missing
// audio device degrades to silence, never a crash.
type Chime struct {
	mu      sync.Mutex
	enabled bool
	ready   bool
}

// NewChime initialises the speaker and returns a Chime.
func NewChime(enabled bool) *Chime {
	chime := &Chime{enabled: enabled}
	if err := speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/10)); err != nil {
		log.Printf("chime: speaker init: %v", err)
		return chime
	}
	chime.ready = true
	return chime
}

// SetEnabled toggles playback.
func (chime *Chime) SetEnabled(enabled bool) {
	chime.mu.Lock()
	chime.enabled = enabled
	chime.mu.Unlock()
}

// PhaseChanged plays the tone for the phase that just began, if any.
func (chime *Chime) PhaseChanged(phase breath.Phase) {
	frequency := toneFrequency(phase)
	if frequency == 0 {
		return
	}

	chime.mu.Lock()
	play := chime.enabled && chime.ready
	chime.mu.Unlock()
	if !play {
		return
	}

	tone, err := generators.SinTone(chimeSampleRate, frequency)
	if err != nil {
		log.Printf("chime: tone %d Hz: %v", frequency, err)
		return
	}
	speaker.Play(beep.Take(chimeSampleRate.N(chimeLength), tone))
}

func toneFrequency(phase breath.Phase) int {
	switch phase {
	case breath.PhaseInhale:
		return 523 // C5
	case breath.PhaseExhale:
		return 392 // G4
	default:
		return 0
	}
}
