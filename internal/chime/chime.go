package chime

import (
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	toneFrequency = 660
	toneLength    = 350 * time.Millisecond
)

// Player plays the phase-completion chime. Failures are swallowed: a machine
// without a working audio device simply stays silent.
type Player struct {
	initOnce sync.Once
	initErr  error

	mu      sync.Mutex
	enabled bool
	volume  float64
}

// NewPlayer creates a chime player. Volume is clamped to [0, 1].
func NewPlayer(enabled bool, volume float64) *Player {
	return &Player{enabled: enabled, volume: clampVolume(volume)}
}

// SetEnabled toggles the chime.
func (player *Player) SetEnabled(enabled bool) {
	player.mu.Lock()
	defer player.mu.Unlock()
	player.enabled = enabled
}

// SetVolume updates the chime volume, clamped to [0, 1].
func (player *Player) SetVolume(volume float64) {
	player.mu.Lock()
	defer player.mu.Unlock()
	player.volume = clampVolume(volume)
}

// Pulse plays a short sine tone. The speaker is initialized lazily on the
// first audible pulse; init errors silence every later pulse too.
func (player *Player) Pulse() {
	player.mu.Lock()
	enabled := player.enabled
	volume := player.volume
	player.mu.Unlock()
	if !enabled || volume <= 0 {
		return
	}

	player.initOnce.Do(func() {
		player.initErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})
	if player.initErr != nil {
		return
	}

	tone, err := generators.SinTone(sampleRate, toneFrequency)
	if err != nil {
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: beep.Take(sampleRate.N(toneLength), tone),
		Base:     2,
		Volume:   (volume - 1) * 4,
	})
}

func clampVolume(volume float64) float64 {
	if volume < 0 {
		return 0
	}
	if volume > 1 {
		return 1
	}
	return volume
}
