package chime

import "testing"

func TestClampVolume(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.8, 0.8},
		{1, 1},
		{2.5, 1},
	}

	for _, tt := range tests {
		if got := clampVolume(tt.in); got != tt.want {
			t.Errorf("clampVolume(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetVolumeClamps(t *testing.T) {
	player := NewPlayer(true, 0.5)
	player.SetVolume(4)
	if player.volume != 1 {
		t.Errorf("volume = %v, want 1", player.volume)
	}
	player.SetVolume(-1)
	if player.volume != 0 {
		t.Errorf("volume = %v, want 0", player.volume)
	}
}

// A disabled player must bail out before touching the audio device, so this
// is safe to run on machines with no sound hardware.
func TestDisabledPulseNeverInitializesSpeaker(t *testing.T) {
	player := NewPlayer(false, 0.9)
	player.Pulse()
	if player.initErr != nil {
		t.Errorf("speaker was initialized: %v", player.initErr)
	}

	muted := NewPlayer(true, 0)
	muted.Pulse()
	if muted.initErr != nil {
		t.Errorf("speaker was initialized for muted player: %v", muted.initErr)
	}
}
