package model

import (
	"testing"
	"time"
)

func TestDurationFor(t *testing.T) {
	config := DefaultEngineConfig()
	if got := config.DurationFor(ModeFocus); got != 25*time.Minute {
		t.Errorf("focus duration = %v, want 25m", got)
	}
	if got := config.DurationFor(ModeBreak); got != 5*time.Minute {
		t.Errorf("break duration = %v, want 5m", got)
	}
}

func TestOpposite(t *testing.T) {
	if ModeFocus.Opposite() != ModeBreak {
		t.Error("focus should flip to break")
	}
	if ModeBreak.Opposite() != ModeFocus {
		t.Error("break should flip to focus")
	}
}
