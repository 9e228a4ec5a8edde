package model

import "time"

// Mode is one of the two Pomodoro phases.
type Mode string

const (
	ModeFocus Mode = "focus"
	ModeBreak Mode = "break"
)

// Classic Pomodoro durations.
const (
	DefaultFocusDuration = 25 * time.Minute
	DefaultBreakDuration = 5 * time.Minute
)

// EngineConfig contains the phase durations for the timer engine.
type EngineConfig struct {
	FocusDuration time.Duration
	BreakDuration time.Duration
}

// DefaultEngineConfig returns the classic 25/5 Pomodoro split.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		FocusDuration: DefaultFocusDuration,
		BreakDuration: DefaultBreakDuration,
	}
}

// DurationFor returns the full countdown duration of the given mode.
func (config EngineConfig) DurationFor(mode Mode) time.Duration {
	if mode == ModeBreak {
		return config.BreakDuration
	}
	return config.FocusDuration
}

// Opposite returns the other Pomodoro phase.
func (mode Mode) Opposite() Mode {
	if mode == ModeFocus {
		return ModeBreak
	}
	return ModeFocus
}
