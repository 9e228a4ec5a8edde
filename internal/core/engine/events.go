package engine

import (
	"time"

	"focusring/internal/core/model"
)

// EventType defines the type of engine event.
type EventType string

const (
	// EventStateChange fires on start, stop and reset.
	EventStateChange EventType = "state_change"
	// EventTick fires once per countdown decrement.
	EventTick EventType = "tick"
	// EventModeChange fires when a phase completes and the opposite one begins.
	EventModeChange EventType = "mode_change"
)

// Event represents an engine update for observers.
type Event struct {
	Type      EventType
	Mode      model.Mode
	Running   bool
	Remaining time.Duration
	Progress  float64
	Clock     string
	At        time.Time
}

// Snapshot is a point-in-time copy of the observable engine state.
type Snapshot struct {
	Mode      model.Mode
	Running   bool
	Remaining time.Duration
}
