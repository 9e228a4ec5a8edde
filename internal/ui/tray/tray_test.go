package tray

import "testing"

func TestStatus(t *testing.T) {
	if got := Status("Focus", "24:59"); got != "Focus 24:59" {
		t.Errorf("Status = %q", got)
	}
	if got := Status("Break", "05:00"); got != "Break 05:00" {
		t.Errorf("Status = %q", got)
	}
}

func TestSetRunningTogglesLabel(t *testing.T) {
	manager := New(nil, Callbacks{})
	if manager.toggleItem.Label != "Start" {
		t.Fatalf("initial toggle label = %q, want Start", manager.toggleItem.Label)
	}

	manager.SetRunning(true)
	if manager.toggleItem.Label != "Stop" {
		t.Errorf("toggle label = %q, want Stop", manager.toggleItem.Label)
	}

	manager.SetRunning(false)
	if manager.toggleItem.Label != "Start" {
		t.Errorf("toggle label = %q, want Start", manager.toggleItem.Label)
	}
}

func TestSetStatusUpdatesItem(t *testing.T) {
	manager := New(nil, Callbacks{})
	manager.SetStatus("Focus 12:34")
	if manager.statusItem.Label != "Focus 12:34" {
		t.Errorf("status label = %q", manager.statusItem.Label)
	}
}
