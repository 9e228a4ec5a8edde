package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowWindow  func()
	OnPreferences func()
	OnToggleRun   func()
	OnReset       func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	toggleItem  *fyne.MenuItem
	resetItem   *fyne.MenuItem
	callbacks   Callbacks
	running     bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Focus 25:00", nil)
	manager.statusItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnToggleRun != nil {
			manager.callbacks.OnToggleRun()
		}
	})

	manager.resetItem = fyne.NewMenuItem("Reset", func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})

	manager.refreshMenu()
	return manager
}

// SetStatus updates the mode and countdown line, e.g. "Focus 24:31".
func (manager *Manager) SetStatus(status string) {
	if status == manager.statusLabel {
		return
	}
	manager.statusLabel = status
	manager.statusItem.Label = status
	manager.refreshMenu()
}

// SetRunning flips the toggle item between Start and Stop.
func (manager *Manager) SetRunning(running bool) {
	if running == manager.running {
		return
	}
	manager.running = running
	if running {
		manager.toggleItem.Label = "Stop"
	} else {
		manager.toggleItem.Label = "Start"
	}
	manager.refreshMenu()
}

// Systray label updates only land after the menu itself is reset, so the
// whole menu is rebuilt on every change.
func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("FocusRing",
		manager.statusItem,
		fyne.NewMenuItem("Open timer", func() {
			if manager.callbacks.OnShowWindow != nil {
				manager.callbacks.OnShowWindow()
			}
		}),
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		manager.toggleItem,
		manager.resetItem,
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}

// Status formats a mode name and clock into the tray status line.
func Status(mode string, clock string) string {
	return fmt.Sprintf("%s %s", mode, clock)
}
