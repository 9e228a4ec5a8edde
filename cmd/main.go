package main

import (
	"image/color"
	"log"
	"time"

	"focusring/internal/chime"
	"focusring/internal/core/engine"
	"focusring/internal/core/model"
	"focusring/internal/platform"
	"focusring/internal/storage"
	"focusring/internal/ui/mainwin"
	"focusring/internal/ui/preferences"
	"focusring/internal/ui/tray"
	"focusring/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
)

const appName = "FocusRing"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.focusring.app")
	fyneApp.SetIcon(resources.MustLogo("ring_active.png"))

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}
	applyTheme(fyneApp, settings.DarkMode)

	player := chime.NewPlayer(settings.SoundEnabled, settings.Volume)

	eng := engine.New(model.DefaultEngineConfig(), engine.Config{TickInterval: time.Second})
	eng.SetPulser(player)

	timerWindow := mainwin.New(fyneApp, eng)

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		player.SetEnabled(updated.SoundEnabled)
		player.SetVolume(updated.Volume)
		applyTheme(fyneApp, updated.DarkMode)
		if err := storage.SaveSettings(appName, updated); err != nil {
			log.Printf("save settings: %v", err)
		}
	})

	var trayManager *tray.Manager
	desktopApp, isDesktop := fyneApp.(desktop.App)
	if isDesktop {
		activeIcon := resources.MustLogo("ring_active.png")
		idleIcon := resources.MustLogo("ring_idle.png")
		desktopApp.SetSystemTrayIcon(idleIcon)

		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShowWindow: func() {
				timerWindow.Show()
			},
			OnPreferences: func() {
				prefsWindow.Show()
			},
			OnToggleRun: func() {
				if eng.Running() {
					eng.Stop()
				} else {
					eng.Start()
				}
			},
			OnReset: func() {
				eng.Reset()
			},
			OnQuit: func() {
				eng.Close()
				fyneApp.Quit()
			},
		})

		go watchRunState(eng, desktopApp, activeIcon, idleIcon)
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	events := eng.Subscribe(8)
	go func() {
		for event := range events {
			timerWindow.Apply(event)
			if trayManager != nil {
				trayManager.SetStatus(tray.Status(modeName(event.Mode), event.Clock))
				trayManager.SetRunning(event.Running)
			}
		}
	}()

	timerWindow.Show()
	fyneApp.Run()
}

// watchRunState swaps the tray icon between the active and idle tints.
func watchRunState(eng *engine.Engine, desktopApp desktop.App, activeIcon, idleIcon fyne.Resource) {
	events := eng.Subscribe(2)
	wasRunning := false
	for event := range events {
		if event.Running == wasRunning {
			continue
		}
		wasRunning = event.Running
		icon := idleIcon
		if event.Running {
			icon = activeIcon
		}
		fyne.Do(func() {
			desktopApp.SetSystemTrayIcon(icon)
		})
	}
}

func modeName(mode model.Mode) string {
	if mode == model.ModeBreak {
		return "Break"
	}
	return "Focus"
}

type forcedVariant struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (forced *forcedVariant) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return forced.Theme.Color(name, forced.variant)
}

func applyTheme(fyneApp fyne.App, dark bool) {
	variant := theme.VariantLight
	if dark {
		variant = theme.VariantDark
	}
	fyneApp.Settings().SetTheme(&forcedVariant{Theme: theme.DefaultTheme(), variant: variant})
}
