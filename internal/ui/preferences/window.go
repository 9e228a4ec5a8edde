package preferences

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window   fyne.Window
	settings Settings
	onSave   func(Settings)

	sound    *widget.Check
	volume   *widget.Slider
	darkMode *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("FocusRing Settings")

	sound := widget.NewCheck("Chime when a phase ends", nil)
	sound.SetChecked(settings.SoundEnabled)

	volume := widget.NewSlider(0, 1)
	volume.Value = settings.Volume
	volume.Step = 0.05

	darkMode := widget.NewCheck("Dark theme", nil)
	darkMode.SetChecked(settings.DarkMode)

	form := container.NewVBox(
		widget.NewLabelWithStyle("General", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		sound,
		widget.NewLabel("Chime volume"),
		volume,
		darkMode,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, form)
	window.SetContent(content)
	window.Resize(fyne.NewSize(360, 260))

	prefs := &Window{
		window:   window,
		settings: settings,
		onSave:   onSave,
		sound:    sound,
		volume:   volume,
		darkMode: darkMode,
	}

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.sound.SetChecked(settings.SoundEnabled)
	prefs.volume.Value = settings.Volume
	prefs.volume.Refresh()
	prefs.darkMode.SetChecked(settings.DarkMode)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings
	settings.SoundEnabled = prefs.sound.Checked
	settings.Volume = prefs.volume.Value
	settings.DarkMode = prefs.darkMode.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}
