package mainwin

import (
	"image/color"

	"focusring/internal/core/engine"
	"focusring/internal/core/model"
	"focusring/internal/ui/dial"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var (
	focusColor = color.NRGBA{R: 255, G: 99, B: 99, A: 255}
	breakColor = color.NRGBA{R: 76, G: 175, B: 80, A: 255}
	clockColor = color.NRGBA{R: 235, G: 235, B: 235, A: 255}
	labelColor = color.NRGBA{R: 25, G: 25, B: 25, A: 255}
)

// Window is the single timer screen: status pill, progress ring with the
// clock in its center, and the two controls.
type Window struct {
	window      fyne.Window
	eng         *engine.Engine
	pill        *canvas.Rectangle
	pillLabel   *canvas.Text
	clockLabel  *canvas.Text
	ring        *dial.Dial
	startButton *widget.Button
	resetButton *widget.Button
}

// New builds the timer screen and wires its controls to the engine.
// Closing the window hides it; the application lives in the tray.
func New(app fyne.App, eng *engine.Engine) *Window {
	window := app.NewWindow("FocusRing")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	pill := canvas.NewRectangle(focusColor)
	pill.CornerRadius = 14

	pillLabel := canvas.NewText("FOCUS", labelColor)
	pillLabel.TextStyle = fyne.TextStyle{Bold: true}
	pillLabel.TextSize = 14
	pillLabel.Alignment = fyne.TextAlignCenter

	clockLabel := canvas.NewText(engine.FormatClock(eng.Remaining()), clockColor)
	clockLabel.TextStyle = fyne.TextStyle{Bold: true}
	clockLabel.TextSize = 44
	clockLabel.Alignment = fyne.TextAlignCenter

	ring := dial.New(focusColor)

	win := &Window{
		window:     window,
		eng:        eng,
		pill:       pill,
		pillLabel:  pillLabel,
		clockLabel: clockLabel,
		ring:       ring,
	}

	win.startButton = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), func() {
		if eng.Running() {
			eng.Stop()
		} else {
			eng.Start()
		}
	})
	win.startButton.Importance = widget.HighImportance

	win.resetButton = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), func() {
		eng.Reset()
	})

	pillBox := container.NewCenter(container.NewStack(
		pill,
		container.NewPadded(pillLabel),
	))
	ringBox := container.NewStack(ring, container.NewCenter(clockLabel))
	controls := container.NewCenter(container.NewHBox(win.startButton, win.resetButton))

	content := container.NewPadded(container.NewBorder(
		container.NewPadded(pillBox),
		container.NewPadded(controls),
		nil, nil,
		ringBox,
	))
	window.SetContent(content)
	window.Resize(fyne.NewSize(340, 420))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return win
}

// Show displays the timer screen.
func (win *Window) Show() {
	win.window.Show()
	win.window.RequestFocus()
}

// Window exposes the underlying Fyne window for tray wiring.
func (win *Window) Window() fyne.Window {
	return win.window
}

// Apply re-renders the screen from an engine event. Safe to call from any
// goroutine.
func (win *Window) Apply(event engine.Event) {
	fyne.Do(func() {
		win.applyUnsafe(event)
	})
}

func (win *Window) applyUnsafe(event engine.Event) {
	modeColor := focusColor
	modeName := "FOCUS"
	if event.Mode == model.ModeBreak {
		modeColor = breakColor
		modeName = "BREAK"
	}

	win.pill.FillColor = modeColor
	win.pill.Refresh()
	win.pillLabel.Text = modeName
	win.pillLabel.Refresh()

	win.clockLabel.Text = event.Clock
	win.clockLabel.Refresh()

	win.ring.SetColor(modeColor)
	win.ring.SetProgress(event.Progress)

	if event.Running {
		win.startButton.SetText("Stop")
		win.startButton.SetIcon(theme.MediaStopIcon())
	} else {
		win.startButton.SetText("Start")
		win.startButton.SetIcon(theme.MediaPlayIcon())
	}
}
