package mainwindow

import (
	"context"
	"image/color"
	"strconv"

	"floattimer/internal/core/timer"
	"floattimer/internal/ui/flash"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Config defines widget visuals.
type Config struct {
	Opacity    uint8
	ZenOnStart bool
}

// Window is the floating timer widget.
type Window struct {
	app    fyne.App
	window fyne.Window
	config Config
	engine *timer.Engine

	background *canvas.Rectangle
	clockLabel *canvas.Text
	hintLabel  *canvas.Text

	modeRadio    *widget.RadioGroup
	hoursEntry   *widget.Entry
	minutesEntry *widget.Entry
	secondsEntry *widget.Entry
	applyButton  *widget.Button
	startButton  *widget.Button
	stopButton   *widget.Button
	resetButton  *widget.Button
	closeButton  *widget.Button

	controls []fyne.CanvasObject
	zen      bool

	flashEngine *flash.Engine
	onQuit      func()
}

var (
	baseColor   = color.NRGBA{R: 31, G: 35, B: 42, A: 255}
	textColor   = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
	dangerColor = color.NRGBA{R: 185, G: 28, B: 28, A: 255}
)

const (
	modeLabelStopwatch = "Stopwatch"
	modeLabelCountdown = "Countdown"
)

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates the widget window around an engine.
func New(app fyne.App, engine *timer.Engine, config Config) *Window {
	window := app.NewWindow("FloatTimer")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	widgetWindow := &Window{
		app:    app,
		window: window,
		config: config,
		engine: engine,
	}

	widgetWindow.buildContent()
	widgetWindow.bindKeys()
	widgetWindow.flashEngine = flash.New(flash.DefaultConfig(),
		widgetWindow.backgroundColor(), widgetWindow.dangerBackgroundColor(),
		widgetWindow.setBackground)

	if config.ZenOnStart {
		widgetWindow.setZen(true)
	}
	widgetWindow.syncFromEngine()
	widgetWindow.applyWindowMode()
	return widgetWindow
}

func (widgetWindow *Window) buildContent() {
	widgetWindow.background = canvas.NewRectangle(widgetWindow.backgroundColor())

	widgetWindow.clockLabel = canvas.NewText("00:00:00", textColor)
	widgetWindow.clockLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	widgetWindow.clockLabel.TextSize = 34
	widgetWindow.clockLabel.Alignment = fyne.TextAlignLeading

	widgetWindow.hintLabel = canvas.NewText("", dangerColor)
	widgetWindow.hintLabel.TextSize = 11

	widgetWindow.closeButton = widget.NewButton("×", func() {
		if widgetWindow.onQuit != nil {
			widgetWindow.onQuit()
		}
	})

	widgetWindow.modeRadio = widget.NewRadioGroup(
		[]string{modeLabelStopwatch, modeLabelCountdown},
		widgetWindow.handleModeChange,
	)
	widgetWindow.modeRadio.Horizontal = true
	widgetWindow.modeRadio.Required = true

	widgetWindow.hoursEntry = newDurationEntry("0")
	widgetWindow.minutesEntry = newDurationEntry("5")
	widgetWindow.secondsEntry = newDurationEntry("0")
	widgetWindow.applyButton = widget.NewButton("Apply", widgetWindow.handleApply)
	for _, entry := range widgetWindow.durationEntries() {
		entry.OnSubmitted = func(string) {
			widgetWindow.handleApply()
		}
	}

	widgetWindow.startButton = widget.NewButton("Start", widgetWindow.handleStart)
	widgetWindow.stopButton = widget.NewButton("Stop", widgetWindow.handleStop)
	widgetWindow.resetButton = widget.NewButton("Reset", widgetWindow.handleReset)

	header := container.New(&headerLayout{}, widgetWindow.clockLabel, widgetWindow.closeButton)
	modeRow := container.NewHBox(widgetWindow.modeRadio, layout.NewSpacer())
	configRow := container.NewHBox(
		widgetWindow.hoursEntry, widget.NewLabel("h"),
		widgetWindow.minutesEntry, widget.NewLabel("m"),
		widgetWindow.secondsEntry, widget.NewLabel("s"),
		widgetWindow.applyButton,
	)
	controlRow := container.NewHBox(
		widgetWindow.startButton,
		widgetWindow.stopButton,
		layout.NewSpacer(),
		widgetWindow.resetButton,
	)

	widgetWindow.controls = []fyne.CanvasObject{modeRow, configRow, controlRow}

	body := container.NewVBox(header, widgetWindow.hintLabel, modeRow, configRow, controlRow)
	padded := container.New(&paddedBodyLayout{}, body)
	root := container.NewStack(widgetWindow.background, padded)
	widgetWindow.window.SetContent(root)
}

func newDurationEntry(initial string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText(initial)
	return entry
}

func (widgetWindow *Window) durationEntries() []*widget.Entry {
	return []*widget.Entry{
		widgetWindow.hoursEntry,
		widgetWindow.minutesEntry,
		widgetWindow.secondsEntry,
	}
}

func (widgetWindow *Window) bindKeys() {
	widgetWindow.window.Canvas().SetOnTypedKey(func(event *fyne.KeyEvent) {
		switch event.Name {
		case fyne.KeySpace:
			widgetWindow.toggleStartStop()
		case fyne.KeyR:
			widgetWindow.handleReset()
		case fyne.KeyReturn, fyne.KeyEnter:
			widgetWindow.ToggleZen()
		case fyne.KeyEscape:
			if widgetWindow.onQuit != nil {
				widgetWindow.onQuit()
			}
		}
	})
}

// Show displays the widget.
func (widgetWindow *Window) Show() {
	widgetWindow.window.Show()
	widgetWindow.window.RequestFocus()
}

// Hide conceals the widget without stopping the timer.
func (widgetWindow *Window) Hide() {
	widgetWindow.window.Hide()
}

// SetOnQuit sets the handler for the close button and Escape.
func (widgetWindow *Window) SetOnQuit(handler func()) {
	widgetWindow.onQuit = handler
}

// UpdateConfig updates widget visuals.
func (widgetWindow *Window) UpdateConfig(config Config) {
	widgetWindow.config = config
	widgetWindow.flashEngine.Stop()
	widgetWindow.flashEngine = flash.New(flash.DefaultConfig(),
		widgetWindow.backgroundColor(), widgetWindow.dangerBackgroundColor(),
		widgetWindow.setBackground)
	widgetWindow.setBackground(widgetWindow.backgroundColor())
	widgetWindow.applyWindowMode()
}

// RefreshClock re-reads the engine and updates the clock face and control
// states. Safe to call from any goroutine.
func (widgetWindow *Window) RefreshClock() {
	fyne.Do(widgetWindow.syncFromEngine)
}

// FlashExpired runs the expiry flash sequence.
func (widgetWindow *Window) FlashExpired() {
	widgetWindow.flashEngine.Start(context.Background())
}

// StopFlash cancels any flash in progress.
func (widgetWindow *Window) StopFlash() {
	widgetWindow.flashEngine.Stop()
}

// ToggleZen switches between the full widget and the clock-only face.
func (widgetWindow *Window) ToggleZen() {
	widgetWindow.setZen(!widgetWindow.zen)
	widgetWindow.applyWindowMode()
}

func (widgetWindow *Window) setZen(zen bool) {
	widgetWindow.zen = zen
	for _, control := range widgetWindow.controls {
		if zen {
			control.Hide()
		} else {
			control.Show()
		}
	}
	if zen {
		widgetWindow.closeButton.Hide()
		widgetWindow.hintLabel.Hide()
	} else {
		widgetWindow.closeButton.Show()
		widgetWindow.hintLabel.Show()
	}
}

func (widgetWindow *Window) toggleStartStop() {
	if widgetWindow.engine.Running() {
		widgetWindow.handleStop()
		return
	}
	widgetWindow.handleStart()
}

func (widgetWindow *Window) handleStart() {
	widgetWindow.StopFlash()
	if widgetWindow.engine.Mode() == timer.ModeCountdown {
		widgetWindow.applyEntries()
	}
	widgetWindow.engine.Start()
	widgetWindow.syncFromEngine()
}

func (widgetWindow *Window) handleStop() {
	widgetWindow.engine.Stop()
	widgetWindow.syncFromEngine()
}

func (widgetWindow *Window) handleReset() {
	widgetWindow.StopFlash()
	widgetWindow.engine.Reset()
	widgetWindow.syncFromEngine()
}

func (widgetWindow *Window) handleApply() {
	widgetWindow.applyEntries()
	widgetWindow.syncFromEngine()
}

func (widgetWindow *Window) handleModeChange(selected string) {
	widgetWindow.StopFlash()
	if selected == modeLabelCountdown {
		widgetWindow.engine.SetMode(timer.ModeCountdown)
		widgetWindow.applyEntries()
	} else {
		widgetWindow.engine.SetMode(timer.ModeStopwatch)
	}
	widgetWindow.syncFromEngine()
}

func (widgetWindow *Window) applyEntries() {
	hours := parseEntry(widgetWindow.hoursEntry)
	minutes := parseEntry(widgetWindow.minutesEntry)
	seconds := parseEntry(widgetWindow.secondsEntry)

	if err := widgetWindow.engine.ConfigureCountdown(hours, minutes, seconds); err != nil {
		widgetWindow.hintLabel.Text = "countdown needs a duration above zero"
		widgetWindow.hintLabel.Refresh()
		return
	}
	widgetWindow.hintLabel.Text = ""
	widgetWindow.hintLabel.Refresh()
}

func parseEntry(entry *widget.Entry) int {
	value, err := strconv.Atoi(entry.Text)
	if err != nil {
		return 0
	}
	return value
}

func (widgetWindow *Window) syncFromEngine() {
	snapshot := widgetWindow.engine.Snapshot()

	widgetWindow.clockLabel.Text = widgetWindow.engine.DisplayText()
	widgetWindow.clockLabel.Refresh()

	if snapshot.Mode == timer.ModeCountdown {
		widgetWindow.modeRadio.Selected = modeLabelCountdown
	} else {
		widgetWindow.modeRadio.Selected = modeLabelStopwatch
	}
	widgetWindow.modeRadio.Refresh()

	configurable := snapshot.Mode == timer.ModeCountdown && !snapshot.Running
	for _, entry := range widgetWindow.durationEntries() {
		setEnabled(entry, configurable)
	}
	setEnabled(widgetWindow.applyButton, configurable)

	interrupted := !snapshot.Running && !snapshot.Expired &&
		(snapshot.Elapsed > 0 || snapshot.Remaining < snapshot.Configured)
	if interrupted {
		widgetWindow.startButton.SetText("Resume")
	} else {
		widgetWindow.startButton.SetText("Start")
	}
	setEnabled(widgetWindow.startButton, !snapshot.Running && !snapshot.Expired)
	setEnabled(widgetWindow.stopButton, snapshot.Running)

	if snapshot.Expired {
		widgetWindow.hintLabel.Text = "time's up, press R to reset"
		widgetWindow.hintLabel.Refresh()
	}
}

type disableable interface {
	Enable()
	Disable()
}

func setEnabled(target disableable, enabled bool) {
	if enabled {
		target.Enable()
		return
	}
	target.Disable()
}

func (widgetWindow *Window) setBackground(fill color.Color) {
	fyne.Do(func() {
		widgetWindow.background.FillColor = fill
		canvas.Refresh(widgetWindow.background)
	})
}

func (widgetWindow *Window) backgroundColor() color.Color {
	return color.NRGBA{R: baseColor.R, G: baseColor.G, B: baseColor.B, A: widgetWindow.config.Opacity}
}

func (widgetWindow *Window) dangerBackgroundColor() color.Color {
	return color.NRGBA{R: dangerColor.R, G: dangerColor.G, B: dangerColor.B, A: widgetWindow.config.Opacity}
}

func (widgetWindow *Window) applyWindowMode() {
	if widgetWindow.zen {
		widgetWindow.window.Resize(fyne.NewSize(240, 80))
	} else {
		widgetWindow.window.Resize(fyne.NewSize(360, 190))
	}
	widgetWindow.window.CenterOnScreen()
	widgetWindow.applyNativeOpacity(widgetWindow.config.Opacity)
}
