package preferences

import (
	"fmt"
	"strconv"
	"time"

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

	hours    *widget.Entry
	minutes  *widget.Entry
	seconds  *widget.Entry
	tick     *widget.Entry
	chime    *widget.Check
	idle     *widget.Check
	autorun  *widget.Check
	zenStart *widget.Check
	opacity  *widget.Slider
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("FloatTimer Settings")

	hours := widget.NewEntry()
	minutes := widget.NewEntry()
	seconds := widget.NewEntry()
	tick := widget.NewEntry()

	hours.SetText(fmt.Sprintf("%d", settings.CountdownHours))
	minutes.SetText(fmt.Sprintf("%d", settings.CountdownMinutes))
	seconds.SetText(fmt.Sprintf("%d", settings.CountdownSeconds))
	tick.SetText(fmt.Sprintf("%d", int(settings.TickInterval/time.Millisecond)))

	chime := widget.NewCheck("Chime when a countdown ends", nil)
	chime.SetChecked(settings.ChimeEnabled)

	idle := widget.NewCheck("Stop the stopwatch when idle", nil)
	idle.SetChecked(settings.IdleEnabled)

	autorun := widget.NewCheck("Launch on login", nil)
	autorun.SetChecked(settings.Autostart)

	zenStart := widget.NewCheck("Start in zen mode", nil)
	zenStart.SetChecked(settings.ZenOnStart)

	opacity := widget.NewSlider(0.7, 0.95)
	opacity.Value = settings.WidgetOpacity
	opacity.Step = 0.01

	form := container.NewVBox(
		widget.NewLabelWithStyle("Default countdown", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(hours, widget.NewLabel("h"), minutes, widget.NewLabel("m"), seconds, widget.NewLabel("s")),
		widget.NewLabelWithStyle("Behaviour", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Redraw tick"), tick, widget.NewLabel("ms")),
		chime,
		idle,
		autorun,
		zenStart,
		widget.NewLabel("Widget opacity"),
		opacity,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, form)
	window.SetContent(content)
	window.Resize(fyne.NewSize(400, 420))

	prefs := &Window{
		window:   window,
		settings: settings,
		onSave:   onSave,
		hours:    hours,
		minutes:  minutes,
		seconds:  seconds,
		tick:     tick,
		chime:    chime,
		idle:     idle,
		autorun:  autorun,
		zenStart: zenStart,
		opacity:  opacity,
	}

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = prefs.handleCancel
	window.SetCloseIntercept(prefs.handleCancel)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces the window values with the given settings.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.hours.SetText(fmt.Sprintf("%d", settings.CountdownHours))
	prefs.minutes.SetText(fmt.Sprintf("%d", settings.CountdownMinutes))
	prefs.seconds.SetText(fmt.Sprintf("%d", settings.CountdownSeconds))
	prefs.tick.SetText(fmt.Sprintf("%d", int(settings.TickInterval/time.Millisecond)))
	prefs.chime.SetChecked(settings.ChimeEnabled)
	prefs.idle.SetChecked(settings.IdleEnabled)
	prefs.autorun.SetChecked(settings.Autostart)
	prefs.zenStart.SetChecked(settings.ZenOnStart)
	prefs.opacity.Value = settings.WidgetOpacity
	prefs.opacity.Refresh()
}

// handleCancel discards unsaved edits and hides the window.
func (prefs *Window) handleCancel() {
	prefs.UpdateSettings(prefs.settings)
	prefs.window.Hide()
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	hours := parseNonNegativeInt(prefs.hours.Text)
	minutes := parseNonNegativeInt(prefs.minutes.Text)
	seconds := parseNonNegativeInt(prefs.seconds.Text)
	if hours+minutes+seconds > 0 {
		settings.CountdownHours = hours
		settings.CountdownMinutes = minutes
		settings.CountdownSeconds = seconds
	}

	if millis := parseNonNegativeInt(prefs.tick.Text); millis > 0 {
		settings.TickInterval = time.Duration(millis) * time.Millisecond
	}

	settings.ChimeEnabled = prefs.chime.Checked
	settings.IdleEnabled = prefs.idle.Checked
	settings.Autostart = prefs.autorun.Checked
	settings.ZenOnStart = prefs.zenStart.Checked
	settings.WidgetOpacity = prefs.opacity.Value

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parseNonNegativeInt(value string) int {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0
	}
	return parsed
}
