package tray

import (
	"fmt"

	"floattimer/internal/core/timer"
	"floattimer/internal/storage"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnToggleWidget func()
	OnPreferences  func()
	OnToggleRun    func()
	OnReset        func()
	OnSetMode      func(timer.Mode)
	OnQuit         func()
}

// Manager handles system tray state.
type Manager struct {
	app           desktop.App
	statusItem    *fyne.MenuItem
	widgetItem    *fyne.MenuItem
	runItem       *fyne.MenuItem
	modeItem      *fyne.MenuItem
	historyItem   *fyne.MenuItem
	callbacks     Callbacks
	running       bool
	widgetVisible bool
	statusLabel   string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:           app,
		callbacks:     callbacks,
		widgetVisible: true,
	}

	manager.statusItem = fyne.NewMenuItem("00:00:00", nil)
	manager.statusItem.Disabled = true

	manager.widgetItem = fyne.NewMenuItem("Hide widget", func() {
		if manager.callbacks.OnToggleWidget != nil {
			manager.callbacks.OnToggleWidget()
		}
	})

	manager.runItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnToggleRun != nil {
			manager.callbacks.OnToggleRun()
		}
	})

	manager.modeItem = fyne.NewMenuItem("Mode", nil)
	manager.modeItem.ChildMenu = fyne.NewMenu("",
		fyne.NewMenuItem("Stopwatch", func() {
			if manager.callbacks.OnSetMode != nil {
				manager.callbacks.OnSetMode(timer.ModeStopwatch)
			}
		}),
		fyne.NewMenuItem("Countdown", func() {
			if manager.callbacks.OnSetMode != nil {
				manager.callbacks.OnSetMode(timer.ModeCountdown)
			}
		}),
	)

	manager.historyItem = fyne.NewMenuItem("History", nil)
	manager.historyItem.ChildMenu = fyne.NewMenu("", emptyHistoryItem())

	app.SetSystemTrayMenu(manager.buildMenu())
	return manager
}

// SetStatus updates the status label, typically the current clock face.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.statusItem.Label = status
	manager.refreshMenu()
}

// SetRunning flips the start/stop item label.
func (manager *Manager) SetRunning(running bool) {
	manager.running = running
	if running {
		manager.runItem.Label = "Stop"
	} else {
		manager.runItem.Label = "Start"
	}
	manager.refreshMenu()
}

// SetWidgetVisible flips the show/hide item label.
func (manager *Manager) SetWidgetVisible(visible bool) {
	manager.widgetVisible = visible
	if visible {
		manager.widgetItem.Label = "Hide widget"
	} else {
		manager.widgetItem.Label = "Show widget"
	}
	manager.refreshMenu()
}

// SetHistory replaces the history submenu entries, newest session first.
func (manager *Manager) SetHistory(sessions []storage.Session) {
	if len(sessions) == 0 {
		manager.historyItem.ChildMenu = fyne.NewMenu("", emptyHistoryItem())
		manager.refreshMenu()
		return
	}

	items := make([]*fyne.MenuItem, 0, len(sessions))
	for _, session := range sessions {
		item := fyne.NewMenuItem(SessionText(session), nil)
		item.Disabled = true
		items = append(items, item)
	}
	manager.historyItem.ChildMenu = fyne.NewMenu("", items...)
	manager.refreshMenu()
}

func emptyHistoryItem() *fyne.MenuItem {
	item := fyne.NewMenuItem("No sessions yet", nil)
	item.Disabled = true
	return item
}

func (manager *Manager) buildMenu() *fyne.Menu {
	status := manager.statusLabel
	if status == "" {
		status = "00:00:00"
	}
	manager.statusItem.Label = status

	return fyne.NewMenu("FloatTimer",
		manager.statusItem,
		manager.widgetItem,
		manager.runItem,
		fyne.NewMenuItem("Reset", func() {
			if manager.callbacks.OnReset != nil {
				manager.callbacks.OnReset()
			}
		}),
		manager.modeItem,
		manager.historyItem,
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	)
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(manager.buildMenu())
}

// StatusText renders a snapshot line for the tray.
func StatusText(snapshot timer.Snapshot) string {
	var face string
	if snapshot.Mode == timer.ModeCountdown {
		face = timer.FormatHMS(snapshot.Remaining)
	} else {
		face = timer.FormatHMS(snapshot.Elapsed)
	}
	switch {
	case snapshot.Expired:
		return fmt.Sprintf("%s (expired)", face)
	case snapshot.Running:
		return face
	default:
		return fmt.Sprintf("%s (stopped)", face)
	}
}

// SessionText renders one finished session for the history submenu.
func SessionText(session storage.Session) string {
	label := "Stopwatch"
	if session.Mode == timer.ModeCountdown {
		label = "Countdown"
	}
	text := fmt.Sprintf("%s %s", label, timer.FormatHMS(session.Duration))
	if session.Expired {
		text += " (expired)"
	}
	return fmt.Sprintf("%s, %s", text, session.EndedAt.Format("Jan 2 15:04"))
}
