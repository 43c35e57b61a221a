package main

import (
	"log"
	"time"

	"floattimer/internal/core/clock"
	"floattimer/internal/core/timer"
	"floattimer/internal/platform"
	"floattimer/internal/sound"
	"floattimer/internal/storage"
	"floattimer/internal/ui/mainwindow"
	"floattimer/internal/ui/preferences"
	"floattimer/internal/ui/tray"
	"floattimer/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "FloatTimer"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.floattimer.app")
	fyneApp.SetIcon(resources.MustLogo("logo_active.png"))

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v (using defaults)", err)
	}

	timerConfig := settings.TimerConfig()
	engine := timer.New(timerConfig.DefaultCountdown)
	driver := clock.New(engine, timerConfig, clock.Config{})
	driver.SetIdleChecker(platform.NewIdleProvider())

	history, err := storage.OpenHistory(appName)
	if err != nil {
		log.Printf("session history disabled: %v", err)
		history = nil
	}

	chime, err := sound.NewChime(settings.ChimeEnabled)
	if err != nil {
		log.Printf("chime disabled: %v", err)
	}

	widget := mainwindow.New(fyneApp, engine, mainwindow.Config{
		Opacity:    opacityToAlpha(settings.WidgetOpacity),
		ZenOnStart: settings.ZenOnStart,
	})

	platformService := platform.NewService()
	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		driver.UpdateConfig(settings.TimerConfig())
		chime.SetEnabled(settings.ChimeEnabled)
		widget.UpdateConfig(mainwindow.Config{
			Opacity:    opacityToAlpha(settings.WidgetOpacity),
			ZenOnStart: settings.ZenOnStart,
		})
		if !engine.Running() {
			if err := engine.ConfigureCountdown(settings.CountdownHours, settings.CountdownMinutes, settings.CountdownSeconds); err != nil {
				log.Printf("apply countdown default: %v", err)
			}
		}
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Printf("save settings: %v", err)
		}
		if err := platform.ApplyAutostart(platformService, appName, settings.Autostart); err != nil {
			log.Printf("apply autostart: %v", err)
		}
	})

	quit := func() {
		driver.Stop()
		engine.Close()
		if history != nil {
			if err := history.Close(); err != nil {
				log.Printf("close history: %v", err)
			}
		}
		fyneApp.Quit()
	}
	widget.SetOnQuit(quit)

	var trayManager *tray.Manager
	var setTrayIcon func(bool)
	runningIcon := resources.MustLogo("logo_active.png")
	stoppedIcon := resources.MustLogo("logo_paused.png")
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		widgetVisible := true
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnToggleWidget: func() {
				if widgetVisible {
					widget.Hide()
				} else {
					widget.Show()
				}
				widgetVisible = !widgetVisible
				trayManager.SetWidgetVisible(widgetVisible)
			},
			OnPreferences: func() {
				prefsWindow.Show()
			},
			OnToggleRun: func() {
				if engine.Running() {
					engine.Stop()
				} else {
					engine.Start()
				}
			},
			OnReset: func() {
				widget.StopFlash()
				engine.Reset()
			},
			OnSetMode: func(mode timer.Mode) {
				widget.StopFlash()
				engine.SetMode(mode)
			},
			OnQuit: quit,
		})
		desktopApp.SetSystemTrayIcon(stoppedIcon)
		setTrayIcon = func(running bool) {
			if running {
				desktopApp.SetSystemTrayIcon(runningIcon)
				return
			}
			desktopApp.SetSystemTrayIcon(stoppedIcon)
		}
	} else {
		log.Printf("system tray unsupported on this platform")
	}
	refreshTrayHistory(trayManager, history)

	events := engine.Subscribe(16)
	go watchEvents(events, engine, widget, trayManager, chime, history, setTrayIcon)

	driver.Start()
	widget.Show()
	fyneApp.Run()
}

// watchEvents fans engine events out to the widget, tray, chime and
// session history.
func watchEvents(
	events <-chan timer.Event,
	engine *timer.Engine,
	widget *mainwindow.Window,
	trayManager *tray.Manager,
	chime *sound.Chime,
	history *storage.History,
	setTrayIcon func(bool),
) {
	lastStatus := ""
	wasRunning := false

	for event := range events {
		widget.RefreshClock()

		if trayManager != nil {
			status := tray.StatusText(engine.Snapshot())
			if status != lastStatus || event.Running != wasRunning {
				lastStatus = status
				running := event.Running
				fyne.Do(func() {
					trayManager.SetStatus(status)
					trayManager.SetRunning(running)
					if setTrayIcon != nil {
						setTrayIcon(running)
					}
				})
			}
		}

		switch event.Type {
		case timer.EventExpired:
			widget.FlashExpired()
			chime.Play()
			if recordSession(history, engine.Snapshot(), event.At) {
				refreshTrayHistory(trayManager, history)
			}
		case timer.EventStateChange:
			if wasRunning && !event.Running && event.Mode == timer.ModeStopwatch && event.Elapsed > 0 {
				if recordSession(history, engine.Snapshot(), event.At) {
					refreshTrayHistory(trayManager, history)
				}
			}
		}
		wasRunning = event.Running
	}
}

func recordSession(history *storage.History, snapshot timer.Snapshot, endedAt time.Time) bool {
	if history == nil {
		return false
	}
	session := storage.Session{
		Mode:       snapshot.Mode,
		Configured: snapshot.Configured,
		Duration:   snapshot.Elapsed,
		Expired:    snapshot.Expired,
		EndedAt:    endedAt,
	}
	if snapshot.Mode == timer.ModeCountdown {
		session.Duration = snapshot.Configured - snapshot.Remaining
	}
	if err := history.Record(session); err != nil {
		log.Printf("record session: %v", err)
		return false
	}
	return true
}

// refreshTrayHistory reloads the most recent finished sessions into the
// tray's history submenu.
func refreshTrayHistory(trayManager *tray.Manager, history *storage.History) {
	if trayManager == nil || history == nil {
		return
	}
	sessions, err := history.Recent(5)
	if err != nil {
		log.Printf("load session history: %v", err)
		return
	}
	fyne.Do(func() {
		trayManager.SetHistory(sessions)
	})
}

func opacityToAlpha(opacity float64) uint8 {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return uint8(opacity * 255)
}
