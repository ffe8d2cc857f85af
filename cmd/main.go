package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"breathbox/internal/audio"
	"breathbox/internal/core/breath"
	"breathbox/internal/platform"
	"breathbox/internal/storage"
	"breathbox/internal/ui/preferences"
	"breathbox/internal/ui/session"
	"breathbox/internal/ui/tray"
	"breathbox/resources"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "BreathBox"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.breathbox.app")
	fyneApp.SetIcon(resources.ActiveIcon())

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}

	cycle, err := breath.New(breath.DefaultConfig())
	if err != nil {
		log.Printf("breathing cycle: %v", err)
		return
	}
	driver := breath.NewDriver(cycle, breath.Options{TickInterval: time.Second / 60})

	sessionWindow := session.New(fyneApp, sessionConfig(settings))
	chime := audio.NewChime(settings.ChimeEnabled)
	platformService := platform.NewService()

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		if updated.Autostart != settings.Autostart {
			applyAutostart(platformService, updated.Autostart)
		}
		settings = updated
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Printf("save settings: %v", err)
		}
		sessionWindow.UpdateConfig(sessionConfig(settings))
		chime.SetEnabled(settings.ChimeEnabled)
	})

	quit := func() {
		driver.Stop()
		fyneApp.Quit()
	}
	sessionWindow.SetOnQuit(quit)

	var trayManager *tray.Manager
	isPaused := false
	sessionVisible := true
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnToggleSession: func() {
				if sessionVisible {
					sessionWindow.Hide()
				} else {
					sessionWindow.Show()
				}
				sessionVisible = !sessionVisible
				trayManager.SetSessionVisible(sessionVisible)
			},
			OnTogglePause: func() {
				if isPaused {
					driver.Resume()
					desktopApp.SetSystemTrayIcon(resources.ActiveIcon())
				} else {
					driver.Pause()
					desktopApp.SetSystemTrayIcon(resources.PausedIcon())
				}
				isPaused = !isPaused
				trayManager.SetPaused(isPaused)
			},
			OnPreferences: func() {
				prefsWindow.Show()
			},
			OnQuit: quit,
		})
		desktopApp.SetSystemTrayIcon(resources.ActiveIcon())
		trayManager.SetStatus(breath.PhaseInhale.Caption() + ", cycle 1")
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	frames := driver.Subscribe(8)
	go func() {
		lastPhase := breath.PhaseInhale
		for frame := range frames {
			sessionWindow.ApplyFrame(frame)
			if frame.Phase != lastPhase {
				lastPhase = frame.Phase
				chime.PhaseChanged(frame.Phase)
				if trayManager != nil {
					trayManager.SetStatus(fmt.Sprintf("%s, cycle %d", frame.Phase.Caption(), frame.Completed+1))
				}
			}
		}
	}()

	driver.Start()
	sessionWindow.Show()
	fyneApp.Run()
}

func sessionConfig(settings preferences.Settings) session.Config {
	return session.Config{
		Opacity:      opacityToAlpha(settings.WindowOpacity),
		Fullscreen:   settings.Fullscreen,
		ShowCaptions: settings.ShowCaptions,
	}
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

func applyAutostart(service platform.Service, enable bool) {
	execPath, err := os.Executable()
	if err != nil {
		log.Printf("autostart: resolve executable: %v", err)
		return
	}
	if enable {
		if err := service.EnableAutostart(appName, execPath); err != nil {
			log.Printf("autostart: %v", err)
		}
		return
	}
	if err := service.DisableAutostart(appName); err != nil {
		log.Printf("autostart: %v", err)
	}
}
