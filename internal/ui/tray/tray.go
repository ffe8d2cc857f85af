package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnToggleSession func()
	OnTogglePause   func()
	OnPreferences   func()
	OnQuit          func()
}

// Manager handles system tray state.
type Manager struct {
	app            desktop.App
	statusItem     *fyne.MenuItem
	sessionItem    *fyne.MenuItem
	pauseItem      *fyne.MenuItem
	callbacks      Callbacks
	paused         bool
	sessionVisible bool
	statusLabel    string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:            app,
		callbacks:      callbacks,
		sessionVisible: true,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true

	manager.sessionItem = fyne.NewMenuItem("Hide session", func() {
		if manager.callbacks.OnToggleSession != nil {
			manager.callbacks.OnToggleSession()
		}
	})

	manager.pauseItem = fyne.NewMenuItem("Pause", func() {
		if manager.callbacks.OnTogglePause != nil {
			manager.callbacks.OnTogglePause()
		}
	})

	preferences := fyne.NewMenuItem("Preferences", func() {
		if manager.callbacks.OnPreferences != nil {
			manager.callbacks.OnPreferences()
		}
	})

	quit := fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})

	menu := fyne.NewMenu("BreathBox", manager.statusItem, manager.sessionItem, manager.pauseItem, preferences, quit)
	app.SetSystemTrayMenu(menu)

	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refreshStatus()
}

// SetPaused updates pause state.
func (manager *Manager) SetPaused(paused bool) {
	manager.paused = paused
	if paused {
		manager.pauseItem.Label = "Resume"
	} else {
		manager.pauseItem.Label = "Pause"
	}
	manager.refreshStatus()
}

// SetSessionVisible updates the show/hide menu entry.
func (manager *Manager) SetSessionVisible(visible bool) {
	manager.sessionVisible = visible
	if visible {
		manager.sessionItem.Label = "Hide session"
	} else {
		manager.sessionItem.Label = "Show session"
	}
	manager.refreshMenu()
}

func (manager *Manager) refreshStatus() {
	status := manager.statusLabel
	if manager.paused {
		status = fmt.Sprintf("%s (paused)", status)
	}
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(fyne.NewMenu("BreathBox",
			manager.statusItem,
			manager.sessionItem,
			manager.pauseItem,
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
		))
	}
}
