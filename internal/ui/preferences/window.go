package preferences

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	onCancel   func()
	opacity    *widget.Slider
	fullscreen *widget.Check
	captions   *widget.Check
	chime      *widget.Check
	autostart  *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("BreathBox Settings")

	opacity := widget.NewSlider(0.5, 1.0)
	opacity.Value = settings.WindowOpacity
	opacity.Step = 0.01

	fullscreen := widget.NewCheck("Fullscreen session window", nil)
	fullscreen.SetChecked(settings.Fullscreen)

	captions := widget.NewCheck("Show phase captions", nil)
	captions.SetChecked(settings.ShowCaptions)

	chime := widget.NewCheck("Chime on inhale and exhale", nil)
	chime.SetChecked(settings.ChimeEnabled)

	autostart := widget.NewCheck("Start at login", nil)
	autostart.SetChecked(settings.Autostart)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Appearance", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Background opacity"),
		opacity,
		fullscreen,
		captions,
		widget.NewLabelWithStyle("Sound", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		chime,
		widget.NewLabelWithStyle("System", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		autostart,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, form)
	window.SetContent(content)
	window.Resize(fyne.NewSize(380, 360))

	prefs := &Window{
		window:     window,
		settings:   settings,
		onSave:     onSave,
		opacity:    opacity,
		fullscreen: fullscreen,
		captions:   captions,
		chime:      chime,
		autostart:  autostart,
	}

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		window.Hide()
		if prefs.onCancel != nil {
			prefs.onCancel()
		}
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
	prefs.opacity.Value = settings.WindowOpacity
	prefs.opacity.Refresh()
	prefs.fullscreen.SetChecked(settings.Fullscreen)
	prefs.captions.SetChecked(settings.ShowCaptions)
	prefs.chime.SetChecked(settings.ChimeEnabled)
	prefs.autostart.SetChecked(settings.Autostart)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings
	settings.WindowOpacity = prefs.opacity.Value
	settings.Fullscreen = prefs.fullscreen.Checked
	settings.ShowCaptions = prefs.captions.Checked
	settings.ChimeEnabled = prefs.chime.Checked
	settings.Autostart = prefs.autostart.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}
