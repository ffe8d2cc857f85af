package session

import (
	"fmt"
	"image/color"

	"breathbox/internal/core/breath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// Config defines session window visuals.
type Config struct {
	Opacity      uint8
	Fullscreen   bool
	ShowCaptions bool
}

const (
	defaultWindowSide = float32(512)
	circleFraction    = float32(0.9)
)

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// Window renders the breathing circle. One frame at a time arrives through
// ApplyFrame; the layout scales the circle to the most recent frame.
type Window struct {
	app        fyne.App
	window     fyne.Window
	config     Config
	background *canvas.Rectangle
	circle     *canvas.Circle
	caption    *canvas.Text
	counter    *canvas.Text
	root       *fyne.Container
	scale      float64
	onQuit     func()
}

// New creates the session window.
func New(app fyne.App, config Config) *Window {
	window := app.NewWindow("BreathBox")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(color.NRGBA{R: 8, G: 10, B: 18, A: config.Opacity})

	circle := canvas.NewCircle(color.NRGBA{R: 106, G: 64, B: 191, A: 255})

	caption := canvas.NewText("Breathe in", color.NRGBA{R: 235, G: 235, B: 245, A: 255})
	caption.Alignment = fyne.TextAlignCenter
	caption.TextStyle = fyne.TextStyle{Bold: true}
	caption.TextSize = 24

	counter := canvas.NewText("", color.NRGBA{R: 235, G: 235, B: 245, A: 170})
	counter.Alignment = fyne.TextAlignCenter
	counter.TextSize = 14

	session := &Window{
		app:        app,
		window:     window,
		config:     config,
		background: background,
		circle:     circle,
		caption:    caption,
		counter:    counter,
		scale:      0.25,
	}

	session.root = container.New(&sessionLayout{session: session}, background, circle, caption, counter)
	window.SetContent(session.root)

	window.Canvas().SetOnTypedKey(func(event *fyne.KeyEvent) {
		switch event.Name {
		case fyne.KeyEscape, fyne.KeyQ:
			session.quit()
		}
	})
	window.SetCloseIntercept(func() {
		session.quit()
	})

	session.applyCaptionVisibility()
	session.applyWindowMode()

	return session
}

// SetOnQuit sets the handler invoked by the quit keys and the close button.
func (session *Window) SetOnQuit(handler func()) {
	session.onQuit = handler
}

// Show displays the session window.
func (session *Window) Show() {
	session.applyWindowMode()
	session.window.Show()
	session.window.RequestFocus()
}

// Hide conceals the session window without stopping the cycle.
func (session *Window) Hide() {
	if session.config.Fullscreen {
		session.window.SetFullScreen(false)
	}
	session.window.Hide()
}

// ApplyFrame updates the circle, colour and captions from a driver frame.
// Safe to call from any goroutine.
func (session *Window) ApplyFrame(frame breath.Frame) {
	fyne.Do(func() {
		session.scale = frame.Scale
		session.circle.FillColor = frame.Colour
		session.caption.Text = frame.Phase.Caption()
		session.counter.Text = fmt.Sprintf("cycle %d", frame.Completed+1)
		session.root.Refresh()
	})
}

// UpdateConfig updates session visuals.
func (session *Window) UpdateConfig(config Config) {
	session.config = config
	session.background.FillColor = color.NRGBA{R: 8, G: 10, B: 18, A: config.Opacity}
	session.applyCaptionVisibility()
	session.applyWindowMode()
	canvas.Refresh(session.background)
}

func (session *Window) quit() {
	if session.onQuit != nil {
		session.onQuit()
		return
	}
	session.window.Close()
}

func (session *Window) applyCaptionVisibility() {
	if session.config.ShowCaptions {
		session.caption.Show()
		session.counter.Show()
		return
	}
	session.caption.Hide()
	session.counter.Hide()
}

func (session *Window) applyWindowMode() {
	if session.config.Fullscreen {
		session.window.SetFullScreen(true)
	} else {
		session.window.SetFullScreen(false)
		session.window.Resize(fyne.NewSize(defaultWindowSide, defaultWindowSide))
		session.window.CenterOnScreen()
	}
	session.applyNativeOpacity(session.config.Opacity)
}

type sessionLayout struct {
	session *Window
}

func (layout *sessionLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 4 {
		return
	}
	background := objects[0]
	circle := objects[1]
	caption := objects[2]
	counter := objects[3]

	background.Move(fyne.NewPos(0, 0))
	background.Resize(size)

	shortest := size.Width
	if size.Height < shortest {
		shortest = size.Height
	}
	maxSide := shortest * circleFraction
	side := maxSide * float32(layout.session.scale)
	if side < 0 {
		side = 0
	}
	circle.Move(fyne.NewPos((size.Width-side)/2, (size.Height-side)/2))
	circle.Resize(fyne.NewSize(side, side))

	pad := size.Height * 0.05
	captionSize := caption.MinSize()
	caption.Move(fyne.NewPos(0, pad))
	caption.Resize(fyne.NewSize(size.Width, captionSize.Height))

	counterSize := counter.MinSize()
	counterY := size.Height - pad - counterSize.Height
	if counterY < 0 {
		counterY = 0
	}
	counter.Move(fyne.NewPos(0, counterY))
	counter.Resize(fyne.NewSize(size.Width, counterSize.Height))
}

func (layout *sessionLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(256, 256)
}
