package app

import (
	"log"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/rainbow/internal/anim"
	"github.com/irfansharif/rainbow/internal/config"
	"github.com/irfansharif/rainbow/internal/hsv"
	"github.com/irfansharif/rainbow/internal/render"
)

const (
	speedStep = 25.0   // degrees per second added or removed per key press
	maxSpeed  = 3600.0 // ten turns per second in either direction
)

var red = hsv.RGBA{R: 1, A: 1}

// App encapsulates the main application state and logic.
type App struct {
	Window     *glfw.Window
	Animator   *anim.Animator
	Background *render.Background
	Overlay    *render.Overlay // nil until the wheel is first shown

	ShowWheel bool
	Paused    bool

	seed      hsv.RGBA
	lastFrame time.Time
}

// NewApp creates a new application instance. The window's GL context must be
// current.
func NewApp(window *glfw.Window, cfg *config.Resolved, now time.Time) *App {
	background := render.NewBackground(hsv.RGBA{A: 1})
	app := newApp(anim.New(cfg.Animation, background), background, cfg.Seed, now)
	app.Window = window
	if cfg.Wheel {
		app.ToggleWheel()
	}
	return app
}

func newApp(animator *anim.Animator, background *render.Background, seed *hsv.RGBA, now time.Time) *App {
	app := &App{
		Animator:   animator,
		Background: background,
		seed:       red,
		lastFrame:  now,
	}
	if seed != nil {
		app.seed = *seed
	}
	app.Reset()
	return app
}

// Advance ticks the animator by the time elapsed since the previous frame.
// While paused the clock still moves, so resuming does not jump.
func (app *App) Advance(now time.Time) {
	dt := now.Sub(app.lastFrame).Seconds()
	app.lastFrame = now
	if dt < 0 {
		dt = 0
	}
	if app.Paused {
		return
	}
	app.Animator.Tick(dt)
}

// Frame advances the animation and draws one frame.
func (app *App) Frame(now time.Time) {
	app.Advance(now)
	app.Background.Clear()

	if app.ShowWheel && app.Overlay != nil {
		if err := app.Overlay.Draw(app.Animator.Color().Hue); err != nil {
			log.Printf("WARNING: failed to draw hue wheel: %v", err)
		}
	}
}

// Reset restarts the cycle at the seed color's hue and pushes the color to
// the background immediately.
func (app *App) Reset() {
	app.Animator.Seed(app.seed)
	app.Animator.Tick(0)
}

// AdjustSpeed changes the animation speed by steps*speedStep, clamped to
// ±maxSpeed.
func (app *App) AdjustSpeed(steps int) {
	speed := app.Animator.Speed() + float64(steps)*speedStep
	if speed > maxSpeed {
		speed = maxSpeed
	} else if speed < -maxSpeed {
		speed = -maxSpeed
	}
	app.Animator.SetSpeed(speed)
}

// TogglePause pauses or resumes the animation.
func (app *App) TogglePause() {
	app.Paused = !app.Paused
}

// ToggleWheel shows or hides the hue wheel, creating it on first use.
func (app *App) ToggleWheel() {
	if app.ShowWheel {
		app.ShowWheel = false
		return
	}
	if app.Overlay == nil {
		w, h := app.Window.GetFramebufferSize()
		overlay, err := render.NewOverlay(w, h)
		if err != nil {
			log.Printf("WARNING: hue wheel unavailable: %v", err)
			return
		}
		app.Overlay = overlay
	}
	app.ShowWheel = true
}

// SetViewport updates the viewport dimensions after a resize.
func (app *App) SetViewport(w, h int) {
	if app.Overlay != nil {
		app.Overlay.SetViewport(w, h)
	}
}

// Cleanup releases GL resources.
func (app *App) Cleanup() {
	if app.Overlay != nil {
		app.Overlay.Cleanup()
	}
}
