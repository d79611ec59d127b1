// Package anim cycles a color's hue over time and pushes the result to a
// color sink once per tick.
package anim

import (
	"math"

	"github.com/irfansharif/rainbow/internal/hsv"
)

// Sink receives the animated color, e.g. a render surface's background.
type Sink interface {
	SetBackgroundColor(c hsv.RGBA)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(c hsv.RGBA)

func (f SinkFunc) SetBackgroundColor(c hsv.RGBA) { f(c) }

// Config holds the animation parameters.
type Config struct {
	Speed      float64 // degrees per second
	Saturation float64 // fixed for the animator's lifetime
	Value      float64 // fixed for the animator's lifetime
}

// DefaultConfig returns the default animation parameters.
func DefaultConfig() Config {
	return Config{Speed: 100, Saturation: 0.7, Value: 0.7}
}

// Animator advances the hue of an owned color by Speed degrees per second.
//
// It is not safe for concurrent use; Tick is expected to be called from the
// host's update loop only.
type Animator struct {
	speed       float64
	color       hsv.HSVA // hue kept in [0, 360)
	revolutions float64  // completed full turns, for Hue
	sink        Sink
}

// New returns an animator starting at hue 0 with the configured saturation
// and value.
func New(cfg Config, sink Sink) *Animator {
	return &Animator{
		speed: cfg.Speed,
		color: hsv.NewOpaque(0, cfg.Saturation, cfg.Value),
		sink:  sink,
	}
}

// Tick advances the hue by speed*dt and writes the new color to the sink.
// dt is the elapsed time in seconds since the previous tick.
func (a *Animator) Tick(dt float64) {
	h := a.color.Hue + a.speed*dt
	turns := math.Floor(h / 360)
	h -= turns * 360
	if h >= 360 {
		h -= 360
		turns++
	} else if h < 0 {
		h += 360
		turns--
	}
	a.revolutions += turns
	a.color = a.color.WithHue(h)

	if a.sink != nil {
		a.sink.SetBackgroundColor(a.color.RGBA())
	}
}

// Seed restarts the cycle at the hue of c. Saturation and value are left
// alone.
func (a *Animator) Seed(c hsv.RGBA) {
	a.color = a.color.WithHue(hsv.FromRGBA(c).Hue)
	a.revolutions = 0
}

// Hue returns the total hue travelled in degrees, including full turns.
func (a *Animator) Hue() float64 {
	return a.revolutions*360 + a.color.Hue
}

// Revolutions returns the number of full turns completed. It is negative when
// the animator has run backwards.
func (a *Animator) Revolutions() int {
	return int(a.revolutions)
}

// Color returns a copy of the current color.
func (a *Animator) Color() hsv.HSVA {
	return a.color
}

// Speed returns the current speed in degrees per second.
func (a *Animator) Speed() float64 {
	return a.speed
}

// SetSpeed changes the speed for subsequent ticks.
func (a *Animator) SetSpeed(speed float64) {
	a.speed = speed
}
