// Package hsv converts between RGB and HSV color representations, both with
// an alpha channel.
//
// Both types are plain values. Conversions never modify their receiver, so a
// copied HSVA can be changed without affecting the original.
package hsv

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// Tolerances for the approximate comparisons in FromRGBA. Channels are
	// expected in [0, 1], so a relative tolerance alone would collapse near
	// black.
	approxAbsTol = 1e-9
	approxRelTol = 1e-6

	// achromaticTol is the max-min spread below which a color is treated as
	// gray and gets hue 0.
	achromaticTol = 1e-9
)

// HSVA is a color in the HSV model with an alpha channel.
//
// Hue is in degrees and is only normalized when converting to RGB. Saturation,
// Value and Alpha are expected in [0, 1] but are not validated.
type HSVA struct {
	Hue        float64
	Saturation float64
	Value      float64
	Alpha      float64
}

// New returns an HSVA with exactly the given components.
func New(hue, saturation, value, alpha float64) HSVA {
	return HSVA{Hue: hue, Saturation: saturation, Value: value, Alpha: alpha}
}

// NewOpaque returns a fully opaque HSVA.
func NewOpaque(hue, saturation, value float64) HSVA {
	return New(hue, saturation, value, 1)
}

// FromRGBA converts an RGB color to HSV. Alpha is carried over unchanged.
//
// When several channels tie for the maximum, red wins over green and green
// over blue. Colors whose channel spread is below achromaticTol get hue 0.
func FromRGBA(c RGBA) HSVA {
	lo := math.Min(math.Min(c.R, c.G), c.B)
	hi := math.Max(math.Max(c.R, c.G), c.B)
	diff := hi - lo

	out := HSVA{Alpha: c.A, Value: hi}
	if !approxEqual(0, hi) {
		out.Saturation = diff / hi
	}
	if diff < achromaticTol {
		return out
	}

	var h float64
	switch {
	case approxEqual(hi, c.R):
		h = (c.G - c.B) / diff
	case approxEqual(hi, c.G):
		h = (c.B-c.R)/diff + 2
	case approxEqual(hi, c.B):
		h = (c.R-c.G)/diff + 4
	}

	h *= 60
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	out.Hue = h
	return out
}

// RGBA converts the color to RGB. Alpha is carried over unchanged.
func (c HSVA) RGBA() RGBA {
	if c.Saturation == 0 {
		return RGBA{R: c.Value, G: c.Value, B: c.Value, A: c.Alpha}
	}

	sector := NormalizeHue(c.Hue) / 60
	i := int(math.Floor(sector))
	if i > 5 {
		i = 5 // rounding at the top of the last sector
	}
	f := sector - float64(i)

	v, s := c.Value, c.Saturation
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch i {
	case 0:
		return RGBA{R: v, G: t, B: p, A: c.Alpha}
	case 1:
		return RGBA{R: q, G: v, B: p, A: c.Alpha}
	case 2:
		return RGBA{R: p, G: v, B: t, A: c.Alpha}
	case 3:
		return RGBA{R: p, G: q, B: v, A: c.Alpha}
	case 4:
		return RGBA{R: t, G: p, B: v, A: c.Alpha}
	default:
		return RGBA{R: v, G: p, B: q, A: c.Alpha}
	}
}

// WithHue returns a copy of c with the hue replaced.
func (c HSVA) WithHue(hue float64) HSVA {
	c.Hue = hue
	return c
}

// Rotate returns a copy of c with the hue advanced by deg and wrapped into
// [0, 360).
func (c HSVA) Rotate(deg float64) HSVA {
	c.Hue = NormalizeHue(c.Hue + deg)
	return c
}

func (c HSVA) String() string {
	return fmt.Sprintf("HSVA(%g, %g, %g, %g)", c.Hue, c.Saturation, c.Value, c.Alpha)
}

// NormalizeHue wraps an angle in degrees into [0, 360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0 // -tiny + 360 rounds up to 360
	}
	return h
}

func approxEqual(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, approxAbsTol, approxRelTol)
}
