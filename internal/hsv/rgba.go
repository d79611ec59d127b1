package hsv

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is a color with red, green, blue and alpha channels, each
// conventionally in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// FromColor converts any image/color value to an RGBA. The color's
// premultiplied alpha is undone.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// NRGBA returns the color as 8-bit non-premultiplied channels. Out of range
// channels are clamped.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// Colorful returns the color channels as a go-colorful Color. Alpha is
// dropped.
func (c RGBA) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Hex renders the color channels as "#rrggbb".
func (c RGBA) Hex() string {
	return c.Colorful().Clamped().Hex()
}

// ParseHex parses "#rgb" or "#rrggbb" into an opaque RGBA.
func ParseHex(s string) (RGBA, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGBA{R: cf.R, G: cf.G, B: cf.B, A: 1}, nil
}

func (c RGBA) String() string {
	return fmt.Sprintf("RGBA(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}

func to8(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}
