package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/irfansharif/rainbow/internal/hsv"
)

// Background is the window's clear color. It implements anim.Sink.
type Background struct {
	color hsv.RGBA
}

// NewBackground returns a background initialized to c.
func NewBackground(c hsv.RGBA) *Background {
	return &Background{color: c}
}

// SetBackgroundColor sets the color used by subsequent Clear calls.
func (b *Background) SetBackgroundColor(c hsv.RGBA) {
	b.color = c
}

// Color returns the current background color.
func (b *Background) Color() hsv.RGBA {
	return b.color
}

// Clear fills the current framebuffer with the background color. Requires a
// current GL context.
func (b *Background) Clear() {
	c := b.color
	gl.ClearColor(float32(c.R), float32(c.G), float32(c.B), float32(c.A))
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
