// Package strip renders an animation run into an image without a window:
// every tick becomes one column of the output, left to right.
package strip

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/irfansharif/rainbow/internal/anim"
	"github.com/irfansharif/rainbow/internal/hsv"
	"github.com/irfansharif/rainbow/internal/palette"
)

// column is a Sink that remembers the last color written to it.
type column struct {
	c hsv.RGBA
}

func (s *column) SetBackgroundColor(c hsv.RGBA) { s.c = c }

// Render ticks a fresh animator frames times with step dt seconds and
// returns a frames×height image of the resulting colors. If seed is
// non-nil, the animation starts at its hue.
func Render(cfg anim.Config, seed *hsv.RGBA, frames int, dt float64, height int) (*image.NRGBA, error) {
	if frames <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid strip dimensions %dx%d", frames, height)
	}

	sink := &column{}
	a := anim.New(cfg, sink)
	if seed != nil {
		a.Seed(*seed)
	}

	img := imaging.New(frames, height, color.Transparent)
	for x := 0; x < frames; x++ {
		a.Tick(dt)
		c := sink.c.NRGBA()
		for y := 0; y < height; y++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img, nil
}

// Swatches returns a row of size×size squares, one per palette color.
func Swatches(p palette.Palette, size int) (*image.NRGBA, error) {
	if len(p) == 0 || size <= 0 {
		return nil, fmt.Errorf("invalid swatch row: %d colors of size %d", len(p), size)
	}

	img := imaging.New(len(p)*size, size, color.Transparent)
	for i, c := range p {
		sw := imaging.New(size, size, c)
		img = imaging.Paste(img, sw, image.Pt(i*size, 0))
	}
	return img, nil
}

// Stack places bottom under top, left aligned. The result is as wide as the
// wider of the two.
func Stack(top, bottom image.Image) *image.NRGBA {
	tb, bb := top.Bounds(), bottom.Bounds()
	img := imaging.New(max(tb.Dx(), bb.Dx()), tb.Dy()+bb.Dy(), color.Transparent)
	img = imaging.Paste(img, top, image.Pt(0, 0))
	return imaging.Paste(img, bottom, image.Pt(0, tb.Dy()))
}

// Scale resizes img to the given width, keeping its height.
func Scale(img image.Image, width int) *image.NRGBA {
	return imaging.Resize(img, width, img.Bounds().Dy(), imaging.NearestNeighbor)
}

// Save writes img to path. The format is picked from the file extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save strip to %s: %w", path, err)
	}
	return nil
}
