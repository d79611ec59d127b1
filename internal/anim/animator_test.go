package anim

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/irfansharif/rainbow/internal/hsv"
)

// recorder is a Sink that keeps every color it receives.
type recorder struct {
	colors []hsv.RGBA
}

func (r *recorder) SetBackgroundColor(c hsv.RGBA) {
	r.colors = append(r.colors, c)
}

func TestNew(t *testing.T) {
	a := New(DefaultConfig(), nil)

	want := hsv.New(0, 0.7, 0.7, 1)
	if got := a.Color(); got != want {
		t.Errorf("Color: got %v, want %v", got, want)
	}
	if a.Speed() != 100 {
		t.Errorf("Speed: got %v, want 100", a.Speed())
	}
	if a.Hue() != 0 {
		t.Errorf("Hue: got %v, want 0", a.Hue())
	}
}

func TestTick_Accumulates(t *testing.T) {
	rec := &recorder{}
	a := New(Config{Speed: 100, Saturation: 0.7, Value: 0.7}, rec)

	a.Tick(1.0)
	if a.Hue() != 100 {
		t.Errorf("after Tick(1): got hue %v, want 100", a.Hue())
	}

	a.Tick(5.0)
	if a.Hue() != 600 {
		t.Errorf("after Tick(5): got hue %v, want 600", a.Hue())
	}
	if got := a.Color().Hue; got != 240 {
		t.Errorf("wrapped hue: got %v, want 240", got)
	}
	if a.Revolutions() != 1 {
		t.Errorf("Revolutions: got %d, want 1", a.Revolutions())
	}

	if len(rec.colors) != 2 {
		t.Fatalf("sink writes: got %d, want 2", len(rec.colors))
	}
	want := hsv.NewOpaque(240, 0.7, 0.7).RGBA()
	if rec.colors[1] != want {
		t.Errorf("sink color: got %v, want %v", rec.colors[1], want)
	}
}

func TestTick_FixedSaturationAndValue(t *testing.T) {
	a := New(Config{Speed: 37, Saturation: 0.4, Value: 0.9}, nil)
	for i := 0; i < 1000; i++ {
		a.Tick(0.016)
		c := a.Color()
		if c.Saturation != 0.4 || c.Value != 0.9 || c.Alpha != 1 {
			t.Fatalf("tick %d changed fixed components: %v", i, c)
		}
		if c.Hue < 0 || c.Hue >= 360 {
			t.Fatalf("tick %d: hue %v outside [0, 360)", i, c.Hue)
		}
	}
}

func TestTick_LongRun(t *testing.T) {
	// A day at 60 FPS. The stored hue stays wrapped regardless of how far the
	// animation has travelled.
	a := New(DefaultConfig(), nil)
	const frames = 60 * 60 * 60 * 24
	for i := 0; i < frames; i++ {
		a.Tick(1.0 / 60)
	}

	if h := a.Color().Hue; h < 0 || h >= 360 {
		t.Fatalf("hue %v outside [0, 360)", h)
	}
	want := 100.0 * 60 * 60 * 24
	if !scalar.EqualWithinRel(a.Hue(), want, 1e-6) {
		t.Errorf("Hue: got %v, want ~%v", a.Hue(), want)
	}
}

func TestTick_Backwards(t *testing.T) {
	a := New(Config{Speed: -90, Saturation: 1, Value: 1}, nil)
	a.Tick(1)
	if got := a.Color().Hue; got != 270 {
		t.Errorf("wrapped hue: got %v, want 270", got)
	}
	if a.Hue() != -90 {
		t.Errorf("Hue: got %v, want -90", a.Hue())
	}
}

func TestTick_ZeroDelta(t *testing.T) {
	var got []hsv.RGBA
	a := New(DefaultConfig(), SinkFunc(func(c hsv.RGBA) { got = append(got, c) }))
	a.Tick(0)
	if len(got) != 1 {
		t.Fatalf("sink writes: got %d, want 1", len(got))
	}
	if want := hsv.NewOpaque(0, 0.7, 0.7).RGBA(); got[0] != want {
		t.Errorf("sink color: got %v, want %v", got[0], want)
	}
}

func TestSeed(t *testing.T) {
	a := New(DefaultConfig(), nil)
	a.Tick(10) // 1000 degrees
	a.Seed(hsv.RGBA{R: 0, G: 1, B: 0, A: 1})

	if !scalar.EqualWithinAbs(a.Color().Hue, 120, 1e-9) {
		t.Errorf("seeded hue: got %v, want 120", a.Color().Hue)
	}
	if a.Revolutions() != 0 {
		t.Errorf("Revolutions: got %d, want 0", a.Revolutions())
	}
	if c := a.Color(); c.Saturation != 0.7 || c.Value != 0.7 {
		t.Errorf("Seed changed fixed components: %v", c)
	}
}

func TestSetSpeed(t *testing.T) {
	a := New(DefaultConfig(), nil)
	a.SetSpeed(10)
	a.Tick(2)
	if a.Hue() != 20 {
		t.Errorf("Hue: got %v, want 20", a.Hue())
	}
}

func TestColor_IsCopy(t *testing.T) {
	a := New(DefaultConfig(), nil)
	c := a.Color()
	c.Hue = 180
	if a.Color().Hue != 0 {
		t.Errorf("mutating copy changed animator: %v", a.Color())
	}
}
