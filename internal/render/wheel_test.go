package render

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/irfansharif/rainbow/internal/geom"
	"github.com/irfansharif/rainbow/internal/hsv"
)

func TestWheelVertices(t *testing.T) {
	vertices, err := WheelVertices(6)
	if err != nil {
		t.Fatalf("WheelVertices failed: %v", err)
	}

	// A convex hexagon triangulates into 4 triangles.
	if got, want := len(vertices), 4*3*floatsPerVertex; got != want {
		t.Fatalf("floats: got %d, want %d", got, want)
	}

	for i := 0; i < len(vertices); i += floatsPerVertex {
		x, y := float64(vertices[i]), float64(vertices[i+1])
		if r := math.Hypot(x, y); !scalar.EqualWithinAbs(r, 1, 1e-6) {
			t.Errorf("vertex %d: radius %v, want 1", i/floatsPerVertex, r)
		}

		// Every corner carries the saturated color at its own angle.
		angle := math.Atan2(y, x) * 180 / math.Pi
		want := hsv.NewOpaque(hsv.NormalizeHue(angle), 1, 1).RGBA()
		got := hsv.RGBA{
			R: float64(vertices[i+2]), G: float64(vertices[i+3]),
			B: float64(vertices[i+4]), A: float64(vertices[i+5]),
		}
		if !scalar.EqualWithinAbs(got.R, want.R, 1e-4) ||
			!scalar.EqualWithinAbs(got.G, want.G, 1e-4) ||
			!scalar.EqualWithinAbs(got.B, want.B, 1e-4) ||
			got.A != 1 {
			t.Errorf("vertex %d at %.1f°: got color %v, want %v", i/floatsPerVertex, angle, got, want)
		}
	}
}

func TestWheelVertices_TooFewSides(t *testing.T) {
	if _, err := WheelVertices(2); err == nil {
		t.Error("WheelVertices should fail for fewer than 3 sides")
	}
}

func TestEarClip_Degenerate(t *testing.T) {
	if _, err := earClip([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}); err == nil {
		t.Error("earClip should fail for fewer than 3 points")
	}
}

func TestMarkerVertices(t *testing.T) {
	c := hsv.RGBA{R: 1, G: 1, B: 1, A: 1}
	for _, hue := range []float64{0, 90, 200, 359} {
		v := MarkerVertices(hue, c)
		if len(v) != 3*floatsPerVertex {
			t.Fatalf("hue %v: got %d floats, want %d", hue, len(v), 3*floatsPerVertex)
		}

		tip := geom.Polar(markerTip, hue)
		if !scalar.EqualWithinAbs(float64(v[0]), tip.X, 1e-5) || !scalar.EqualWithinAbs(float64(v[1]), tip.Y, 1e-5) {
			t.Errorf("hue %v: tip got (%v, %v), want %v", hue, v[0], v[1], tip)
		}
		for i := 1; i < 3; i++ {
			x, y := float64(v[i*floatsPerVertex]), float64(v[i*floatsPerVertex+1])
			if r := math.Hypot(x, y); !scalar.EqualWithinAbs(r, markerBase, 1e-5) {
				t.Errorf("hue %v: base vertex %d radius %v, want %v", hue, i, r, markerBase)
			}
		}
	}
}

func TestWheelTransform(t *testing.T) {
	tr, err := WheelTransform(800, 600)
	if err != nil {
		t.Fatalf("WheelTransform failed: %v", err)
	}

	// The whole model box lands in the bottom-right quadrant of NDC.
	for _, p := range []geom.Point{
		{X: -markerBase, Y: -markerBase},
		{X: markerBase, Y: markerBase},
		{X: 0, Y: 0},
	} {
		q := tr.MulPoint(p)
		if q.X <= 0 || q.X > 1 || q.Y >= 0 || q.Y < -1 {
			t.Errorf("model %v mapped to %v, want inside bottom-right quadrant", p, q)
		}
	}

	if _, err := WheelTransform(0, 600); err == nil {
		t.Error("WheelTransform should fail for an empty viewport")
	}
}

func TestAffineToMatrix4(t *testing.T) {
	tr := geom.Rotate(90).Mul(geom.MakeAffine(1, 0, 3, 0, 1, 4))
	m := affineToMatrix4(tr)

	// Column-major: apply m to (1, 0, 0, 1).
	x := m[0]*1 + m[4]*0 + m[12]
	y := m[1]*1 + m[5]*0 + m[13]
	want := tr.MulPoint(geom.MakePoint(1, 0))
	if !scalar.EqualWithinAbs(float64(x), want.X, 1e-5) || !scalar.EqualWithinAbs(float64(y), want.Y, 1e-5) {
		t.Errorf("matrix applied: got (%v, %v), want %v", x, y, want)
	}
}

func TestBackground(t *testing.T) {
	c := hsv.RGBA{R: 0.1, G: 0.2, B: 0.3, A: 1}
	b := NewBackground(hsv.RGBA{A: 1})
	b.SetBackgroundColor(c)
	if b.Color() != c {
		t.Errorf("Color: got %v, want %v", b.Color(), c)
	}
}
