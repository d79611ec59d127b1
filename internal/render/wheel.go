package render

import (
	"fmt"

	"github.com/irfansharif/rainbow/internal/geom"
	"github.com/irfansharif/rainbow/internal/hsv"
)

// floatsPerVertex is the vertex layout shared with the shader: x, y, r, g, b, a.
const floatsPerVertex = 6

const (
	wheelScaleFactor = 0.18 // wheel diameter as a fraction of the short viewport side
	wheelMargin      = 16.0 // pixels between the wheel and the viewport corner

	markerTip    = 1.05 // marker tip radius, in wheel radii
	markerBase   = 1.35 // marker base radius
	markerSpread = 7.0  // half-angle of the marker base, in degrees
)

func appendVertex(vertices []float32, p geom.Point, c hsv.RGBA) []float32 {
	return append(vertices,
		float32(p.X), float32(p.Y), // position
		float32(c.R), float32(c.G), float32(c.B), float32(c.A), // color
	)
}

// WheelVertices returns triangles for a regular polygon with the given number
// of sides inscribed in the unit circle. Each corner is colored with the
// fully saturated hue at its angle, so the fill blends around the circle.
func WheelVertices(sides int) ([]float32, error) {
	if sides < 3 {
		return nil, fmt.Errorf("wheel needs at least 3 sides, got %d", sides)
	}

	corners := make([]geom.Point, sides)
	colors := make([]hsv.RGBA, sides)
	step := 360.0 / float64(sides)
	for i := range corners {
		angle := float64(i) * step
		corners[i] = geom.Polar(1, angle)
		colors[i] = hsv.NewOpaque(angle, 1, 1).RGBA()
	}

	triangles, err := earClip(corners)
	if err != nil {
		return nil, err
	}

	vertices := make([]float32, 0, len(triangles)*3*floatsPerVertex)
	for _, tri := range triangles {
		for _, idx := range tri {
			vertices = appendVertex(vertices, corners[idx], colors[idx])
		}
	}
	return vertices, nil
}

// MarkerVertices returns a single triangle outside the unit circle pointing
// at the given hue, drawn in the given color.
func MarkerVertices(hue float64, c hsv.RGBA) []float32 {
	vertices := make([]float32, 0, 3*floatsPerVertex)
	vertices = appendVertex(vertices, geom.Polar(markerTip, hue), c)
	vertices = appendVertex(vertices, geom.Polar(markerBase, hue-markerSpread), c)
	vertices = appendVertex(vertices, geom.Polar(markerBase, hue+markerSpread), c)
	return vertices
}

// WheelTransform maps the wheel's model space (the circle of radius
// markerBase around the origin) into the bottom-right corner of a w×h
// viewport, in NDC.
func WheelTransform(w, h int) (geom.Affine, error) {
	if w <= 0 || h <= 0 {
		return geom.Affine{}, fmt.Errorf("invalid viewport dimensions %dx%d", w, h)
	}

	side := wheelScaleFactor * float64(min(w, h))
	corner := geom.MakeBox(float64(w)-wheelMargin-side, float64(h)-wheelMargin-side, side, side)
	model := geom.MakeBox(-markerBase, -markerBase, 2*markerBase, 2*markerBase)

	modelToScreen, err := geom.FillBox(model, corner)
	if err != nil {
		return geom.Affine{}, err
	}
	return geom.ScreenToNDC(w, h).Mul(modelToScreen), nil
}

// affineToMatrix4 converts an affine transform to OpenGL 4x4 matrix format.
func affineToMatrix4(transform geom.Affine) [16]float32 {
	return [16]float32{
		float32(transform.A), float32(transform.D), 0, 0,
		float32(transform.B), float32(transform.E), 0, 0,
		0, 0, 1, 0,
		float32(transform.C), float32(transform.F), 0, 1,
	}
}
