// Package render draws the animated background and an optional hue wheel
// overlay with OpenGL.
//
// The background is a clear color fed by the animator. The overlay is a small
// polygon in the bottom-right corner whose corners carry the hue circle, with
// a marker pointing at the current hue:
// 1. Wheel geometry is generated once in model space and triangulated.
// 2. The marker is regenerated every frame from the current hue.
// 3. Both are mapped to NDC by a single uniform transform.
package render

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/irfansharif/rainbow/internal/hsv"
)

const (
	wheelSides     = 36
	overlayOpacity = 0.85
)

var markerColor = hsv.RGBA{R: 1, G: 1, B: 1, A: 1}

// Overlay renders the hue wheel and its marker.
type Overlay struct {
	w, h int

	shaderManager *ShaderManager
	vao, vbo      uint32
	wheelVertices int // vertex count of the static wheel at the start of the VBO
	stats         Stats
}

// Stats tracks rendering performance metrics.
type Stats struct {
	LastDrawTimeUs float64 // time spent in last Draw() call in microseconds
	Vertices       int     // vertices drawn in the last Draw() call
}

// NewOverlay compiles the shaders and uploads the wheel geometry. Requires a
// current GL context.
func NewOverlay(w, h int) (*Overlay, error) {
	sm, err := NewShaderManager()
	if err != nil {
		return nil, err
	}

	wheel, err := WheelVertices(wheelSides)
	if err != nil {
		sm.Delete()
		return nil, fmt.Errorf("failed to build wheel: %w", err)
	}

	o := &Overlay{
		w:             w,
		h:             h,
		shaderManager: sm,
		wheelVertices: len(wheel) / floatsPerVertex,
	}

	// Generate OpenGL objects.
	gl.GenVertexArrays(1, &o.vao)
	gl.GenBuffers(1, &o.vbo)

	// Bind VAO. Bind VBO.
	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)

	// Allocate room for the wheel followed by the marker triangle.
	stride := floatsPerVertex * 4
	bufferSize := (o.wheelVertices + 3) * stride
	gl.BufferData(gl.ARRAY_BUFFER, bufferSize, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(wheel)*4, gl.Ptr(wheel))

	// Configure vertex attributes
	// - Attribute 0: position (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, int32(stride), gl.PtrOffset(0))
	// - Attribute 1: color (vec4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, int32(stride), gl.PtrOffset(8))

	// Unbind.
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return o, nil
}

// SetViewport updates the viewport dimensions used to place the wheel.
func (o *Overlay) SetViewport(w, h int) {
	o.w, o.h = w, h
}

// Draw renders the wheel with the marker pointing at hue.
func (o *Overlay) Draw(hue float64) error {
	startTime := time.Now()

	transform, err := WheelTransform(o.w, o.h)
	if err != nil {
		return err
	}

	o.shaderManager.Use()
	o.shaderManager.SetTransform(affineToMatrix4(transform))
	o.shaderManager.SetOpacity(overlayOpacity)

	// Upload the marker after the wheel.
	marker := MarkerVertices(hue, markerColor)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, o.wheelVertices*floatsPerVertex*4, len(marker)*4, gl.Ptr(marker))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	count := int32(o.wheelVertices + 3)
	gl.BindVertexArray(o.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, count)
	gl.BindVertexArray(0)

	// Record draw stats.
	o.stats.Vertices = int(count)
	o.stats.LastDrawTimeUs = float64(time.Since(startTime).Microseconds())
	return nil
}

// Stats returns the current performance statistics
func (o *Overlay) Stats() Stats {
	return o.stats
}

// Cleanup releases all OpenGL resources.
func (o *Overlay) Cleanup() {
	gl.DeleteBuffers(1, &o.vbo)
	gl.DeleteVertexArrays(1, &o.vao)
	o.shaderManager.Delete()
}
