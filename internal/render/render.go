// Package render turns trajectories into per-frame draw calls for a Sink.
package render

import (
	"image/color"

	"github.com/san-kum/attractor/internal/trajectory"
	"github.com/san-kum/attractor/internal/vecmath"
)

// Sink receives one frame of draw calls. Backends implement it on top of a
// window, a terminal canvas or a vector document.
type Sink interface {
	Clear(bg color.RGBA)
	DrawCircle(x, y, radius float32, c color.RGBA)
}

// Source is anything that exposes an ordered point history per trajectory.
type Source interface {
	Trajectories() []*trajectory.Trajectory
}

// Renderer maps simulation space onto the screen with a 2D orthographic
// projection: depth is discarded.
type Renderer struct {
	Width, Height float32
	Scale         float32
	Radius        float32
	Trail         color.RGBA
	Background    color.RGBA
}

func DefaultRenderer() Renderer {
	return Renderer{
		Width:      800,
		Height:     800,
		Scale:      8,
		Radius:     3,
		Trail:      color.RGBA{255, 255, 255, 255},
		Background: color.RGBA{0, 0, 0, 0},
	}
}

// Project returns the screen position of p.
func (r Renderer) Project(p vecmath.Vector3) (float32, float32) {
	return r.Width/2 + p.X*r.Scale, r.Height/2 + p.Y*r.Scale
}

// Draw clears the sink and emits every visible point. Trajectories with a
// path fade in from the oldest point, whose opacity is index/len; the rest
// draw only their current point at full opacity.
func (r Renderer) Draw(sink Sink, src Source) {
	sink.Clear(r.Background)
	for _, t := range src.Trajectories() {
		if !t.ShowPath() {
			x, y := r.Project(t.Last())
			sink.DrawCircle(x, y, r.Radius, r.Trail)
			continue
		}
		n := t.Len()
		for i := 0; i < n; i++ {
			x, y := r.Project(t.At(i))
			sink.DrawCircle(x, y, r.Radius, Fade(r.Trail, Opacity(i, n)))
		}
	}
}

// Opacity is the fade factor of the i-th of n points, oldest first.
func Opacity(i, n int) float32 {
	if n <= 0 {
		return 0
	}
	return float32(i) / float32(n)
}

// Fade scales the alpha channel of c by opacity.
func Fade(c color.RGBA, opacity float32) color.RGBA {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	c.A = uint8(float32(c.A)*opacity + 0.5)
	return c
}
