package render

import "image/color"

// Circle is one captured draw call.
type Circle struct {
	X, Y, Radius float32
	Color        color.RGBA
}

// Recorder is a Sink that keeps the last frame in memory.
type Recorder struct {
	Background color.RGBA
	Circles    []Circle
	Frames     int
}

func (r *Recorder) Clear(bg color.RGBA) {
	r.Background = bg
	r.Circles = r.Circles[:0]
	r.Frames++
}

func (r *Recorder) DrawCircle(x, y, radius float32, c color.RGBA) {
	r.Circles = append(r.Circles, Circle{X: x, Y: y, Radius: radius, Color: c})
}
