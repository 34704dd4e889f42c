// Package export writes frames and traces as standalone SVG documents.
package export

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/san-kum/attractor/internal/render"
	"github.com/san-kum/attractor/internal/vecmath"
)

// SVG is a render.Sink that keeps the latest frame and serializes it with
// WriteTo. Alpha maps onto fill-opacity.
type SVG struct {
	Width, Height int
	frame         render.Recorder
}

func NewSVG(width, height int) *SVG {
	return &SVG{Width: width, Height: height}
}

func (s *SVG) Clear(bg color.RGBA) { s.frame.Clear(bg) }

func (s *SVG) DrawCircle(x, y, radius float32, c color.RGBA) { s.frame.DrawCircle(x, y, radius, c) }

// Len reports the number of circles in the current frame.
func (s *SVG) Len() int { return len(s.frame.Circles) }

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	cw := &countingWriter{w: bw}

	fmt.Fprintf(cw, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
`, s.Width, s.Height, s.Width, s.Height)
	fmt.Fprintf(cw, "<rect width=\"100%%\" height=\"100%%\" fill=\"%s\" fill-opacity=\"%s\"/>\n",
		hex(s.frame.Background), opacity(s.frame.Background))

	for _, c := range s.frame.Circles {
		if c.Color.A == 0 {
			continue
		}
		fmt.Fprintf(cw, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"%s\" fill-opacity=\"%s\"/>\n",
			c.X, c.Y, c.Radius, hex(c.Color), opacity(c.Color))
	}
	io.WriteString(cw, "</svg>\n")

	if cw.err != nil {
		return cw.n, cw.err
	}
	return cw.n, bw.Flush()
}

func hex(c color.RGBA) string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

func opacity(c color.RGBA) string { return fmt.Sprintf("%.3f", float64(c.A)/255) }

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}

// PathsToSVG draws each series as a polyline in the x-z plane, fitted to
// width x height with 10% padding. Series with fewer than two points are
// skipped.
func PathsToSVG(series [][]vecmath.Vector3, width, height int, stroke string) string {
	first := true
	var minX, maxX, minZ, maxZ float32
	for _, pts := range series {
		for _, p := range pts {
			if first {
				minX, maxX, minZ, maxZ = p.X, p.X, p.Z, p.Z
				first = false
				continue
			}
			minX, maxX = min(minX, p.X), max(maxX, p.X)
			minZ, maxZ = min(minZ, p.Z), max(maxZ, p.Z)
		}
	}
	padX := max(maxX-minX, 1) * 0.1
	padZ := max(maxZ-minZ, 1) * 0.1
	minX, maxX = minX-padX, maxX+padX
	minZ, maxZ = minZ-padZ, maxZ+padZ

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height)

	for _, pts := range series {
		if len(pts) < 2 {
			continue
		}
		fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1" stroke-opacity="0.8" d="`, stroke)
		for i, p := range pts {
			x := (p.X - minX) / (maxX - minX) * float32(width)
			y := float32(height) - (p.Z-minZ)/(maxZ-minZ)*float32(height)
			if i == 0 {
				fmt.Fprintf(&sb, "M%.1f,%.1f", x, y)
			} else {
				fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
