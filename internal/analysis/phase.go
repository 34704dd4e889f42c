package analysis

import (
	"strings"

	"github.com/san-kum/attractor/internal/storage"
)

type Point struct{ X, Y float64 }

// PhasePortrait2D projects samples onto two axes (0 = x, 1 = y, 2 = z).
type PhasePortrait2D struct {
	XAxis, YAxis int
	Points       []Point
}

func PhasePortrait(samples []storage.Sample, xAxis, yAxis int) *PhasePortrait2D {
	xs := storage.Axis(samples, xAxis)
	ys := storage.Axis(samples, yAxis)
	portrait := &PhasePortrait2D{XAxis: xAxis, YAxis: yAxis, Points: make([]Point, len(samples))}
	for i := range samples {
		portrait.Points[i] = Point{X: xs[i], Y: ys[i]}
	}
	return portrait
}

func PhasePortraitToASCII(portrait *PhasePortrait2D, width, height int) string {
	if portrait == nil || len(portrait.Points) == 0 {
		return ""
	}
	return plotASCII(portrait.Points, width, height, true)
}

// PoincareSection records (x, y) wherever z crosses threshold upwards.
type PoincareSection struct {
	Threshold float64
	Points    []Point
}

// PoincareSectionOf works on one trajectory's samples in time order; the
// crossing point is linearly interpolated between neighbouring samples.
func PoincareSectionOf(samples []storage.Sample, threshold float64) *PoincareSection {
	section := &PoincareSection{Threshold: threshold, Points: make([]Point, 0)}
	for i := 1; i < len(samples); i++ {
		prev, curr := samples[i-1].Position, samples[i].Position
		pz, cz := float64(prev.Z), float64(curr.Z)
		if pz >= threshold || cz < threshold {
			continue
		}
		frac := (threshold - pz) / (cz - pz)
		section.Points = append(section.Points, Point{
			X: float64(prev.X) + frac*float64(curr.X-prev.X),
			Y: float64(prev.Y) + frac*float64(curr.Y-prev.Y),
		})
	}
	return section
}

func PoincareSectionToASCII(section *PoincareSection, width, height int) string {
	if section == nil || len(section.Points) == 0 {
		return "No crossings detected"
	}
	return plotASCII(section.Points, width, height, true)
}

// plotASCII scatters pts onto a width x height grid with 10% padding,
// optionally drawing the coordinate axes where they are visible.
func plotASCII(pts []Point, width, height int, axes bool) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	padX := max(maxX-minX, 1) * 0.1
	padY := max(maxY-minY, 1) * 0.1
	minX, maxX = minX-padX, maxX+padX
	minY, maxY = minY-padY, maxY+padY

	col := func(x float64) int { return int((x - minX) / (maxX - minX) * float64(width-1)) }
	row := func(y float64) int { return height - 1 - int((y-minY)/(maxY-minY)*float64(height-1)) }

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width))
	}

	if axes && minX <= 0 && maxX >= 0 {
		c := col(0)
		for r := range grid {
			grid[r][c] = '│'
		}
	}
	if axes && minY <= 0 && maxY >= 0 {
		r := row(0)
		for c := range grid[r] {
			grid[r][c] = '─'
		}
	}

	for _, p := range pts {
		r, c := row(p.Y), col(p.X)
		if r >= 0 && r < height && c >= 0 && c < width {
			grid[r][c] = '•'
		}
	}

	var sb strings.Builder
	for _, line := range grid {
		sb.WriteString(string(line))
		sb.WriteRune('\n')
	}
	return sb.String()
}
