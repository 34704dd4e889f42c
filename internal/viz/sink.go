package viz

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// shades is how many distinct colours a canvas row is quantized into.
const shades = 8

// TermSink is a render.Sink backed by a braille Canvas. Screen coordinates
// are scaled from the renderer's screen size into canvas sub-pixels. Cell
// colour blends from the theme background to the theme trail by the
// brightest alpha drawn into the cell; the sink ignores the RGB of draw
// calls.
type TermSink struct {
	Canvas           *Canvas
	screenW, screenH float32
	bg, trail        colorful.Color
	palette          [shades]lipgloss.Style
}

func NewTermSink(cols, rows int, screenW, screenH float32, theme Theme) *TermSink {
	s := &TermSink{
		Canvas:  NewCanvas(cols, rows),
		screenW: screenW,
		screenH: screenH,
	}
	s.SetTheme(theme)
	return s
}

func (s *TermSink) SetTheme(t Theme) {
	s.bg = mustHex(t.Background)
	s.trail = mustHex(t.Trail)
	for i := range s.palette {
		c := s.Shade(uint8(255 * (i + 1) / shades))
		s.palette[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Background(t.Background)
	}
}

// Resize replaces the canvas; the next frame repopulates it.
func (s *TermSink) Resize(cols, rows int) { s.Canvas = NewCanvas(cols, rows) }

func (s *TermSink) Clear(color.RGBA) { s.Canvas.Clear() }

func (s *TermSink) DrawCircle(x, y, _ float32, c color.RGBA) {
	if c.A == 0 {
		return
	}
	px := math.Floor(float64(x / s.screenW * float32(s.Canvas.Width*2)))
	py := math.Floor(float64(y / s.screenH * float32(s.Canvas.Height*4)))
	s.Canvas.Set(int(px), int(py), c.A)
}

// Shade is the cell colour for a level between 0 (background) and 255
// (trail).
func (s *TermSink) Shade(level uint8) colorful.Color {
	return s.bg.BlendRgb(s.trail, float64(level)/255).Clamped()
}

func shadeIndex(level uint8) int {
	i := int(level) * shades / 256
	return min(i, shades-1)
}

// View renders the canvas with runs of equally shaded cells sharing one
// style.
func (s *TermSink) View() string {
	var b strings.Builder
	c := s.Canvas
	for row := 0; row < c.Height; row++ {
		start, cur := 0, -1
		flush := func(end int) {
			seg := string(c.Grid[row][start:end])
			if cur < 0 {
				b.WriteString(seg)
			} else {
				b.WriteString(s.palette[cur].Render(seg))
			}
		}
		for col := 0; col < c.Width; col++ {
			idx := -1
			if c.Lit(col, row) {
				idx = shadeIndex(c.Level[row][col])
			}
			if idx != cur {
				flush(col)
				start, cur = col, idx
			}
		}
		flush(c.Width)
		b.WriteByte('\n')
	}
	return b.String()
}

func mustHex(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return colorful.Color{}
	}
	return col
}
