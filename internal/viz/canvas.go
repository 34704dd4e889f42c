package viz

import (
	"strings"
)

const brailleBlank = 0x2800

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a grid of braille cells, each 2x4 sub-pixels, with the
// brightest level set in each cell.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Level         [][]uint8
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Level:  make([][]uint8, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Level[i] = make([]uint8, w)
	}
	c.Clear()
	return c
}

// Set lights the sub-pixel (x, y); the canvas is Width*2 x Height*4
// sub-pixels. The cell keeps the highest level drawn into it this frame.
func (c *Canvas) Set(x, y int, level uint8) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if level > c.Level[row][col] {
		c.Level[row][col] = level
	}
}

func (c *Canvas) Lit(col, row int) bool { return c.Grid[row][col] != brailleBlank }

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
			c.Level[i][j] = 0
		}
	}
}

// String renders the canvas without colour.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
