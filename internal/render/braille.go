package render

import "math"

// MarkerRune is the glyph drawn at the progress marker's cell.
const MarkerRune = '●'

// brailleBits maps a dot position inside a cell (column, row) to its bit in
// the braille pattern block. Each terminal cell carries a 2×4 dot grid.
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille dot canvas. Cells are terminal character positions;
// dots address the 2×4 grid inside each cell. Out-of-range plots are
// silently ignored.
type Canvas struct {
	width  int // cells
	height int // cells
	cells  []uint8
	marks  map[int]rune
}

// NewCanvas creates an empty canvas of width×height cells.
func NewCanvas(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Canvas{
		width:  width,
		height: height,
		cells:  make([]uint8, width*height),
		marks:  make(map[int]rune),
	}
}

// DotWidth returns the canvas width in dots.
func (c *Canvas) DotWidth() int { return c.width * 2 }

// DotHeight returns the canvas height in dots.
func (c *Canvas) DotHeight() int { return c.height * 4 }

// Set plots a single dot at dot coordinates (x, y).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 || x >= c.DotWidth() || y >= c.DotHeight() {
		return
	}
	c.cells[(y/4)*c.width+x/2] |= brailleBits[y%4][x%2]
}

// Line plots a straight dot line from (x0, y0) to (x1, y1).
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Mark overlays a rune on the cell containing dot (x, y), replacing whatever
// braille pattern the cell holds.
func (c *Canvas) Mark(x, y int, r rune) {
	if x < 0 || y < 0 || x >= c.DotWidth() || y >= c.DotHeight() {
		return
	}
	c.marks[(y/4)*c.width+x/2] = r
}

// Rows renders the canvas as one string per cell row.
func (c *Canvas) Rows() []string {
	rows := make([]string, c.height)
	line := make([]rune, c.width)
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			idx := y*c.width + x
			switch {
			case c.marks[idx] != 0:
				line[x] = c.marks[idx]
			case c.cells[idx] == 0:
				line[x] = ' '
			default:
				line[x] = rune(0x2800 | int(c.cells[idx]))
			}
		}
		rows[y] = string(line)
	}
	return rows
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func roundDot(v float64) int {
	return int(math.Round(v))
}
