package render

import "math"

// Ring runes. The remaining portion of the countdown is drawn filled, the
// elapsed portion hollow.
const (
	ringFilled = '●'
	ringEmpty  = '·'
)

// Ring describes the circular countdown. Radius is the vertical radius in
// cells; columns are doubled to compensate for the terminal cell aspect
// ratio. Fraction is the elapsed share of the session, swept clockwise from
// 12 o'clock. Label is centered inside the ring.
type Ring struct {
	Radius   int
	Fraction float64
	Label    string
}

// Render rasterizes the ring into (2×Radius+1) rows.
func (r Ring) Render() []string {
	if r.Radius < 2 {
		r.Radius = 2
	}
	f := r.Fraction
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	sweep := f * 2 * math.Pi

	rad := float64(r.Radius)
	rows := 2*r.Radius + 1
	cols := 4*r.Radius + 1
	grid := make([][]rune, rows)
	for row := 0; row < rows; row++ {
		line := make([]rune, cols)
		for col := 0; col < cols; col++ {
			dx := float64(col-2*r.Radius) / 2
			dy := float64(row - r.Radius)
			dist := math.Hypot(dx, dy)
			if math.Abs(dist-rad) > 0.5 {
				line[col] = ' '
				continue
			}
			// Angle measured clockwise from 12 o'clock, in [0, 2π).
			theta := math.Atan2(dx, -dy)
			if theta < 0 {
				theta += 2 * math.Pi
			}
			if theta < sweep {
				line[col] = ringEmpty
			} else {
				line[col] = ringFilled
			}
		}
		grid[row] = line
	}

	if r.Label != "" {
		label := []rune(r.Label)
		start := 2*r.Radius - len(label)/2
		row := grid[r.Radius]
		for i, ch := range label {
			col := start + i
			if col >= 0 && col < cols {
				row[col] = ch
			}
		}
	}

	out := make([]string, rows)
	for i, line := range grid {
		out[i] = string(line)
	}
	return out
}
