package render

import "github.com/flowstate-dev/focusring/pkg/models"

// Chart renders the productivity curve into a width×height cell grid: the
// samples are mapped into dot space, smoothed with a Catmull-Rom spline, and
// plotted as braille dots. A fraction in [0,1] draws the progress marker on
// its sample; a negative fraction omits the marker.
func Chart(points []models.CurvePoint, fraction float64, width, height int) []string {
	c := NewCanvas(width, height)
	mapped := MapPoints(points, c.DotWidth(), c.DotHeight())
	smooth := SmoothPath(mapped, SplineSteps)
	for i := 1; i < len(smooth); i++ {
		c.Line(
			roundDot(smooth[i-1].X), roundDot(smooth[i-1].Y),
			roundDot(smooth[i].X), roundDot(smooth[i].Y),
		)
	}
	if fraction >= 0 && len(mapped) > 0 {
		m := mapped[MarkerIndex(fraction, len(mapped))]
		c.Mark(roundDot(m.X), roundDot(m.Y), MarkerRune)
	}
	return c.Rows()
}
