// Package render maps timer and curve state to drawable terminal geometry:
// the depleting countdown ring, the smoothed productivity curve, and the
// progress marker. Everything here is a pure function of its inputs; styling
// and layout belong to the TUI layer.
package render

import (
	"math"
	"time"

	"github.com/flowstate-dev/focusring/pkg/models"
)

// CurvePad is the fixed top and bottom padding, in dots, applied when
// mapping curve samples onto the drawing surface.
const CurvePad = 10

// Point is a coordinate in dot space. Y grows downward.
type Point struct {
	X float64
	Y float64
}

// ArcFraction returns elapsed/total clamped to [0,1]. A non-positive total
// yields 0.
func ArcFraction(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 0
	}
	f := elapsed.Seconds() / total.Seconds()
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Circumference returns the ring path length 2π×radius.
func Circumference(radius float64) float64 {
	return 2 * math.Pi * radius
}

// DashOffset returns the length of ring stroke hidden at the given elapsed
// fraction. The ring starts whole and depletes as the fraction grows.
func DashOffset(radius, fraction float64) float64 {
	return Circumference(radius) * fraction
}

// MapPoints converts normalized curve samples into dot-space coordinates on
// a width×height surface with CurvePad dots of headroom above and below.
// Sample values of 1 land on the top padding line, values of 0 on the
// bottom one.
func MapPoints(pts []models.CurvePoint, width, height int) []Point {
	if width < 2 || height < 2 {
		return nil
	}
	pad := CurvePad
	usable := height - 1 - 2*pad
	if usable < 1 {
		pad = 0
		usable = height - 1
	}
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{
			X: p.Fraction * float64(width-1),
			Y: float64(pad) + (1-p.Value)*float64(usable),
		}
	}
	return out
}

// MarkerIndex returns the curve sample the progress marker sits on:
// floor(fraction×(n−1)), clamped to a valid index. The marker is driven by
// the same elapsed fraction as the ring.
func MarkerIndex(fraction float64, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(math.Floor(fraction * float64(n-1)))
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}
