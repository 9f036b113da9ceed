package core

import (
	"math"

	"github.com/flowstate-dev/focusring/pkg/models"
)

// CurveSamples is the fixed number of spans sampled across a session. The
// sampler emits CurveSamples+1 points covering fractions 0..1 inclusive.
const CurveSamples = 60

// curveTailDecay is the slope of the linear decay that biases the curve tail
// downward: each sample is scaled by (1 − curveTailDecay×fraction) before
// renormalization.
const curveTailDecay = 0.15

// peakCount returns the number of gaussian peaks for a session length.
// Fixed thresholds: 90+ minutes gets 3 peaks, 60+ gets 2, shorter sessions 1.
func peakCount(minutes int) int {
	switch {
	case minutes >= 90:
		return 3
	case minutes >= 60:
		return 2
	default:
		return 1
	}
}

// SampleCurve generates the decorative productivity curve for a session of
// the given length in minutes. The shape is a sum of gaussians centered at
// evenly spaced positions along the session, each with width
// minutes/(peaks×3.5), scaled by a linear tail decay and renormalized so the
// maximum sample is exactly 1.
//
// The function is deterministic and side-effect free: identical input always
// yields an identical slice.
func SampleCurve(minutes int) []models.CurvePoint {
	if minutes < 1 {
		minutes = 1
	}
	peaks := peakCount(minutes)
	d := float64(minutes)
	sigma := d / (float64(peaks) * 3.5)

	pts := make([]models.CurvePoint, CurveSamples+1)
	maxVal := 0.0
	for i := 0; i <= CurveSamples; i++ {
		fraction := float64(i) / CurveSamples
		t := fraction * d
		v := 0.0
		for k := 0; k < peaks; k++ {
			center := d * float64(k+1) / float64(peaks+1)
			dev := (t - center) / sigma
			v += math.Exp(-0.5 * dev * dev)
		}
		v *= 1 - curveTailDecay*fraction
		pts[i] = models.CurvePoint{Fraction: fraction, Value: v}
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal > 0 {
		for i := range pts {
			pts[i].Value /= maxVal
		}
	}
	return pts
}
