package models

// CurvePoint is one sample of the productivity curve. Fraction is the
// position along the session in [0,1]; Value is the normalized curve height
// in [0,1] with the curve maximum at exactly 1.
type CurvePoint struct {
	Fraction float64
	Value    float64
}
