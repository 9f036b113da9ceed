package core

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

// Feature: focusring, Property 1: Curve Determinism And Normalization
// For any session length, sampling the curve twice SHALL yield bit-identical
// slices of exactly CurveSamples+1 points with fractions evenly spaced over
// [0,1], every value in [0,1], and the maximum value equal to 1 within 1e-9.
func TestProperty01_CurveDeterminismAndNormalization(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		minutes := rapid.IntRange(1, 180).Draw(rt, "minutes")

		first := SampleCurve(minutes)
		second := SampleCurve(minutes)

		if len(first) != CurveSamples+1 {
			t.Fatalf("len = %d, want %d", len(first), CurveSamples+1)
		}
		if len(second) != len(first) {
			t.Fatalf("repeat sample len = %d, want %d", len(second), len(first))
		}

		maxVal := 0.0
		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("sample %d differs between runs: %+v vs %+v", i, first[i], second[i])
			}
			wantFraction := float64(i) / CurveSamples
			if first[i].Fraction != wantFraction {
				t.Fatalf("fraction[%d] = %v, want %v", i, first[i].Fraction, wantFraction)
			}
			if first[i].Value < 0 || first[i].Value > 1 {
				t.Fatalf("value[%d] = %v out of [0,1]", i, first[i].Value)
			}
			if first[i].Value > maxVal {
				maxVal = first[i].Value
			}
		}
		if math.Abs(maxVal-1) > 1e-9 {
			t.Fatalf("max value = %v, want 1 within 1e-9", maxVal)
		}
	})
}

// Feature: focusring, Property 2: Peak Count Policy
// The sampled curve SHALL show exactly one peak for sessions under 60
// minutes, two for 60 to 89 minutes, and three for 90 minutes and up.
func TestProperty02_PeakCountPolicy(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		minutes := rapid.IntRange(1, 180).Draw(rt, "minutes")

		want := 1
		switch {
		case minutes >= 90:
			want = 3
		case minutes >= 60:
			want = 2
		}

		if got := countLocalMaxima(SampleCurve(minutes)); got != want {
			t.Fatalf("%d min: %d local maxima, want %d", minutes, got, want)
		}
	})
}
