package render

import (
	"math"
	"testing"
)

func TestSmoothPath_PassesThroughControlPoints(t *testing.T) {
	ctrl := []Point{{0, 10}, {20, 2}, {40, 18}, {60, 5}, {80, 12}}
	path := SmoothPath(ctrl, SplineSteps)

	wantLen := (len(ctrl)-1)*SplineSteps + 1
	if len(path) != wantLen {
		t.Fatalf("path has %d points, want %d", len(path), wantLen)
	}

	// Control point i sits at path index i×steps.
	for i, cp := range ctrl {
		got := path[i*SplineSteps]
		if math.Abs(got.X-cp.X) > 1e-9 || math.Abs(got.Y-cp.Y) > 1e-9 {
			t.Errorf("control point %d: path point %v, want %v", i, got, cp)
		}
	}
}

func TestSmoothPath_MonotonicXStaysMonotonic(t *testing.T) {
	// Curve samples have strictly increasing X; the spline must not fold back
	// far enough to break the left-to-right plot.
	ctrl := []Point{{0, 30}, {10, 10}, {20, 28}, {30, 12}, {40, 25}}
	path := SmoothPath(ctrl, 8)
	for i := 1; i < len(path); i++ {
		if path[i].X < path[i-1].X-1e-9 {
			t.Fatalf("X decreased at %d: %v after %v", i, path[i], path[i-1])
		}
	}
}

func TestSmoothPath_Degenerate(t *testing.T) {
	if got := SmoothPath(nil, 4); len(got) != 0 {
		t.Errorf("nil input: %v, want empty", got)
	}
	single := []Point{{3, 4}}
	if got := SmoothPath(single, 4); len(got) != 1 || got[0] != single[0] {
		t.Errorf("single point: %v, want %v", got, single)
	}
	two := []Point{{0, 0}, {10, 10}}
	path := SmoothPath(two, 2)
	if len(path) != 3 {
		t.Fatalf("two points with 2 steps: %d points, want 3", len(path))
	}
	if path[0] != two[0] || path[2] != two[1] {
		t.Errorf("endpoints = %v, %v, want %v, %v", path[0], path[2], two[0], two[1])
	}
}

func TestCatmullRom_EndpointsExact(t *testing.T) {
	p0, p1, p2, p3 := Point{0, 0}, Point{1, 5}, Point{2, 3}, Point{3, 8}
	if got := catmullRom(p0, p1, p2, p3, 0); got != p1 {
		t.Errorf("t=0: %v, want %v", got, p1)
	}
	got := catmullRom(p0, p1, p2, p3, 1)
	if math.Abs(got.X-p2.X) > 1e-12 || math.Abs(got.Y-p2.Y) > 1e-12 {
		t.Errorf("t=1: %v, want %v", got, p2)
	}
}
