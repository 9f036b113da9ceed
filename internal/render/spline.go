package render

// SplineSteps is the number of interpolated points emitted per sample span.
const SplineSteps = 6

// SmoothPath interpolates a Catmull-Rom spline through the given control
// points: each interior point's tangent comes from its neighbors, and the
// boundary points act as their own virtual neighbors. The returned path
// passes through every control point and has no sharp corners. Fewer than
// two points are returned as-is.
func SmoothPath(pts []Point, steps int) []Point {
	if len(pts) < 2 || steps < 1 {
		return append([]Point(nil), pts...)
	}
	out := make([]Point, 0, (len(pts)-1)*steps+1)
	out = append(out, pts[0])
	for i := 0; i < len(pts)-1; i++ {
		p0 := pts[max(i-1, 0)]
		p1 := pts[i]
		p2 := pts[i+1]
		p3 := pts[min(i+2, len(pts)-1)]
		for s := 1; s <= steps; s++ {
			out = append(out, catmullRom(p0, p1, p2, p3, float64(s)/float64(steps)))
		}
	}
	return out
}

func catmullRom(p0, p1, p2, p3 Point, t float64) Point {
	t2 := t * t
	t3 := t2 * t
	return Point{
		X: 0.5 * (2*p1.X + (-p0.X+p2.X)*t +
			(2*p0.X-5*p1.X+4*p2.X-p3.X)*t2 +
			(-p0.X+3*p1.X-3*p2.X+p3.X)*t3),
		Y: 0.5 * (2*p1.Y + (-p0.Y+p2.Y)*t +
			(2*p0.Y-5*p1.Y+4*p2.Y-p3.Y)*t2 +
			(-p0.Y+3*p1.Y-3*p2.Y+p3.Y)*t3),
	}
}
