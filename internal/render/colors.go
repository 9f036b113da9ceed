package render

import "github.com/lucasb-eyer/go-colorful"

// Ramp returns n hex colors blended from one theme color to the other in
// Luv space, used to tint the curve from left to right. Unparseable colors
// degrade to a flat ramp of whichever endpoint is valid.
func Ramp(fromHex, toHex string, n int) []string {
	if n < 1 {
		return nil
	}
	from, errFrom := colorful.Hex(fromHex)
	to, errTo := colorful.Hex(toHex)
	switch {
	case errFrom != nil && errTo != nil:
		from, to = colorful.Color{R: 1, G: 1, B: 1}, colorful.Color{R: 1, G: 1, B: 1}
	case errFrom != nil:
		from = to
	case errTo != nil:
		to = from
	}

	out := make([]string, n)
	out[0] = from.Hex()
	if n == 1 {
		return out
	}
	out[n-1] = to.Hex()
	for i := 1; i < n-1; i++ {
		t := float64(i) / float64(n-1)
		out[i] = from.BlendLuv(to, t).Clamped().Hex()
	}
	return out
}
