package render

import (
	"regexp"
	"testing"
)

var hexRE = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestRamp_EndpointsAndLength(t *testing.T) {
	got := Ramp("#7d56f4", "#565f89", 12)
	if len(got) != 12 {
		t.Fatalf("ramp has %d colors, want 12", len(got))
	}
	if got[0] != "#7d56f4" {
		t.Errorf("first color = %s, want #7d56f4", got[0])
	}
	if got[11] != "#565f89" {
		t.Errorf("last color = %s, want #565f89", got[11])
	}
	for i, c := range got {
		if !hexRE.MatchString(c) {
			t.Errorf("color %d = %q, not a hex color", i, c)
		}
	}
}

func TestRamp_SingleColor(t *testing.T) {
	got := Ramp("#ff0000", "#00ff00", 1)
	if len(got) != 1 || got[0] != "#ff0000" {
		t.Errorf("Ramp n=1 = %v, want [#ff0000]", got)
	}
}

func TestRamp_InvalidInputFallsBack(t *testing.T) {
	got := Ramp("not-a-color", "#00ff00", 3)
	for i, c := range got {
		if c != "#00ff00" {
			t.Errorf("color %d = %s, want flat #00ff00", i, c)
		}
	}

	both := Ramp("nope", "also nope", 2)
	if len(both) != 2 {
		t.Fatalf("ramp has %d colors, want 2", len(both))
	}
	for _, c := range both {
		if !hexRE.MatchString(c) {
			t.Errorf("fallback color %q is not hex", c)
		}
	}
}

func TestRamp_ZeroCount(t *testing.T) {
	if got := Ramp("#000000", "#ffffff", 0); got != nil {
		t.Errorf("Ramp n=0 = %v, want nil", got)
	}
}
