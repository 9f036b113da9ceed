package render

import (
	"strings"
	"testing"

	"github.com/flowstate-dev/focusring/internal/core"
)

func TestCanvas_SetSingleDots(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"top-left dot", 0, 0, '⠁'},
		{"second column of cell", 1, 0, '⠈'},
		{"second row", 0, 1, '⠂'},
		{"bottom-left dot", 0, 3, '⡀'},
		{"bottom-right dot", 1, 3, '⢀'},
	}
	for _, tt := range tests {
		c := NewCanvas(1, 1)
		c.Set(tt.x, tt.y)
		got := []rune(c.Rows()[0])[0]
		if got != tt.want {
			t.Errorf("%s: rune = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestCanvas_DotsAccumulateInCell(t *testing.T) {
	c := NewCanvas(1, 1)
	for y := 0; y < 4; y++ {
		for x := 0; x < 2; x++ {
			c.Set(x, y)
		}
	}
	if got := []rune(c.Rows()[0])[0]; got != '⣿' {
		t.Errorf("full cell = %q, want ⣿", got)
	}
}

func TestCanvas_OutOfRangeIgnored(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(c.DotWidth(), 0)
	c.Set(0, c.DotHeight())
	c.Mark(-1, -1, 'x')

	for _, row := range c.Rows() {
		if strings.TrimSpace(row) != "" {
			t.Fatalf("canvas not empty after out-of-range plots: %q", row)
		}
	}
}

func TestCanvas_LineTouchesEndpoints(t *testing.T) {
	c := NewCanvas(10, 4)
	c.Line(0, 0, c.DotWidth()-1, c.DotHeight()-1)

	rows := c.Rows()
	first := []rune(rows[0])[0]
	last := []rune(rows[len(rows)-1])[9]
	if first == ' ' {
		t.Error("line start cell is empty")
	}
	if last == ' ' {
		t.Error("line end cell is empty")
	}
}

func TestCanvas_MarkOverridesBraille(t *testing.T) {
	c := NewCanvas(3, 1)
	c.Set(2, 1) // middle cell
	c.Mark(2, 1, MarkerRune)

	row := []rune(c.Rows()[0])
	if row[1] != MarkerRune {
		t.Errorf("marked cell = %q, want %q", row[1], MarkerRune)
	}
}

func TestCanvas_RowDimensions(t *testing.T) {
	c := NewCanvas(12, 5)
	rows := c.Rows()
	if len(rows) != 5 {
		t.Fatalf("%d rows, want 5", len(rows))
	}
	for i, row := range rows {
		if got := len([]rune(row)); got != 12 {
			t.Errorf("row %d has %d cells, want 12", i, got)
		}
	}
}

func TestChart_PlotsCurveWithMarker(t *testing.T) {
	points := core.SampleCurve(25)
	rows := Chart(points, 0.5, 60, 16)

	if len(rows) != 16 {
		t.Fatalf("%d rows, want 16", len(rows))
	}
	joined := strings.Join(rows, "\n")
	if !strings.ContainsRune(joined, MarkerRune) {
		t.Error("marker rune missing from chart")
	}
	// The curve must put ink on the canvas.
	ink := 0
	for _, r := range joined {
		if r != ' ' && r != '\n' && r != MarkerRune {
			ink++
		}
	}
	if ink == 0 {
		t.Error("chart has no plotted dots")
	}
}

func TestChart_NegativeFractionOmitsMarker(t *testing.T) {
	points := core.SampleCurve(60)
	rows := Chart(points, -1, 60, 16)
	if strings.ContainsRune(strings.Join(rows, ""), MarkerRune) {
		t.Error("marker drawn despite negative fraction")
	}
}
