package cli

import (
	"strings"
	"testing"
)

func TestBreaksCmd_PrintsTable(t *testing.T) {
	output := captureStdout(t, func() {
		breaksCmd.Run(breaksCmd, nil)
	})

	wantRows := []string{
		"30 min   5 min / 10 min / none",
		"60 min   10 min / 15 min / none",
		"120 min   20 min / 30 min / none",
	}
	for _, row := range wantRows {
		if !strings.Contains(output, row) {
			t.Errorf("expected row %q in output:\n%s", row, output)
		}
	}
}
