package reporter

import "testing"

func TestColors(t *testing.T) {
	if got := Bold("Logfile:"); got != "\033[1mLogfile:\033[0m" {
		t.Fatalf("Bold returned %q", got)
	}

	if got := Dim("Warning: %s\n"); got != "\033[2mWarning: %s\n\033[0m" {
		t.Fatalf("Dim returned %q", got)
	}
}
