package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestInfoRespectsQuiet(t *testing.T) {
	var buf bytes.Buffer

	NewLoggerTo(true, &buf).Info("loaded %d hashes", 3)
	if buf.Len() != 0 {
		t.Errorf("quiet logger wrote %q", buf.String())
	}

	NewLoggerTo(false, &buf).Info("loaded %d hashes", 3)
	if got := buf.String(); got != "loaded 3 hashes\n" {
		t.Errorf("Info() wrote %q", got)
	}
}

func TestErrorIgnoresQuiet(t *testing.T) {
	var buf bytes.Buffer
	NewLoggerTo(true, &buf).Error("open listing: %s", "boom")

	got := buf.String()
	if !strings.Contains(got, "ERROR:") || !strings.Contains(got, "open listing: boom") {
		t.Errorf("Error() wrote %q", got)
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	NewLoggerTo(true, &buf).PrintSummary(10, 4, 2, 4, 1500*time.Millisecond)

	got := buf.String()
	for _, want := range []string{"Records: 10", "Duplicates: 4", "Ignored: 2", "Unique: 4", "Duration: 1.5s"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q in %q", want, got)
		}
	}
}
