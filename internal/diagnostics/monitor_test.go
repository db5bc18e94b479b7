package diagnostics

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/janiskrasemann/whisker/internal/logging"
)

type countingCounter struct{ n int }

func (c *countingCounter) IncWarnings() { c.n++ }

func TestTrackWarning(t *testing.T) {
	var buf bytes.Buffer
	counter := &countingCounter{}
	m := NewCrashMonitor(logging.NewLogger(&buf, "diagnostics"), counter)

	ctx := logging.WithRunID(context.Background(), "run-42")
	m.TrackWarning(ctx, "did not get a server response")

	output := buf.String()
	for _, want := range []string{`"level":"warn"`, "did not get a server response", "run-42"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got: %s", want, output)
		}
	}
	if counter.n != 1 {
		t.Errorf("expected 1 warning counted, got %d", counter.n)
	}
}

func TestTrackWarningWithoutCounter(t *testing.T) {
	m := NewCrashMonitor(nil, nil)
	m.TrackWarning(context.Background(), "ignored")
}
