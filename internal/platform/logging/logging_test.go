package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"pomo/internal/platform/logging"
)

func TestNewFiltersBelowLevel(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	logger := logging.New("warn", buf)
	logger.Info("hidden")
	logger.Warn("shown", "path", "logfile.json")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered: %s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "path=logfile.json") {
		t.Fatalf("warn line missing fields: %s", out)
	}
}

func TestNewUnknownLevelFallsBackToWarn(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	logger := logging.New("chatty", buf)
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug should be filtered at warn, got %s", buf.String())
	}
}
