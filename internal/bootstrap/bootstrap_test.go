package bootstrap_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pomo/internal/bootstrap"
	"pomo/internal/platform/config"
	"pomo/internal/platform/interrupt"
)

type instantSleeper struct{}

func (instantSleeper) Sleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

func newApp(t *testing.T, input string) (*bootstrap.App, config.Config, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	quotes := "quote,author\nSmall steps.,Anon\n"
	if err := os.WriteFile(filepath.Join(dir, "quotes.csv"), []byte(quotes), 0o644); err != nil {
		t.Fatalf("write quotes: %v", err)
	}
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	var out bytes.Buffer
	app, err := bootstrap.New(cfg,
		bootstrap.WithIO(strings.NewReader(input), &out, &bytes.Buffer{}),
		bootstrap.WithSleeper(instantSleeper{}),
		bootstrap.WithInterrupt(interrupt.None),
	)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })
	return app, cfg, &out
}

func TestMenuSessionWithAcceptedBreakIsLogged(t *testing.T) {
	t.Parallel()
	app, cfg, out := newApp(t, "1\n\n6\n")
	if err := bootstrap.RunMenu(context.Background(), app); err != nil {
		t.Fatalf("run menu: %v", err)
	}

	raw, err := os.ReadFile(cfg.LogPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var records []map[string]any
	if err := json.Unmarshal(raw, &records); err != nil {
		t.Fatalf("decode log: %v", err)
	}
	if len(records) != 2 || records[0]["type"] != "work" || records[1]["type"] != "short_break" {
		t.Fatalf("unexpected log %s", raw)
	}
	for _, want := range []string{"Small steps.", "WORK completed!", "Nice job! Quick break?", "Thanks for studying!"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q", want)
		}
	}

	history, err := app.SessionCLI.History(context.Background(), "", false, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("index should mirror the log, got %d rows", len(history))
	}
}

func TestQuoteFallbackWithoutFile(t *testing.T) {
	t.Parallel()
	cfg, err := config.New(t.TempDir())
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	app, err := bootstrap.New(cfg, bootstrap.WithIO(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}))
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	defer func() { _ = app.Close() }()
	status, err := app.QuoteCLI.Status(context.Background())
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !status.Fallback || status.Count != 1 {
		t.Fatalf("expected fallback quote, got %+v", status)
	}
}

func TestCloseReleasesIndex(t *testing.T) {
	t.Parallel()
	app, _, _ := newApp(t, "")
	if err := app.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := app.Close(); err != nil {
		t.Fatalf("second close should be a no-op: %v", err)
	}
	if _, err := app.SessionCLI.History(context.Background(), "", false, 0); err == nil {
		t.Fatalf("history should fail once the index is closed")
	}
}
