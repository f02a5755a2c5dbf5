package domain_test

import (
	"strings"
	"testing"

	"pomo/internal/modules/timer/domain"
)

func TestFilledCellsAtFixedPoints(t *testing.T) {
	t.Parallel()
	w := domain.BarWidth
	cases := map[float64]int{0: 0, 0.5: w / 2, 1.0: w}
	for p, want := range cases {
		if got := domain.FilledCells(p, w); got != want {
			t.Fatalf("FilledCells(%v)=%d, want %d", p, got, want)
		}
	}
}

func TestFilledCellsMonotonic(t *testing.T) {
	t.Parallel()
	prev := -1
	for i := 0; i <= 1000; i++ {
		p := float64(i) / 1000
		got := domain.FilledCells(p, domain.BarWidth)
		if got < prev {
			t.Fatalf("filled decreased at p=%v: %d < %d", p, got, prev)
		}
		prev = got
	}
}

func TestFilledCellsClampsOutOfRange(t *testing.T) {
	t.Parallel()
	if got := domain.FilledCells(-0.3, 10); got != 0 {
		t.Fatalf("negative progress should clamp to 0, got %d", got)
	}
	if got := domain.FilledCells(1.7, 10); got != 10 {
		t.Fatalf("progress above 1 should clamp to width, got %d", got)
	}
	if got := domain.FilledCells(0.5, 0); got != 0 {
		t.Fatalf("zero width should render nothing, got %d", got)
	}
}

func TestRenderBar(t *testing.T) {
	t.Parallel()
	half := domain.RenderBar(0.5, 10)
	if half != "[█████-----] 50.0%" {
		t.Fatalf("unexpected half bar %q", half)
	}
	full := domain.RenderBar(1, domain.BarWidth)
	if strings.Count(full, domain.FilledCell) != domain.BarWidth || strings.Contains(full, domain.EmptyCell) {
		t.Fatalf("full bar should have no empty cells: %q", full)
	}
	low := domain.RenderBar(0.1, domain.BarWidth)
	if !strings.Contains(low, domain.EmptyCell) || !strings.HasSuffix(low, "10.0%") {
		t.Fatalf("unexpected low bar %q", low)
	}
}
