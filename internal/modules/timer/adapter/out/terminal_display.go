package out

import (
	"fmt"
	"io"
	"strings"
	"time"

	"pomo/internal/modules/timer/domain"
	timerout "pomo/internal/modules/timer/port/out"
	"pomo/internal/ui/theme"
)

// TerminalDisplay redraws a single status line in place using carriage returns.
type TerminalDisplay struct {
	out   io.Writer
	width int
}

func NewTerminalDisplay(out io.Writer) timerout.Display {
	return &TerminalDisplay{out: out, width: domain.BarWidth}
}

func (d *TerminalDisplay) Start(label string, total time.Duration, quote, author string) {
	_, _ = fmt.Fprint(d.out, "\033[H\033[2J")
	if strings.TrimSpace(quote) != "" {
		_, _ = fmt.Fprintf(d.out, "\n%s\n", theme.Quote.Render(`"`+quote+`"`))
		if strings.TrimSpace(author) != "" {
			_, _ = fmt.Fprintln(d.out, theme.Author.Render("- "+author))
		}
		_, _ = fmt.Fprintln(d.out)
	}
	_, _ = fmt.Fprintf(d.out, "%s %s\n", theme.LabelStyle(label).Render(strings.ToUpper(label)), theme.Muted.Render(fmt.Sprintf("(%d min)", int(total/time.Minute))))
}

func (d *TerminalDisplay) Tick(label string, remaining time.Duration, progress float64) {
	secs := int(remaining / time.Second)
	line := fmt.Sprintf("\r%s - %s: %s %s",
		theme.LabelStyle(label).Render(strings.ToUpper(label)),
		theme.Good.Render("RUNNING"),
		theme.Clock.Render(fmt.Sprintf("%02d:%02d", secs/60, secs%60)),
		d.bar(progress),
	)
	_, _ = fmt.Fprint(d.out, line)
}

func (d *TerminalDisplay) Finish(label string, completed bool) {
	if completed {
		_, _ = fmt.Fprint(d.out, "\n\a\n")
		_, _ = fmt.Fprintln(d.out, theme.Good.Render("✓ "+strings.ToUpper(label)+" completed!"))
		return
	}
	_, _ = fmt.Fprintln(d.out)
	_, _ = fmt.Fprintln(d.out, theme.Bad.Render("Timer stopped!"))
}

func (d *TerminalDisplay) bar(progress float64) string {
	filled := domain.FilledCells(progress, d.width)
	return fmt.Sprintf("[%s%s] %s",
		theme.Good.Render(strings.Repeat(domain.FilledCell, filled)),
		theme.Muted.Render(strings.Repeat(domain.EmptyCell, d.width-filled)),
		theme.Accent.Render(fmt.Sprintf("%.1f%%", progress*100)),
	)
}
