package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	sessiondto "pomo/internal/modules/session/dto"
	"pomo/internal/ui/theme"
)

type sessionPort interface {
	Run(ctx context.Context, sessionType string, minutes int) (sessiondto.RunOutput, error)
	Stats(ctx context.Context) (sessiondto.StatsOutput, error)
}

// Menu is the numbered main loop. Only choice 6 or the end of input
// leaves it; everything else reports and shows the menu again.
type Menu struct {
	console *Console
	session sessionPort
	clear   bool
}

type Option func(*Menu)

// WithoutClear keeps the screen between iterations.
func WithoutClear() Option {
	return func(m *Menu) { m.clear = false }
}

func New(console *Console, session sessionPort, opts ...Option) *Menu {
	m := &Menu{console: console, session: session, clear: true}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Menu) Run(ctx context.Context) error {
	for {
		m.render()
		choice, err := m.console.Prompt("\nWhat would you like to do")
		if errors.Is(err, io.EOF) {
			m.goodbye()
			return nil
		}
		if err != nil {
			return fmt.Errorf("read choice: %w", err)
		}

		switch choice {
		case "1":
			m.run(ctx, "work", 0)
		case "2":
			m.run(ctx, "short_break", 0)
		case "3":
			m.run(ctx, "long_break", 0)
		case "4":
			if err := m.custom(ctx); errors.Is(err, io.EOF) {
				m.goodbye()
				return nil
			}
		case "5":
			if err := m.stats(ctx); errors.Is(err, io.EOF) {
				m.goodbye()
				return nil
			}
		case "6":
			m.goodbye()
			return nil
		default:
			m.console.println(theme.Bad.Render("Oops! Invalid choice!"))
		}
	}
}

func (m *Menu) render() {
	if m.clear {
		_, _ = fmt.Fprint(m.console.out, "\033[H\033[2J")
	}
	m.console.println("")
	m.console.println(theme.Title.Render("=== STUDY TIMER ==="))
	m.console.println(theme.Muted.Render("----------------"))
	m.console.println(theme.Good.Render("1.") + " Start Studying (25min)")
	m.console.println(theme.Break.Render("2.") + " Quick Break (5min)")
	m.console.println(theme.Break.Render("3.") + " Long Break (15min)")
	m.console.println(theme.Author.Render("4.") + " Custom Timer")
	m.console.println(theme.Work.Render("5.") + " View Stats")
	m.console.println(theme.Bad.Render("6.") + " Exit")
}

func (m *Menu) run(ctx context.Context, sessionType string, minutes int) {
	if _, err := m.session.Run(ctx, sessionType, minutes); err != nil {
		m.console.println(theme.Bad.Render(err.Error()))
	}
}

func (m *Menu) custom(ctx context.Context) error {
	raw, err := m.console.Prompt("How many minutes")
	if err != nil {
		return err
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		m.console.println(theme.Bad.Render("Please enter a valid number!"))
		return nil
	}
	label, err := m.console.Prompt("Session label")
	if err != nil {
		return err
	}
	m.run(ctx, label, minutes)
	return nil
}

func (m *Menu) stats(ctx context.Context) error {
	stats, err := m.session.Stats(ctx)
	if err != nil {
		m.console.println(theme.Bad.Render(err.Error()))
		return nil
	}
	m.console.println("")
	m.console.println(theme.Title.Render("Your Progress:"))
	m.console.println(theme.Muted.Render("-------------"))
	m.console.println("Total Sessions: " + theme.Good.Render(strconv.Itoa(stats.TotalSessions)))
	m.console.println("Completed: " + theme.Good.Render(strconv.Itoa(stats.CompletedSessions)))
	m.console.println("Total Minutes: " + theme.Good.Render(strconv.Itoa(stats.TotalMinutes)))
	m.console.println("Work Sessions: " + theme.Work.Render(strconv.Itoa(stats.WorkSessions)))
	m.console.println("Break Sessions: " + theme.Break.Render(strconv.Itoa(stats.BreakSessions)))
	if stats.LogStatus == "corrupt" {
		m.console.println(theme.Hot.Render("(session log could not be read)"))
	}

	_, _ = fmt.Fprint(m.console.out, theme.Muted.Render("Press Enter to continue..."))
	_, err = m.console.ReadLine()
	return err
}

func (m *Menu) goodbye() {
	m.console.println("")
	m.console.println(theme.Good.Render("Thanks for studying! See you next time!"))
}
