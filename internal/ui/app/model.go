package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	quotedto "pomo/internal/modules/quote/dto"
	sessiondto "pomo/internal/modules/session/dto"
	timerdomain "pomo/internal/modules/timer/domain"
	"pomo/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type sessionPort interface {
	Begin(ctx context.Context, sessionType string, minutes int) (sessiondto.BeginOutput, error)
	Finish(ctx context.Context, begun sessiondto.BeginOutput, completed bool) (sessiondto.FinishOutput, error)
}

type quotePort interface {
	Next(ctx context.Context) (quotedto.QuoteOutput, error)
}

// ─── phases ──────────────────────────────────────────────────────────────────

type phase int

const (
	phaseStarting phase = iota
	phaseRunning
	phaseOffer
	phaseDone
)

// ─── async messages ──────────────────────────────────────────────────────────

type begunMsg struct {
	out   sessiondto.BeginOutput
	quote quotedto.QuoteOutput
	err   error
}

type tickMsg struct{ gen int }

type finishedMsg struct {
	out  sessiondto.FinishOutput
	err  error
	quit bool
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Pause key.Binding
	Yes   key.Binding
	No    key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Pause: key.NewBinding(key.WithKeys("p", " "), key.WithHelp("p", "pause")),
		Yes:   key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "start break")),
		No:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "skip")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "stop")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Quit},
		{k.Yes, k.No, k.Help},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model runs one session, and any break the user accepts, full screen.
// Quitting mid-countdown records the session as not completed.
type Model struct {
	session sessionPort
	quotes  quotePort

	requestType    string
	requestMinutes int

	current   sessiondto.BeginOutput
	countdown timerdomain.Countdown
	quote     quotedto.QuoteOutput
	followUp  string
	paused    bool
	gen       int

	phase    phase
	keys     keyMap
	help     help.Model
	showHelp bool
	status   string
	width    int
	height   int
}

func NewModel(session sessionPort, quotes quotePort, sessionType string, minutes int) Model {
	return Model{
		session: session,
		quotes:  quotes,
		keys:    defaultKeys(),
		help:    help.New(),
		status:  "starting",

		requestType:    sessionType,
		requestMinutes: minutes,
	}
}

func (m Model) Init() tea.Cmd {
	return m.beginCmd(m.requestType, m.requestMinutes)
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case begunMsg:
		if msg.err != nil {
			m.phase = phaseDone
			m.status = "start failed: " + msg.err.Error()
			return m, nil
		}
		m.current = msg.out
		m.quote = msg.quote
		m.countdown = timerdomain.NewCountdown(msg.out.Minutes)
		m.followUp = ""
		m.paused = false
		m.phase = phaseRunning
		m.status = fmt.Sprintf("session #%d", msg.out.SessionNumber)
		m.gen++
		return m, m.tickCmd()

	case tickMsg:
		if msg.gen != m.gen || m.phase != phaseRunning || m.paused {
			return m, nil
		}
		m.countdown.Advance(timerdomain.Tick)
		if m.countdown.Done() {
			m.status = "completed"
			return m, m.finishCmd(true, false)
		}
		return m, m.tickCmd()

	case finishedMsg:
		if msg.err != nil {
			m.status = "finish failed: " + msg.err.Error()
		} else if !msg.out.Saved {
			m.status = "Couldn't save session: " + msg.out.SaveError
		}
		if msg.quit {
			return m, tea.Quit
		}
		if msg.err == nil && msg.out.FollowUp != "" {
			m.followUp = msg.out.FollowUp
			m.phase = phaseOffer
			return m, nil
		}
		m.phase = phaseDone
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if key.Matches(msg, m.keys.Help) || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
		case key.Matches(msg, m.keys.Quit):
			if m.phase == phaseRunning {
				m.phase = phaseDone
				m.status = "Timer stopped!"
				return m, m.finishCmd(false, true)
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			if m.phase == phaseRunning {
				m.paused = !m.paused
				if !m.paused {
					m.gen++
					return m, m.tickCmd()
				}
			}
		case key.Matches(msg, m.keys.Yes):
			if m.phase == phaseOffer {
				m.phase = phaseStarting
				return m, m.beginCmd(m.followUp, 0)
			}
			if m.phase == phaseDone {
				return m, tea.Quit
			}
		case key.Matches(msg, m.keys.No):
			if m.phase == phaseOffer || m.phase == phaseDone {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.showHelp {
		return theme.Pane.Render(m.help.View(m.keys)) + "\n"
	}

	var b strings.Builder
	if m.quote.Text != "" {
		b.WriteString(theme.Quote.Render(`"` + m.quote.Text + `"`))
		b.WriteString("\n")
		b.WriteString(theme.Author.Render("- " + m.quote.Author))
		b.WriteString("\n\n")
	}

	label := strings.ToUpper(m.current.Type)
	if label == "" {
		label = strings.ToUpper(m.requestType)
	}
	b.WriteString(theme.LabelStyle(label).Render(label))
	if m.current.Minutes > 0 {
		b.WriteString(" " + theme.Muted.Render(fmt.Sprintf("(%d min)", m.current.Minutes)))
	}
	b.WriteString("\n\n")

	switch m.phase {
	case phaseRunning:
		mins, secs := m.countdown.Clock()
		state := theme.Good.Render("RUNNING")
		if m.paused {
			state = theme.Hot.Render("PAUSED")
		}
		b.WriteString(fmt.Sprintf("%s %s\n", state, theme.Clock.Render(fmt.Sprintf("%02d:%02d", mins, secs))))
		b.WriteString(theme.Accent.Render(timerdomain.RenderBar(m.countdown.Progress(), timerdomain.BarWidth)))
	case phaseOffer:
		if m.followUp == "long_break" {
			b.WriteString(theme.Good.Render("Great work! Time for a longer break!") + "\n")
			b.WriteString("Start long break? " + theme.Muted.Render("[Y/n]"))
		} else {
			b.WriteString(theme.Good.Render("Nice job! Quick break?") + "\n")
			b.WriteString("Start short break? " + theme.Muted.Render("[Y/n]"))
		}
	case phaseDone:
		b.WriteString(theme.Muted.Render("press q to leave"))
	default:
		b.WriteString(theme.Muted.Render("…"))
	}

	body := theme.Pane.Render(b.String())
	statusBar := theme.Muted.Render(m.status) + "  " + m.help.ShortHelpView(m.keys.ShortHelp())
	if m.width > 0 && m.height > 0 {
		body = lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, statusBar)
}

// Phase names the current screen for callers that drive the model directly.
func (m Model) Phase() string {
	switch m.phase {
	case phaseRunning:
		return "running"
	case phaseOffer:
		return "offer"
	case phaseDone:
		return "done"
	}
	return "starting"
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) beginCmd(sessionType string, minutes int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		out, err := m.session.Begin(ctx, sessionType, minutes)
		if err != nil {
			return begunMsg{err: err}
		}
		msg := begunMsg{out: out}
		if m.quotes != nil {
			if q, err := m.quotes.Next(ctx); err == nil {
				msg.quote = q
			}
		}
		return msg
	}
}

func (m Model) tickCmd() tea.Cmd {
	gen := m.gen
	return tea.Tick(timerdomain.Tick, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (m Model) finishCmd(completed, quit bool) tea.Cmd {
	begun := m.current
	return func() tea.Msg {
		out, err := m.session.Finish(context.Background(), begun, completed)
		return finishedMsg{out: out, err: err, quit: quit}
	}
}
