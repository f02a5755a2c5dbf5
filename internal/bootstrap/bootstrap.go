package bootstrap

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	hclog "github.com/hashicorp/go-hclog"

	quoteinadapter "pomo/internal/modules/quote/adapter/in"
	quoteoutadapter "pomo/internal/modules/quote/adapter/out"
	quoteservice "pomo/internal/modules/quote/service"
	quoteusecase "pomo/internal/modules/quote/usecase"
	sessioninadapter "pomo/internal/modules/session/adapter/in"
	sessionoutadapter "pomo/internal/modules/session/adapter/out"
	sessionout "pomo/internal/modules/session/port/out"
	sessionservice "pomo/internal/modules/session/service"
	sessionusecase "pomo/internal/modules/session/usecase"
	timeroutadapter "pomo/internal/modules/timer/adapter/out"
	timerservice "pomo/internal/modules/timer/service"
	timerusecase "pomo/internal/modules/timer/usecase"
	"pomo/internal/platform/clock"
	"pomo/internal/platform/config"
	"pomo/internal/platform/interrupt"
	"pomo/internal/platform/logging"
	uiapp "pomo/internal/ui/app"
	"pomo/internal/ui/menu"
)

type App struct {
	SessionCLI sessioninadapter.CLIHandler
	QuoteCLI   quoteinadapter.CLIHandler
	Console    *menu.Console
	Logger     hclog.Logger

	closers []io.Closer
}

// Close releases the storage opened by New. It is safe to call more than once.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

type options struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	scope  interrupt.Scope
	sleep  clock.Sleeper
}

type Option func(*options)

// WithIO replaces the process streams, mainly for tests.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(o *options) {
		o.in, o.out, o.errOut = in, out, errOut
	}
}

// WithSleeper replaces the wall-clock sleeper used by countdowns.
func WithSleeper(s clock.Sleeper) Option {
	return func(o *options) { o.sleep = s }
}

func WithInterrupt(scope interrupt.Scope) Option {
	return func(o *options) { o.scope = scope }
}

func New(cfg config.Config, opts ...Option) (*App, error) {
	o := options{
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
		scope:  interrupt.OnSignal(os.Interrupt),
		sleep:  clock.SystemSleeper{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	logger := logging.New(cfg.LogLevel, o.errOut)
	clk := clock.SystemClock{}

	quoteProvider := quoteservice.NewProvider(
		context.Background(),
		quoteoutadapter.NewCSVQuoteSource(cfg.QuotesPath),
		nil,
		logger.Named("quotes"),
	)
	quoteUC := quoteusecase.NewInteractor(quoteProvider)

	timerUC := timerusecase.NewInteractor(timerservice.NewTimerService(
		o.sleep,
		timeroutadapter.NewTerminalDisplay(o.out),
		o.scope,
	))

	var index sessionout.SessionIndexProjector
	var closers []io.Closer
	if projector, err := sessionoutadapter.NewSQLiteSessionIndex(cfg.DBPath); err != nil {
		logger.Warn("session index unavailable, history is disabled", "path", cfg.DBPath, "error", err)
	} else {
		index = projector
		if c, ok := projector.(io.Closer); ok {
			closers = append(closers, c)
		}
	}

	console := menu.NewConsole(o.in, o.out)
	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(clk, sessionoutadapter.NewJSONLogStore(cfg.LogPath), index, logger.Named("sessions")),
		timerUC,
		quoteUC,
		console,
	)

	logger.Debug("app ready", "log", cfg.LogPath, "quotes", cfg.QuotesPath, "db", cfg.DBPath)
	return &App{
		SessionCLI: sessioninadapter.NewCLIHandler(sessionUC),
		QuoteCLI:   quoteinadapter.NewCLIHandler(quoteUC),
		Console:    console,
		Logger:     logger,
		closers:    closers,
	}, nil
}

func RunMenu(ctx context.Context, app *App) error {
	return menu.New(app.Console, app.SessionCLI).Run(ctx)
}

func RunTUI(app *App, sessionType string, minutes int) error {
	model := uiapp.NewModel(app.SessionCLI, app.QuoteCLI, sessionType, minutes)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
