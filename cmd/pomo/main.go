package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"pomo/internal/bootstrap"
	sessiondto "pomo/internal/modules/session/dto"
	"pomo/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type globalFlags struct {
	dataDir    string
	logFile    string
	quotesFile string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "pomo",
		Short:         "Pomodoro study timer",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMenu(cmd, flags)
		},
	}
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", ".", "directory holding the session log and quotes")
	root.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "session log path (default <data-dir>/logfile.json)")
	root.PersistentFlags().StringVar(&flags.quotesFile, "quotes", "", "quotes CSV path (default <data-dir>/quotes.csv)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", config.DefaultLogLevel, "diagnostic level: trace|debug|info|warn|error")

	root.AddCommand(newMenuCmd(flags))
	root.AddCommand(newStartCmd(flags))
	root.AddCommand(newStatsCmd(flags))
	root.AddCommand(newHistoryCmd(flags))
	root.AddCommand(newReindexCmd(flags))
	root.AddCommand(newQuoteCmd(flags))
	root.AddCommand(newTUICmd(flags))
	return root
}

func loadApp(cmd *cobra.Command, flags *globalFlags) (*bootstrap.App, error) {
	cfg, err := config.New(flags.dataDir,
		config.WithLogPath(flags.logFile),
		config.WithQuotesPath(flags.quotesFile),
		config.WithLogLevel(flags.logLevel),
	)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, bootstrap.WithIO(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()))
}

func runMenu(cmd *cobra.Command, flags *globalFlags) error {
	app, err := loadApp(cmd, flags)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return bootstrap.RunMenu(context.Background(), app)
}

func newMenuCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive numbered menu",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMenu(cmd, flags)
		},
	}
}

func newStartCmd(flags *globalFlags) *cobra.Command {
	var minutes int
	start := &cobra.Command{
		Use:   "start <work|short_break|long_break|label>",
		Short: "Run one session, then offer a break after work",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.SessionCLI.Run(context.Background(), args[0], minutes)
			if err != nil {
				return err
			}
			for _, run := range out.Runs {
				state := "stopped"
				if run.Record.Completed {
					state = "completed"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %dmin %s\n", run.Record.Type, run.Record.SessionNumber, run.Record.Duration, state)
			}
			return nil
		},
	}
	start.Flags().IntVar(&minutes, "minutes", 0, "session length (required for custom labels)")
	return start
}

func newStatsCmd(flags *globalFlags) *cobra.Command {
	var format string
	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate session statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.SessionCLI.Stats(context.Background())
			if err != nil {
				return err
			}
			return writeStats(cmd.OutOrStdout(), format, out)
		},
	}
	stats.Flags().StringVar(&format, "format", "text", "output format: text|json|yaml")
	return stats
}

func writeStats(w io.Writer, format string, out sessiondto.StatsOutput) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		_, _ = fmt.Fprintf(w, "Total Sessions: %d\nCompleted: %d\nTotal Minutes: %d\nWork Sessions: %d\nBreak Sessions: %d\n",
			out.TotalSessions, out.CompletedSessions, out.TotalMinutes, out.WorkSessions, out.BreakSessions)
		if out.LogStatus == "corrupt" {
			_, _ = fmt.Fprintf(w, "warning: session log could not be read: %s\n", out.LogError)
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode stats: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}

func newHistoryCmd(flags *globalFlags) *cobra.Command {
	var sessionType string
	var completedOnly bool
	var limit int
	history := &cobra.Command{
		Use:   "history",
		Short: "List recent sessions from the index",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			items, err := app.SessionCLI.History(context.Background(), sessionType, completedOnly, limit)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions")
				return nil
			}
			for _, item := range items {
				mark := "✗"
				if item.Completed {
					mark = "✓"
				}
				when := item.TimestampText
				if !item.Timestamp.IsZero() {
					when = item.Timestamp.Format("2006-01-02T15:04:05Z07:00")
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%dmin\t#%d\t%s\n",
					when, item.Type, item.Duration, item.SessionNumber, mark)
			}
			return nil
		},
	}
	history.Flags().StringVar(&sessionType, "type", "", "only this session type")
	history.Flags().BoolVar(&completedOnly, "completed", false, "only completed sessions")
	history.Flags().IntVar(&limit, "limit", 20, "maximum rows")
	return history
}

func newReindexCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the session index from the log",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.SessionCLI.Reindex(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "reindexed %d sessions (log %s)\n", out.Indexed, out.LogStatus)
			return nil
		},
	}
}

func newQuoteCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "quote",
		Short: "Print a random motivational quote",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			q, err := app.QuoteCLI.Next(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\"%s\"\n- %s\n", q.Text, q.Author)
			return nil
		},
	}
}

func newTUICmd(flags *globalFlags) *cobra.Command {
	var minutes int
	tui := &cobra.Command{
		Use:   "tui [work|short_break|long_break|label]",
		Short: "Run a session in the full-screen focus view",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionType := "work"
			if len(args) == 1 {
				sessionType = args[0]
			}
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			return bootstrap.RunTUI(app, sessionType, minutes)
		},
	}
	tui.Flags().IntVar(&minutes, "minutes", 0, "session length (required for custom labels)")
	return tui
}
