package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chessprofile/chess-profile/internal/config"
	"github.com/chessprofile/chess-profile/internal/export"
	ioutils "github.com/chessprofile/chess-profile/internal/io"
	"github.com/chessprofile/chess-profile/internal/logger"
	"github.com/chessprofile/chess-profile/internal/replay"
	"github.com/chessprofile/chess-profile/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var recErr *export.RecordError
		if errors.As(err, &recErr) {
			fmt.Fprintf(os.Stderr, "Error parsing pgn %v\n%s\n", recErr.Err, recErr.Raw)
		} else {
			_, _ = fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath    string
	output        string
	verbose       bool
	skipMalformed bool
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	root := &cobra.Command{
		Use:           "chess-profile <username>",
		Short:         "Export a chess.com player's game history to CSV",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd, &opts)
			if err != nil {
				return err
			}
			return runExport(cmd.Context(), settings, args[0])
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a JSON or YAML config file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show verbose output")
	root.Flags().StringVarP(&opts.output, "output", "o", "", "Output path format, {username} is replaced (overrides config)")
	root.Flags().BoolVar(&opts.skipMalformed, "skip-malformed", false, "Report malformed records and keep going instead of stopping")

	root.AddCommand(newCheckCmd(&opts))
	root.AddCommand(newTUICmd(&opts))
	return root
}

func loadSettings(cmd *cobra.Command, opts *rootOptions) (*config.Settings, error) {
	settings := config.DefaultSettings()
	if opts.configPath != "" {
		var err error
		settings, err = config.Load(opts.configPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}
	settings.ApplyEnv()

	// Apply flags
	if opts.output != "" {
		settings.OutputPathFormat = opts.output
	}
	if cmd.Flags().Changed("skip-malformed") {
		settings.SkipMalformed = opts.skipMalformed
	}
	if opts.verbose {
		settings.LogLevel = "debug"
	}

	logger.Init(settings.LogLevel, settings.Environment)
	return settings, nil
}

func runExport(ctx context.Context, settings *config.Settings, username string) error {
	// Handle interrupts
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.Log
	exporter, err := export.NewExporter(settings, func(event export.ProgressEvent) {
		entry := log.WithField("user", username)
		if event.Month.Year != 0 {
			entry = entry.WithField("month", event.Month.String())
		}
		entry.Log(logLevel(event.Level), event.Message)
	})
	if err != nil {
		return err
	}

	summary, err := exporter.Run(ctx, username)
	if err != nil {
		if ctx.Err() != nil {
			log.Warnf("Export cancelled, %d games written to %s", summary.Games, summary.Path)
		}
		return err
	}

	log.WithFields(logrus.Fields{
		"games":  summary.Games,
		"months": summary.MonthsFetched,
		"empty":  summary.MonthsEmpty,
	}).Infof("Done. Wrote %d games to %s", summary.Games, summary.Path)
	for _, recErr := range summary.Malformed {
		log.Warnf("Skipped malformed record: %v", recErr)
	}
	return nil
}

func logLevel(level export.ProgressLevel) logrus.Level {
	switch level {
	case export.LevelVerbose:
		return logrus.DebugLevel
	case export.LevelWarning:
		return logrus.WarnLevel
	case export.LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <csv-file>",
		Short: "Replay every game of an export and report illegal move lists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadSettings(cmd, opts); err != nil {
				return err
			}
			games, err := ioutils.ReadGamesFile(args[0])
			if err != nil {
				return err
			}

			report := replay.Check(games)
			for _, f := range report.Failures {
				logger.Log.WithField("row", f.Index+1).Warnf("%s (%s): %v", f.Game.Name(), f.Game.Date, f.Err)
			}
			logger.Log.Infof("Checked %d games: %d ok, %d failed, %d plies replayed",
				report.Games, report.OK(), len(report.Failures), report.Plies)

			if len(report.Failures) > 0 {
				return fmt.Errorf("%d of %d games failed to replay", len(report.Failures), report.Games)
			}
			return nil
		},
	}
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadSettings(cmd, opts)
			if err != nil {
				return err
			}
			// Keep log lines from drawing over the UI.
			logger.Log.SetLevel(logrus.PanicLevel)
			return tui.Run(settings)
		},
	}
}
