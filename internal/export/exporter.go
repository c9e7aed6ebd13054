package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chessprofile/chess-profile/internal/chesscom"
	"github.com/chessprofile/chess-profile/internal/config"
	"github.com/chessprofile/chess-profile/internal/http"
	ioutils "github.com/chessprofile/chess-profile/internal/io"
	"github.com/chessprofile/chess-profile/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents an export progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
	Month   model.Month
	Done    int
	Total   int
}

// RecordError is returned when a record in a month's bundle cannot be parsed.
type RecordError struct {
	Month model.Month
	Index int
	Raw   string
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("parse record %d of %s: %v", e.Index, e.Month, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// Summary describes a finished (or aborted) export.
type Summary struct {
	Username      string
	Path          string
	From          model.Month
	To            model.Month
	MonthsFetched int
	MonthsEmpty   int
	Games         int
	Malformed     []*RecordError
}

// Exporter coordinates a player export.
type Exporter struct {
	settings *config.Settings
	api      *chesscom.API
	location *time.Location
	now      func() time.Time

	onProgress func(ProgressEvent)
}

// Option customizes an Exporter.
type Option func(*Exporter)

// WithClock replaces time.Now as the source of the current month.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) { e.now = now }
}

// WithAPI replaces the chess.com API built from settings.
func WithAPI(api *chesscom.API) Option {
	return func(e *Exporter) { e.api = api }
}

// NewExporter creates a new Exporter.
func NewExporter(settings *config.Settings, onProgress func(ProgressEvent), opts ...Option) (*Exporter, error) {
	loc, err := settings.Location()
	if err != nil {
		return nil, err
	}

	e := &Exporter{
		settings:   settings,
		api:        chesscom.NewAPI(http.NewClient(settings.ToClientOptions()), settings.APIRoot),
		location:   loc,
		now:        time.Now,
		onProgress: onProgress,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Run exports every game of username to the configured output path.
//
// The output file is created before the first month is fetched and closed
// on every return path. The returned Summary is never nil, even on error.
func (e *Exporter) Run(ctx context.Context, username string) (*Summary, error) {
	summary := &Summary{Username: username, Path: e.settings.OutputPath(username)}
	if username == "" {
		return summary, errors.New("username is required")
	}

	profile, err := e.api.FetchProfile(ctx, username)
	if err != nil {
		return summary, err
	}
	summary.From = profile.JoinMonth(e.location)
	summary.To = model.MonthOf(e.now().In(e.location))
	e.progress(ProgressEvent{Message: fmt.Sprintf("Joined: %d/%d", summary.From.Month, summary.From.Year), Level: LevelInfo})

	out, err := ioutils.CreateGameFile(summary.Path)
	if err != nil {
		return summary, fmt.Errorf("create output: %w", err)
	}

	err = e.walk(ctx, username, out, summary)
	if closeErr := out.Close(); closeErr != nil && err == nil {
		err = fmt.Errorf("close output: %w", closeErr)
	}
	summary.Games = out.Rows()
	if err != nil {
		return summary, err
	}

	e.progress(ProgressEvent{
		Message: fmt.Sprintf("Wrote %d games to %s", summary.Games, summary.Path),
		Level:   LevelSuccess,
		Done:    summary.From.Count(summary.To),
		Total:   summary.From.Count(summary.To),
	})
	return summary, nil
}

func (e *Exporter) walk(ctx context.Context, username string, out *ioutils.GameFile, summary *Summary) error {
	total := summary.From.Count(summary.To)
	done := 0

	return Walk(summary.From, summary.To, func(m model.Month) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.progress(ProgressEvent{Message: fmt.Sprintf("Month: %d, Year: %d", m.Month, m.Year), Level: LevelInfo, Month: m, Done: done, Total: total})

		bundle, ok, err := e.api.FetchMonth(ctx, username, m)
		if err != nil {
			return err
		}
		done++
		if !ok {
			summary.MonthsEmpty++
			e.progress(ProgressEvent{Message: fmt.Sprintf("No games for %s", m), Level: LevelVerbose, Month: m, Done: done, Total: total})
			return nil
		}
		summary.MonthsFetched++

		records := chesscom.SplitBundle(bundle)
		e.progress(ProgressEvent{Message: fmt.Sprintf("Played: %d", len(records)), Level: LevelInfo, Month: m, Done: done, Total: total})

		if err := e.writeRecords(m, records, out, summary); err != nil {
			return err
		}
		return out.Flush()
	})
}

func (e *Exporter) writeRecords(m model.Month, records []string, out *ioutils.GameFile, summary *Summary) error {
	for i, raw := range records {
		game, err := chesscom.ParseGame(raw)
		if err != nil {
			recErr := &RecordError{Month: m, Index: i, Raw: raw, Err: err}
			if !e.settings.SkipMalformed {
				return recErr
			}
			summary.Malformed = append(summary.Malformed, recErr)
			e.progress(ProgressEvent{Message: fmt.Sprintf("Skipping malformed record: %v", recErr), Level: LevelWarning, Month: m})
			continue
		}
		if game.IsEmpty() {
			continue
		}
		if err := out.Write(game); err != nil {
			return fmt.Errorf("write game: %w", err)
		}
	}
	return nil
}

func (e *Exporter) progress(event ProgressEvent) {
	if e.onProgress != nil {
		e.onProgress(event)
	}
}
