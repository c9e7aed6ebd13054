package ioutils

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/chessprofile/chess-profile/internal/model"
)

// Header is the fixed 20-column header of the export.
var Header = []string{
	"name", "White", "Black", "White Elo", "Black Elo",
	"_", "_", "_", "_", "_",
	"Date", "Time",
	"_", "_", "_", "_", "_", "_", "_",
	"Moves",
}

// Column positions used when reading an export back.
const (
	colName     = 0
	colWhite    = 1
	colBlack    = 2
	colWhiteElo = 3
	colBlackElo = 4
	colDate     = 10
	colMoves    = 19
)

// annotation matches PGN comments such as {[%clk 0:09:01.9]}.
var annotation = regexp.MustCompile(`\{.*?\}`)

// StripAnnotations removes every {...} comment from move text.
func StripAnnotations(moves string) string {
	return annotation.ReplaceAllString(moves, "")
}

// GameWriter writes games as rows of the fixed-layout CSV.
//
// The header is written when the GameWriter is created, so the first line
// of the output is always the header even if no game follows.
//
// Example:
//
//	w, err := NewGameWriter(os.Stdout)
//	w.Write(game)
//	w.Flush()
type GameWriter struct {
	w    *csv.Writer
	rows int
}

// NewGameWriter creates a GameWriter on w and writes the header row.
func NewGameWriter(w io.Writer) (*GameWriter, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	return &GameWriter{w: cw}, nil
}

// Write appends one row for game. Empty games are ignored.
//
// The move text has its {...} annotations stripped before writing.
func (gw *GameWriter) Write(game model.Game) error {
	if game.IsEmpty() {
		return nil
	}
	if err := gw.w.Write(gameRow(game)); err != nil {
		return err
	}
	gw.rows++
	return nil
}

// Flush writes any buffered rows to the underlying writer.
func (gw *GameWriter) Flush() error {
	gw.w.Flush()
	return gw.w.Error()
}

// Rows returns the number of game rows written so far.
func (gw *GameWriter) Rows() int {
	return gw.rows
}

func gameRow(game model.Game) []string {
	row := make([]string, len(Header))
	row[colName] = game.Name()
	row[colWhite] = game.White
	row[colBlack] = game.Black
	row[colWhiteElo] = game.WhiteElo
	row[colBlackElo] = game.BlackElo
	row[colDate] = game.Date
	row[colMoves] = StripAnnotations(game.Moves)
	return row
}

// GameFile is a GameWriter bound to a file it owns.
type GameFile struct {
	*GameWriter
	file *os.File
	Path string
}

// CreateGameFile creates (or truncates) path and writes the header.
//
// Missing parent directories are created.
func CreateGameFile(path string) (*GameFile, error) {
	if err := EnsureParentDir(path); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	gw, err := NewGameWriter(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &GameFile{GameWriter: gw, file: f, Path: path}, nil
}

// Close flushes pending rows and closes the file.
func (gf *GameFile) Close() error {
	flushErr := gf.Flush()
	closeErr := gf.file.Close()
	return errors.Join(flushErr, closeErr)
}

// ReadGames reads an export produced by GameWriter.
//
// The header row is checked for the expected column count and skipped.
func ReadGames(r io.Reader) ([]model.Game, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty export: missing header")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	if header[colName] != Header[colName] || header[colMoves] != Header[colMoves] {
		return nil, fmt.Errorf("unexpected header %v", header)
	}

	var games []model.Game
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return games, fmt.Errorf("read row %d: %w", len(games)+1, err)
		}
		games = append(games, model.Game{
			White:    rec[colWhite],
			Black:    rec[colBlack],
			Date:     rec[colDate],
			WhiteElo: rec[colWhiteElo],
			BlackElo: rec[colBlackElo],
			Moves:    rec[colMoves],
		})
	}
	return games, nil
}

// ReadGamesFile opens path and reads it with ReadGames.
func ReadGamesFile(path string) ([]model.Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadGames(f)
}
