// Package replay checks exported move text by playing it on a board.
//
// Move text is the exporter's cleaned SAN string, e.g. "1. e4  c5 2. Nf3 1-0".
// Tokens containing a dot are move numbers and are skipped; a result token
// ends the game.
package replay

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"

	"github.com/chessprofile/chess-profile/internal/model"
)

var resultTokens = map[string]bool{
	"1-0":     true,
	"0-1":     true,
	"1/2-1/2": true,
	"*":       true,
}

// Result describes a replayed game.
type Result struct {
	// Plies is the number of half-moves played.
	Plies int

	// FEN is the final position.
	FEN string

	// Outcome is the board outcome ("1-0", "0-1", "1/2-1/2" or "*").
	Outcome string

	// Result is the result token found in the move text, if any.
	Result string
}

// MoveError reports the first move that could not be played.
type MoveError struct {
	Ply  int
	Move string
	Err  error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("ply %d: illegal move %q: %v", e.Ply, e.Move, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// Moves replays a move string from the initial position.
func Moves(moves string) (*Result, error) {
	game := chess.NewGame()
	res := &Result{}

	for _, tok := range strings.Fields(moves) {
		if resultTokens[tok] {
			res.Result = tok
			break
		}
		if strings.Contains(tok, ".") {
			continue
		}
		if err := game.MoveStr(tok); err != nil {
			return nil, &MoveError{Ply: res.Plies + 1, Move: tok, Err: err}
		}
		res.Plies++
	}

	res.FEN = game.Position().String()
	res.Outcome = game.Outcome().String()
	return res, nil
}

// Failure pairs a game from an export with its replay error.
type Failure struct {
	Index int
	Game  model.Game
	Err   error
}

// Report summarizes a Check run.
type Report struct {
	Games    int
	Plies    int
	Failures []Failure
}

// OK returns the number of games that replayed cleanly.
func (r *Report) OK() int {
	return r.Games - len(r.Failures)
}

// Check replays every game and collects failures.
func Check(games []model.Game) *Report {
	report := &Report{Games: len(games)}
	for i, g := range games {
		res, err := Moves(g.Moves)
		if err != nil {
			report.Failures = append(report.Failures, Failure{Index: i, Game: g, Err: err})
			continue
		}
		report.Plies += res.Plies
	}
	return report
}
