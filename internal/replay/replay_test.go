package replay

import (
	"errors"
	"strings"
	"testing"

	"github.com/chessprofile/chess-profile/internal/model"
)

func TestMoves(t *testing.T) {
	tests := []struct {
		name       string
		moves      string
		wantPlies  int
		wantResult string
		fenPrefix  string
	}{
		{
			name:      "cleaned black move numbers",
			moves:     "1. e4  c5 2. Nf3",
			wantPlies: 3,
			fenPrefix: "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b",
		},
		{
			name:       "scholar's mate with result",
			moves:      "1. e4  e5 2. Qh5  Nc6 3. Bc4  Nf6 4. Qxf7# 1-0",
			wantPlies:  7,
			wantResult: "1-0",
		},
		{
			name:      "empty",
			moves:     "",
			wantPlies: 0,
			fenPrefix: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Moves(tt.moves)
			if err != nil {
				t.Fatalf("Moves failed: %v", err)
			}
			if res.Plies != tt.wantPlies {
				t.Errorf("Plies = %d, want %d", res.Plies, tt.wantPlies)
			}
			if res.Result != tt.wantResult {
				t.Errorf("Result = %q, want %q", res.Result, tt.wantResult)
			}
			if tt.fenPrefix != "" && !strings.HasPrefix(res.FEN, tt.fenPrefix) {
				t.Errorf("FEN = %q, want prefix %q", res.FEN, tt.fenPrefix)
			}
		})
	}
}

func TestMoves_Checkmate(t *testing.T) {
	res, err := Moves("1. e4  e5 2. Qh5  Nc6 3. Bc4  Nf6 4. Qxf7#")
	if err != nil {
		t.Fatalf("Moves failed: %v", err)
	}
	if res.Outcome != "1-0" {
		t.Errorf("Outcome = %q, want 1-0", res.Outcome)
	}
}

func TestMoves_Illegal(t *testing.T) {
	_, err := Moves("1. e4  e5 2. Ke3")

	var me *MoveError
	if !errors.As(err, &me) {
		t.Fatalf("expected *MoveError, got %v", err)
	}
	if me.Ply != 3 || me.Move != "Ke3" {
		t.Errorf("MoveError = %+v", me)
	}
}

func TestCheck(t *testing.T) {
	games := []model.Game{
		{White: "a", Black: "b", Moves: "1. e4  e5 1/2-1/2"},
		{White: "c", Black: "d", Moves: "1. e5"},
		{White: "e", Black: "f", Moves: "1. d4  d5 2. c4"},
	}

	report := Check(games)
	if report.Games != 3 {
		t.Errorf("Games = %d, want 3", report.Games)
	}
	if report.OK() != 2 {
		t.Errorf("OK() = %d, want 2", report.OK())
	}
	if len(report.Failures) != 1 || report.Failures[0].Index != 1 {
		t.Errorf("Failures = %+v", report.Failures)
	}
	if report.Plies != 5 {
		t.Errorf("Plies = %d, want 5", report.Plies)
	}
}
