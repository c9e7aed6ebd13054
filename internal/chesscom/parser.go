package chesscom

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/chessprofile/chess-profile/internal/model"
)

// RecordSeparator separates games inside a monthly PGN bundle.
const RecordSeparator = "\n\n\n"

// Required tags, in the order they are looked up.
const (
	TagWhite    = "White"
	TagBlack    = "Black"
	TagUTCDate  = "UTCDate"
	TagWhiteElo = "WhiteElo"
	TagBlackElo = "BlackElo"
)

var (
	tagPatterns = map[string]*regexp.Regexp{
		TagWhite:    tagPattern(TagWhite),
		TagBlack:    tagPattern(TagBlack),
		TagUTCDate:  tagPattern(TagUTCDate),
		TagWhiteElo: tagPattern(TagWhiteElo),
		TagBlackElo: tagPattern(TagBlackElo),
	}

	// Black's half-move numbers, e.g. "1..." in "1. e4 1... c5".
	blackMoveNumber = regexp.MustCompile(`\d+\.\.\.`)
)

func tagPattern(key string) *regexp.Regexp {
	return regexp.MustCompile(`\[` + key + ` "(.*?)"\]`)
}

// MissingTagError is returned when a record lacks a required tag.
type MissingTagError struct {
	Tag string
}

func (e *MissingTagError) Error() string {
	return fmt.Sprintf("record has no %s tag", e.Tag)
}

// SplitBundle splits a monthly PGN bundle into raw records.
//
// Records are returned in bundle order. Empty records (for example a
// trailing separator) are kept; ParseGame turns them into the empty sentinel.
func SplitBundle(bundle string) []string {
	return strings.Split(bundle, RecordSeparator)
}

// ParseGame extracts a model.Game from one raw PGN record.
//
// This method performs the following steps:
//  1. Returns the empty model.Game if the record holds no text
//  2. Extracts the White, Black, UTCDate, WhiteElo and BlackElo tags
//  3. Takes the move text from the last line of the record
//  4. Removes Black's move-number markers from the move text
//
// Annotations such as {[%clk 0:09:01.9]} are left in place; the CSV writer
// strips them.
//
// Returns a *MissingTagError if any required tag is absent.
//
// Example:
//
//	game, err := ParseGame(raw)
//	var mt *MissingTagError
//	if errors.As(err, &mt) {
//	    fmt.Println("bad record, missing", mt.Tag)
//	}
func ParseGame(raw string) (model.Game, error) {
	if strings.TrimSpace(raw) == "" {
		return model.Game{}, nil
	}

	var game model.Game
	fields := []struct {
		tag string
		dst *string
	}{
		{TagWhite, &game.White},
		{TagBlack, &game.Black},
		{TagUTCDate, &game.Date},
		{TagWhiteElo, &game.WhiteElo},
		{TagBlackElo, &game.BlackElo},
	}
	for _, f := range fields {
		match := tagPatterns[f.tag].FindStringSubmatch(raw)
		if match == nil {
			return model.Game{}, &MissingTagError{Tag: f.tag}
		}
		*f.dst = match[1]
	}

	game.Moves = StripBlackMoveNumbers(lastLine(raw))

	return game, nil
}

// StripBlackMoveNumbers removes "N..." markers from move text.
//
// The surrounding whitespace is kept:
//
//	StripBlackMoveNumbers("1. e4 1... c5 2. Nf3") // "1. e4  c5 2. Nf3"
func StripBlackMoveNumbers(moves string) string {
	return blackMoveNumber.ReplaceAllString(moves, "")
}

// lastLine returns the last non-terminal line of the record.
func lastLine(raw string) string {
	raw = strings.TrimRight(raw, "\r\n")
	if i := strings.LastIndex(raw, "\n"); i >= 0 {
		raw = raw[i+1:]
	}
	return strings.TrimSuffix(raw, "\r")
}
