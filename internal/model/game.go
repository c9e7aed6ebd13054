package model

// Game represents one parsed game record.
//
// Game holds exactly the fields the CSV export needs:
//   - White and Black player usernames
//   - UTC date of the game as printed in the PGN (e.g. "2023.05.15")
//   - Ratings of both players, kept as the raw tag text
//   - The move list with Black's move-number markers removed
//
// A record with no text produces the zero Game, which callers detect with
// IsEmpty and skip.
//
// Example:
//
//	game := Game{White: "hikaru", Black: "magnus", WhiteElo: "3200", BlackElo: "3250"}
//	fmt.Println(game.Name()) // "hikaru vs magnus"
type Game struct {
	// White is the username playing the white pieces.
	White string

	// Black is the username playing the black pieces.
	Black string

	// Date is the UTCDate tag value.
	Date string

	// WhiteElo is the WhiteElo tag value.
	WhiteElo string

	// BlackElo is the BlackElo tag value.
	BlackElo string

	// Moves is the move text of the game.
	Moves string
}

// Name returns the display name of the game, "White vs Black".
func (g Game) Name() string {
	return g.White + " vs " + g.Black
}

// IsEmpty returns true for the sentinel produced by an empty record.
func (g Game) IsEmpty() bool {
	return g == Game{}
}
