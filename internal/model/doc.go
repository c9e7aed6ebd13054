// Package model defines the core data structures used throughout
// the chess-profile application.
//
// # Game
//
// Game is one parsed game record, ready to be written as a CSV row:
//
//	game := model.Game{White: "hikaru", Black: "magnus", Date: "2023.05.15", ...}
//	fmt.Println(game.Name()) // "hikaru vs magnus"
//
// The zero Game is the "empty" sentinel returned for blank records; use
// IsEmpty to detect it.
//
// # Month
//
// Month is the (year, month) cursor that drives the per-month archive walk:
//
//	m := model.MonthOf(profile.Joined)
//	for m.Before(now) {
//	    fetch(m)
//	    m = m.Next()
//	}
//
// # Profile
//
// Profile holds the parts of a chess.com player profile the exporter needs.
package model
