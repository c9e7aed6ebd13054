package model

import "time"

// Profile contains the player profile fields used by the exporter.
type Profile struct {
	// Username is the player's chess.com username.
	Username string

	// Joined is when the account was created.
	Joined time.Time
}

// JoinMonth returns the month the account was created in, using loc
// for the calendar conversion. A nil loc means time.Local.
func (p *Profile) JoinMonth(loc *time.Location) Month {
	if loc == nil {
		loc = time.Local
	}
	return MonthOf(p.Joined.In(loc))
}
