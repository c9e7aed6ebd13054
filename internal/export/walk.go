package export

import "github.com/chessprofile/chess-profile/internal/model"

// Walk calls fn for every month from from up to, but not including, to.
//
// Iteration stops early when fn returns an error, which Walk returns.
func Walk(from, to model.Month, fn func(model.Month) error) error {
	for m := from; m.Before(to); m = m.Next() {
		if err := fn(m); err != nil {
			return err
		}
	}
	return nil
}
