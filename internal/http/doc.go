// Package http provides an HTTP client configured for the chess.com
// public API.
//
// The Client in this package handles:
//   - Identifying headers (User-Agent, contact email, content type)
//   - Optional request timeout
//   - Typed errors for non-200 responses
//
// # Basic Usage
//
//	client := http.NewClient(http.Options{
//	    UserAgent: "me@example.com",
//	    Email:     "me@example.com",
//	})
//
//	// Fetch a PGN bundle
//	pgn, err := client.GetString(ctx, "https://api.chess.com/pub/player/hikaru/games/2020/03/pgn")
//
//	// Decode a JSON document
//	var profile dto.JSONProfile
//	err = client.GetJSON(ctx, "https://api.chess.com/pub/player/hikaru", &profile)
//
// # Status Errors
//
// Non-200 responses return a *StatusError so callers can decide whether the
// status means "no data" or a failure:
//
//	var se *http.StatusError
//	if errors.As(err, &se) && se.Code == 404 {
//	    // nothing for this month
//	}
package http
