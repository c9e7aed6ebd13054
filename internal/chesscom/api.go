package chesscom

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/chessprofile/chess-profile/internal/chesscom/dto"
	"github.com/chessprofile/chess-profile/internal/http"
	"github.com/chessprofile/chess-profile/internal/model"
)

// DefaultAPIRoot is the chess.com public API root.
const DefaultAPIRoot = "https://api.chess.com"

// ErrNoJoinDate is returned when a profile document has no joined field.
var ErrNoJoinDate = errors.New("profile has no join date")

// API fetches player data from the chess.com public API.
//
// Example usage:
//
//	api := NewAPI(http.NewClient(http.Options{UserAgent: "me@example.com"}), DefaultAPIRoot)
//
//	profile, err := api.FetchProfile(ctx, "hikaru")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	bundle, ok, err := api.FetchMonth(ctx, "hikaru", model.MonthOf(profile.Joined))
type API struct {
	client *http.Client
	root   string
}

// NewAPI creates an API using client against root. An empty root means
// DefaultAPIRoot.
func NewAPI(client *http.Client, root string) *API {
	if root == "" {
		root = DefaultAPIRoot
	}
	return &API{
		client: client,
		root:   strings.TrimRight(root, "/"),
	}
}

// ProfileURL returns the profile endpoint for username.
func (a *API) ProfileURL(username string) string {
	return fmt.Sprintf("%s/pub/player/%s", a.root, url.PathEscape(strings.ToLower(username)))
}

// MonthURL returns the PGN archive endpoint for username and month.
//
// The month is zero-padded as the API documents ("/games/2020/03/pgn").
func (a *API) MonthURL(username string, m model.Month) string {
	return fmt.Sprintf("%s/games/%04d/%02d/pgn", a.ProfileURL(username), m.Year, m.Month)
}

// FetchProfile fetches the profile of username.
//
// Returns an error if:
//   - The request fails or the status is not 200 (*http.StatusError)
//   - The body is not valid JSON
//   - The document has no joined field (ErrNoJoinDate)
func (a *API) FetchProfile(ctx context.Context, username string) (*model.Profile, error) {
	var jp dto.JSONProfile
	if err := a.client.GetJSON(ctx, a.ProfileURL(username), &jp); err != nil {
		return nil, fmt.Errorf("fetch profile %s: %w", username, err)
	}
	if jp.Joined == nil {
		return nil, fmt.Errorf("fetch profile %s: %w", username, ErrNoJoinDate)
	}
	return jp.ToProfile(username), nil
}

// FetchMonth fetches the PGN bundle of username for month m.
//
// A non-200 response means the player has no games that month: FetchMonth
// returns ok=false and a nil error. Transport failures are returned as errors.
func (a *API) FetchMonth(ctx context.Context, username string, m model.Month) (bundle string, ok bool, err error) {
	bundle, err = a.client.GetString(ctx, a.MonthURL(username, m))
	if err != nil {
		var se *http.StatusError
		if errors.As(err, &se) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("fetch games %s %s: %w", username, m, err)
	}
	return bundle, true, nil
}
