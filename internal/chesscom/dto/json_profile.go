package dto

import (
	"time"

	"github.com/chessprofile/chess-profile/internal/model"
)

// JSONProfile represents the player profile document from
// GET /pub/player/{username}.
type JSONProfile struct {
	PlayerID   int64  `json:"player_id"`
	ID         string `json:"@id"`
	URL        string `json:"url"`
	Username   string `json:"username"`
	Name       string `json:"name"`
	Country    string `json:"country"`
	Status     string `json:"status"`
	Joined     *int64 `json:"joined"`
	LastOnline int64  `json:"last_online"`
}

// ToProfile converts JSONProfile to a model.Profile.
//
// fallbackUsername is used when the document has no username field.
func (jp *JSONProfile) ToProfile(fallbackUsername string) *model.Profile {
	username := jp.Username
	if username == "" {
		username = fallbackUsername
	}

	var joined time.Time
	if jp.Joined != nil {
		joined = time.Unix(*jp.Joined, 0)
	}

	return &model.Profile{
		Username: username,
		Joined:   joined,
	}
}
