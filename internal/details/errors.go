package details

import "errors"

var (
	// ErrNoDetails is returned when the selected item carries no IMDb id.
	ErrNoDetails = errors.New("item has no imdb id")
	// ErrNoSongs is recorded when the soundtrack search returns nothing.
	ErrNoSongs = errors.New("no songs found")
)

// User-visible messages.
const (
	MsgNoDetails = "No details available for this title."
	MsgNoSongs   = "No songs found for this title."
	RoleUnknown  = "Character not provided by the API"
)
