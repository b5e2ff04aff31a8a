package events

// DetailsRequested is emitted when an item is selected.
type DetailsRequested struct {
	BaseEvent
	IMDbID string `json:"imdb_id"`
}

// DetailsLoaded is emitted when the detail record is stored.
type DetailsLoaded struct {
	BaseEvent
	IMDbID string `json:"imdb_id"`
	Title  string `json:"title"`
}

// DetailsFailed is emitted when the detail record could not be fetched.
type DetailsFailed struct {
	BaseEvent
	IMDbID  string `json:"imdb_id"`
	Message string `json:"message"`
}

// DetailsClosed is emitted when the detail view is discarded.
type DetailsClosed struct {
	BaseEvent
}

// SoundtrackLoaded is emitted when the soundtrack lookup settles.
// Error is empty on success.
type SoundtrackLoaded struct {
	BaseEvent
	IMDbID string `json:"imdb_id"`
	Songs  int    `json:"songs"`
	Error  string `json:"error,omitempty"`
}

// PhotosResolved is emitted once every actor photo has resolved or fallen back.
type PhotosResolved struct {
	BaseEvent
	IMDbID       string `json:"imdb_id"`
	Actors       int    `json:"actors"`
	Placeholders int    `json:"placeholders"`
}
