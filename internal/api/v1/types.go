// internal/api/v1/types.go
package v1

import "github.com/vmunix/premiere/internal/browse"

// searchRequest is the body of POST /search.
// Refresh drops cached pages for the query before searching.
type searchRequest struct {
	Query   string `json:"query"`
	Refresh bool   `json:"refresh,omitempty"`
}

// proximityRequest is the body of POST /search/proximity, sent when the end
// of the visible list comes into or out of view.
type proximityRequest struct {
	NearEnd bool `json:"near_end"`
}

type proximityResponse struct {
	Queued bool `json:"queued"`
}

// detailsRequest is the body of POST /details. Item takes precedence;
// an IMDbID alone is resolved against the current result set.
type detailsRequest struct {
	IMDbID string             `json:"imdb_id,omitempty"`
	Item   *browse.ResultItem `json:"item,omitempty"`
}

// EventResponse is the API representation of a recorded event.
type EventResponse struct {
	ID         int64  `json:"id"`
	EventType  string `json:"event_type"`
	EntityType string `json:"entity_type"`
	EntityID   int64  `json:"entity_id"`
	Payload    string `json:"payload,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

// ListEventsResponse is the response for GET /events.
type ListEventsResponse struct {
	Items  []EventResponse `json:"items"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// StatusResponse is the response for GET /status.
type StatusResponse struct {
	Status   string          `json:"status"`
	Version  string          `json:"version"`
	Services map[string]bool `json:"services"`
}
