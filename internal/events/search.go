package events

// Entity types
const (
	EntitySearch  = "search"
	EntityDetails = "details"
)

// Event type constants
const (
	EventSearchRequested  = "search.requested"
	EventSearchCompleted  = "search.completed"
	EventSearchFailed     = "search.failed"
	EventPageAppended     = "page.appended"
	EventPageFailed       = "page.failed"
	EventDetailsRequested = "details.requested"
	EventDetailsLoaded    = "details.loaded"
	EventDetailsFailed    = "details.failed"
	EventDetailsClosed    = "details.closed"
	EventSoundtrackLoaded = "soundtrack.loaded"
	EventPhotosResolved   = "photos.resolved"
)

// SearchRequested is emitted when a new query replaces the result set.
type SearchRequested struct {
	BaseEvent
	Query string `json:"query"`
}

// SearchCompleted is emitted when page 1 of a query is in the store.
type SearchCompleted struct {
	BaseEvent
	Query   string `json:"query"`
	Results int    `json:"results"`
	Total   int    `json:"total"`
	HasMore bool   `json:"has_more"`
}

// SearchFailed is emitted when page 1 could not be fetched.
// Degraded is set when the fallback dataset replaced the results.
type SearchFailed struct {
	BaseEvent
	Query    string `json:"query"`
	Message  string `json:"message"`
	Degraded bool   `json:"degraded"`
}

// PageAppended is emitted when a later page is concatenated to the result set.
type PageAppended struct {
	BaseEvent
	Query   string `json:"query"`
	Page    int    `json:"page"`
	Added   int    `json:"added"`
	HasMore bool   `json:"has_more"`
}

// PageFailed is emitted when a later page fetch fails. The error is not surfaced
// to the result view.
type PageFailed struct {
	BaseEvent
	Query string `json:"query"`
	Page  int    `json:"page"`
	Error string `json:"error"`
}
