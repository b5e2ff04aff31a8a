package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/vmunix/premiere/internal/browse"
	"github.com/vmunix/premiere/internal/details"
	"github.com/vmunix/premiere/internal/events"
)

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// Browser is the result set and its pagination.
type Browser interface {
	Search(ctx context.Context, query string) error
	LoadMore(ctx context.Context) error
	Snapshot() browse.Snapshot
	Find(imdbID string) (browse.ResultItem, bool)
}

// DetailLoader is the detail view.
type DetailLoader interface {
	Load(ctx context.Context, item browse.ResultItem) error
	Close()
	View() details.View
}

// SearchCache drops cached result pages so a search reaches the service.
type SearchCache interface {
	Invalidate(ctx context.Context, query string) error
}

// ProximityReporter forwards a client's "near the end of the list" signal.
type ProximityReporter interface {
	Report(near bool) bool
}

// EventSource lists recorded events.
type EventSource interface {
	Recent(limit, offset int) ([]events.RawEvent, int, error)
	ForEntity(entityType string, entityID int64) ([]events.RawEvent, error)
}

// ServerDeps contains all dependencies for the API server.
// Required dependencies must be non-nil; optional dependencies may be nil.
type ServerDeps struct {
	// Required dependencies
	Browser Browser
	Details DetailLoader

	// Optional dependencies
	EventLog    EventSource       // nil disables /events
	SearchCache SearchCache       // nil when search caching is off; refresh is then a no-op
	Proximity   ProximityReporter // nil disables /search/proximity
	Services    map[string]bool   // configured remote services, reported by /status
	Version     string
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Browser == nil {
		return fmt.Errorf("%w: browser", ErrMissingDependency)
	}
	if d.Details == nil {
		return fmt.Errorf("%w: details", ErrMissingDependency)
	}
	return nil
}
