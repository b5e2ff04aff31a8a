package browse

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/vmunix/premiere/internal/events"
	"github.com/vmunix/premiere/pkg/omdb"
)

// Directory fetches one page of title search results.
type Directory interface {
	Search(ctx context.Context, query string, page int) (*omdb.SearchPage, error)
}

// Publisher receives controller events. *events.Bus satisfies it.
type Publisher interface {
	Publish(ctx context.Context, e events.Event) error
}

// Config bounds pagination.
type Config struct {
	PageSize int // items in a full page
	MaxPages int // pages fetched per query at most
}

// DefaultConfig matches the OMDb page size and a five page cap.
func DefaultConfig() Config {
	return Config{PageSize: 10, MaxPages: 5}
}

// Snapshot is a consistent copy of the controller state.
type Snapshot struct {
	Phase        Phase        `json:"phase"`
	Items        []ResultItem `json:"items"`
	Message      string       `json:"message,omitempty"`
	Query        string       `json:"query"`
	Page         int          `json:"page"`
	Total        int          `json:"total"`
	HasMore      bool         `json:"has_more"`
	FetchingMore bool         `json:"fetching_more"`
	Degraded     bool         `json:"degraded"`
}

// Controller owns the result store and its pagination cursor.
type Controller struct {
	dir Directory
	cfg Config
	bus Publisher
	log *slog.Logger

	mu           sync.Mutex
	state        State
	query        string
	page         int
	total        int
	hasMore      bool
	fetchingMore bool
	degraded     bool
	token        int64 // bumped by every search; stale responses are dropped
}

// NewController creates a controller. bus may be nil.
func NewController(dir Directory, cfg Config, bus Publisher, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultConfig().PageSize
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = DefaultConfig().MaxPages
	}
	return &Controller{
		dir: dir,
		cfg: cfg,
		bus: bus,
		log: log.With("component", "browse"),
	}
}

// Search replaces the result set with page 1 of query.
//
// Blank input fails with ErrEmptyQuery. Remote failures are recorded in the
// store rather than returned: a connectivity failure installs the fallback
// dataset, anything else moves the store to failure with a message.
// A response that arrives after a newer search started is discarded.
func (c *Controller) Search(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)

	c.mu.Lock()
	c.token++
	token := c.token
	if query == "" {
		c.state = c.state.Apply(Failure{Message: MsgEmptyQuery})
		c.query = ""
		c.page = 0
		c.total = 0
		c.hasMore = false
		c.fetchingMore = false
		c.degraded = false
		c.mu.Unlock()
		return ErrEmptyQuery
	}
	c.state = c.state.Apply(Request{})
	c.query = query
	c.page = 1
	c.total = 0
	c.hasMore = true
	c.fetchingMore = false
	c.degraded = false
	c.mu.Unlock()

	c.publish(ctx, &events.SearchRequested{
		BaseEvent: events.NewBaseEvent(events.EventSearchRequested, events.EntitySearch, token),
		Query:     query,
	})

	page, err := c.dir.Search(ctx, query, 1)

	c.mu.Lock()
	if token != c.token {
		c.mu.Unlock()
		c.log.Debug("discarding stale search response", "query", query)
		return nil
	}

	var evt events.Event
	switch {
	case err != nil && errors.Is(err, omdb.ErrUnavailable):
		items := FallbackItems()
		c.state = c.state.Apply(Fallback{Items: items, Message: MsgDegraded})
		c.total = len(items)
		c.hasMore = false
		c.degraded = true
		c.log.Warn("movie directory unreachable, serving fallback", "query", query, "error", err)
		evt = &events.SearchFailed{
			BaseEvent: events.NewBaseEvent(events.EventSearchFailed, events.EntitySearch, token),
			Query:     query,
			Message:   MsgDegraded,
			Degraded:  true,
		}
	case err != nil:
		msg := failureMessage(err)
		c.state = c.state.Apply(Failure{Message: msg})
		c.hasMore = false
		c.log.Info("search failed", "query", query, "message", msg)
		evt = &events.SearchFailed{
			BaseEvent: events.NewBaseEvent(events.EventSearchFailed, events.EntitySearch, token),
			Query:     query,
			Message:   msg,
		}
	default:
		items := itemsFromPage(page.Results, 0)
		c.total = page.Total
		if c.total <= 0 {
			c.total = len(items)
		}
		c.hasMore = c.more(1, len(page.Results), len(items))
		c.state = c.state.Apply(Success{Items: items})
		c.log.Info("search completed", "query", query, "results", len(items), "total", c.total, "has_more", c.hasMore)
		evt = &events.SearchCompleted{
			BaseEvent: events.NewBaseEvent(events.EventSearchCompleted, events.EntitySearch, token),
			Query:     query,
			Results:   len(items),
			Total:     c.total,
			HasMore:   c.hasMore,
		}
	}
	c.mu.Unlock()

	c.publish(ctx, evt)
	return nil
}

// LoadMore appends the next page of the current query.
//
// It is a no-op while a search or another page fetch is in flight, when no
// result set is showing, or when there is nothing more to load. Page failures
// are logged and the result set is left as it was.
func (c *Controller) LoadMore(ctx context.Context) error {
	c.mu.Lock()
	if c.fetchingMore || c.state.Phase != PhaseSuccess || c.query == "" || !c.hasMore {
		c.mu.Unlock()
		return nil
	}
	c.fetchingMore = true
	token := c.token
	query := c.query
	next := c.page + 1
	c.mu.Unlock()

	page, err := c.dir.Search(ctx, query, next)

	c.mu.Lock()
	if token != c.token {
		// The newer search already reset the cursor.
		c.mu.Unlock()
		return nil
	}
	c.fetchingMore = false

	var evt events.Event
	switch {
	case err != nil:
		c.log.Warn("load more failed", "query", query, "page", next, "error", err)
		evt = &events.PageFailed{
			BaseEvent: events.NewBaseEvent(events.EventPageFailed, events.EntitySearch, token),
			Query:     query,
			Page:      next,
			Error:     err.Error(),
		}
	case len(page.Results) == 0:
		c.hasMore = false
	default:
		items := itemsFromPage(page.Results, len(c.state.Items))
		c.state = c.state.Apply(Append{Items: items})
		c.page = next
		c.hasMore = c.more(next, len(page.Results), len(c.state.Items))
		c.log.Debug("page appended", "query", query, "page", next, "added", len(items), "has_more", c.hasMore)
		evt = &events.PageAppended{
			BaseEvent: events.NewBaseEvent(events.EventPageAppended, events.EntitySearch, token),
			Query:     query,
			Page:      next,
			Added:     len(items),
			HasMore:   c.hasMore,
		}
	}
	c.mu.Unlock()

	if evt != nil {
		c.publish(ctx, evt)
	}
	return nil
}

// Watch calls LoadMore each time the proximity signal reports true.
// It returns when ctx is done or signals is closed.
func (c *Controller) Watch(ctx context.Context, signals <-chan bool) {
	for {
		select {
		case <-ctx.Done():
			return
		case near, ok := <-signals:
			if !ok {
				return
			}
			if near {
				_ = c.LoadMore(ctx)
			}
		}
	}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]ResultItem, len(c.state.Items))
	copy(items, c.state.Items)
	return Snapshot{
		Phase:        c.state.Phase,
		Items:        items,
		Message:      c.state.Message,
		Query:        c.query,
		Page:         c.page,
		Total:        c.total,
		HasMore:      c.hasMore,
		FetchingMore: c.fetchingMore,
		Degraded:     c.degraded,
	}
}

// Find returns the item with the given IMDb id from the current result set.
func (c *Controller) Find(imdbID string) (ResultItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.state.Items {
		if it.IMDbID == imdbID {
			return it, true
		}
	}
	return ResultItem{}, false
}

// more reports whether another page should be fetched after page, which
// returned n items and brought the result set to count items.
// Caller holds c.mu.
func (c *Controller) more(page, n, count int) bool {
	return page < c.cfg.MaxPages && n == c.cfg.PageSize && count < c.total
}

func (c *Controller) publish(ctx context.Context, e events.Event) {
	if c.bus == nil {
		return
	}
	if err := c.bus.Publish(ctx, e); err != nil {
		c.log.Warn("failed to publish event", "type", e.EventType(), "error", err)
	}
}

func failureMessage(err error) string {
	var apiErr *omdb.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
