package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownEvent is returned when a payload's type has no registered factory.
var ErrUnknownEvent = errors.New("unknown event type")

// EventFactory creates a new zero-value event of a specific type.
type EventFactory func() Event

// Registry decodes persisted payloads back into typed events.
type Registry struct {
	factories map[string]EventFactory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]EventFactory)}
}

func (r *Registry) Register(eventType string, factory EventFactory) {
	r.factories[eventType] = factory
}

// Unmarshal decodes raw into the concrete type registered for its event type.
func (r *Registry) Unmarshal(raw RawEvent) (Event, error) {
	factory, ok := r.factories[raw.EventType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEvent, raw.EventType)
	}

	event := factory()
	if err := json.Unmarshal([]byte(raw.Payload), event); err != nil {
		return nil, fmt.Errorf("unmarshal event payload: %w", err)
	}
	return event, nil
}

// DefaultRegistry knows every search and detail event.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for eventType, factory := range map[string]EventFactory{
		EventSearchRequested:  func() Event { return &SearchRequested{} },
		EventSearchCompleted:  func() Event { return &SearchCompleted{} },
		EventSearchFailed:     func() Event { return &SearchFailed{} },
		EventPageAppended:     func() Event { return &PageAppended{} },
		EventPageFailed:       func() Event { return &PageFailed{} },
		EventDetailsRequested: func() Event { return &DetailsRequested{} },
		EventDetailsLoaded:    func() Event { return &DetailsLoaded{} },
		EventDetailsFailed:    func() Event { return &DetailsFailed{} },
		EventDetailsClosed:    func() Event { return &DetailsClosed{} },
		EventSoundtrackLoaded: func() Event { return &SoundtrackLoaded{} },
		EventPhotosResolved:   func() Event { return &PhotosResolved{} },
	} {
		r.Register(eventType, factory)
	}
	return r
}

// LastQuery returns the query of the most recent search request, or ""
// when none was recorded.
func LastQuery(ctx context.Context, log *EventLog, r *Registry) (string, error) {
	raw, err := log.Latest(ctx, EventSearchRequested)
	if errors.Is(err, ErrNoEvent) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	event, err := r.Unmarshal(*raw)
	if err != nil {
		return "", err
	}
	req, ok := event.(*SearchRequested)
	if !ok {
		return "", fmt.Errorf("event %d: unexpected type %T", raw.ID, event)
	}
	return req.Query, nil
}
