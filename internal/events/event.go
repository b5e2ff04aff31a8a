// Package events carries search and detail lifecycle events to subscribers
// and records them in SQLite.
package events

import "time"

// Event is anything the bus can carry and the log can store.
type Event interface {
	EventType() string
	EntityType() string // EntitySearch or EntityDetails
	EntityID() int64    // search token or detail generation
	OccurredAt() time.Time
}

// BaseEvent is the envelope every event embeds.
type BaseEvent struct {
	Type      string    `json:"type"`
	Entity    string    `json:"entity_type"`
	ID        int64     `json:"entity_id"`
	Timestamp time.Time `json:"occurred_at"`
}

func (e BaseEvent) EventType() string     { return e.Type }
func (e BaseEvent) EntityType() string    { return e.Entity }
func (e BaseEvent) EntityID() int64       { return e.ID }
func (e BaseEvent) OccurredAt() time.Time { return e.Timestamp }

// NewBaseEvent stamps an envelope with the current UTC time.
func NewBaseEvent(eventType, entityType string, entityID int64) BaseEvent {
	return BaseEvent{Type: eventType, Entity: entityType, ID: entityID, Timestamp: time.Now().UTC()}
}
