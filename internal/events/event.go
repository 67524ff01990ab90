// Package events carries notifications between the playback session, the
// screen and the CLI. Delivery is in-process and best effort.
package events

import (
	"fmt"
	"time"
)

// Event is something that happened to a playback session or a catalog lookup.
type Event interface {
	EventType() string
	EntityType() string
	EntityID() int64
	OccurredAt() time.Time
}

// BaseEvent is embedded by every concrete event. ID identifies the subject
// within its entity: a list generation or player instance for sessions, the
// lookup sequence of the screen for catalog events.
type BaseEvent struct {
	Type   string    `json:"type"`
	Entity string    `json:"entity"`
	ID     int64     `json:"id"`
	At     time.Time `json:"at"`
}

func (e BaseEvent) EventType() string     { return e.Type }
func (e BaseEvent) EntityType() string    { return e.Entity }
func (e BaseEvent) EntityID() int64       { return e.ID }
func (e BaseEvent) OccurredAt() time.Time { return e.At }

// String renders the event as "type entity#id".
func (e BaseEvent) String() string {
	return fmt.Sprintf("%s %s#%d", e.Type, e.Entity, e.ID)
}

// NewBaseEvent stamps an event with the current time.
func NewBaseEvent(eventType, entity string, id int64) BaseEvent {
	return BaseEvent{Type: eventType, Entity: entity, ID: id, At: time.Now()}
}
