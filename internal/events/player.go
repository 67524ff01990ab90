package events

// Entity types
const (
	EntitySession = "session"
	EntityCatalog = "catalog"
)

// Event type constants
const (
	EventTracksChanged  = "player.tracks_changed"
	EventPlayerFailed   = "player.failed"
	EventCatalogFetched = "catalog.fetched"
	EventCatalogFailed  = "catalog.failed"
)

// TracksChanged is emitted after the resolution list was rebuilt for a new track set.
// EntityID carries the list generation.
type TracksChanged struct {
	BaseEvent
	Labels []string `json:"labels"`
}

// PlayerFailed is emitted when the player reports a playback error.
type PlayerFailed struct {
	BaseEvent
	Message string `json:"message"`
}
