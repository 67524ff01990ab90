package events

// CatalogFetched is emitted when a catalog lookup produced a summary.
// EntityID carries the fetch sequence number of the owning screen.
type CatalogFetched struct {
	BaseEvent
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CatalogFailed is emitted when a catalog lookup failed.
type CatalogFailed struct {
	BaseEvent
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
}
