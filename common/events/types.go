package events

import "time"

const (
	// Streams
	StoreEventsStream = "STORE_EVENTS"

	// Events, one subject per collection so consumers subscribe to
	// exactly the collections they render.
	TournamentsChanged = "events.store.tournaments"
	TeamsChanged       = "events.store.teams"
	MessagesChanged    = "events.store.messages"
	SessionsChanged    = "events.store.sessions"

	// Event Wildcards
	StoreEventsWildcard = "events.store.*"
)

// CollectionChanged is the JSON payload carried on every store event.
// It names what changed, not what the new value is: consumers re-read
// the collection from the store.
type CollectionChanged struct {
	Collection string    `json:"collection"`
	Key        string    `json:"key"`
	At         time.Time `json:"at"`
}
