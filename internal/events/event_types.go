package events

import "time"

// EventType enumerates session lifecycle events.
type EventType string

const (
	// EventSessionAuthenticated fires after a successful login.
	EventSessionAuthenticated EventType = "session_authenticated"
	// EventSessionCleared fires after an explicit local logout.
	EventSessionCleared EventType = "session_cleared"
	// EventSessionExpired fires when the backend rejected the stored
	// credential and the session was force-dropped.
	EventSessionExpired EventType = "session_expired"
)

// Event describes a session state transition.
type Event struct {
	Type      EventType `json:"type"`
	Username  string    `json:"username,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
