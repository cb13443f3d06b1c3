package client

import (
	"time"

	nlpearl "github.com/spetersoncode/nlpearl"
)

// EventType identifies the kind of event occurring during client operations.
type EventType string

const (
	// EventRequestStart fires before an API request is sent.
	EventRequestStart EventType = "request_start"

	// EventRequestComplete fires after an API request completes successfully.
	EventRequestComplete EventType = "request_complete"

	// EventRequestError fires when an API request fails after being sent.
	// Checks that fail before dispatch (API key, version, arguments) emit nothing.
	EventRequestError EventType = "request_error"
)

// Event represents an observable occurrence during client operations.
type Event struct {
	// Type identifies the kind of event.
	Type EventType

	// Operation is the operation name, e.g. "Outbound.AddLead".
	Operation string

	// Version is the API version the request was sent under.
	Version nlpearl.Version

	// Duration is the elapsed time for finished requests.
	Duration time.Duration

	// StatusCode is the HTTP status of a completed request.
	StatusCode int

	// Error contains the error for EventRequestError.
	Error error

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// emit sends an event with timestamp to the channel without blocking.
func emit(ch chan<- Event, event Event) {
	if ch == nil {
		return
	}
	event.Timestamp = time.Now()
	select {
	case ch <- event:
	default:
		// Channel full - don't block
	}
}
