package domain

import (
	"encoding/json"
	"slices"
	"time"
)

// EventKind names one entry in a record's history.
type EventKind string

const (
	// EventCreated is recorded once, when the record enters the catalog.
	EventCreated EventKind = "Created"

	// EventBorrowed is recorded when the record's status flips to Borrowed.
	EventBorrowed EventKind = "Borrowed"

	// EventReturned is recorded when the record's status flips back to Available.
	EventReturned EventKind = "Returned"

	// EventEdited is recorded when the record's title or author changes.
	EventEdited EventKind = "Edited"
)

// Event is one timestamped entry in a record's history.
// Events are immutable once created.
type Event struct {
	Kind EventKind `json:"kind"`
	At   time.Time `json:"at"`
}

// History is an append-only log of a record's status transitions.
// Entries are stored in chronological order and never mutated or removed.
type History struct {
	entries []Event
}

// NewHistory creates a history seeded with a Created entry.
func NewHistory() *History {
	h := &History{}
	h.Append(EventCreated)
	return h
}

// Append records an event with the current instant.
func (h *History) Append(kind EventKind) {
	h.entries = append(h.entries, Event{Kind: kind, At: time.Now()})
}

// NewestFirst returns the entries in reverse-chronological order, the order
// the presentation layer renders them in. Each call returns a fresh slice;
// the log itself stays chronological.
func (h *History) NewestFirst() []Event {
	out := make([]Event, len(h.entries))
	copy(out, h.entries)
	slices.Reverse(out)
	return out
}

// Len returns the number of recorded events.
func (h *History) Len() int {
	return len(h.entries)
}

// MarshalJSON renders the history newest-first, matching presentation order.
func (h *History) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.NewestFirst())
}
