// Package domain contains the core business entities for the Shelfmark catalog.
package domain

// Status represents the circulation status of a record.
type Status string

const (
	// StatusAvailable means the book is on the shelf.
	StatusAvailable Status = "Available"

	// StatusBorrowed means the book is checked out.
	StatusBorrowed Status = "Borrowed"
)

// Toggled returns the opposite circulation status.
func (s Status) Toggled() Status {
	if s == StatusBorrowed {
		return StatusAvailable
	}
	return StatusBorrowed
}

// Record represents one book in the catalog.
//
// ID is assigned at creation and never changes. Title and Author are
// display strings; all ordering and equality comparisons go through
// normalize.Title. CoverRef is derived from the title and recomputed on
// every title change. History is exclusively owned by the record and only
// ever appended to.
type Record struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Status   Status   `json:"status"`
	CoverRef string   `json:"cover_ref"`
	History  *History `json:"history"`
}
