// Package service provides the business logic layer for the Shelfmark catalog.
package service

import (
	"log/slog"
	"strings"

	"github.com/shelfmarkapp/shelfmark/internal/covers"
	"github.com/shelfmarkapp/shelfmark/internal/domain"
	"github.com/shelfmarkapp/shelfmark/internal/errors"
	"github.com/shelfmarkapp/shelfmark/internal/id"
	"github.com/shelfmarkapp/shelfmark/internal/index"
	"github.com/shelfmarkapp/shelfmark/internal/normalize"
	"github.com/shelfmarkapp/shelfmark/internal/validation"
)

// SearchField selects which record field a filtered listing searches.
type SearchField string

const (
	// FieldTitle searches titles with substring semantics.
	FieldTitle SearchField = "title"

	// FieldAuthor searches authors with substring semantics.
	FieldAuthor SearchField = "author"
)

// StatusFilter narrows a filtered listing by circulation status.
type StatusFilter string

const (
	// FilterAll keeps every record.
	FilterAll StatusFilter = "all"

	// FilterAvailable keeps only records on the shelf.
	FilterAvailable StatusFilter = "available"

	// FilterBorrowed keeps only checked-out records.
	FilterBorrowed StatusFilter = "borrowed"
)

// recordInput carries the user-supplied fields for add and edit operations.
// Anything beyond non-empty checks is the presentation layer's concern.
type recordInput struct {
	Title  string `json:"title"  validate:"required"`
	Author string `json:"author" validate:"required"`
}

// Catalog orchestrates record lifecycle over the title index.
//
// Catalog is the sole writer: every mutation passes through it, and it
// enforces the one-record-per-normalized-title invariant the index itself
// does not check. It provides no internal synchronization; external
// collaborators must serialize calls into it.
type Catalog struct {
	idx      *index.Index
	validate *validation.Validator
	logger   *slog.Logger
}

// NewCatalog creates an empty catalog service.
func NewCatalog(logger *slog.Logger) *Catalog {
	return &Catalog{
		idx:      index.New(),
		validate: validation.New(),
		logger:   logger,
	}
}

// Add creates a record with the given title and author and indexes it.
// The record starts Available with its history seeded by a Created event.
// Returns ErrValidation for empty fields and ErrDuplicateTitle if the
// normalized title is already taken.
func (c *Catalog) Add(title, author string) (*domain.Record, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)

	if err := c.validate.Validate(recordInput{Title: title, Author: author}); err != nil {
		return nil, err
	}
	if existing := c.idx.SearchExact(title); existing != nil {
		return nil, errors.DuplicateTitlef("a record titled %q already exists", existing.Title)
	}

	recordID, err := id.Generate(id.PrefixRecord)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "generate record id")
	}

	rec := &domain.Record{
		ID:       recordID,
		Title:    title,
		Author:   author,
		Status:   domain.StatusAvailable,
		CoverRef: covers.Ref(title),
		History:  domain.NewHistory(),
	}
	c.idx.Insert(rec)

	c.logger.Info("record added", "id", rec.ID, "title", rec.Title, "author", rec.Author)
	return rec, nil
}

// Edit changes a record's title and author, recomputes its cover reference,
// and appends an Edited event.
//
// The index key derives from the title, so the record is removed under its
// old title and re-inserted under the new one; mutating in place without
// re-indexing would corrupt tree ordering.
func (c *Catalog) Edit(recordID, newTitle, newAuthor string) (*domain.Record, error) {
	newTitle = strings.TrimSpace(newTitle)
	newAuthor = strings.TrimSpace(newAuthor)

	if err := c.validate.Validate(recordInput{Title: newTitle, Author: newAuthor}); err != nil {
		return nil, err
	}

	rec := c.idx.SearchByID(recordID)
	if rec == nil {
		return nil, errors.NotFoundf("no record with id %q", recordID)
	}

	titleChanged := normalize.Title(newTitle) != normalize.Title(rec.Title)
	if titleChanged {
		if other := c.idx.SearchExact(newTitle); other != nil {
			return nil, errors.DuplicateTitlef("a record titled %q already exists", other.Title)
		}
	}

	oldTitle := rec.Title
	c.idx.Delete(rec.Title)
	rec.Title = newTitle
	rec.Author = newAuthor
	rec.CoverRef = covers.Ref(newTitle)
	rec.History.Append(domain.EventEdited)
	c.idx.Insert(rec)

	c.logger.Info("record edited",
		"id", rec.ID,
		"old_title", oldTitle,
		"title", rec.Title,
		"author", rec.Author,
	)
	return rec, nil
}

// ToggleStatus flips a record between Available and Borrowed and appends
// the matching Borrowed or Returned event.
func (c *Catalog) ToggleStatus(recordID string) (*domain.Record, error) {
	rec := c.idx.SearchByID(recordID)
	if rec == nil {
		return nil, errors.NotFoundf("no record with id %q", recordID)
	}

	rec.Status = rec.Status.Toggled()
	if rec.Status == domain.StatusBorrowed {
		rec.History.Append(domain.EventBorrowed)
	} else {
		rec.History.Append(domain.EventReturned)
	}

	c.logger.Info("record status toggled", "id", rec.ID, "title", rec.Title, "status", rec.Status)
	return rec, nil
}

// Delete removes the record with the given title from the catalog. The
// record and its history become unreachable; there is no tombstone. An
// absent title is a no-op, mirroring the index. Returns whether a record
// was removed.
func (c *Catalog) Delete(title string) bool {
	removed := c.idx.Delete(title)
	if removed {
		c.logger.Info("record deleted", "title", title)
	}
	return removed
}

// ListFiltered returns records matching the search text in the given field,
// narrowed by status. Pure read; the result preserves ascending title order.
//
// Title search uses contains semantics, so it filters the sorted listing
// client-side rather than using the index's exact-match lookup.
func (c *Catalog) ListFiltered(searchText string, field SearchField, status StatusFilter) []*domain.Record {
	var base []*domain.Record
	switch {
	case strings.TrimSpace(searchText) == "":
		base = c.idx.AllSorted()
	case field == FieldAuthor:
		base = c.idx.SearchByAuthor(searchText)
	default:
		query := normalize.Title(searchText)
		for _, rec := range c.idx.AllSorted() {
			if strings.Contains(normalize.Title(rec.Title), query) {
				base = append(base, rec)
			}
		}
	}

	if status == FilterAll || status == "" {
		return base
	}

	want := domain.StatusAvailable
	if status == FilterBorrowed {
		want = domain.StatusBorrowed
	}
	out := make([]*domain.Record, 0, len(base))
	for _, rec := range base {
		if rec.Status == want {
			out = append(out, rec)
		}
	}
	return out
}

// AllSorted returns every record in ascending normalized-title order.
func (c *Catalog) AllSorted() []*domain.Record {
	return c.idx.AllSorted()
}

// SearchExact returns the record with the exact normalized title, or nil.
func (c *Catalog) SearchExact(title string) *domain.Record {
	return c.idx.SearchExact(title)
}

// SearchByID returns the record with the given id, or nil.
func (c *Catalog) SearchByID(recordID string) *domain.Record {
	return c.idx.SearchByID(recordID)
}

// SearchByAuthor returns every record whose author contains the query,
// case-insensitively, in ascending title order.
func (c *Catalog) SearchByAuthor(query string) []*domain.Record {
	return c.idx.SearchByAuthor(query)
}

// Count returns the number of records in the catalog.
func (c *Catalog) Count() int {
	return c.idx.Len()
}
