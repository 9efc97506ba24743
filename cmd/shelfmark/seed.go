package main

import (
	"fmt"

	"github.com/shelfmarkapp/shelfmark/internal/service"
)

// fixtureRecords is the demo catalog loaded at startup. Borrowed entries
// are toggled after adding, so their histories show the transition.
var fixtureRecords = []struct {
	Title    string
	Author   string
	Borrowed bool
}{
	{"Dune", "Frank Herbert", false},
	{"1984", "George Orwell", true},
	{"Moby Dick", "Herman Melville", false},
	{"The Hobbit", "J.R.R. Tolkien", false},
	{"Brave New World", "Aldous Huxley", true},
	{"Fahrenheit 451", "Ray Bradbury", false},
	{"Pride and Prejudice", "Jane Austen", false},
	{"The Left Hand of Darkness", "Ursula K. Le Guin", false},
}

// seedCatalog loads the fixture records through the ordinary service calls,
// the same way any collaborator would.
func seedCatalog(catalog *service.Catalog) error {
	for _, f := range fixtureRecords {
		rec, err := catalog.Add(f.Title, f.Author)
		if err != nil {
			return fmt.Errorf("add %q: %w", f.Title, err)
		}
		if f.Borrowed {
			if _, err := catalog.ToggleStatus(rec.ID); err != nil {
				return fmt.Errorf("borrow %q: %w", f.Title, err)
			}
		}
	}
	return nil
}
