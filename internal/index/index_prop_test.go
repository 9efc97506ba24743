package index

import (
	"fmt"
	"slices"
	"testing"

	"pgregory.net/rapid"

	"github.com/shelfmarkapp/shelfmark/internal/domain"
	"github.com/shelfmarkapp/shelfmark/internal/normalize"
)

// TestIndex_SortInvariant drives the index through random insert/delete
// sequences against a map model and checks after every step that in-order
// traversal stays sorted and the count matches the model.
func TestIndex_SortInvariant(t *testing.T) {
	titleGen := rapid.StringMatching(`[A-Za-z][A-Za-z ]{0,11}`)

	rapid.Check(t, func(t *rapid.T) {
		ix := New()
		model := make(map[string]string) // normalized title -> id
		nextID := 0

		t.Repeat(map[string]func(*rapid.T){
			"insert": func(t *rapid.T) {
				title := titleGen.Draw(t, "title")
				key := normalize.Title(title)
				if _, exists := model[key]; exists {
					// The service layer never inserts duplicates.
					t.Skip()
				}
				nextID++
				id := fmt.Sprintf("rec-%d", nextID)
				ix.Insert(&domain.Record{ID: id, Title: title, History: domain.NewHistory()})
				model[key] = id
			},
			"delete": func(t *rapid.T) {
				title := titleGen.Draw(t, "title")
				key := normalize.Title(title)
				_, present := model[key]
				removed := ix.Delete(title)
				if removed != present {
					t.Fatalf("Delete(%q) = %v, model says %v", title, removed, present)
				}
				delete(model, key)
			},
			"": func(t *rapid.T) {
				if ix.Len() != len(model) {
					t.Fatalf("Len() = %d, model has %d", ix.Len(), len(model))
				}

				recs := ix.AllSorted()
				keys := make([]string, len(recs))
				for i, rec := range recs {
					keys[i] = normalize.Title(rec.Title)
				}
				if !slices.IsSorted(keys) {
					t.Fatalf("AllSorted() out of order: %v", keys)
				}
				want := make([]string, 0, len(model))
				for k := range model {
					want = append(want, k)
				}
				slices.Sort(want)
				if !slices.Equal(keys, want) {
					t.Fatalf("AllSorted() keys = %v, want %v", keys, want)
				}
			},
		})
	})
}

// TestIndex_DeleteRoundTrip checks that deleting any present record makes
// its title unreachable and shrinks the count by exactly one.
func TestIndex_DeleteRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		titleSet := rapid.SliceOfNDistinct(
			rapid.StringMatching(`[a-z]{1,10}`), 1, 20, rapid.ID[string],
		).Draw(t, "titles")

		ix := New()
		for i, title := range titleSet {
			ix.Insert(&domain.Record{ID: fmt.Sprintf("rec-%d", i), Title: title, History: domain.NewHistory()})
		}

		victim := rapid.SampledFrom(titleSet).Draw(t, "victim")
		before := ix.Len()

		if !ix.Delete(victim) {
			t.Fatalf("Delete(%q) did not remove a present record", victim)
		}
		if ix.SearchExact(victim) != nil {
			t.Fatalf("SearchExact(%q) found a deleted record", victim)
		}
		if ix.Len() != before-1 {
			t.Fatalf("Len() = %d after delete, want %d", ix.Len(), before-1)
		}
	})
}
