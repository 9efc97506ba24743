// Package index implements the ordered catalog index: an unbalanced binary
// search tree keyed by normalized title.
//
// The tree is strictly single-owner: every node owns its record and its two
// subtrees, and nothing holds parent or sibling references. No rebalancing
// is performed; catalogs are small and insert order is user-driven, so the
// linear worst case is an accepted trade for simplicity. All documented
// complexities are upper bounds.
//
// The index provides no synchronization and no uniqueness checking. Both
// are the service layer's job; the index merely tolerates duplicate keys by
// routing them into the right subtree.
package index

import (
	"strings"

	"github.com/shelfmarkapp/shelfmark/internal/domain"
	"github.com/shelfmarkapp/shelfmark/internal/normalize"
)

// node holds one record and its two subtree links. The key is the record's
// normalized title, cached at insert so lookups don't re-fold it.
type node struct {
	key   string
	rec   *domain.Record
	left  *node
	right *node
}

// Index is a title-ordered index over catalog records.
// In-order traversal always yields records in ascending normalized-title order.
type Index struct {
	root *node
	size int
}

// New creates an empty index.
func New() *Index {
	return &Index{}
}

// Len returns the number of records in the index.
// Maintained as a running counter, so this is O(1).
func (ix *Index) Len() int {
	return ix.size
}

// Insert adds a record as a new leaf, descending by normalized title:
// strictly-less goes left, everything else goes right. O(h).
//
// Insert does not check uniqueness; callers enforce the one-record-per-title
// invariant before calling.
func (ix *Index) Insert(rec *domain.Record) {
	ix.root = insert(ix.root, &node{key: normalize.Title(rec.Title), rec: rec})
	ix.size++
}

func insert(n, leaf *node) *node {
	if n == nil {
		return leaf
	}
	if leaf.key < n.key {
		n.left = insert(n.left, leaf)
	} else {
		n.right = insert(n.right, leaf)
	}
	return n
}

// Delete removes the record whose normalized title matches the given title.
// Absent titles are a no-op, not an error; the return value reports whether
// a record was removed. O(h).
func (ix *Index) Delete(title string) bool {
	root, removed := remove(ix.root, normalize.Title(title))
	ix.root = root
	if removed {
		ix.size--
	}
	return removed
}

func remove(n *node, key string) (*node, bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch {
	case key < n.key:
		n.left, removed = remove(n.left, key)
	case key > n.key:
		n.right, removed = remove(n.right, key)
	default:
		switch {
		case n.left == nil:
			// Covers both the leaf and the right-child-only cases.
			return n.right, true
		case n.right == nil:
			return n.left, true
		default:
			// Two children: take over the in-order successor's record,
			// then delete the successor from the right subtree. The
			// displaced record reference is dropped here.
			succ := minimum(n.right)
			n.key, n.rec = succ.key, succ.rec
			n.right, _ = remove(n.right, succ.key)
			return n, true
		}
	}
	return n, removed
}

func minimum(n *node) *node {
	for n.left != nil {
		n = n.left
	}
	return n
}

// SearchExact returns the record whose normalized title matches exactly,
// or nil if no such record exists. O(h).
func (ix *Index) SearchExact(title string) *domain.Record {
	key := normalize.Title(title)
	n := ix.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n.rec
		}
	}
	return nil
}

// SearchByID returns the first record with the given ID, or nil.
//
// Identity is not the index key, so this is an in-order scan with early
// termination: O(n) worst case. IDs are unique, so stopping at the first
// match is safe. Acceptable because catalogs are small.
func (ix *Index) SearchByID(id string) *domain.Record {
	return findByID(ix.root, id)
}

func findByID(n *node, id string) *domain.Record {
	if n == nil {
		return nil
	}
	if rec := findByID(n.left, id); rec != nil {
		return rec
	}
	if n.rec.ID == id {
		return n.rec
	}
	return findByID(n.right, id)
}

// SearchByAuthor returns every record whose normalized author contains the
// normalized query as a substring, in ascending title order. Authors are
// not unique, so unlike SearchByID this never short-circuits. O(n).
func (ix *Index) SearchByAuthor(query string) []*domain.Record {
	q := normalize.Author(query)
	var out []*domain.Record
	walk(ix.root, func(rec *domain.Record) {
		if strings.Contains(normalize.Author(rec.Author), q) {
			out = append(out, rec)
		}
	})
	return out
}

// AllSorted returns every record in ascending normalized-title order. O(n).
func (ix *Index) AllSorted() []*domain.Record {
	out := make([]*domain.Record, 0, ix.size)
	walk(ix.root, func(rec *domain.Record) {
		out = append(out, rec)
	})
	return out
}

// walk visits every record in-order.
func walk(n *node, visit func(*domain.Record)) {
	if n == nil {
		return
	}
	walk(n.left, visit)
	visit(n.rec)
	walk(n.right, visit)
}
