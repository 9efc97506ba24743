package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHistory_SeededWithCreated(t *testing.T) {
	h := NewHistory()

	require.Equal(t, 1, h.Len())
	assert.Equal(t, EventCreated, h.NewestFirst()[0].Kind)
	assert.False(t, h.NewestFirst()[0].At.IsZero())
}

func TestHistory_AppendOrdering(t *testing.T) {
	h := NewHistory()
	h.Append(EventBorrowed)
	h.Append(EventReturned)

	entries := h.NewestFirst()
	require.Len(t, entries, 3)

	// Newest first.
	assert.Equal(t, EventReturned, entries[0].Kind)
	assert.Equal(t, EventBorrowed, entries[1].Kind)
	assert.Equal(t, EventCreated, entries[2].Kind)

	// Timestamps non-decreasing in storage order (newest-first reversed).
	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i-1].At.Before(entries[i].At),
			"entry %d is newer than entry %d", i, i-1)
	}
}

func TestHistory_NewestFirstReturnsCopy(t *testing.T) {
	h := NewHistory()
	h.Append(EventBorrowed)

	first := h.NewestFirst()
	first[0].Kind = EventEdited

	// Mutating the returned slice must not touch the log.
	assert.Equal(t, EventBorrowed, h.NewestFirst()[0].Kind)
}

func TestHistory_LengthMonotonic(t *testing.T) {
	h := NewHistory()
	prev := h.Len()
	for _, kind := range []EventKind{EventBorrowed, EventReturned, EventEdited, EventBorrowed} {
		h.Append(kind)
		assert.Greater(t, h.Len(), prev)
		prev = h.Len()
	}
}

func TestStatus_Toggled(t *testing.T) {
	assert.Equal(t, StatusBorrowed, StatusAvailable.Toggled())
	assert.Equal(t, StatusAvailable, StatusBorrowed.Toggled())
}
