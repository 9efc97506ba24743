package normalize

import "testing"

func TestTitle(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Simple lowercasing
		{"Dune", "dune"},
		{"MOBY DICK", "moby dick"},
		{"1984", "1984"},
		// Whitespace trimming
		{"  Dune  ", "dune"},
		{"\tThe Hobbit\n", "the hobbit"},
		// Case folding beyond ASCII
		{"STRAßE", "strasse"},
		{"ÉMILE", "émile"},
		// Null bytes stripped
		{"Dune\x00", "dune"},
		// Edge cases
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := Title(tt.input)
			if result != tt.expected {
				t.Errorf("Title(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTitleCaseVariantsCollide(t *testing.T) {
	// Every case variant of the same title must map to one key,
	// otherwise the index fragments.
	variants := []string{"Dune", "dune", "DUNE", "dUnE"}
	want := Title(variants[0])
	for _, v := range variants {
		if got := Title(v); got != want {
			t.Errorf("Title(%q) = %q, want %q", v, got, want)
		}
	}
}

func TestAuthor(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Frank Herbert", "frank herbert"},
		{"  George Orwell ", "george orwell"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := Author(tt.input)
			if result != tt.expected {
				t.Errorf("Author(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
