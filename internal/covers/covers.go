// Package covers derives placeholder cover references for catalog records.
//
// The engine stores no image data. A record's cover reference is a display
// attribute derived entirely from its title, so it is recomputed whenever
// the title changes and never treated as authoritative.
package covers

import (
	"net/url"
	"strings"
)

const (
	// refTemplate is the placeholder image service the presentation layer
	// renders. The %s slot receives the percent-encoded title excerpt.
	refTemplate = "https://placehold.co/200x300?text="

	// maxTokens caps how many title words end up on the placeholder.
	// Long titles overflow the image otherwise.
	maxTokens = 3
)

// Ref returns the derived cover reference for a title: the first three
// whitespace-separated tokens, percent-encoded into the placeholder URL.
func Ref(title string) string {
	tokens := strings.Fields(title)
	if len(tokens) > maxTokens {
		tokens = tokens[:maxTokens]
	}
	text := strings.Join(tokens, " ")
	return refTemplate + url.QueryEscape(text)
}
