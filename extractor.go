package salaw

import "context"

// DefaultMaxPages bounds how many pages of a document are extracted.
const DefaultMaxPages = 50

// TextExtractor converts a cached document's bytes into plain text.
type TextExtractor interface {
	// Extract reads up to maxPages pages of text from the cached document,
	// joined by newlines and prefixed with a header line carrying the
	// resource's display name. Unreadable pages are skipped. An unopenable
	// document yields an empty string rather than an error, so one bad
	// document does not break assembly of the rest.
	Extract(ctx context.Context, res *Resource, maxPages int) (string, error)
}
