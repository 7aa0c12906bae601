// Package pdf implements salaw.TextExtractor using github.com/ledongthuc/pdf.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/mokoena/salaw"
)

// Ensure Extractor implements salaw.TextExtractor at compile time.
var _ salaw.TextExtractor = (*Extractor)(nil)

// Extractor reads page text from cached documents. Extraction is
// regenerated on every call; nothing is cached across calls, so a store
// refresh is never shadowed by stale text.
type Extractor struct {
	store  salaw.DocumentStore
	logger *slog.Logger
}

// NewExtractor creates an Extractor reading documents from store.
func NewExtractor(store salaw.DocumentStore, logger *slog.Logger) *Extractor {
	return &Extractor{store: store, logger: logger}
}

// Extract reads up to maxPages pages of text from the cached document. The
// result is prefixed with a header line carrying the resource name.
// Unreadable pages are logged and skipped; an unopenable document yields an
// empty string and a nil error.
func (e *Extractor) Extract(ctx context.Context, res *salaw.Resource, maxPages int) (string, error) {
	if maxPages <= 0 {
		maxPages = salaw.DefaultMaxPages
	}

	rc, err := e.store.Open(res)
	if err != nil {
		e.logger.Warn("document not readable", "name", res.Name, "error", err)
		return "", nil
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		e.logger.Warn("document not readable", "name", res.Name, "error", err)
		return "", nil
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		e.logger.Warn("document not parseable", "name", res.Name, "error", err)
		return "", nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n=== %s ===\n", res.Name)

	pages := reader.NumPage()
	if pages > maxPages {
		pages = maxPages
	}
	for i := 1; i <= pages; i++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		text, err := extractPage(reader, i)
		if err != nil {
			e.logger.Warn("skipping unreadable page", "name", res.Name, "page", i, "error", err)
			continue
		}
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	}

	return sb.String(), nil
}

// extractPage reads the plain text of a single page. The parser panics on
// some malformed page content streams; a panic is converted to an error so
// one bad page does not abort the document.
func extractPage(reader *pdf.Reader, num int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page panic: %v", r)
		}
	}()

	page := reader.Page(num)
	if page.V.IsNull() {
		return "", fmt.Errorf("null page")
	}
	return page.GetPlainText(nil)
}
