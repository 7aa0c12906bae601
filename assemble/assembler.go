// Package assemble builds the legal-context blob fed to the model: it
// selects available documents by category, extracts their text, and joins
// the results under an explicit size budget.
package assemble

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mokoena/salaw"
)

// Ensure Assembler implements salaw.ContextAssembler at compile time.
var _ salaw.ContextAssembler = (*Assembler)(nil)

// Assembler concatenates extracted document text for a request. Nothing is
// cached between calls: extraction cost is paid per request so that a store
// refresh is always reflected immediately.
type Assembler struct {
	store     salaw.DocumentStore
	extractor salaw.TextExtractor
	logger    *slog.Logger

	// MaxPages bounds per-document extraction. Zero means
	// salaw.DefaultMaxPages.
	MaxPages int

	// CharBudget caps the assembled context size in characters. Documents
	// are appended whole until the budget would be exceeded; the
	// overflowing document is truncated at the boundary and assembly
	// stops. Zero means salaw.DefaultContextBudget.
	CharBudget int
}

// NewAssembler creates an Assembler over store and extractor.
func NewAssembler(store salaw.DocumentStore, extractor salaw.TextExtractor, logger *slog.Logger) *Assembler {
	return &Assembler{
		store:      store,
		extractor:  extractor,
		logger:     logger,
		MaxPages:   salaw.DefaultMaxPages,
		CharBudget: salaw.DefaultContextBudget,
	}
}

// Assemble extracts and joins the text of every available resource matching
// the category filter. An empty categories slice means all documents.
func (a *Assembler) Assemble(ctx context.Context, categories []salaw.Category) (string, error) {
	available := a.store.Available()
	if len(available) == 0 {
		return salaw.NoDocumentsAvailable, nil
	}

	budget := a.CharBudget
	if budget <= 0 {
		budget = salaw.DefaultContextBudget
	}

	var texts []string
	total := 0
	for i := range available {
		res := available[i]
		if !matches(res.Category, categories) {
			continue
		}

		text, err := a.extractor.Extract(ctx, &res, a.MaxPages)
		if err != nil {
			return "", err
		}
		if text == "" {
			continue
		}

		// The join separator between documents counts against the budget
		// too, so the assembled blob never exceeds it.
		sep := 0
		if len(texts) > 0 {
			sep = 1
		}
		if total+sep+len(text) > budget {
			remaining := budget - total - sep
			if remaining > 0 {
				texts = append(texts, text[:remaining])
			}
			a.logger.Warn("context budget reached, truncating",
				"budget", budget,
				"document", res.Name,
			)
			break
		}
		texts = append(texts, text)
		total += sep + len(text)
	}

	if len(texts) == 0 {
		return salaw.NoMatchingText, nil
	}
	return strings.Join(texts, "\n"), nil
}

func matches(cat salaw.Category, filter []salaw.Category) bool {
	if len(filter) == 0 {
		return true
	}
	for _, c := range filter {
		if c == cat {
			return true
		}
	}
	return false
}
