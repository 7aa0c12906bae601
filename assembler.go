package salaw

import "context"

// Sentinel literals returned by Assemble in place of real context. They
// signal an empty/no-match condition, distinct from an error.
const (
	NoDocumentsAvailable = "No legal documents available"
	NoMatchingText       = "No matching legal text found"
)

// DefaultContextBudget caps the assembled context size in characters.
// The upstream model would truncate silently otherwise; the cap here is
// explicit and model-independent.
const DefaultContextBudget = 120000

// ContextAssembler concatenates the extracted text of available documents
// matching a category filter into a single context blob.
type ContextAssembler interface {
	// Assemble extracts and joins the text of every available resource
	// whose category is in categories. An empty categories slice means no
	// filter. Returns NoDocumentsAvailable when nothing is cached at all,
	// and NoMatchingText when filtering plus extraction produces nothing.
	Assemble(ctx context.Context, categories []Category) (string, error)
}
