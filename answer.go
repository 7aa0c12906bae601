package salaw

import (
	"context"
	"regexp"
)

// AnswerResult is the outcome of answering one question.
type AnswerResult struct {
	// Text is the answer, possibly the fixed fallback text.
	Text string `json:"text"`

	// References are the legal citations extracted from Text, deduplicated.
	References []string `json:"references"`

	// Degraded is true when Text is fallback content because the model
	// could not be called or failed. The caller still receives a
	// successful result; Degraded exists for observability.
	Degraded bool `json:"degraded"`
}

// Answerer produces an answer for a question given assembled legal context.
type Answerer interface {
	// Answer never surfaces model failures as errors: on timeout,
	// rate-limit, connectivity, or auth failure the result carries the
	// fixed fallback text with Degraded set. An error is returned only for
	// caller-side problems such as a canceled context.
	Answer(ctx context.Context, question, legalContext string) (*AnswerResult, error)
}

// referencePattern matches the citation forms that appear in answers:
// "Section 104", "Act No. 42 of 2002", "Act 42 of 2002".
var referencePattern = regexp.MustCompile(`Section \d+|Act No\. \d+ of \d{4}|Act \d+ of \d{4}`)

// ExtractReferences pulls legal citations out of an answer. Duplicates are
// removed; first-occurrence order is kept.
func ExtractReferences(answer string) []string {
	matches := referencePattern.FindAllString(answer, -1)
	refs := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		refs = append(refs, m)
	}
	return refs
}
