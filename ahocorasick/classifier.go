// Package ahocorasick implements salaw.Classifier with Aho-Corasick
// keyword matching over fixed keyword tables.
package ahocorasick

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
	"github.com/mokoena/salaw"
)

// militaryKeywords marks military-domain questions. It also feeds the
// officer-question check.
var militaryKeywords = []string{
	"military", "defence", "army", "soldier", "navy", "air force",
	"officer", "commanding", "rank", "court martial", "disciplinary",
}

// policeKeywords route to the criminal-procedure documents: arrest and
// police powers live in the Criminal Procedure Act.
var policeKeywords = []string{"police", "saps", "arrest"}

var constitutionalKeywords = []string{"constitution", "bill of rights"}

var officerTerms = []string{"officer", "commanding"}

// Ensure Classifier implements salaw.Classifier at compile time.
var _ salaw.Classifier = (*Classifier)(nil)

// Classifier maps questions to document categories by case-insensitive
// substring matching against fixed keyword groups. It is immutable after
// construction and safe for concurrent use.
type Classifier struct {
	groups   []group
	military *ahocorasick.Matcher
	officer  *ahocorasick.Matcher
}

type group struct {
	category salaw.Category
	matcher  *ahocorasick.Matcher
}

// NewClassifier builds the classifier from the fixed keyword tables.
func NewClassifier() *Classifier {
	military := ahocorasick.NewStringMatcher(militaryKeywords)
	return &Classifier{
		groups: []group{
			{salaw.CategoryMilitary, military},
			{salaw.CategoryCriminal, ahocorasick.NewStringMatcher(policeKeywords)},
			{salaw.CategoryConstitutional, ahocorasick.NewStringMatcher(constitutionalKeywords)},
		},
		military: military,
		officer:  ahocorasick.NewStringMatcher(officerTerms),
	}
}

// Classify returns the categories whose keyword group matches the question.
// An empty result means no filter; it is a valid outcome, not a failure.
func (c *Classifier) Classify(question string) []salaw.Category {
	q := []byte(strings.ToLower(question))

	var cats []salaw.Category
	for _, g := range c.groups {
		if len(g.matcher.Match(q)) > 0 {
			cats = append(cats, g.category)
		}
	}
	return cats
}

// IsOfficerQuestion reports whether the question concerns military
// officers: at least one military-domain keyword plus one of the terms
// "officer" or "commanding".
func (c *Classifier) IsOfficerQuestion(question string) bool {
	q := []byte(strings.ToLower(question))

	return len(c.military.Match(q)) > 0 && len(c.officer.Match(q)) > 0
}
