package salaw

// Classifier routes free-text questions to document categories by keyword
// matching. Classification never fails: an empty result means "no filter,
// use all documents".
type Classifier interface {
	// Classify returns the categories whose keyword group matches the
	// question, case-insensitively. Possibly empty.
	Classify(question string) []Category

	// IsOfficerQuestion reports whether the question concerns military
	// officers: it must contain at least one military-domain keyword and
	// one of the terms "officer" or "commanding". Officer questions get a
	// specialized prompt template and a stricter model temperature.
	IsOfficerQuestion(question string) bool
}
