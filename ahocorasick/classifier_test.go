package ahocorasick_test

import (
	"testing"

	"github.com/mokoena/salaw"
	"github.com/mokoena/salaw/ahocorasick"
	"github.com/stretchr/testify/assert"
)

func TestClassifier_Classify(t *testing.T) {
	t.Parallel()

	c := ahocorasick.NewClassifier()

	t.Run("implements salaw.Classifier interface", func(t *testing.T) {
		t.Parallel()
		var _ salaw.Classifier = ahocorasick.NewClassifier()
	})

	t.Run("officer question is military", func(t *testing.T) {
		t.Parallel()

		cats := c.Classify("What are the arrest powers of a commanding officer?")

		assert.Contains(t, cats, salaw.CategoryMilitary)
	})

	t.Run("constitution question is constitutional, not military", func(t *testing.T) {
		t.Parallel()

		cats := c.Classify("What does the Constitution say about privacy?")

		assert.Contains(t, cats, salaw.CategoryConstitutional)
		assert.NotContains(t, cats, salaw.CategoryMilitary)
	})

	t.Run("police keywords route to criminal documents", func(t *testing.T) {
		t.Parallel()

		cats := c.Classify("Can SAPS search my home without a warrant?")

		assert.Contains(t, cats, salaw.CategoryCriminal)
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		t.Parallel()

		assert.Contains(t, c.Classify("DEFENCE force deployment rules"), salaw.CategoryMilitary)
	})

	t.Run("no keyword match means no filter", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, c.Classify("How do I register a company?"))
	})
}

func TestClassifier_IsOfficerQuestion(t *testing.T) {
	t.Parallel()

	c := ahocorasick.NewClassifier()

	t.Run("commanding officer question", func(t *testing.T) {
		t.Parallel()

		assert.True(t, c.IsOfficerQuestion("What are the arrest powers of a commanding officer?"))
	})

	t.Run("military question without officer terms", func(t *testing.T) {
		t.Parallel()

		assert.False(t, c.IsOfficerQuestion("When can the army be deployed domestically?"))
	})

	t.Run("officer term without military context still counts", func(t *testing.T) {
		t.Parallel()

		// "officer" is itself a military-domain keyword.
		assert.True(t, c.IsOfficerQuestion("Can an officer be arrested?"))
	})

	t.Run("unrelated question", func(t *testing.T) {
		t.Parallel()

		assert.False(t, c.IsOfficerQuestion("What does the Constitution say about privacy?"))
	})
}
