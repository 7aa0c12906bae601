package main

import (
	"fmt"

	"github.com/mokoena/salaw"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	if err := deps.Store.Init(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", salaw.ErrorMessage(err))
		return err
	}

	categories := deps.Classifier.Classify(c.Question)
	legalContext, err := deps.Assembler.Assemble(deps.Ctx, categories)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", salaw.ErrorMessage(err))
		return err
	}

	result, err := deps.Answerer.Answer(deps.Ctx, c.Question, legalContext)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", salaw.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, result.Text)
	if len(result.References) > 0 {
		fmt.Fprintln(deps.Stdout, "\nReferences:")
		for _, ref := range result.References {
			fmt.Fprintf(deps.Stdout, "  - %s\n", ref)
		}
	}
	return nil
}
