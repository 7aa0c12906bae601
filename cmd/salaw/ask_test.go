package main_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/mokoena/salaw"
	main "github.com/mokoena/salaw/cmd/salaw"
	"github.com/mokoena/salaw/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestAskCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("classifies, assembles and prints the answer", func(t *testing.T) {
		t.Parallel()

		store := &mock.DocumentStore{
			InitFn: func(ctx context.Context) error { return nil },
		}
		classifier := &mock.Classifier{
			ClassifyFn: func(question string) []salaw.Category {
				assert.Equal(t, "Can a soldier be arrested?", question)
				return []salaw.Category{salaw.CategoryMilitary}
			},
		}
		assembler := &mock.ContextAssembler{
			AssembleFn: func(_ context.Context, categories []salaw.Category) (string, error) {
				assert.Equal(t, []salaw.Category{salaw.CategoryMilitary}, categories)
				return "Defence Act text", nil
			},
		}
		answerer := &mock.Answerer{
			AnswerFn: func(_ context.Context, question, legalContext string) (*salaw.AnswerResult, error) {
				assert.Equal(t, "Can a soldier be arrested?", question)
				assert.Equal(t, "Defence Act text", legalContext)
				return &salaw.AnswerResult{
					Text:       "Yes, under Section 40 of the Criminal Procedure Act.",
					References: []string{"Section 40"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Logger:     discardLogger(),
			Store:      store,
			Classifier: classifier,
			Assembler:  assembler,
			Answerer:   answerer,
		}

		cmd := &main.AskCmd{Question: "Can a soldier be arrested?"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Yes, under Section 40")
		assert.Contains(t, stdout.String(), "References:")
		assert.Contains(t, stdout.String(), "- Section 40")
	})

	t.Run("omits the references section when there are none", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Logger: discardLogger(),
			Store: &mock.DocumentStore{
				InitFn: func(ctx context.Context) error { return nil },
			},
			Classifier: &mock.Classifier{
				ClassifyFn: func(string) []salaw.Category { return nil },
			},
			Assembler: &mock.ContextAssembler{
				AssembleFn: func(context.Context, []salaw.Category) (string, error) {
					return "legal text", nil
				},
			},
			Answerer: &mock.Answerer{
				AnswerFn: func(context.Context, string, string) (*salaw.AnswerResult, error) {
					return &salaw.AnswerResult{Text: "General guidance."}, nil
				},
			},
		}

		cmd := &main.AskCmd{Question: "question"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "General guidance.")
		assert.NotContains(t, stdout.String(), "References:")
	})

	t.Run("returns error when store init fails", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Logger: discardLogger(),
			Store: &mock.DocumentStore{
				InitFn: func(ctx context.Context) error {
					return salaw.Errorf(salaw.EINTERNAL, "cannot create documents directory")
				},
			},
		}

		cmd := &main.AskCmd{Question: "question"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
		assert.Empty(t, stdout.String())
	})

	t.Run("returns error when answering fails", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Logger: discardLogger(),
			Store: &mock.DocumentStore{
				InitFn: func(ctx context.Context) error { return nil },
			},
			Classifier: &mock.Classifier{
				ClassifyFn: func(string) []salaw.Category { return nil },
			},
			Assembler: &mock.ContextAssembler{
				AssembleFn: func(context.Context, []salaw.Category) (string, error) {
					return "legal text", nil
				},
			},
			Answerer: &mock.Answerer{
				AnswerFn: func(context.Context, string, string) (*salaw.AnswerResult, error) {
					return nil, context.Canceled
				},
			},
		}

		cmd := &main.AskCmd{Question: "question"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
		assert.Empty(t, stdout.String())
	})
}
