// Package answer implements the answering pipeline: prompt construction,
// the model call with per-path timeouts, degraded-mode fallbacks, and
// answer post-processing.
package answer

import (
	"context"
	"log/slog"
	"time"

	"github.com/mokoena/salaw"
)

// Per-path model call timeouts. The officer path uses a stricter budget.
const (
	DefaultTimeout        = 30 * time.Second
	DefaultOfficerTimeout = 20 * time.Second
)

// officerTemperature is fixed for officer questions regardless of the
// configured temperature.
const officerTemperature = 0.3

// Ensure Service implements salaw.Answerer at compile time.
var _ salaw.Answerer = (*Service)(nil)

// Service answers questions against assembled legal context. Model
// failures never reach the caller: every path produces a successful result,
// degraded if necessary.
type Service struct {
	chat       salaw.ChatClient
	classifier salaw.Classifier
	logger     *slog.Logger

	// Model, Temperature and MaxTokens configure the general question
	// path.
	Model       string
	Temperature float32
	MaxTokens   int32

	// Timeout and OfficerTimeout bound the two model-call paths.
	Timeout        time.Duration
	OfficerTimeout time.Duration
}

// NewService creates an answering Service.
func NewService(chat salaw.ChatClient, classifier salaw.Classifier, logger *slog.Logger, cfg salaw.Config) *Service {
	return &Service{
		chat:           chat,
		classifier:     classifier,
		logger:         logger,
		Model:          cfg.Model,
		Temperature:    cfg.Temperature,
		MaxTokens:      cfg.MaxTokens,
		Timeout:        DefaultTimeout,
		OfficerTimeout: DefaultOfficerTimeout,
	}
}

// Answer produces the final answer plus extracted references for a
// question. The model is never called without usable context.
func (s *Service) Answer(ctx context.Context, question, legalContext string) (*salaw.AnswerResult, error) {
	officer := s.classifier.IsOfficerQuestion(question)

	if legalContext == "" || legalContext == salaw.NoDocumentsAvailable || legalContext == salaw.NoMatchingText {
		s.logger.Warn("no context available, using fallback response")
		return s.fallback(officer), nil
	}

	var (
		text string
		err  error
	)
	if officer {
		text, err = s.completeOfficer(ctx, question, legalContext)
	} else {
		text, err = s.complete(ctx, question, legalContext)
	}
	if err != nil {
		// A canceled caller is not a model failure.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.Error("model call failed",
			"code", salaw.ErrorCode(err),
			"error", salaw.ErrorMessage(err),
		)
		return s.fallback(officer), nil
	}

	text = FormatAnswer(text)
	if officer {
		text = EnhanceOfficerAnswer(text, question)
	}

	return &salaw.AnswerResult{
		Text:       text,
		References: salaw.ExtractReferences(text),
	}, nil
}

func (s *Service) complete(ctx context.Context, question, legalContext string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	return s.chat.Complete(ctx, salaw.ChatRequest{
		System:      SystemPrompt,
		User:        BuildPrompt(question, legalContext),
		Model:       s.Model,
		Temperature: s.Temperature,
		MaxTokens:   s.MaxTokens,
	})
}

func (s *Service) completeOfficer(ctx context.Context, question, legalContext string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.OfficerTimeout)
	defer cancel()

	return s.chat.Complete(ctx, salaw.ChatRequest{
		System:      SystemPrompt,
		User:        BuildOfficerPrompt(question, legalContext),
		Model:       s.Model,
		Temperature: officerTemperature,
		MaxTokens:   s.MaxTokens,
	})
}

// fallback builds the degraded-mode result. References are still extracted
// so the response shape is uniform across paths.
func (s *Service) fallback(officer bool) *salaw.AnswerResult {
	text := FallbackText
	if officer {
		text = OfficerFallbackText
	}
	return &salaw.AnswerResult{
		Text:       text,
		References: salaw.ExtractReferences(text),
		Degraded:   true,
	}
}
