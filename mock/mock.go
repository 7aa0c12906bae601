// Package mock provides function-field mock implementations of the salaw
// domain interfaces for testing.
package mock

import (
	"context"
	"io"

	"github.com/mokoena/salaw"
)

var _ salaw.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is a mock implementation of salaw.DocumentStore.
type DocumentStore struct {
	InitFn            func(ctx context.Context) error
	EnsureAvailableFn func(ctx context.Context, res *salaw.Resource) bool
	AvailableFn       func() []salaw.Resource
	StatusesFn        func() []salaw.ResourceStatus
	RefreshFn         func(ctx context.Context) error
	OpenFn            func(res *salaw.Resource) (io.ReadCloser, error)
}

func (s *DocumentStore) Init(ctx context.Context) error {
	return s.InitFn(ctx)
}

func (s *DocumentStore) EnsureAvailable(ctx context.Context, res *salaw.Resource) bool {
	return s.EnsureAvailableFn(ctx, res)
}

func (s *DocumentStore) Available() []salaw.Resource {
	return s.AvailableFn()
}

func (s *DocumentStore) Statuses() []salaw.ResourceStatus {
	return s.StatusesFn()
}

func (s *DocumentStore) Refresh(ctx context.Context) error {
	return s.RefreshFn(ctx)
}

func (s *DocumentStore) Open(res *salaw.Resource) (io.ReadCloser, error) {
	return s.OpenFn(res)
}

var _ salaw.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of salaw.TextExtractor.
type TextExtractor struct {
	ExtractFn func(ctx context.Context, res *salaw.Resource, maxPages int) (string, error)
}

func (e *TextExtractor) Extract(ctx context.Context, res *salaw.Resource, maxPages int) (string, error) {
	return e.ExtractFn(ctx, res, maxPages)
}

var _ salaw.ContextAssembler = (*ContextAssembler)(nil)

// ContextAssembler is a mock implementation of salaw.ContextAssembler.
type ContextAssembler struct {
	AssembleFn func(ctx context.Context, categories []salaw.Category) (string, error)
}

func (a *ContextAssembler) Assemble(ctx context.Context, categories []salaw.Category) (string, error) {
	return a.AssembleFn(ctx, categories)
}

var _ salaw.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of salaw.Classifier.
type Classifier struct {
	ClassifyFn          func(question string) []salaw.Category
	IsOfficerQuestionFn func(question string) bool
}

func (c *Classifier) Classify(question string) []salaw.Category {
	return c.ClassifyFn(question)
}

func (c *Classifier) IsOfficerQuestion(question string) bool {
	return c.IsOfficerQuestionFn(question)
}

var _ salaw.ChatClient = (*ChatClient)(nil)

// ChatClient is a mock implementation of salaw.ChatClient.
type ChatClient struct {
	CompleteFn func(ctx context.Context, req salaw.ChatRequest) (string, error)
}

func (c *ChatClient) Complete(ctx context.Context, req salaw.ChatRequest) (string, error) {
	return c.CompleteFn(ctx, req)
}

var _ salaw.Answerer = (*Answerer)(nil)

// Answerer is a mock implementation of salaw.Answerer.
type Answerer struct {
	AnswerFn func(ctx context.Context, question, legalContext string) (*salaw.AnswerResult, error)
}

func (a *Answerer) Answer(ctx context.Context, question, legalContext string) (*salaw.AnswerResult, error) {
	return a.AnswerFn(ctx, question, legalContext)
}

var _ salaw.Transcriber = (*Transcriber)(nil)

// Transcriber is a mock implementation of salaw.Transcriber.
type Transcriber struct {
	TranscribeFn func(ctx context.Context, wav []byte) (string, error)
}

func (t *Transcriber) Transcribe(ctx context.Context, wav []byte) (string, error) {
	return t.TranscribeFn(ctx, wav)
}
