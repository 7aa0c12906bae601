package salaw

import "context"

// ChatRequest is a single-shot (non-streaming) completion request.
type ChatRequest struct {
	// System is the system prompt.
	System string

	// User is the user message content.
	User string

	// Model identifies the completion model. Empty means the client's
	// default.
	Model string

	// Temperature controls sampling randomness.
	Temperature float32

	// MaxTokens bounds the completion length. Zero means no explicit bound.
	MaxTokens int32
}

// ChatClient calls an external chat-completion API.
type ChatClient interface {
	// Complete sends the request and returns the completion text.
	// Failures are returned as coded errors: ETIMEOUT, ERATELIMIT,
	// EUNAUTHORIZED, EUNAVAILABLE, or EINTERNAL.
	Complete(ctx context.Context, req ChatRequest) (string, error)
}
