// Package gemini implements salaw.ChatClient using the Gemini API.
package gemini

import (
	"context"
	"errors"
	"net/http"

	"github.com/mokoena/salaw"
	"google.golang.org/genai"
)

// Ensure Client implements salaw.ChatClient at compile time.
var _ salaw.ChatClient = (*Client)(nil)

// Client calls the Gemini API for single-shot completions.
type Client struct {
	genai *genai.Client
	model string
}

// NewClient connects to the Gemini API. model is the default model used
// when a request does not name one.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, salaw.Errorf(salaw.EUNAUTHORIZED, "API key required")
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, salaw.Errorf(salaw.EUNAVAILABLE, "connect to Gemini API: %v", err)
	}
	return &Client{genai: gc, model: model}, nil
}

// Complete sends a single completion request and returns the response text.
func (c *Client) Complete(ctx context.Context, req salaw.ChatRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}

	config := BuildConfig(req)
	result, err := c.genai.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: req.User}},
		}},
		config,
	)
	if err != nil {
		return "", codedError(err)
	}
	if result == nil {
		return "", salaw.Errorf(salaw.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig maps a ChatRequest onto the Gemini generation config.
func BuildConfig(req salaw.ChatRequest) *genai.GenerateContentConfig {
	temp := req.Temperature
	config := &genai.GenerateContentConfig{
		Temperature: &temp,
	}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = req.MaxTokens
	}
	return config
}

// codedError converts transport and API failures into application error
// codes so the answer layer can treat them uniformly.
func codedError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return salaw.Errorf(salaw.ETIMEOUT, "gemini request timed out")
	}
	if errors.Is(err, context.Canceled) {
		return err
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return salaw.Errorf(salaw.EUNAUTHORIZED, "gemini authentication failed: %s", apiErr.Message)
		case http.StatusTooManyRequests:
			return salaw.Errorf(salaw.ERATELIMIT, "gemini rate limit exceeded: %s", apiErr.Message)
		default:
			if apiErr.Code >= 500 {
				return salaw.Errorf(salaw.EUNAVAILABLE, "gemini unavailable: %s", apiErr.Message)
			}
			return salaw.Errorf(salaw.EINTERNAL, "gemini API error: %s", apiErr.Message)
		}
	}

	return salaw.Errorf(salaw.EUNAVAILABLE, "gemini connection failed: %v", err)
}
