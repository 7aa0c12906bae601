package salaw

import (
	"os"
	"strconv"
	"time"
)

// Configuration defaults. Malformed environment values fall back to these
// rather than failing startup.
const (
	DefaultModel         = "gemini-2.5-flash"
	DefaultMaxTokens     = 4000
	DefaultTemperature   = 0.5
	DefaultDocumentsDir  = "documents"
	DefaultListenAddr    = ":8080"
	DefaultAnswerTimeout = 30 * time.Second

	// MinTemperature and MaxTemperature clamp the configured sampling
	// temperature.
	MinTemperature = 0.1
	MaxTemperature = 1.0
)

// Config holds the process configuration. Construct once at startup and
// pass by reference into services.
type Config struct {
	// APIKey authenticates against the chat-completion API.
	APIKey string

	// SpeechAPIKey authenticates against the speech-to-text API.
	// Empty disables the audio question path.
	SpeechAPIKey string

	// Model is the completion model identifier.
	Model string

	// MaxTokens bounds completion length.
	MaxTokens int32

	// Temperature is the sampling temperature, clamped to
	// [MinTemperature, MaxTemperature].
	Temperature float32

	// DocumentsDir is where cached PDFs live.
	DocumentsDir string

	// ContextBudget caps assembled context size in characters.
	ContextBudget int

	// MaxPages bounds per-document extraction.
	MaxPages int

	// ListenAddr is the HTTP listen address.
	ListenAddr string
}

// ConfigFromEnv builds a Config from the environment, applying defaults for
// unset or malformed values and clamping the temperature.
func ConfigFromEnv() Config {
	return Config{
		APIKey:        os.Getenv("GEMINI_API_KEY"),
		SpeechAPIKey:  os.Getenv("SPEECH_API_KEY"),
		Model:         envString("SALAW_MODEL", DefaultModel),
		MaxTokens:     int32(envInt("SALAW_MAX_TOKENS", DefaultMaxTokens)),
		Temperature:   ClampTemperature(envFloat("SALAW_TEMPERATURE", DefaultTemperature)),
		DocumentsDir:  envString("SALAW_DOCUMENTS_DIR", DefaultDocumentsDir),
		ContextBudget: envInt("SALAW_CONTEXT_BUDGET", DefaultContextBudget),
		MaxPages:      envInt("SALAW_MAX_PAGES", DefaultMaxPages),
		ListenAddr:    envString("SALAW_ADDR", DefaultListenAddr),
	}
}

// ClampTemperature forces t into [MinTemperature, MaxTemperature].
func ClampTemperature(t float32) float32 {
	if t < MinTemperature {
		return MinTemperature
	}
	if t > MaxTemperature {
		return MaxTemperature
	}
	return t
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func envFloat(key string, fallback float32) float32 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return fallback
	}
	return float32(f)
}
