// Package googlespeech implements salaw.Transcriber using the Google
// Speech-to-Text REST API.
package googlespeech

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/mokoena/salaw"
	"google.golang.org/api/option"
	speech "google.golang.org/api/speech/v1"
)

// Audio parameters expected from the upload pipeline: mono 16 kHz LINEAR16,
// South African English.
const (
	encoding     = "LINEAR16"
	sampleRateHz = 16000
	languageCode = "en-ZA"
)

// Ensure Transcriber implements salaw.Transcriber at compile time.
var _ salaw.Transcriber = (*Transcriber)(nil)

// Transcriber converts recorded questions to text.
type Transcriber struct {
	svc *speech.Service
}

// NewTranscriber creates a Transcriber authenticated with apiKey.
func NewTranscriber(ctx context.Context, apiKey string) (*Transcriber, error) {
	if apiKey == "" {
		return nil, salaw.Errorf(salaw.EUNAUTHORIZED, "speech API key required")
	}

	svc, err := speech.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, salaw.Errorf(salaw.EUNAVAILABLE, "connect to speech service: %v", err)
	}
	return &Transcriber{svc: svc}, nil
}

// Transcribe converts a validated mono 16 kHz WAV recording to text.
func (t *Transcriber) Transcribe(ctx context.Context, wav []byte) (string, error) {
	resp, err := t.svc.Speech.Recognize(&speech.RecognizeRequest{
		Config: &speech.RecognitionConfig{
			Encoding:        encoding,
			SampleRateHertz: sampleRateHz,
			LanguageCode:    languageCode,
		},
		Audio: &speech.RecognitionAudio{
			Content: base64.StdEncoding.EncodeToString(wav),
		},
	}).Context(ctx).Do()
	if err != nil {
		return "", salaw.Errorf(salaw.EUNAVAILABLE, "speech recognition service error: %v", err)
	}

	text := firstTranscript(resp)
	if text == "" {
		return "", salaw.Errorf(salaw.EINVALID, "could not understand audio")
	}
	return text, nil
}

// firstTranscript picks the top alternative of the first result, trimmed.
func firstTranscript(resp *speech.RecognizeResponse) string {
	if resp == nil {
		return ""
	}
	for _, result := range resp.Results {
		for _, alt := range result.Alternatives {
			if s := strings.TrimSpace(alt.Transcript); s != "" {
				return s
			}
		}
	}
	return ""
}
