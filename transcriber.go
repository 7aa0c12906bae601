package salaw

import "context"

// Transcriber converts spoken questions to text.
type Transcriber interface {
	// Transcribe converts a validated mono 16 kHz WAV recording to text.
	// Returns EINVALID when the audio is unintelligible and EUNAVAILABLE
	// when the upstream speech service cannot be reached.
	Transcribe(ctx context.Context, wav []byte) (string, error)
}
