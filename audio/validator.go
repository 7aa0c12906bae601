// Package audio validates uploaded recordings before transcription.
package audio

import (
	"io"
	"time"

	"github.com/go-audio/wav"
	"github.com/mokoena/salaw"
)

// Defaults matching what the speech collaborator expects.
const (
	DefaultSampleRate  = 16000
	DefaultMaxDuration = 5 * time.Minute
)

// Validator checks that an upload is a usable recording: a well-formed WAV
// file, mono, at the expected sample rate, non-empty, and under the
// duration cap.
type Validator struct {
	// SampleRate is the required sample rate in Hz.
	SampleRate int

	// MaxDuration caps recording length.
	MaxDuration time.Duration
}

// NewValidator creates a Validator with the default constraints.
func NewValidator() *Validator {
	return &Validator{
		SampleRate:  DefaultSampleRate,
		MaxDuration: DefaultMaxDuration,
	}
}

// Validate checks the recording. All failures are EINVALID; the caller
// treats them as client errors, never retried.
func (v *Validator) Validate(r io.ReadSeeker) error {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return salaw.Errorf(salaw.EINVALID, "invalid audio file: not a WAV recording")
	}

	dec.ReadInfo()
	if dec.NumChans != 1 {
		return salaw.Errorf(salaw.EINVALID, "audio must be mono, got %d channels", dec.NumChans)
	}
	if int(dec.SampleRate) != v.SampleRate {
		return salaw.Errorf(salaw.EINVALID, "audio must be sampled at %d Hz, got %d", v.SampleRate, dec.SampleRate)
	}

	dur, err := dec.Duration()
	if err != nil {
		return salaw.Errorf(salaw.EINVALID, "invalid audio file: %v", err)
	}
	if dur <= 0 {
		return salaw.Errorf(salaw.EINVALID, "empty audio file")
	}
	if dur > v.MaxDuration {
		return salaw.Errorf(salaw.EINVALID, "audio exceeds maximum duration (%.1fs > %.0fs)", dur.Seconds(), v.MaxDuration.Seconds())
	}
	return nil
}
