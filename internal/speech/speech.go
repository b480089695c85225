// Package speech turns audio uploads into free-text transcripts for form
// fields. It is a narrow string producer: callers treat ErrUnavailable as a
// transient notice and degrade to manual entry.
package speech

import (
	"context"
	"errors"
	"io"
)

// ErrUnavailable indicates no transcription backend is configured or the
// environment doesn't support one.
var ErrUnavailable = errors.New("speech transcription unavailable")

// Transcriber produces a transcript from an audio stream. The filename is
// used to infer the audio container format.
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
}
