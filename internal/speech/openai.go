package speech

import (
	"context"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAITranscriber implements Transcriber on the OpenAI audio API.
type OpenAITranscriber struct {
	client *openai.Client
	model  string
}

// NewOpenAITranscriber creates a transcriber for the given key and model.
// An empty key yields a transcriber that always reports ErrUnavailable.
func NewOpenAITranscriber(apiKey, model string) *OpenAITranscriber {
	if model == "" {
		model = openai.Whisper1
	}
	t := &OpenAITranscriber{model: model}
	if apiKey != "" {
		t.client = openai.NewClient(apiKey)
	}
	return t
}

// Transcribe sends the audio stream for transcription and returns the text.
func (t *OpenAITranscriber) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	if t.client == nil {
		return "", ErrUnavailable
	}

	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		FilePath: filename,
		Reader:   audio,
	})
	if err != nil {
		return "", fmt.Errorf("transcribing audio: %w", err)
	}
	return resp.Text, nil
}
