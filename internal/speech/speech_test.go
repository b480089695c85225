package speech

import (
	"context"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"
)

func TestTranscribeWithoutKeyUnavailable(t *testing.T) {
	tr := NewOpenAITranscriber("", "")

	_, err := tr.Transcribe(context.Background(), "note.wav", strings.NewReader("audio"))
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestDefaultModel(t *testing.T) {
	tr := NewOpenAITranscriber("", "")
	require.Equal(t, openai.Whisper1, tr.model)

	tr = NewOpenAITranscriber("", "whisper-large")
	require.Equal(t, "whisper-large", tr.model)
}
