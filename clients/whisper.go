package clients

import (
	"context"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// WhisperService transcribes audio via the OpenAI Whisper API. Used when
// no local ASR service URL is configured.
type WhisperService struct {
	client *openai.Client
	model  string
}

func NewWhisperService(apiKey string) *WhisperService {
	cfg := openai.DefaultConfig(apiKey)
	// Uploads of long audio take a while; the shared 60s client is too tight.
	cfg.HTTPClient = &http.Client{Timeout: 5 * time.Minute}
	return &WhisperService{
		client: openai.NewClientWithConfig(cfg),
		model:  openai.Whisper1,
	}
}

func (s *WhisperService) Transcribe(ctx context.Context, audioPath, language string) (*TranscriptionResult, error) {
	resp, err := s.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    s.model,
		FilePath: audioPath,
		Language: language,
		Format:   openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return nil, fmt.Errorf("whisper: %w", err)
	}

	out := &TranscriptionResult{
		Language: resp.Language,
		Text:     resp.Text,
		Segments: make([]TranscribedSegment, 0, len(resp.Segments)),
	}
	for i, seg := range resp.Segments {
		out.Segments = append(out.Segments, TranscribedSegment{
			ID:    i,
			Start: seg.Start,
			End:   seg.End,
			Text:  seg.Text,
		})
	}
	return out, nil
}
