// Package clients holds the HTTP collaborators the pipeline delegates to:
// a local ASR service, a linguistic-analysis service, an emotion service,
// and the OpenAI Whisper API as an alternative transcription backend.
package clients

import (
	"context"
	"net/http"
	"time"
)

type HTTP struct{ c *http.Client }

func NewHTTP() *HTTP { return &HTTP{c: &http.Client{Timeout: 60 * time.Second}} }

// TranscribedSegment is one timestamped piece of a transcription result.
type TranscribedSegment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// TranscriptionResult is the common output of every transcription backend.
type TranscriptionResult struct {
	Language string               `json:"language"`
	Text     string               `json:"text"`
	Segments []TranscribedSegment `json:"segments"`
}

// Transcriber is the speech-to-text capability: timestamped text from a
// waveform file, with an optional language hint.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, language string) (*TranscriptionResult, error)
}
