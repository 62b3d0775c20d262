package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/voice2sign/pipeline/emotion"
)

// --- Emotion (/detect) ---

type emoReq struct {
	Text string `json:"text"`
}
type emoResp struct {
	Emotions        []emotion.Score `json:"emotions"`
	DominantEmotion string          `json:"dominant_emotion"`
}

// EmotionService classifies text affect via a local HTTP service.
// Implements emotion.Classifier.
type EmotionService struct {
	h   *HTTP
	url string
}

func NewEmotionService(h *HTTP, url string) *EmotionService {
	return &EmotionService{h: h, url: url}
}

func (s *EmotionService) Classify(ctx context.Context, text string) ([]emotion.Score, error) {
	b, _ := json.Marshal(emoReq{Text: text})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url+"/detect", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.h.c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("emotion %s: %s", resp.Status, string(body))
	}

	var out emoResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("emotion decode: %w", err)
	}
	return out.Emotions, nil
}
