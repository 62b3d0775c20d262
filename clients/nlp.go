package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/voice2sign/pipeline/gloss"
)

// --- Linguistic analysis (/analyze) ---

type analyzeReq struct {
	Text string `json:"text"`
}
type analyzeResp struct {
	Tokens []gloss.Token `json:"tokens"`
}

// NLPService provides tokenization, POS tagging and lemmatization via a
// local HTTP service. Implements gloss.Analyzer.
type NLPService struct {
	h   *HTTP
	url string
}

func NewNLPService(h *HTTP, url string) *NLPService {
	return &NLPService{h: h, url: url}
}

func (s *NLPService) Analyze(ctx context.Context, text string) ([]gloss.Token, error) {
	payload, _ := json.Marshal(analyzeReq{Text: text})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url+"/analyze", bytes.NewReader(payload))
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
		return nil, fmt.Errorf("nlp %s: %s", resp.Status, string(body))
	}

	var out analyzeResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("nlp decode: %w", err)
	}
	return out.Tokens, nil
}
