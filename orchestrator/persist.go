package orchestrator

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/voice2sign/pipeline/timeline"
	"github.com/voice2sign/pipeline/transcript"
)

// RunBundle is the persisted run manifest written next to the artifacts.
type RunBundle struct {
	RunID           string    `json:"run_id"`
	SourceID        string    `json:"source_id"`
	AudioPath       string    `json:"audio_path"`
	GeneratedAt     time.Time `json:"generated_at"`
	StagesFromCache []string  `json:"stages_from_cache,omitempty"`
	GlossPath       string    `json:"gloss_path"`
	TimelinePath    string    `json:"timeline_path"`
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// saveTranscript writes the transcript artifacts: full JSON plus a plain
// text file with the whole recognized text.
func (p *Pipeline) saveTranscript(stem string, tr *transcript.Transcript) error {
	jsonPath := filepath.Join(p.cfg.Paths.Outputs, stem+"_transcript.json")
	if err := writeJSON(jsonPath, tr); err != nil {
		return err
	}
	txtPath := filepath.Join(p.cfg.Paths.Outputs, stem+"_transcript.txt")
	return os.WriteFile(txtPath, []byte(tr.Text+"\n"), 0o644)
}

// persistRun writes the gloss and timeline artifacts and the run bundle.
func (p *Pipeline) persistRun(res *RunResult, stem string, segments []timeline.Segment) error {
	glossPath := filepath.Join(p.cfg.Paths.Outputs, stem+"_gloss.json")
	if err := writeJSON(glossPath, &GlossPayload{Segments: segments}); err != nil {
		return err
	}

	timelinePath := filepath.Join(p.cfg.Paths.Outputs, stem+"_sign_timeline.json")
	if err := writeJSON(timelinePath, res.Timeline); err != nil {
		return err
	}

	res.RunID = uuid.NewString()[:8]
	bundle := RunBundle{
		RunID:           res.RunID,
		SourceID:        res.SourceID,
		AudioPath:       res.WavPath,
		GeneratedAt:     time.Now(),
		StagesFromCache: res.StagesFromCache,
		GlossPath:       glossPath,
		TimelinePath:    timelinePath,
	}
	return writeJSON(filepath.Join(p.cfg.Paths.Outputs, stem+"_run.json"), bundle)
}
