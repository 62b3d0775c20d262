package orchestrator

import (
	"fmt"

	"github.com/voice2sign/pipeline/timeline"
)

// One named payload type per cached stage, validated at the cache
// boundary. Transcript and Timeline payloads are the domain types
// themselves (they carry their own Validate).

// DownloadPayload records where the download stage left the waveform.
type DownloadPayload struct {
	WavPath string `json:"wav_path"`
}

func (p *DownloadPayload) Validate() error {
	if p.WavPath == "" {
		return fmt.Errorf("download payload: empty wav path")
	}
	return nil
}

// GlossPayload is the gloss stage output: segments enriched with gloss
// token sequences.
type GlossPayload struct {
	Segments []timeline.Segment `json:"segments"`
}

func (p *GlossPayload) Validate() error {
	return validateSegments(p.Segments, false)
}

// EmotionPayload is the emotion stage output: glossed segments with an
// emotion attached to every one.
type EmotionPayload struct {
	Segments []timeline.Segment `json:"segments"`
}

func (p *EmotionPayload) Validate() error {
	return validateSegments(p.Segments, true)
}

func validateSegments(segs []timeline.Segment, wantEmotion bool) error {
	for _, s := range segs {
		if s.Start < 0 || s.End < s.Start {
			return fmt.Errorf("segment %d: invalid bounds [%f, %f]", s.ID, s.Start, s.End)
		}
		if s.Text == "" {
			return fmt.Errorf("segment %d: empty text", s.ID)
		}
		if wantEmotion && s.Emotion == nil {
			return fmt.Errorf("segment %d: missing emotion", s.ID)
		}
	}
	return nil
}
