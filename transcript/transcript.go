// Package transcript holds the canonical transcript model produced by the
// transcribe stage: an ordered, non-overlapping list of time-bounded segments.
package transcript

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

type Segment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"` // sec
	End   float64 `json:"end"`   // sec
	Text  string  `json:"text"`
}

type Transcript struct {
	Audio    string    `json:"audio"`
	Language string    `json:"language"`
	Text     string    `json:"text"`
	Segments []Segment `json:"segments"`
}

// Normalize canonicalizes raw speech-to-text output: trims text, rounds
// timestamps to milliseconds, reassigns sequential ids, sorts by start and
// clamps small overlaps to the previous segment's end. A segment with
// negative times or end < start is malformed and rejects the whole batch.
func Normalize(audio, language, fullText string, raw []Segment) (*Transcript, error) {
	segs := make([]Segment, 0, len(raw))
	for i, s := range raw {
		if s.Start < 0 || s.End < s.Start {
			return nil, fmt.Errorf("transcript: segment %d has invalid bounds [%f, %f]", i, s.Start, s.End)
		}
		segs = append(segs, Segment{
			Start: round3(s.Start),
			End:   round3(s.End),
			Text:  strings.TrimSpace(s.Text),
		})
	}

	sort.SliceStable(segs, func(i, j int) bool { return segs[i].Start < segs[j].Start })

	for i := range segs {
		segs[i].ID = i
		if i > 0 && segs[i].Start < segs[i-1].End {
			segs[i].Start = segs[i-1].End
			if segs[i].End < segs[i].Start {
				segs[i].End = segs[i].Start
			}
		}
	}

	return &Transcript{
		Audio:    audio,
		Language: language,
		Text:     strings.TrimSpace(fullText),
		Segments: segs,
	}, nil
}

// Validate checks the invariants Normalize guarantees. It is the cache
// boundary check for the transcribe stage payload.
func (t *Transcript) Validate() error {
	for i, s := range t.Segments {
		if s.Start < 0 || s.End < s.Start {
			return fmt.Errorf("transcript: segment %d has invalid bounds [%f, %f]", s.ID, s.Start, s.End)
		}
		if i > 0 && s.Start < t.Segments[i-1].End {
			return fmt.Errorf("transcript: segment %d overlaps previous", s.ID)
		}
	}
	return nil
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
