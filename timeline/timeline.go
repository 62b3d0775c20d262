// Package timeline assembles the final ordered timeline of sign items,
// the artifact consumed by downstream renderers.
package timeline

import (
	"fmt"

	"github.com/voice2sign/pipeline/assets"
	"github.com/voice2sign/pipeline/emotion"
)

// Segment is a transcript segment enriched by the gloss stage and,
// optionally, the emotion stage.
type Segment struct {
	ID      int              `json:"id"`
	Start   float64          `json:"start"`
	End     float64          `json:"end"`
	Text    string           `json:"text"`
	Gloss   []string         `json:"gloss"`
	Emotion *emotion.Emotion `json:"emotion,omitempty"`
}

// Entry is one timeline row: the enriched segment plus its resolved sign
// items. Emotion is always present here, defaulting to neutral.
type Entry struct {
	ID      int                 `json:"id"`
	Start   float64             `json:"start"`
	End     float64             `json:"end"`
	Text    string              `json:"text"`
	Gloss   []string            `json:"gloss"`
	Emotion emotion.Emotion     `json:"emotion"`
	Items   []assets.Descriptor `json:"items"`
}

// Timeline is the root output artifact.
type Timeline struct {
	Entries []Entry `json:"timeline"`
}

// Build resolves every gloss token of every segment against a single
// shared asset index and assembles the timeline. It performs no gloss or
// emotion recomputation. Entry count and order always match the input;
// a segment with no gloss tokens still yields an entry with empty items.
func Build(segs []Segment, idx assets.Index) *Timeline {
	entries := make([]Entry, 0, len(segs))
	for _, seg := range segs {
		items := make([]assets.Descriptor, 0)
		for _, tok := range seg.Gloss {
			items = append(items, assets.Resolve(tok, idx)...)
		}

		emo := emotion.Neutral()
		if seg.Emotion != nil {
			emo = *seg.Emotion
		}
		gl := seg.Gloss
		if gl == nil {
			gl = []string{}
		}

		entries = append(entries, Entry{
			ID:      seg.ID,
			Start:   seg.Start,
			End:     seg.End,
			Text:    seg.Text,
			Gloss:   gl,
			Emotion: emo,
			Items:   items,
		})
	}
	return &Timeline{Entries: entries}
}

// Validate is the cache boundary check for the timeline stage payload.
func (t *Timeline) Validate() error {
	for i, e := range t.Entries {
		if e.Start < 0 || e.End < e.Start {
			return fmt.Errorf("timeline: entry %d has invalid bounds [%f, %f]", e.ID, e.Start, e.End)
		}
		for _, d := range e.Items {
			switch d.Type {
			case assets.TypePause, assets.TypeImage, assets.TypeFingerspell, assets.TypeText:
			default:
				return fmt.Errorf("timeline: entry %d has unknown item type %q", i, d.Type)
			}
		}
	}
	return nil
}
