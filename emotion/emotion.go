// Package emotion attaches a best-label/confidence pair to transcript
// segments using an external text-classification collaborator.
package emotion

import (
	"context"
	"strings"
)

type Emotion struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Neutral is the default for absent or empty-text segments.
func Neutral() Emotion { return Emotion{Label: "neutral", Score: 0.0} }

// Score is one ranked prediction from the classifier.
type Score struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classifier is the external emotion-classification capability.
type Classifier interface {
	Classify(ctx context.Context, text string) ([]Score, error)
}

// Annotator selects the maximum-score prediction per text.
type Annotator struct {
	classifier Classifier
}

func NewAnnotator(c Classifier) *Annotator {
	return &Annotator{classifier: c}
}

// Annotate classifies text and returns the top-scoring emotion. Blank text
// is neutral without invoking the collaborator; an empty prediction list
// is neutral as well.
func (a *Annotator) Annotate(ctx context.Context, text string) (Emotion, error) {
	if strings.TrimSpace(text) == "" {
		return Neutral(), nil
	}
	scores, err := a.classifier.Classify(ctx, text)
	if err != nil {
		return Neutral(), err
	}
	if len(scores) == 0 {
		return Neutral(), nil
	}
	top := scores[0]
	for _, s := range scores[1:] {
		if s.Score > top.Score {
			top = s
		}
	}
	return Emotion{Label: top.Label, Score: top.Score}, nil
}
