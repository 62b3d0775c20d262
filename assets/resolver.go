package assets

import (
	"strings"

	"github.com/voice2sign/pipeline/gloss"
)

// PauseDuration is the temporal gap a pause marker renders as, in seconds.
const PauseDuration = 0.4

// Descriptor kinds. For a given token the resolver returns exactly one
// kind: a single pause, a single image, a fingerspell sequence, or a
// single text fallback.
const (
	TypePause       = "pause"
	TypeImage       = "image"
	TypeFingerspell = "fingerspell"
	TypeText        = "text"
)

// Descriptor is one renderable unit. Type selects the variant; the other
// fields are populated per variant.
type Descriptor struct {
	Type  string  `json:"type"`
	Dur   float64 `json:"dur,omitempty"`
	Path  string  `json:"path,omitempty"`
	Label string  `json:"label"`
	Char  string  `json:"char,omitempty"`
}

func pauseItem() Descriptor {
	return Descriptor{Type: TypePause, Dur: PauseDuration}
}

func imageItem(path, label string) Descriptor {
	return Descriptor{Type: TypeImage, Path: path, Label: label}
}

func fingerspellItem(ch rune) Descriptor {
	return Descriptor{Type: TypeFingerspell, Label: "FINGERSPELL_" + string(ch), Char: string(ch)}
}

func textItem(label string) Descriptor {
	return Descriptor{Type: TypeText, Label: label}
}

// Resolve maps one gloss token to its renderable descriptors. The tiers,
// first match wins:
//
//  1. pause marker -> a single pause of PauseDuration
//  2. exact index hit for the uppercased token -> a single image
//  3. one fingerspell item per A-Z character (others skipped)
//  4. nothing fingerspellable -> a single literal text fallback
//
// Resolution never fails; the result is non-empty for every token.
func Resolve(token string, idx Index) []Descriptor {
	if token == gloss.Pause {
		return []Descriptor{pauseItem()}
	}

	up := strings.ToUpper(token)
	if path, ok := idx[up]; ok {
		return []Descriptor{imageItem(path, up)}
	}

	var out []Descriptor
	for _, ch := range up {
		if ch >= 'A' && ch <= 'Z' {
			out = append(out, fingerspellItem(ch))
		}
	}
	if len(out) == 0 {
		return []Descriptor{textItem(up)}
	}
	return out
}
