package gloss

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Filler words dropped before any other filtering. Overridable via a
// word-list YAML file.
var defaultFillers = []string{
	"um", "uh", "like", "you_know", "i_mean", "basically", "literally",
}

// Words holds the reducer's word lists.
type Words struct {
	fillers map[string]struct{}
}

func DefaultWords() *Words {
	return newWords(defaultFillers)
}

func newWords(fillers []string) *Words {
	w := &Words{fillers: make(map[string]struct{}, len(fillers))}
	for _, f := range fillers {
		w.fillers[strings.ToLower(f)] = struct{}{}
	}
	return w
}

func (w *Words) IsFiller(lower string) bool {
	_, ok := w.fillers[lower]
	return ok
}

type wordsFile struct {
	Fillers []string `yaml:"fillers"`
}

// LoadWords reads a word-list YAML file. An empty path returns the
// built-in defaults.
func LoadWords(path string) (*Words, error) {
	if path == "" {
		return DefaultWords(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gloss: read word list: %w", err)
	}
	var wf wordsFile
	if err := yaml.Unmarshal(data, &wf); err != nil {
		return nil, fmt.Errorf("gloss: parse word list: %w", err)
	}
	if len(wf.Fillers) == 0 {
		return DefaultWords(), nil
	}
	return newWords(wf.Fillers), nil
}
