// Package gloss reduces natural-language text to sign-language gloss tokens:
// uppercase lemmas, numerals, negation markers and pause markers.
package gloss

import (
	"context"
	"strings"
	"unicode"
)

// Pause is the reserved pause-marker token emitted for sentence-final
// punctuation. It is a symbol, never a word.
const Pause = "|"

// Token is one unit of lexical analysis as returned by the linguistic
// analysis collaborator (surface form, lemma, universal POS tag and flags).
type Token struct {
	Surface string `json:"surface"`
	Lemma   string `json:"lemma"`
	POS     string `json:"pos"`
	IsPunct bool   `json:"is_punct"`
	IsSpace bool   `json:"is_space"`
	IsStop  bool   `json:"is_stop"`
}

// Analyzer is the external linguistic-analysis capability: tokenization,
// POS tagging and lemmatization as a pure function of the input text.
type Analyzer interface {
	Analyze(ctx context.Context, text string) ([]Token, error)
}

// Universal POS tags that carry signable content. Everything else
// (determiners, prepositions, conjunctions, ...) is dropped.
var signablePOS = map[string]struct{}{
	"PROPN": {},
	"NOUN":  {},
	"VERB":  {},
	"ADJ":   {},
	"ADV":   {},
	"AUX":   {},
	"PRON":  {},
}

// Sentence-final punctuation that becomes a pause marker. All other
// punctuation is dropped without emitting a token.
var pausePunct = map[string]struct{}{
	".": {},
	"!": {},
	"?": {},
	";": {},
}

var negationWords = map[string]struct{}{
	"no":    {},
	"not":   {},
	"never": {},
}

// Reducer converts analyzed text into gloss token sequences.
type Reducer struct {
	analyzer Analyzer
	words    *Words
}

func NewReducer(a Analyzer, w *Words) *Reducer {
	if w == nil {
		w = DefaultWords()
	}
	return &Reducer{analyzer: a, words: w}
}

// ReduceText analyzes text via the collaborator and reduces the result.
func (r *Reducer) ReduceText(ctx context.Context, text string, keepNegation bool) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	toks, err := r.analyzer.Analyze(ctx, text)
	if err != nil {
		return nil, err
	}
	return r.Reduce(toks, keepNegation), nil
}

// Reduce applies the filtering and normalization policy to analyzed tokens.
// Output order mirrors input order; the result never starts or ends with a
// pause marker and never contains two adjacent ones.
func (r *Reducer) Reduce(toks []Token, keepNegation bool) []string {
	var out []string
	for _, t := range toks {
		if t.IsSpace {
			continue
		}
		if r.words.IsFiller(strings.ToLower(t.Surface)) {
			continue
		}
		if t.IsPunct {
			if _, ok := pausePunct[t.Surface]; ok {
				out = append(out, Pause)
			}
			continue
		}

		lemma := strings.TrimSpace(strings.ToLower(t.Lemma))
		if lemma == "" {
			continue
		}
		// Negation survives stop-word filtering unconditionally.
		if t.IsStop && !isNegation(lemma) {
			continue
		}
		if isNumeric(lemma) {
			out = append(out, strings.ToUpper(lemma))
			continue
		}
		if keepNegation && isNegation(lemma) {
			out = append(out, strings.ToUpper(lemma))
			continue
		}
		if _, ok := signablePOS[t.POS]; ok {
			out = append(out, strings.ToUpper(lemma))
		}
	}
	return cleanPauses(out)
}

// cleanPauses collapses runs of pause markers and strips any leading or
// trailing marker.
func cleanPauses(toks []string) []string {
	var out []string
	for _, t := range toks {
		if t == Pause && (len(out) == 0 || out[len(out)-1] == Pause) {
			continue
		}
		out = append(out, t)
	}
	if n := len(out); n > 0 && out[n-1] == Pause {
		out = out[:n-1]
	}
	return out
}

func isNegation(lemma string) bool {
	_, ok := negationWords[lemma]
	return ok
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
