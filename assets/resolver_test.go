package assets

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/voice2sign/pipeline/gloss"
)

func TestResolve_PauseMarker(t *testing.T) {
	got := Resolve(gloss.Pause, Index{})
	want := []Descriptor{{Type: TypePause, Dur: PauseDuration}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestResolve_ExactIndexHit(t *testing.T) {
	idx := Index{"LOVE": "/data/love.png"}
	got := Resolve("LOVE", idx)
	want := []Descriptor{{Type: TypeImage, Path: "/data/love.png", Label: "LOVE"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestResolve_LowercaseTokenNormalized(t *testing.T) {
	idx := Index{"LOVE": "/data/love.png"}
	got := Resolve("love", idx)
	if len(got) != 1 || got[0].Type != TypeImage || got[0].Label != "LOVE" {
		t.Errorf("lowercase token should hit the index: %v", got)
	}
}

func TestResolve_FingerspellSkipsNonLetters(t *testing.T) {
	got := Resolve("XY9", Index{})
	want := []Descriptor{
		{Type: TypeFingerspell, Label: "FINGERSPELL_X", Char: "X"},
		{Type: TypeFingerspell, Label: "FINGERSPELL_Y", Char: "Y"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestResolve_TextFallbackForDigitsOnly(t *testing.T) {
	got := Resolve("9", Index{})
	want := []Descriptor{{Type: TypeText, Label: "9"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestResolve_EmptyTokenFallsBackToText(t *testing.T) {
	got := Resolve("", Index{})
	want := []Descriptor{{Type: TypeText, Label: ""}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestResolve_NeverReturnsMixedKinds(t *testing.T) {
	idx := Index{"A": "/data/a.jpg"}
	for _, token := range []string{gloss.Pause, "A", "ABC", "123", ""} {
		got := Resolve(token, idx)
		if len(got) == 0 {
			t.Fatalf("empty result for token %q", token)
		}
		kind := got[0].Type
		for _, d := range got {
			if d.Type != kind {
				t.Errorf("token %q mixes %s and %s", token, kind, d.Type)
			}
		}
	}
}

func TestBuildIndex_MissingDirIsEmpty(t *testing.T) {
	idx := BuildIndex(filepath.Join(t.TempDir(), "nope"))
	if len(idx) != 0 {
		t.Errorf("expected empty index, got %v", idx)
	}
}

func TestBuildIndex_FirstMediaFilePerSymbol(t *testing.T) {
	root := t.TempDir()
	mk := func(parts ...string) {
		p := filepath.Join(append([]string{root}, parts...)...)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	mk("love", "a.png")
	mk("love", "b.png")
	mk("a", "sign.jpg")
	mk("empty", "notes.txt") // no media file, symbol skipped
	mk("stray.png")          // file at root level, not a symbol dir

	idx := BuildIndex(root)
	if len(idx) != 2 {
		t.Fatalf("expected 2 symbols, got %v", idx)
	}
	if idx["LOVE"] != filepath.Join(root, "love", "a.png") {
		t.Errorf("expected first media file for LOVE, got %q", idx["LOVE"])
	}
	if _, ok := idx["A"]; !ok {
		t.Error("expected letter symbol A in index")
	}
	if _, ok := idx["EMPTY"]; ok {
		t.Error("directory without media files should be skipped")
	}
}
