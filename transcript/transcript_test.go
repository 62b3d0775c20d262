package transcript

import (
	"testing"
)

func TestNormalize_Empty(t *testing.T) {
	tr, err := Normalize("a.wav", "en", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tr.Segments) != 0 {
		t.Errorf("expected 0 segments, got %d", len(tr.Segments))
	}
}

func TestNormalize_TrimsAndReassignsIDs(t *testing.T) {
	raw := []Segment{
		{ID: 7, Start: 0, End: 1.5, Text: "  hello "},
		{ID: 9, Start: 1.5, End: 3, Text: "world"},
	}
	tr, err := Normalize("a.wav", "en", "hello world", raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Segments[0].ID != 0 || tr.Segments[1].ID != 1 {
		t.Errorf("ids not sequential: %d, %d", tr.Segments[0].ID, tr.Segments[1].ID)
	}
	if tr.Segments[0].Text != "hello" {
		t.Errorf("text not trimmed: %q", tr.Segments[0].Text)
	}
}

func TestNormalize_SortsAndClampsOverlap(t *testing.T) {
	raw := []Segment{
		{Start: 2, End: 4, Text: "second"},
		{Start: 0, End: 2.5, Text: "first"},
	}
	tr, err := Normalize("a.wav", "en", "", raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Segments[0].Text != "first" {
		t.Fatalf("segments not sorted by start")
	}
	if tr.Segments[1].Start != 2.5 {
		t.Errorf("overlap not clamped, start=%f", tr.Segments[1].Start)
	}
	if err := tr.Validate(); err != nil {
		t.Errorf("normalized transcript failed validation: %v", err)
	}
}

func TestNormalize_RejectsInvalidBounds(t *testing.T) {
	cases := []Segment{
		{Start: -1, End: 2, Text: "negative start"},
		{Start: 3, End: 2, Text: "end before start"},
	}
	for _, seg := range cases {
		if _, err := Normalize("a.wav", "en", "", []Segment{seg}); err == nil {
			t.Errorf("expected error for segment %+v", seg)
		}
	}
}

func TestNormalize_RoundsToMilliseconds(t *testing.T) {
	raw := []Segment{{Start: 0.12345, End: 1.98765, Text: "x"}}
	tr, err := Normalize("a.wav", "en", "", raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Segments[0].Start != 0.123 || tr.Segments[0].End != 1.988 {
		t.Errorf("bad rounding: [%f, %f]", tr.Segments[0].Start, tr.Segments[0].End)
	}
}

func TestValidate_DetectsOverlap(t *testing.T) {
	tr := &Transcript{Segments: []Segment{
		{ID: 0, Start: 0, End: 2},
		{ID: 1, Start: 1, End: 3},
	}}
	if err := tr.Validate(); err == nil {
		t.Error("expected overlap validation error")
	}
}
