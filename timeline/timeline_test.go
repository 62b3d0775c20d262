package timeline

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/voice2sign/pipeline/assets"
	"github.com/voice2sign/pipeline/emotion"
	"github.com/voice2sign/pipeline/gloss"
)

func TestBuild_EmptyGlossKeepsEntry(t *testing.T) {
	segs := []Segment{
		{ID: 0, Start: 0, End: 2, Text: "hello world", Gloss: []string{"HELLO", "WORLD"}},
		{ID: 1, Start: 2, End: 4, Text: "mm-hmm", Gloss: nil},
	}
	tl := Build(segs, assets.Index{})

	if len(tl.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(tl.Entries))
	}
	second := tl.Entries[1]
	if second.Items == nil || len(second.Items) != 0 {
		t.Errorf("expected empty (non-nil) items, got %v", second.Items)
	}
	if second.Gloss == nil {
		t.Error("expected non-nil gloss slice")
	}
}

func TestBuild_OrderAndCountPreserved(t *testing.T) {
	segs := []Segment{
		{ID: 2, Start: 4, End: 6, Text: "b", Gloss: []string{"B"}},
		{ID: 0, Start: 0, End: 2, Text: "a", Gloss: []string{"A"}},
	}
	tl := Build(segs, assets.Index{})
	if len(tl.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(tl.Entries))
	}
	// Build does not reorder; input order is the contract.
	if tl.Entries[0].ID != 2 || tl.Entries[1].ID != 0 {
		t.Errorf("entry order changed: %d, %d", tl.Entries[0].ID, tl.Entries[1].ID)
	}
}

func TestBuild_ResolvesTokensInOrder(t *testing.T) {
	idx := assets.Index{"LOVE": "/data/love.png"}
	segs := []Segment{
		{ID: 0, Start: 0, End: 2, Text: "I love you.", Gloss: []string{"I", "LOVE", gloss.Pause, "YOU"}},
	}
	tl := Build(segs, idx)
	items := tl.Entries[0].Items
	// I -> 1 fingerspell, LOVE -> 1 image, pause -> 1, YOU -> 3 fingerspell
	if len(items) != 6 {
		t.Fatalf("expected 6 items, got %d: %v", len(items), items)
	}
	if items[0].Type != assets.TypeFingerspell || items[0].Char != "I" {
		t.Errorf("item 0 = %v, want fingerspell I", items[0])
	}
	if items[1].Type != assets.TypeImage || items[1].Path != "/data/love.png" {
		t.Errorf("item 1 = %v, want image for LOVE", items[1])
	}
	if items[2].Type != assets.TypePause {
		t.Errorf("item 2 = %v, want pause", items[2])
	}
}

func TestBuild_DefaultsEmotionToNeutral(t *testing.T) {
	joy := emotion.Emotion{Label: "joy", Score: 0.9}
	segs := []Segment{
		{ID: 0, Start: 0, End: 1, Text: "yay", Gloss: []string{"YAY"}, Emotion: &joy},
		{ID: 1, Start: 1, End: 2, Text: "ok", Gloss: []string{"OK"}},
	}
	tl := Build(segs, assets.Index{})
	if tl.Entries[0].Emotion != joy {
		t.Errorf("got %+v, want joy", tl.Entries[0].Emotion)
	}
	if tl.Entries[1].Emotion != emotion.Neutral() {
		t.Errorf("got %+v, want neutral", tl.Entries[1].Emotion)
	}
}

func TestTimeline_JSONRoundTrip(t *testing.T) {
	segs := []Segment{
		{ID: 0, Start: 0, End: 2.5, Text: "I love you.", Gloss: []string{"LOVE", gloss.Pause}},
		{ID: 1, Start: 2.5, End: 4, Text: "...", Gloss: nil},
	}
	orig := Build(segs, assets.Index{"LOVE": "/data/love.png"})

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Timeline
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(orig, &back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestTimeline_EmptyItemsSerializeAsArray(t *testing.T) {
	tl := Build([]Segment{{ID: 0, Start: 0, End: 1, Text: "x"}}, assets.Index{})
	data, err := json.Marshal(tl)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"items":[]`) {
		t.Errorf("items must serialize as [], got %s", data)
	}
	if strings.Contains(string(data), "null") {
		t.Errorf("no null fields expected, got %s", data)
	}
}

func TestTimeline_Validate(t *testing.T) {
	bad := &Timeline{Entries: []Entry{{ID: 0, Start: 2, End: 1}}}
	if err := bad.Validate(); err == nil {
		t.Error("expected bounds error")
	}
	unknown := &Timeline{Entries: []Entry{{
		ID: 0, Start: 0, End: 1,
		Items: []assets.Descriptor{{Type: "hologram"}},
	}}}
	if err := unknown.Validate(); err == nil {
		t.Error("expected unknown item type error")
	}
}
