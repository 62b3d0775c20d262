package media

import "testing"

func TestExtractVideoID(t *testing.T) {
	cases := []struct {
		url  string
		want string
		ok   bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch?v=abc123&t=30s", "abc123", true},
		{"https://example.com/video", "", false},
		{"not a url", "", false},
	}
	for _, c := range cases {
		got, ok := ExtractVideoID(c.url)
		if ok != c.ok || got != c.want {
			t.Errorf("ExtractVideoID(%q) = %q, %v; want %q, %v", c.url, got, ok, c.want, c.ok)
		}
	}
}

func TestIsRemote(t *testing.T) {
	if !IsRemote("https://youtu.be/x") || !IsRemote("http://a.b") {
		t.Error("http(s) inputs are remote")
	}
	if IsRemote("/home/user/audio.wav") || IsRemote("audio.mp3") {
		t.Error("local paths are not remote")
	}
}

func TestSafeStem(t *testing.T) {
	cases := map[string]string{
		"My Video! (official)": "My_Video___official_",
		"clean-name_01":        "clean-name_01",
		"a b":                  "a_b",
	}
	for in, want := range cases {
		if got := SafeStem(in); got != want {
			t.Errorf("SafeStem(%q) = %q, want %q", in, got, want)
		}
	}
}
