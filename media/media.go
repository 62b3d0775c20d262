// Package media acquires audio for the pipeline: it identifies sources,
// downloads remote video audio with yt-dlp and converts it to the 16 kHz
// mono WAV the transcription backends expect, via ffmpeg.
package media

import (
	"regexp"
	"strings"
)

var videoIDPattern = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`)

// ExtractVideoID pulls the video id out of a YouTube URL
// (watch?v=, youtu.be/ and /embed/ forms).
func ExtractVideoID(url string) (string, bool) {
	m := videoIDPattern.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// IsRemote reports whether the input names a remote source rather than a
// local audio file.
func IsRemote(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

// SafeStem sanitizes a name for use in file names and cache keys.
func SafeStem(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
