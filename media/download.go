package media

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Downloader fetches remote audio with yt-dlp and converts waveforms with
// ffmpeg. Both binaries must be on the PATH; missing ones surface as
// collaborator failures before any work starts.
type Downloader struct {
	SampleRate int
	TmpDir     string
	OutDir     string
	Log        *logrus.Logger
}

func NewDownloader(sampleRate int, tmpDir, outDir string, log *logrus.Logger) *Downloader {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Downloader{SampleRate: sampleRate, TmpDir: tmpDir, OutDir: outDir, Log: log}
}

// Fetch downloads the best available audio for a video URL and converts
// it to mono WAV at the configured sample rate. Returns the WAV path.
func (d *Downloader) Fetch(ctx context.Context, url string) (string, error) {
	if _, err := exec.LookPath("yt-dlp"); err != nil {
		return "", fmt.Errorf("media: yt-dlp not found on PATH: %w", err)
	}
	if err := os.MkdirAll(d.TmpDir, 0o755); err != nil {
		return "", fmt.Errorf("media: create tmp dir: %w", err)
	}

	tmpl := filepath.Join(d.TmpDir, "%(id)s.%(ext)s")
	d.Log.WithField("url", url).Info("downloading audio")

	cmd := exec.CommandContext(ctx,
		"yt-dlp",
		"-f", "bestaudio/best",
		"-o", tmpl,
		"--no-playlist",
		"--quiet", "--no-progress",
		"--print", "after_move:filepath",
		url,
	)
	raw, err := cmd.Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("media: yt-dlp failed: %w\n%s", err, string(ee.Stderr))
		}
		return "", fmt.Errorf("media: yt-dlp failed: %w", err)
	}
	downloaded := strings.TrimSpace(string(raw))
	if downloaded == "" {
		return "", fmt.Errorf("media: yt-dlp produced no output file")
	}

	return d.Convert(ctx, downloaded)
}

// Convert transcodes any audio file to mono WAV at the configured sample
// rate, written into the output directory.
func (d *Downloader) Convert(ctx context.Context, src string) (string, error) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return "", fmt.Errorf("media: ffmpeg not found on PATH: %w", err)
	}
	if err := os.MkdirAll(d.OutDir, 0o755); err != nil {
		return "", fmt.Errorf("media: create output dir: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	wav := filepath.Join(d.OutDir, SafeStem(stem)+".wav")

	d.Log.WithFields(logrus.Fields{"input": filepath.Base(src), "output": filepath.Base(wav)}).
		Info("converting to wav")

	cmd := exec.CommandContext(ctx,
		"ffmpeg", "-y",
		"-i", src,
		"-ac", "1",
		"-ar", strconv.Itoa(d.SampleRate),
		wav,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("media: ffmpeg convert failed: %w\n%s", err, string(out))
	}
	return wav, nil
}
