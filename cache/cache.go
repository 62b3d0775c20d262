// Package cache memoizes intermediate pipeline outputs on disk, one JSON
// file per (source id, stage) pair. Payloads are typed per stage and
// validated when they cross the cache boundary.
//
// The key carries no fingerprint of the configuration that produced the
// payload: re-running with different settings reuses the cached result
// until the entry is cleared. That staleness is accepted, not detected.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// Stage names the pipeline phase a cache entry belongs to.
type Stage string

const (
	StageDownload   Stage = "download"
	StageTranscribe Stage = "transcribe"
	StageGloss      Stage = "gloss"
	StageEmotion    Stage = "emotion"
	StageTimeline   Stage = "timeline"
)

// Payload is a typed stage output. Validate runs on every load so a
// malformed file degrades to a miss instead of corrupting the pipeline.
type Payload interface {
	Validate() error
}

// Store is an on-disk stage cache. All failures are absorbed: reads
// degrade to a miss, writes to a no-op. It never aborts the pipeline.
type Store struct {
	dir string
	log *logrus.Logger
}

func NewStore(dir string, log *logrus.Logger) (*Store, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: create dir: %w", err)
	}
	return &Store{dir: dir, log: log}, nil
}

func (s *Store) file(sourceID string, stage Stage) string {
	return filepath.Join(s.dir, fmt.Sprintf("video_%s_stage_%s.json", sourceID, stage))
}

// Has reports whether an entry exists without decoding it.
func (s *Store) Has(sourceID string, stage Stage) bool {
	_, err := os.Stat(s.file(sourceID, stage))
	return err == nil
}

// Load decodes the entry for (sourceID, stage) into the payload. A
// missing file, unreadable JSON or failed validation all return false.
func (s *Store) Load(sourceID string, stage Stage, into Payload) bool {
	path := s.file(sourceID, stage)
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, into); err != nil {
		s.log.WithFields(logrus.Fields{"source": sourceID, "stage": stage}).
			WithError(err).Warn("cache entry unreadable, treating as miss")
		return false
	}
	if err := into.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{"source": sourceID, "stage": stage}).
			WithError(err).Warn("cache entry invalid, treating as miss")
		return false
	}
	return true
}

// Save writes the payload as the entry for (sourceID, stage). Returns
// false on failure; the failure is logged, never propagated.
func (s *Store) Save(sourceID string, stage Stage, payload Payload) bool {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		s.log.WithFields(logrus.Fields{"source": sourceID, "stage": stage}).
			WithError(err).Warn("cache encode failed, skipping save")
		return false
	}
	if err := os.WriteFile(s.file(sourceID, stage), data, 0o644); err != nil {
		s.log.WithFields(logrus.Fields{"source": sourceID, "stage": stage}).
			WithError(err).Warn("cache write failed, skipping save")
		return false
	}
	return true
}

// Clear removes every stage entry for one source.
func (s *Store) Clear(sourceID string) error {
	matches, err := filepath.Glob(filepath.Join(s.dir, "video_"+sourceID+"_stage_*.json"))
	if err != nil {
		return err
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			return fmt.Errorf("cache: clear %s: %w", sourceID, err)
		}
	}
	return nil
}

// ClearAll removes every entry in the store.
func (s *Store) ClearAll() error {
	matches, err := filepath.Glob(filepath.Join(s.dir, "video_*_stage_*.json"))
	if err != nil {
		return err
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			return fmt.Errorf("cache: clear all: %w", err)
		}
	}
	return nil
}

// List returns the distinct source ids that have at least one cached
// stage, sorted.
func (s *Store) List() []string {
	matches, _ := filepath.Glob(filepath.Join(s.dir, "video_*_stage_*.json"))
	seen := map[string]struct{}{}
	for _, m := range matches {
		name := strings.TrimSuffix(filepath.Base(m), ".json")
		name = strings.TrimPrefix(name, "video_")
		// Source ids may contain underscores; the stage suffix never does.
		i := strings.LastIndex(name, "_stage_")
		if i < 0 {
			continue
		}
		seen[name[:i]] = struct{}{}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
