// Package orchestrator wires the pipeline stages together: download,
// transcribe, gloss, emotion, timeline. Each stage is checked against the
// stage cache independently and cached on completion.
package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/voice2sign/pipeline/assets"
	"github.com/voice2sign/pipeline/cache"
	"github.com/voice2sign/pipeline/clients"
	cfg "github.com/voice2sign/pipeline/config"
	"github.com/voice2sign/pipeline/emotion"
	"github.com/voice2sign/pipeline/gloss"
	"github.com/voice2sign/pipeline/media"
	"github.com/voice2sign/pipeline/timeline"
	"github.com/voice2sign/pipeline/transcript"
)

type Pipeline struct {
	cfg         *cfg.Root
	log         *logrus.Logger
	store       *cache.Store
	downloader  *media.Downloader
	transcriber clients.Transcriber
	reducer     *gloss.Reducer
	annotator   *emotion.Annotator // nil when the emotion stage is off
}

// New constructs the pipeline and all its collaborators from config.
// Every service is created here, once, and passed by reference; stages
// hold no global state.
func New(conf *cfg.Root, log *logrus.Logger) (*Pipeline, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	h := clients.NewHTTP()

	var tr clients.Transcriber
	switch {
	case conf.Services.ASR.URL != "":
		tr = clients.NewASRService(h, conf.Services.ASR.URL)
	case conf.OpenAI.APIKey != "":
		tr = clients.NewWhisperService(conf.OpenAI.APIKey)
	default:
		return nil, fmt.Errorf("no transcription backend: set services.asr.url or openai.api_key")
	}

	if conf.Services.NLP.URL == "" {
		return nil, fmt.Errorf("services.nlp.url is required for gloss reduction")
	}
	words, err := gloss.LoadWords(conf.Gloss.Wordlist)
	if err != nil {
		return nil, err
	}
	reducer := gloss.NewReducer(clients.NewNLPService(h, conf.Services.NLP.URL), words)

	var ann *emotion.Annotator
	if conf.Emotion.Enabled {
		if conf.Services.Emotion.URL == "" {
			return nil, fmt.Errorf("emotion.enabled but services.emotion.url is unset")
		}
		ann = emotion.NewAnnotator(clients.NewEmotionService(h, conf.Services.Emotion.URL))
	}

	store, err := cache.NewStore(conf.Paths.Cache, log)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		cfg:         conf,
		log:         log,
		store:       store,
		downloader:  media.NewDownloader(conf.Audio.SampleRate, conf.Paths.Tmp, conf.Paths.Outputs, log),
		transcriber: tr,
		reducer:     reducer,
		annotator:   ann,
	}, nil
}

// RunResult summarizes one completed pipeline run.
type RunResult struct {
	RunID           string
	SourceID        string
	WavPath         string
	Transcript      *transcript.Transcript
	Timeline        *timeline.Timeline
	StagesFromCache []string
}

// Run processes one source (video URL or local audio file) end to end.
// Stages run strictly in order; a stage with a valid cache entry is
// skipped. Collaborator failures are fatal and carry the stage name.
func (p *Pipeline) Run(ctx context.Context, input string) (*RunResult, error) {
	sourceID, remote, err := resolveSource(input)
	if err != nil {
		return nil, err
	}
	log := p.log.WithField("source", sourceID)
	res := &RunResult{SourceID: sourceID}

	// ----- stage: download -----
	wavPath, fromCache, err := p.stageDownload(ctx, sourceID, input, remote)
	if err != nil {
		return nil, fmt.Errorf("download: %w", err)
	}
	if fromCache {
		res.StagesFromCache = append(res.StagesFromCache, string(cache.StageDownload))
	}
	res.WavPath = wavPath
	stem := media.SafeStem(strings.TrimSuffix(filepath.Base(wavPath), filepath.Ext(wavPath)))

	// ----- stage: transcribe -----
	tr := &transcript.Transcript{}
	if p.store.Load(sourceID, cache.StageTranscribe, tr) {
		log.Info("transcription from cache")
		res.StagesFromCache = append(res.StagesFromCache, string(cache.StageTranscribe))
	} else {
		raw, err := p.transcriber.Transcribe(ctx, wavPath, p.cfg.Transcriber.Language)
		if err != nil {
			return nil, fmt.Errorf("transcribe: %w", err)
		}
		segs := make([]transcript.Segment, 0, len(raw.Segments))
		for _, s := range raw.Segments {
			segs = append(segs, transcript.Segment{ID: s.ID, Start: s.Start, End: s.End, Text: s.Text})
		}
		tr, err = transcript.Normalize(wavPath, raw.Language, raw.Text, segs)
		if err != nil {
			return nil, fmt.Errorf("transcribe: %w", err)
		}
		log.WithField("segments", len(tr.Segments)).Info("transcription complete")
		p.store.Save(sourceID, cache.StageTranscribe, tr)
		if err := p.saveTranscript(stem, tr); err != nil {
			return nil, fmt.Errorf("transcribe: %w", err)
		}
	}
	res.Transcript = tr

	// ----- stage: gloss -----
	glossed := &GlossPayload{}
	if p.store.Load(sourceID, cache.StageGloss, glossed) {
		log.Info("gloss from cache")
		res.StagesFromCache = append(res.StagesFromCache, string(cache.StageGloss))
	} else {
		glossed.Segments, err = p.reduceSegments(ctx, tr.Segments)
		if err != nil {
			return nil, fmt.Errorf("gloss: %w", err)
		}
		log.WithField("segments", len(glossed.Segments)).Info("gloss reduction complete")
		p.store.Save(sourceID, cache.StageGloss, glossed)
	}
	segments := glossed.Segments

	// ----- stage: emotion (optional) -----
	if p.annotator != nil {
		annotated := &EmotionPayload{}
		if p.store.Load(sourceID, cache.StageEmotion, annotated) {
			log.Info("emotion from cache")
			res.StagesFromCache = append(res.StagesFromCache, string(cache.StageEmotion))
		} else {
			annotated.Segments, err = p.annotateSegments(ctx, segments)
			if err != nil {
				return nil, fmt.Errorf("emotion: %w", err)
			}
			log.Info("emotion annotation complete")
			p.store.Save(sourceID, cache.StageEmotion, annotated)
		}
		segments = annotated.Segments
	}

	// ----- stage: timeline -----
	tl := &timeline.Timeline{}
	if p.store.Load(sourceID, cache.StageTimeline, tl) {
		log.Info("timeline from cache")
		res.StagesFromCache = append(res.StagesFromCache, string(cache.StageTimeline))
	} else {
		idx := assets.BuildIndex(p.cfg.Paths.Dataset)
		log.WithField("signs", len(idx)).Info("asset index built")
		tl = timeline.Build(segments, idx)
		p.store.Save(sourceID, cache.StageTimeline, tl)
	}
	res.Timeline = tl

	if err := p.persistRun(res, stem, segments); err != nil {
		return nil, fmt.Errorf("timeline: %w", err)
	}
	return res, nil
}

// resolveSource classifies the input and derives the cache source id:
// the video id for recognized URLs, the sanitized file stem for local
// audio. An unrecognized URL or missing file stops the run before any
// stage executes.
func resolveSource(input string) (sourceID string, remote bool, err error) {
	if media.IsRemote(input) {
		id, ok := media.ExtractVideoID(input)
		if !ok {
			return "", false, fmt.Errorf("unrecognized video URL: %s", input)
		}
		return id, true, nil
	}
	if _, err := os.Stat(input); err != nil {
		return "", false, fmt.Errorf("audio file not found: %s", input)
	}
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return media.SafeStem(stem), false, nil
}

func (p *Pipeline) stageDownload(ctx context.Context, sourceID, input string, remote bool) (wavPath string, fromCache bool, err error) {
	if !remote {
		if strings.EqualFold(filepath.Ext(input), ".wav") {
			return input, false, nil
		}
		wav, err := p.downloader.Convert(ctx, input)
		return wav, false, err
	}

	dl := &DownloadPayload{}
	if p.store.Load(sourceID, cache.StageDownload, dl) {
		p.log.WithField("source", sourceID).Info("audio from cache")
		return dl.WavPath, true, nil
	}
	wav, err := p.downloader.Fetch(ctx, input)
	if err != nil {
		return "", false, err
	}
	p.store.Save(sourceID, cache.StageDownload, &DownloadPayload{WavPath: wav})
	return wav, false, nil
}

// reduceSegments runs the gloss reducer over every transcript segment.
// Segments whose text is empty are dropped here, before they reach the
// timeline.
func (p *Pipeline) reduceSegments(ctx context.Context, segs []transcript.Segment) ([]timeline.Segment, error) {
	out := make([]timeline.Segment, 0, len(segs))
	for _, seg := range segs {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		toks, err := p.reducer.ReduceText(ctx, text, p.cfg.Gloss.KeepNegation)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", seg.ID, err)
		}
		p.log.WithFields(logrus.Fields{"segment": seg.ID, "tokens": len(toks)}).Debug("reduced")
		out = append(out, timeline.Segment{
			ID:    seg.ID,
			Start: seg.Start,
			End:   seg.End,
			Text:  text,
			Gloss: toks,
		})
	}
	return out, nil
}

// annotateSegments attaches a best-label emotion to every glossed segment.
func (p *Pipeline) annotateSegments(ctx context.Context, segs []timeline.Segment) ([]timeline.Segment, error) {
	out := make([]timeline.Segment, 0, len(segs))
	for _, seg := range segs {
		emo, err := p.annotator.Annotate(ctx, seg.Text)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", seg.ID, err)
		}
		p.log.WithFields(logrus.Fields{"segment": seg.ID, "label": emo.Label}).Debug("annotated")
		seg.Emotion = &emo
		out = append(out, seg)
	}
	return out, nil
}

// Cache exposes the stage cache for the cache subcommands.
func (p *Pipeline) Cache() *cache.Store { return p.store }
