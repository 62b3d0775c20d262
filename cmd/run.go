package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voice2sign/pipeline/orchestrator"
)

var (
	language     string
	noEmotion    bool
	keepNegation bool
	datasetDir   string
)

var runCmd = &cobra.Command{
	Use:   "run <video-url-or-audio-file>",
	Short: "Run the full pipeline for one source",
	Long: `Run processes one YouTube URL or local audio file (wav/mp3/m4a) through
every stage: download, transcribe, gloss, emotion (optional), timeline.
Stages already in the cache are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&language, "language", "l", "", "language hint for transcription (default: auto)")
	runCmd.Flags().BoolVar(&noEmotion, "no-emotion", false, "skip the emotion stage")
	runCmd.Flags().BoolVar(&keepNegation, "keep-negation", true, "keep NO/NOT/NEVER markers in gloss")
	runCmd.Flags().StringVar(&datasetDir, "dataset", "", "sign asset dataset directory (overrides config)")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	if language != "" {
		conf.Transcriber.Language = language
	}
	if noEmotion {
		conf.Emotion.Enabled = false
	}
	if cmd.Flags().Changed("keep-negation") {
		conf.Gloss.KeepNegation = keepNegation
	}
	if datasetDir != "" {
		conf.Paths.Dataset = datasetDir
	}

	p, err := orchestrator.New(conf, log)
	if err != nil {
		return err
	}

	res, err := p.Run(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	items := 0
	duration := 0.0
	for _, e := range res.Timeline.Entries {
		items += len(e.Items)
		if e.End > duration {
			duration = e.End
		}
	}

	fmt.Printf("run %s complete: source=%s\n", res.RunID, res.SourceID)
	fmt.Printf("  segments:   %d\n", len(res.Timeline.Entries))
	fmt.Printf("  sign items: %d\n", items)
	fmt.Printf("  duration:   %.1fs\n", duration)
	if len(res.StagesFromCache) > 0 {
		fmt.Printf("  from cache: %v\n", res.StagesFromCache)
	}
	return nil
}
