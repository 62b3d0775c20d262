// Package cmd defines the voice2sign command-line interface.
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	cfg "github.com/voice2sign/pipeline/config"
)

var (
	verbose bool
	quiet   bool

	log  = logrus.New()
	conf *cfg.Root
)

var rootCmd = &cobra.Command{
	Use:   "voice2sign",
	Short: "Convert spoken-language video into sign-language rendering timelines",
	Long: `voice2sign downloads a video's audio, transcribes it, reduces the text
to sign-language gloss tokens, optionally tags emotion, and maps every
token to a renderable asset, producing a time-aligned sign timeline.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		conf, err = cfg.Load()
		if err != nil {
			return err
		}
		setupLogging()
		return nil
	},
}

func setupLogging() {
	level, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	if verbose {
		level = logrus.DebugLevel
	}
	if quiet {
		level = logrus.ErrorLevel
	}
	log.SetLevel(level)
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
}
