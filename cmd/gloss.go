package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voice2sign/pipeline/clients"
	"github.com/voice2sign/pipeline/gloss"
)

var glossCmd = &cobra.Command{
	Use:   "gloss <text>",
	Short: "Reduce a sentence to gloss tokens (debugging aid)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if conf.Services.NLP.URL == "" {
			return fmt.Errorf("services.nlp.url is required")
		}
		words, err := gloss.LoadWords(conf.Gloss.Wordlist)
		if err != nil {
			return err
		}
		r := gloss.NewReducer(clients.NewNLPService(clients.NewHTTP(), conf.Services.NLP.URL), words)

		toks, err := r.ReduceText(cmd.Context(), strings.Join(args, " "), conf.Gloss.KeepNegation)
		if err != nil {
			return err
		}
		fmt.Println(strings.Join(toks, " "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(glossCmd)
}
