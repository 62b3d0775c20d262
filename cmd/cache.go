package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voice2sign/pipeline/cache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the stage cache",
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached source ids",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := cache.NewStore(conf.Paths.Cache, log)
		if err != nil {
			return err
		}
		ids := store.List()
		if len(ids) == 0 {
			fmt.Println("cache is empty")
			return nil
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear [source-id]",
	Short: "Clear cached stages for one source, or everything",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := cache.NewStore(conf.Paths.Cache, log)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			if err := store.Clear(args[0]); err != nil {
				return err
			}
			fmt.Printf("cleared %s\n", args[0])
			return nil
		}
		if err := store.ClearAll(); err != nil {
			return err
		}
		fmt.Println("cache cleared")
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheListCmd, cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
