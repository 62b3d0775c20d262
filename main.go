package main

import (
	"os"

	"github.com/voice2sign/pipeline/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
