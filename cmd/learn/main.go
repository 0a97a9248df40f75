package main

import (
	"os"

	"github.com/gucio32/morsekit/internal/cli"
)

// learn is the practice trainer on its own, same as `morse practice`.
func main() {
	cmd := cli.PracticeCmd()
	cmd.Use = "learn"
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
