package main

import (
	"os"

	"github.com/mhosseinMethod/last-commit-slack-bot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
