package main

import (
	"os"

	"github.com/synthbank-dev/synthbank/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
