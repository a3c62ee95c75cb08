package main

import (
	"os"

	"github.com/trabajitos-sv/trabajitos-api/cmd/cli/commands"
)

func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
