package main

import (
	"os"

	"keysigner/cmd/keysigner/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
