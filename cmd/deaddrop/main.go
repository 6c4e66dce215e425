package main

import (
	"os"

	"deaddrop/cmd/deaddrop/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
