package main

import (
	"os"

	"github.com/janiskrasemann/whisker/cmd/whisker/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
