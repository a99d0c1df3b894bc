package main

import (
	"os"

	"github.com/goliatone/go-portfolio/cmd/portfolio/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
