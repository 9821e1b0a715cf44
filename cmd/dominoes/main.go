package main

import (
	"os"

	"github.com/phanxgames/dominoes/cmd/dominoes/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
