package main

import (
	"os"

	"github.com/Urantij/ass-parser/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
