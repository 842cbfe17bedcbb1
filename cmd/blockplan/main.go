package main

import (
	"os"

	"github.com/askoren/blockplan/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
