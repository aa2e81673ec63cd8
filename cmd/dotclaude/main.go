package main

import (
	"os"

	"github.com/dotclaude/dotclaude/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
