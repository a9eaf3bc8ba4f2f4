// main.go
//
// Entry point: loads .env and runs the wordle command line.

package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/robalobadob/wordle/apps/tui/internal/cli"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	_ = godotenv.Load()
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wordle:", err)
		os.Exit(1)
	}
}
