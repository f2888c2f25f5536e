// Command lorekeep runs the lore wiki: a JSON-file-backed document store with
// an HTTP API plus maintenance subcommands for seeding, integrity checks and
// schema export.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "lorekeep: %v\n", err)
		}
		os.Exit(1)
	}
}
