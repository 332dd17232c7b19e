// Package main implements invctl, the command line front end for the
// inventory engine.
package main

import (
	"os"

	"github.com/retailkit/inventory/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
