// Package main provides the entry point for the minisearch CLI.
package main

import (
	"os"

	"github.com/Aman-CERP/minisearch/cmd/minisearch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
