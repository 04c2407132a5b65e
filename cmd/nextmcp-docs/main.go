// Package main provides the entry point for the nextmcp-docs CLI.
package main

import (
	"os"

	"github.com/KeshavVarad/nextmcp-docs-server/cmd/nextmcp-docs/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
