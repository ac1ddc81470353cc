// Package main is the entry point for the opensync CLI.
package main

import (
	"os"

	"github.com/opensync/opensync/cmd/opensync/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
