// Package main is the entry point for the cloudcost CLI.
package main

import (
	"os"

	"cloudcost/cmd/cli/cmd"
	"cloudcost/internal/logging"
)

func main() {
	defer logging.Sync()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
