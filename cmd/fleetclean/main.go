package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/zuhrulumam/fleet_inventory/internal/cli"
)

var (
	// Version information
	version   = "1.0.0"
	buildTime = "unknown"
	gitCommit = "unknown"
)

func main() {
	cli.Version = version
	cli.BuildTime = buildTime
	cli.GitCommit = gitCommit

	if err := cli.Execute(); err != nil {
		// Processing failures are already reported on stdout
		if !errors.Is(err, cli.ErrProcessingFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
