// dialcc is a CLI tool that resolves countries from international phone numbers.
package main

import (
	"github.com/hightemp/dialcc/internal/cli"
)

// Build information (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.BuildTime = buildTime
	cli.Execute()
}
