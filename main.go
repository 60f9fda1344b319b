package main

import (
	"os"

	"github.com/crcf-labs/crcf/internal/cli"
	cerrors "github.com/crcf-labs/crcf/internal/errors"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		os.Exit(cerrors.ExitCode(err))
	}
}
