package main

import (
	"errors"
	"os"

	"github.com/yaklabco/marklint/internal/cli"
	"github.com/yaklabco/marklint/internal/logging"
)

// Populated at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func run() int {
	rootCmd := cli.NewRootCommand(cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	if err := rootCmd.Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			// The run was already reported; the exit code is the signal.
			return exitErr.Code
		}
		logging.Default().Error("command failed", "error", err)
		return cli.ExitInternalError
	}

	return cli.ExitSuccess
}

func main() {
	os.Exit(run())
}
