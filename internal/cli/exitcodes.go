package cli

import (
	"fmt"

	"github.com/yaklabco/marklint/pkg/runner"
)

// Exit codes for marklint.
const (
	// ExitSuccess indicates a clean run.
	ExitSuccess = 0

	// ExitFindings indicates the run completed but findings remain.
	ExitFindings = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitError signals a non-zero exit for a run whose outcome was already
// reported, so main exits with the right code without printing again.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCodeFromResult maps a run result to an exit code. Per-file I/O
// failures dominate findings.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil {
		return ExitSuccess
	}
	if result.Errored > 0 {
		return ExitIOError
	}
	if result.TotalFindings > 0 {
		return ExitFindings
	}
	return ExitSuccess
}
