// Package cli provides the cobra command structure for marklint.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/marklint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root marklint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "marklint",
		Short: "A fast, self-fixing markup document linter",
		Long: `marklint runs an extensible set of style checks over markup documents
and produces precisely located, auto-fixable findings. Inline directives
can suppress rules per line or per region, and the fix engine rewrites
documents deterministically regardless of how many rules contributed
edits.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "path to config file")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output: auto, always, never")

	rootCmd.AddCommand(newLintCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
