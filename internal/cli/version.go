package cli

import "github.com/spf13/cobra"

func newVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("marklint %s (commit %s, built %s)\n",
				info.Version, info.Commit, info.Date)
		},
	}
}
