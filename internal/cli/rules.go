package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/marklint/internal/ui/pretty"
	"github.com/yaklabco/marklint/pkg/rule"
	"github.com/yaklabco/marklint/pkg/rules"
)

func newRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the built-in rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := rule.NewSet(rules.Builtin(), nil)
			if err != nil {
				return fmt.Errorf("register rules: %w", err)
			}

			color, _ := cmd.Flags().GetString("color")
			styles := pretty.NewStyles(pretty.IsColorEnabled(color, cmd.OutOrStdout()))

			out := cmd.OutOrStdout()
			for _, r := range set.Rules() {
				fmt.Fprintf(out, "%s  %s\n",
					styles.RuleID(strings.Join(r.Names, "/")),
					r.Description)
				if len(r.Tags) > 0 {
					fmt.Fprintf(out, "    %s\n",
						styles.Dim("tags: "+strings.Join(r.Tags, ", ")))
				}
			}
			return nil
		},
	}
}
