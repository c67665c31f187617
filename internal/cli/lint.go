package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/marklint/internal/configloader"
	"github.com/yaklabco/marklint/internal/logging"
	"github.com/yaklabco/marklint/pkg/config"
	"github.com/yaklabco/marklint/pkg/parser/goldmark"
	"github.com/yaklabco/marklint/pkg/reporter"
	"github.com/yaklabco/marklint/pkg/result"
	"github.com/yaklabco/marklint/pkg/rule"
	"github.com/yaklabco/marklint/pkg/rules"
	"github.com/yaklabco/marklint/pkg/runner"
)

type lintFlags struct {
	format         string
	flavor         string
	ignore         []string
	fix            bool
	lenient        bool
	noInlineConfig bool
	useAlias       bool
	resultVersion  int
	jobs           int
}

func newLintCommand() *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint markup files",
		Long: `Lint markup files for style issues.

By default, lints all .md and .markdown files in the current directory
and subdirectories. Specify paths to lint specific files or directories.

Examples:
  marklint lint                  # Lint current directory
  marklint lint docs/            # Lint docs directory
  marklint lint README.md        # Lint single file
  marklint lint --fix            # Lint and auto-fix issues
  marklint lint --format json    # Output as JSON for CI`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().StringVar(&flags.flavor, "flavor", goldmark.FlavorGFM,
		"markup flavor: commonmark, gfm")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to skip")
	cmd.Flags().BoolVar(&flags.fix, "fix", false, "apply fixes and rewrite files")
	cmd.Flags().BoolVar(&flags.lenient, "lenient", false,
		"downgrade rule faults to synthetic findings")
	cmd.Flags().BoolVar(&flags.noInlineConfig, "no-inline-config", false,
		"ignore inline directives in documents")
	cmd.Flags().BoolVar(&flags.useAlias, "alias", false, "report rule aliases instead of names")
	cmd.Flags().IntVar(&flags.resultVersion, "result-version", int(result.V3),
		"result shape for json output (0-3)")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "max concurrent workers (0 = auto)")

	return cmd
}

func runLint(cmd *cobra.Command, args []string, flags *lintFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	set, err := rule.NewSet(rules.Builtin(), nil)
	if err != nil {
		return fmt.Errorf("register rules: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	res, err := runner.New(set, flags.flavor).Run(ctx, runner.Options{
		Paths:          args,
		WorkingDir:     workDir,
		ExcludeGlobs:   flags.ignore,
		Jobs:           flags.jobs,
		Fix:            flags.fix,
		Lenient:        flags.lenient,
		NoInlineConfig: flags.noInlineConfig,
		Flavor:         flags.flavor,
		Config:         cfg,
	})
	if err != nil {
		return err
	}

	color, _ := cmd.Flags().GetString("color")
	rep, err := reporter.New(reporter.Options{
		Format:      reporter.Format(flags.format),
		Color:       color,
		UseAlias:    flags.useAlias,
		Version:     result.Version(flags.resultVersion),
		ShowSummary: flags.format == "text",
		WorkingDir:  workDir,
	})
	if err != nil {
		return err
	}

	count, err := rep.Report(ctx, res)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}

	if res.Errored > 0 {
		logger.Warn("some files failed to process", "errored", res.Errored)
	}
	if count > 0 || res.Errored > 0 {
		return &ExitError{Code: ExitCodeFromResult(res)}
	}
	return nil
}

// loadConfig resolves configuration: an explicit --config path wins,
// otherwise the project config discovered from the working directory.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	explicit, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	if explicit != "" {
		cfg, err := configloader.Load(explicit)
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	path, cfg, err := configloader.LoadForDir(workDir)
	if err != nil {
		return nil, err
	}
	if path != "" {
		logging.Default().Debug("loaded config", "path", path)
	}
	return cfg, nil
}
