package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"lifegate/internal/lifecycle"
	"lifegate/internal/ui"
)

func newRunCommand(app *App) *cobra.Command {
	var (
		configPath    string
		stageOverride string
		listMode      bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the gates required by the active lifecycle stage",
		Long: `Run the validation gates declared in the lifecycle config for the active
stage. The active stage is current_stage from the config unless --stage is
given. Gates run sequentially in declared order; a failing gate does not
stop the run, and the summary names every failed gate.

Exit codes: 0 all gates passed (or --list), 1 one or more gates failed,
2 malformed config or unresolvable stage/gate references.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGates(cmd, app, configPath, stageOverride, listMode)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", app.Settings.Lifecycle.ConfigPath,
		"path to the lifecycle-stage YAML config")
	cmd.Flags().StringVar(&stageOverride, "stage", "",
		"stage override (otherwise uses current_stage from config)")
	cmd.Flags().BoolVar(&listMode, "list", false,
		"print the stage/gate matrix and exit without running anything")

	return cmd
}

func runGates(cmd *cobra.Command, app *App, configPath, stageOverride string, listMode bool) error {
	cfg, err := lifecycle.LoadConfig(configPath)
	if err != nil {
		return configError(app, err)
	}

	stageName, stage, err := cfg.Resolve(stageOverride)
	if err != nil {
		return configError(app, err)
	}

	reporter := lifecycle.NewReporter(app.Out)
	if listMode {
		reporter.Matrix(cfg)
		return nil
	}

	// Gates run with the config's directory as working directory, so a gate
	// command behaves the same regardless of where lifegate is invoked from.
	repoRoot, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return configError(app, err)
	}

	executor := lifecycle.NewExecutor(app.Runner, reporter, repoRoot)
	results, err := executor.RunStage(cmd.Context(), cfg, stageName, stage)
	if err != nil {
		return configError(app, err)
	}

	if len(lifecycle.FailedGates(results)) > 0 {
		return NewExitError(1)
	}
	return nil
}

// configError reports a structural error and maps it to exit code 2.
func configError(app *App, err error) error {
	fmt.Fprintf(app.Out, "%s %v\n", ui.Fail.Render("[ERROR]"), err)
	return NewExitError(2)
}
