package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lifegate/internal/audit"
	"lifegate/internal/ui"
)

func newAuditCommand(app *App) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "audit [security-dir]",
		Short: "Audit security planning artifacts",
		Long: `Audit security planning artifacts for completeness.

Light mode validates the required files exist and are not effectively empty.
Strict mode additionally enforces non-draft status, minimum section and
content depth, and at least one dated security review output.

Exit codes: 0 clean or warnings only, 1 errors found or directory missing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			baseDir := app.Settings.Audit.Dir
			if len(args) > 0 {
				baseDir = args[0]
			}

			report, err := audit.NewAuditor(baseDir, strict).Audit()
			if err != nil {
				fmt.Fprintf(app.Out, "%s %v\n", ui.Fail.Render("[FAIL]"), err)
				return NewExitError(1)
			}

			if len(report.Errors) > 0 {
				fmt.Fprintln(app.Out, ui.Fail.Render("SECURITY ARTIFACT ERRORS:"))
				for _, finding := range report.Errors {
					fmt.Fprintf(app.Out, "  - %s\n", finding)
				}
			}
			if len(report.Warnings) > 0 {
				fmt.Fprintln(app.Out, ui.Warn.Render("SECURITY ARTIFACT WARNINGS:"))
				for _, finding := range report.Warnings {
					fmt.Fprintf(app.Out, "  - %s\n", finding)
				}
			}
			if report.Clean() {
				fmt.Fprintln(app.Out, ui.Pass.Render("[PASS]")+" Security artifacts present and non-empty.")
			}

			if !report.Passed() {
				return NewExitError(1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", app.Settings.Audit.Strict,
		"fail on draft statuses and enforce deeper content/review evidence checks")

	return cmd
}
