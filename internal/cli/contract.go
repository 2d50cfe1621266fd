package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lifegate/internal/contract"
	"lifegate/internal/ui"
)

func newContractCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "contract <openapi-yaml-file>",
		Short: "Validate an OpenAPI contract",
		Long: `Validate an OpenAPI specification for completeness and consistency:
required fields, REST path conventions, response completeness, the RFC 7807
ProblemDetails error contract, security definitions, and schema hygiene.

Exit codes: 0 passed (warnings allowed), 1 errors found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			fmt.Fprintf(app.Out, "Validating API contract: %s\n", path)
			fmt.Fprintln(app.Out, ui.Ruler("-", 60))

			report := contract.NewValidator(path).Validate()

			if len(report.Errors) > 0 {
				fmt.Fprintf(app.Out, "\n%s\n", ui.Fail.Render("ERRORS (Must Fix):"))
				for i, finding := range report.Errors {
					fmt.Fprintf(app.Out, "  %d. %s\n", i+1, finding)
				}
			}
			if len(report.Warnings) > 0 {
				fmt.Fprintf(app.Out, "\n%s\n", ui.Warn.Render("WARNINGS (Should Fix):"))
				for i, finding := range report.Warnings {
					fmt.Fprintf(app.Out, "  %d. %s\n", i+1, finding)
				}
			}

			fmt.Fprintf(app.Out, "\n%s\n", ui.Ruler("=", 60))
			switch {
			case report.Valid() && len(report.Warnings) == 0:
				fmt.Fprintln(app.Out, ui.Pass.Render("API contract validation PASSED")+" - No issues found!")
			case report.Valid():
				fmt.Fprintf(app.Out, "%s with %d warning(s)\n",
					ui.Warn.Render("API contract validation PASSED"), len(report.Warnings))
			default:
				fmt.Fprintf(app.Out, "%s with %d error(s) and %d warning(s)\n",
					ui.Fail.Render("API contract validation FAILED"),
					len(report.Errors), len(report.Warnings))
				return NewExitError(1)
			}
			return nil
		},
	}
}
