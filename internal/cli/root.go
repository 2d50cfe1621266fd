package cli

import (
	"github.com/spf13/cobra"
)

func newRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "lifegate",
		Short: "Lifecycle gates and planning artifact checks",
		Long: `lifegate runs the validation gates declared for a project lifecycle stage
and bundles the standalone checks those gates typically invoke:
an OpenAPI contract linter, a security artifact auditor, and
code scaffolding generators.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRunCommand(app),
		newContractCommand(app),
		newAuditCommand(app),
		newScaffoldCommand(app),
	)

	return root
}
