package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lifegate/internal/scaffold"
	"lifegate/internal/ui"
)

func newScaffoldCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Generate source stubs",
	}
	cmd.AddCommand(
		newScaffoldEntityCommand(app),
		newScaffoldUseCaseCommand(app),
	)
	return cmd
}

func newScaffoldEntityCommand(app *App) *cobra.Command {
	var (
		opts         scaffold.EntityOptions
		noAudit      bool
		noSoftDelete bool
	)

	cmd := &cobra.Command{
		Use:   "entity <Name>",
		Short: "Scaffold a domain entity",
		Long: `Scaffold a domain entity class and, when an infrastructure directory is
given, a matching EF Core configuration. Existing files are never
overwritten.

Example:
  lifegate scaffold entity Customer --domain-dir src/App.Domain --namespace App.Domain`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Name = args[0]
			opts.WithAudit = !noAudit
			opts.WithSoftDelete = !noSoftDelete

			created, err := scaffold.Entity(opts)
			if err != nil {
				fmt.Fprintf(app.Out, "%s %v\n", ui.Fail.Render("[ERROR]"), err)
				return NewExitError(1)
			}

			fmt.Fprintf(app.Out, "%s Created entity: %s\n", ui.Pass.Render("[OK]"), created[0])
			if len(created) > 1 {
				fmt.Fprintf(app.Out, "%s Created configuration: %s\n", ui.Pass.Render("[OK]"), created[1])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.DomainDir, "domain-dir", "", "path to the domain project root")
	cmd.Flags().StringVar(&opts.Namespace, "namespace", "", "C# namespace for the entity")
	cmd.Flags().StringVar(&opts.IDType, "id-type", "Guid", "type of the Id property")
	cmd.Flags().BoolVar(&noAudit, "no-audit", false, "disable CreatedAt/UpdatedAt fields")
	cmd.Flags().BoolVar(&noSoftDelete, "no-soft-delete", false, "disable IsDeleted field and MarkDeleted()")
	cmd.Flags().StringVar(&opts.InfrastructureDir, "infrastructure-dir", "",
		"path to the infrastructure project root (optional)")
	cmd.Flags().StringVar(&opts.InfraNamespace, "infra-namespace", "",
		"C# namespace for the EF Core configuration (optional)")
	_ = cmd.MarkFlagRequired("domain-dir")
	_ = cmd.MarkFlagRequired("namespace")

	return cmd
}

func newScaffoldUseCaseCommand(app *App) *cobra.Command {
	var (
		opts     scaffold.UseCaseOptions
		kindFlag string
	)

	cmd := &cobra.Command{
		Use:   "usecase <Name>",
		Short: "Scaffold an application use case",
		Long: `Scaffold an application use case: Request, Result, and Handler types.

Example:
  lifegate scaffold usecase CreateCustomer --application-dir src/App.Application --namespace App.Application`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Name = args[0]
			opts.Kind = scaffold.UseCaseKind(kindFlag)

			dir, err := scaffold.UseCase(opts)
			if err != nil {
				fmt.Fprintf(app.Out, "%s %v\n", ui.Fail.Render("[ERROR]"), err)
				return NewExitError(1)
			}

			fmt.Fprintf(app.Out, "%s Created use case (%s): %s\n", ui.Pass.Render("[OK]"), opts.Kind, dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&kindFlag, "type", "command", "use case type: command or query")
	cmd.Flags().StringVar(&opts.ApplicationDir, "application-dir", "", "path to the application project root")
	cmd.Flags().StringVar(&opts.Namespace, "namespace", "", "C# namespace for the use case")
	_ = cmd.MarkFlagRequired("application-dir")
	_ = cmd.MarkFlagRequired("namespace")

	return cmd
}
