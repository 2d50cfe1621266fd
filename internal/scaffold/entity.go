package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// EntityOptions controls domain entity generation.
type EntityOptions struct {
	// Name is the entity class name, e.g. "Customer".
	Name string

	// DomainDir is the domain project root; the entity is written under
	// its Entities directory.
	DomainDir string

	// Namespace is the C# namespace for the entity.
	Namespace string

	// IDType is the type of the Id property. Defaults to "Guid".
	IDType string

	// WithAudit adds CreatedAt/UpdatedAt fields and a Touch() method.
	WithAudit bool

	// WithSoftDelete adds an IsDeleted field and a MarkDeleted() method.
	WithSoftDelete bool

	// InfrastructureDir, when non-empty, is the infrastructure project root
	// where an EF Core IEntityTypeConfiguration is also generated.
	InfrastructureDir string

	// InfraNamespace is the namespace for the EF Core configuration.
	// Defaults to Namespace.
	InfraNamespace string
}

var entityTemplate = template.Must(template.New("entity").Parse(`using System;

namespace {{.Namespace}};

public class {{.Name}}
{
    public {{.IDType}} Id { get; private set; }
{{- if .WithAudit}}
    public DateTime CreatedAt { get; private set; }
    public DateTime UpdatedAt { get; private set; }
{{- end}}
{{- if .WithSoftDelete}}
    public bool IsDeleted { get; private set; }
{{- end}}

    protected {{.Name}}() { }

    public {{.Name}}({{.IDType}} id)
    {
        Id = id;
{{- if .WithAudit}}
        CreatedAt = DateTime.UtcNow;
        UpdatedAt = DateTime.UtcNow;
{{- end}}
    }
{{- if .WithSoftDelete}}

    public void MarkDeleted()
    {
        IsDeleted = true;
    }
{{- end}}
{{- if .WithAudit}}

    public void Touch()
    {
        UpdatedAt = DateTime.UtcNow;
    }
{{- end}}
}
`))

var entityConfigTemplate = template.Must(template.New("entityconfig").Parse(`using Microsoft.EntityFrameworkCore;
using Microsoft.EntityFrameworkCore.Metadata.Builders;

namespace {{.InfraNamespace}};

public class {{.Name}}Configuration : IEntityTypeConfiguration<{{.Name}}>
{
    public void Configure(EntityTypeBuilder<{{.Name}}> builder)
    {
        builder.ToTable("{{.Name}}");
        builder.HasKey(x => x.Id);
{{- if .WithAudit}}
        builder.Property(x => x.CreatedAt).IsRequired();
        builder.Property(x => x.UpdatedAt).IsRequired();
{{- end}}
{{- if .WithSoftDelete}}
        builder.Property(x => x.IsDeleted).IsRequired();
{{- end}}
    }
}
`))

// Entity generates a domain entity class and, when an infrastructure
// directory is given, a matching EF Core configuration. It returns the paths
// of the files it created.
func Entity(opts EntityOptions) ([]string, error) {
	opts.Name = strings.TrimSpace(opts.Name)
	if err := ValidateName(opts.Name); err != nil {
		return nil, fmt.Errorf("entity %w", err)
	}
	if opts.IDType == "" {
		opts.IDType = "Guid"
	}
	if opts.InfraNamespace == "" {
		opts.InfraNamespace = opts.Namespace
	}

	entityDir := filepath.Join(opts.DomainDir, "Entities")
	if err := os.MkdirAll(entityDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", entityDir, err)
	}

	entityPath := filepath.Join(entityDir, opts.Name+".cs")
	if err := writeNew(entityPath, entityTemplate, opts); err != nil {
		return nil, err
	}
	created := []string{entityPath}

	if opts.InfrastructureDir != "" {
		configDir := filepath.Join(opts.InfrastructureDir, "Persistence", "Configurations")
		if err := os.MkdirAll(configDir, 0o755); err != nil {
			return created, fmt.Errorf("creating %s: %w", configDir, err)
		}

		configPath := filepath.Join(configDir, opts.Name+"Configuration.cs")
		if err := writeNew(configPath, entityConfigTemplate, opts); err != nil {
			return created, err
		}
		created = append(created, configPath)
	}

	return created, nil
}
