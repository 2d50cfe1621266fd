package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// UseCaseKind distinguishes command and query use cases. The generated code
// is identical today; the kind is recorded for the caller's output.
type UseCaseKind string

const (
	KindCommand UseCaseKind = "command"
	KindQuery   UseCaseKind = "query"
)

// UseCaseOptions controls application use case generation.
type UseCaseOptions struct {
	// Name is the use case name, e.g. "CreateCustomer".
	Name string

	// Kind is the use case type, command or query.
	Kind UseCaseKind

	// ApplicationDir is the application project root; files are written
	// under UseCases/<Name>/.
	ApplicationDir string

	// Namespace is the C# namespace for the generated types.
	Namespace string
}

var requestTemplate = template.Must(template.New("request").Parse(`namespace {{.Namespace}};

public record {{.Name}}Request();
`))

var resultTemplate = template.Must(template.New("result").Parse(`namespace {{.Namespace}};

public record {{.Name}}Result();
`))

var handlerTemplate = template.Must(template.New("handler").Parse(`using System;
using System.Threading;
using System.Threading.Tasks;

namespace {{.Namespace}};

public class {{.Name}}Handler
{
    public Task<{{.Name}}Result> Handle({{.Name}}Request request, CancellationToken cancellationToken)
    {
        throw new NotImplementedException();
    }
}
`))

// UseCase generates the Request/Result/Handler triple for an application
// use case and returns the directory it created them in.
func UseCase(opts UseCaseOptions) (string, error) {
	opts.Name = strings.TrimSpace(opts.Name)
	if err := ValidateName(opts.Name); err != nil {
		return "", fmt.Errorf("use case %w", err)
	}
	if opts.Kind != KindCommand && opts.Kind != KindQuery {
		return "", fmt.Errorf("use case type must be %q or %q", KindCommand, KindQuery)
	}

	useCaseDir := filepath.Join(opts.ApplicationDir, "UseCases", opts.Name)
	if err := os.MkdirAll(useCaseDir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", useCaseDir, err)
	}

	files := []struct {
		suffix string
		tmpl   *template.Template
	}{
		{"Request.cs", requestTemplate},
		{"Result.cs", resultTemplate},
		{"Handler.cs", handlerTemplate},
	}
	for _, f := range files {
		if err := writeNew(filepath.Join(useCaseDir, opts.Name+f.suffix), f.tmpl, opts); err != nil {
			return "", err
		}
	}

	return useCaseDir, nil
}
