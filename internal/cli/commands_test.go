package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractCommand(t *testing.T) {
	t.Run("valid spec passes", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "openapi.yaml")
		spec := `
openapi: "3.0.3"
info: {title: X, version: "1"}
security: []
paths: {}
components:
  schemas:
    ProblemDetails:
      required: [type, title, status]
      properties:
        type: {type: string}
        title: {type: string}
        status: {type: integer}
        code: {type: string}
        traceId: {type: string}
`
		require.NoError(t, os.WriteFile(path, []byte(spec), 0o644))

		var out bytes.Buffer
		result := Run(newTestApp(&out, &SpyRunner{}), []string{"contract", path})

		assert.Equal(t, 0, result.ExitCode)
		assert.Contains(t, out.String(), "API contract validation PASSED")
	})

	t.Run("errors fail with exit 1", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "openapi.yaml")
		require.NoError(t, os.WriteFile(path, []byte("info: {}\n"), 0o644))

		var out bytes.Buffer
		result := Run(newTestApp(&out, &SpyRunner{}), []string{"contract", path})

		assert.Equal(t, 1, result.ExitCode)
		assert.Contains(t, out.String(), "ERRORS (Must Fix):")
		assert.Contains(t, out.String(), "API contract validation FAILED")
	})

	t.Run("missing argument is a usage error", func(t *testing.T) {
		var out bytes.Buffer
		result := Run(newTestApp(&out, &SpyRunner{}), []string{"contract"})
		assert.Equal(t, 2, result.ExitCode)
	})
}

func TestAuditCommand(t *testing.T) {
	writeArtifacts := func(t *testing.T, dir string) {
		t.Helper()
		content := "# Doc\n\nStatus: approved\n\nreal content here\n"
		for _, name := range []string{
			"threat-model.md", "authorization-review.md", "data-protection.md",
			"secrets-management.md", "owasp-top-10-results.md",
		} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
		}
	}

	t.Run("clean light audit", func(t *testing.T) {
		dir := t.TempDir()
		writeArtifacts(t, dir)

		var out bytes.Buffer
		result := Run(newTestApp(&out, &SpyRunner{}), []string{"audit", dir})

		assert.Equal(t, 0, result.ExitCode)
		assert.Contains(t, out.String(), "Security artifacts present and non-empty.")
	})

	t.Run("missing directory fails", func(t *testing.T) {
		var out bytes.Buffer
		result := Run(newTestApp(&out, &SpyRunner{}),
			[]string{"audit", filepath.Join(t.TempDir(), "nope")})

		assert.Equal(t, 1, result.ExitCode)
		assert.Contains(t, out.String(), "not found")
	})

	t.Run("strict mode reports errors", func(t *testing.T) {
		dir := t.TempDir()
		writeArtifacts(t, dir)

		var out bytes.Buffer
		result := Run(newTestApp(&out, &SpyRunner{}), []string{"audit", dir, "--strict"})

		assert.Equal(t, 1, result.ExitCode)
		assert.Contains(t, out.String(), "SECURITY ARTIFACT ERRORS:")
	})
}

func TestScaffoldCommands(t *testing.T) {
	t.Run("entity", func(t *testing.T) {
		dir := t.TempDir()
		var out bytes.Buffer
		result := Run(newTestApp(&out, &SpyRunner{}), []string{
			"scaffold", "entity", "Customer",
			"--domain-dir", dir,
			"--namespace", "App.Domain",
		})

		assert.Equal(t, 0, result.ExitCode)
		assert.Contains(t, out.String(), "Created entity:")
		assert.FileExists(t, filepath.Join(dir, "Entities", "Customer.cs"))
	})

	t.Run("entity rejects lowercase name", func(t *testing.T) {
		var out bytes.Buffer
		result := Run(newTestApp(&out, &SpyRunner{}), []string{
			"scaffold", "entity", "customer",
			"--domain-dir", t.TempDir(),
			"--namespace", "App.Domain",
		})

		assert.Equal(t, 1, result.ExitCode)
		assert.Contains(t, out.String(), "uppercase")
	})

	t.Run("entity requires namespace flag", func(t *testing.T) {
		var out bytes.Buffer
		result := Run(newTestApp(&out, &SpyRunner{}), []string{
			"scaffold", "entity", "Customer", "--domain-dir", t.TempDir(),
		})
		assert.Equal(t, 2, result.ExitCode)
	})

	t.Run("usecase", func(t *testing.T) {
		dir := t.TempDir()
		var out bytes.Buffer
		result := Run(newTestApp(&out, &SpyRunner{}), []string{
			"scaffold", "usecase", "GetCustomer",
			"--type", "query",
			"--application-dir", dir,
			"--namespace", "App.Application",
		})

		assert.Equal(t, 0, result.ExitCode)
		assert.Contains(t, out.String(), "Created use case (query):")
		assert.FileExists(t, filepath.Join(dir, "UseCases", "GetCustomer", "GetCustomerHandler.cs"))
	})

	t.Run("usecase rejects unknown type", func(t *testing.T) {
		var out bytes.Buffer
		result := Run(newTestApp(&out, &SpyRunner{}), []string{
			"scaffold", "usecase", "GetCustomer",
			"--type", "mutation",
			"--application-dir", t.TempDir(),
			"--namespace", "App.Application",
		})
		assert.Equal(t, 1, result.ExitCode)
	})
}

func TestUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	result := Run(newTestApp(&out, &SpyRunner{}), []string{"frobnicate"})
	assert.Equal(t, 2, result.ExitCode)
	assert.Error(t, result.Err)
}
