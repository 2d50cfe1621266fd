package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	assert.Equal(t, "lifecycle-stage.yaml", settings.Lifecycle.ConfigPath)
	assert.Equal(t, "planning-mds/security", settings.Audit.Dir)
	assert.False(t, settings.Audit.Strict)
}

func TestLoader_LoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifegate.yaml")
	content := `
lifecycle:
  config_path: ci/lifecycle.yaml
audit:
  dir: docs/security
  strict: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	settings, err := NewLoader().LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "ci/lifecycle.yaml", settings.Lifecycle.ConfigPath)
	assert.Equal(t, "docs/security", settings.Audit.Dir)
	assert.True(t, settings.Audit.Strict)
}

func TestLoader_LoadFromFile_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifegate.yaml")
	require.NoError(t, os.WriteFile(path, []byte("audit:\n  strict: true\n"), 0o644))

	settings, err := NewLoader().LoadFromFile(path)
	require.NoError(t, err)

	assert.True(t, settings.Audit.Strict)
	assert.Equal(t, "lifecycle-stage.yaml", settings.Lifecycle.ConfigPath)
	assert.Equal(t, "planning-mds/security", settings.Audit.Dir)
}

func TestLoader_Load_EnvOverride(t *testing.T) {
	t.Setenv("LIFEGATE_AUDIT_DIR", "/env/security")
	t.Setenv("LIFEGATE_LIFECYCLE_CONFIG_PATH", "/env/lifecycle.yaml")

	settings, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, "/env/security", settings.Audit.Dir)
	assert.Equal(t, "/env/lifecycle.yaml", settings.Lifecycle.ConfigPath)
}

func TestLoader_Load_MissingFileIsFine(t *testing.T) {
	t.Setenv("LIFEGATE_SETTINGS_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	settings, err := NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, "lifecycle-stage.yaml", settings.Lifecycle.ConfigPath)
}

func TestLoader_Load_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifegate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n  - broken: [\n"), 0o644))
	t.Setenv("LIFEGATE_SETTINGS_PATH", path)

	_, err := NewLoader().Load()
	require.Error(t, err)
}
