// Package config provides tool settings loading for lifegate.
//
// Settings are loaded with Viper, supporting an optional YAML settings file
// and environment variable overrides. They supply defaults for command-line
// flags; explicit flags always win.
//
// Settings priority (highest to lowest):
//  1. Environment variables (LIFEGATE_ prefix, e.g. LIFEGATE_AUDIT_STRICT)
//  2. Settings file named by LIFEGATE_SETTINGS_PATH
//  3. ./lifegate.yaml
//  4. <user config dir>/lifegate/lifegate.yaml
//  5. [DefaultSettings] defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"lifegate/internal/audit"
	"lifegate/internal/lifecycle"
)

// Settings is the root settings container.
type Settings struct {
	// Lifecycle contains gate-runner defaults.
	Lifecycle LifecycleSettings `mapstructure:"lifecycle"`

	// Audit contains security-audit defaults.
	Audit AuditSettings `mapstructure:"audit"`
}

// LifecycleSettings configures the gate runner.
type LifecycleSettings struct {
	// ConfigPath is the default lifecycle config path used when the run
	// command's --config flag is not given.
	ConfigPath string `mapstructure:"config_path"`
}

// AuditSettings configures the security artifact auditor.
type AuditSettings struct {
	// Dir is the default security planning directory.
	Dir string `mapstructure:"dir"`

	// Strict enables strict auditing by default.
	Strict bool `mapstructure:"strict"`
}

// DefaultSettings returns Settings with the conventional defaults. These
// work out of the box without any settings file.
func DefaultSettings() *Settings {
	return &Settings{
		Lifecycle: LifecycleSettings{
			ConfigPath: lifecycle.DefaultConfigPath,
		},
		Audit: AuditSettings{
			Dir: audit.DefaultBaseDir,
		},
	}
}

// Loader handles Viper-based settings loading.
type Loader struct{}

// NewLoader creates a settings Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load loads settings from the environment, the discovered settings file,
// and the defaults, in that priority order. A missing settings file is not
// an error; a malformed one is.
func (l *Loader) Load() (*Settings, error) {
	v := l.newViper()

	if path := os.Getenv("LIFEGATE_SETTINGS_PATH"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("lifegate")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "lifegate"))
		}
	}

	return l.read(v)
}

// LoadFromFile loads settings from an explicit file path, still honoring
// environment overrides.
func (l *Loader) LoadFromFile(path string) (*Settings, error) {
	v := l.newViper()
	v.SetConfigFile(path)
	return l.read(v)
}

func (l *Loader) newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("LIFEGATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultSettings()
	v.SetDefault("lifecycle.config_path", defaults.Lifecycle.ConfigPath)
	v.SetDefault("audit.dir", defaults.Audit.Dir)
	v.SetDefault("audit.strict", defaults.Audit.Strict)

	return v
}

func (l *Loader) read(v *viper.Viper) (*Settings, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading settings: %w", err)
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	return settings, nil
}
