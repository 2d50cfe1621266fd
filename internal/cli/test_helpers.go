package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"lifegate/internal/config"
)

// SpyRunner is a CommandRunner mock for testing.
type SpyRunner struct {
	// Commands records every argv executed, in order.
	Commands [][]string

	// Dirs records the working directory of each execution.
	Dirs []string

	// ExitCodes maps an executable name to the exit code to return.
	// Executables not in the map return 0.
	ExitCodes map[string]int
}

func (s *SpyRunner) Run(ctx context.Context, dir string, argv []string) int {
	s.Commands = append(s.Commands, argv)
	s.Dirs = append(s.Dirs, dir)
	if code, ok := s.ExitCodes[argv[0]]; ok {
		return code
	}
	return 0
}

// Executed returns the executable names run, in order.
func (s *SpyRunner) Executed() []string {
	var names []string
	for _, argv := range s.Commands {
		names = append(names, argv[0])
	}
	return names
}

// writeLifecycleConfig writes a lifecycle config into a temporary directory
// and returns its path.
func writeLifecycleConfig(t *testing.T, tmpDir string, content string) string {
	t.Helper()

	path := filepath.Join(tmpDir, "lifecycle-stage.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write lifecycle config: %v", err)
	}
	return path
}

// newTestApp creates an App with default settings, a SpyRunner, and the
// given output writer.
func newTestApp(out io.Writer, spy *SpyRunner) *App {
	return &App{
		Settings: config.DefaultSettings(),
		Runner:   spy,
		Out:      out,
	}
}
