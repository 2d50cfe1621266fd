package lifecycle

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records executions and fails the configured gates.
type fakeRunner struct {
	executed [][]string
	dirs     []string
	failOn   map[string]int // executable name -> exit code
}

func (f *fakeRunner) Run(ctx context.Context, dir string, argv []string) int {
	f.executed = append(f.executed, argv)
	f.dirs = append(f.dirs, dir)
	if code, ok := f.failOn[argv[0]]; ok {
		return code
	}
	return 0
}

func loadTestConfig(t *testing.T, content string) *Config {
	t.Helper()
	cfg, err := LoadConfig(writeConfig(t, content))
	require.NoError(t, err)
	return cfg
}

const executorConfig = `
current_stage: build
stages:
  build:
    description: Implementation
    required_gates: [compile, test, lint]
gates:
  compile:
    description: Build the project
    command: [make, build]
  test:
    command: [make, test]
  lint:
    command: [golangci-lint, run]
`

func TestRunStage_ExecutesInDeclaredOrder(t *testing.T) {
	cfg := loadTestConfig(t, executorConfig)
	name, stage, err := cfg.Resolve("")
	require.NoError(t, err)

	runner := &fakeRunner{}
	var out bytes.Buffer
	executor := NewExecutor(runner, NewReporter(&out), "/repo")

	results, err := executor.RunStage(context.Background(), cfg, name, stage)
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.Equal(t, [][]string{
		{"make", "build"},
		{"make", "test"},
		{"golangci-lint", "run"},
	}, runner.executed)
	assert.Equal(t, []string{"/repo", "/repo", "/repo"}, runner.dirs)
	assert.Empty(t, FailedGates(results))
	assert.Contains(t, out.String(), "PASSED (3 gate(s))")
}

func TestRunStage_FailureDoesNotShortCircuit(t *testing.T) {
	cfg := loadTestConfig(t, executorConfig)
	name, stage, err := cfg.Resolve("")
	require.NoError(t, err)

	// compile fails; test and lint must still run
	runner := &fakeRunner{failOn: map[string]int{"make": 1}}
	var out bytes.Buffer
	executor := NewExecutor(runner, NewReporter(&out), "/repo")

	results, err := executor.RunStage(context.Background(), cfg, name, stage)
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.Len(t, runner.executed, 3)
	assert.Equal(t, []string{"compile", "test"}, FailedGates(results))
	assert.Contains(t, out.String(), "FAILED (2 gate(s)): compile, test")
	assert.Contains(t, out.String(), "(exit code 1)")
}

func TestRunStage_UnknownGateReferenceRunsNothing(t *testing.T) {
	content := `
current_stage: build
stages:
  build:
    required_gates: [compile, ghost, phantom]
gates:
  compile:
    command: [make, build]
`
	cfg := loadTestConfig(t, content)
	name, stage, err := cfg.Resolve("")
	require.NoError(t, err)

	runner := &fakeRunner{}
	executor := NewExecutor(runner, NewReporter(&bytes.Buffer{}), "/repo")

	_, err = executor.RunStage(context.Background(), cfg, name, stage)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownGateReference)
	assert.Contains(t, err.Error(), "ghost, phantom")

	// fail-fast: zero subprocesses launched
	assert.Empty(t, runner.executed)
}

func TestRunStage_NoRequiredGates(t *testing.T) {
	content := `
current_stage: planning
stages:
  planning:
    description: nothing yet
gates: {}
`
	cfg := loadTestConfig(t, content)
	name, stage, err := cfg.Resolve("")
	require.NoError(t, err)

	runner := &fakeRunner{}
	var out bytes.Buffer
	executor := NewExecutor(runner, NewReporter(&out), "/repo")

	results, err := executor.RunStage(context.Background(), cfg, name, stage)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, runner.executed)
	assert.Contains(t, out.String(), "PASSED (0 gate(s))")
}

func TestExecRunner(t *testing.T) {
	runner := ExecRunner{}
	ctx := context.Background()
	dir := t.TempDir()

	assert.Equal(t, 0, runner.Run(ctx, dir, []string{"true"}))
	assert.Equal(t, 1, runner.Run(ctx, dir, []string{"false"}))

	// a command that cannot be started reports 127, shell-style
	assert.Equal(t, 127, runner.Run(ctx, dir, []string{"definitely-not-a-real-binary-xyz"}))
}

func TestReporter_Matrix(t *testing.T) {
	cfg := loadTestConfig(t, executorConfig)

	var out bytes.Buffer
	NewReporter(&out).Matrix(cfg)

	got := out.String()
	assert.Contains(t, got, "Lifecycle stages and required gates:")
	assert.Contains(t, got, "build: Implementation")
	assert.Contains(t, got, "  - compile")
	assert.Contains(t, got, "  - lint")
	assert.Contains(t, got, "Current stage: build")
}

func TestReporter_MatrixEmptyStage(t *testing.T) {
	content := `
current_stage: planning
stages:
  planning:
    description: Early days
gates: {}
`
	cfg := loadTestConfig(t, content)

	var out bytes.Buffer
	NewReporter(&out).Matrix(cfg)
	assert.Contains(t, out.String(), "(none)")
}
