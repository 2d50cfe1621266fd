package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// CommandRunner is the interface for executing a single gate command.
//
// Run executes argv with the given working directory and returns the exit
// code. An exit code of 0 indicates the gate passed; any non-zero value
// indicates failure. The [ExecRunner] type is the production implementation.
type CommandRunner interface {
	Run(ctx context.Context, dir string, argv []string) int
}

// ExecRunner runs gate commands as child processes with inherited standard
// streams, so gate output is visible in real time. It does not capture or
// parse subprocess output; only the exit status is observed.
type ExecRunner struct{}

// Run executes argv in dir and blocks until the child exits. There is no
// timeout and no cancellation beyond ctx: a hung gate blocks indefinitely.
// A command that cannot be started at all (missing executable) reports 127.
func (ExecRunner) Run(ctx context.Context, dir string, argv []string) int {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 127
}

// Executor runs the gates required by a lifecycle stage.
//
// Gates run strictly sequentially, in declared order, because gates may have
// ordering dependencies (build before test). A failing gate does not stop the
// run: every required gate executes and failures are accumulated for the
// summary. Use [NewExecutor] to create an instance.
type Executor struct {
	runner   CommandRunner
	reporter *Reporter
	repoRoot string
}

// NewExecutor creates an Executor that runs gate commands via runner with
// working directory repoRoot and reports progress through reporter.
func NewExecutor(runner CommandRunner, reporter *Reporter, repoRoot string) *Executor {
	return &Executor{
		runner:   runner,
		reporter: reporter,
		repoRoot: repoRoot,
	}
}

// RunStage executes every gate required by the resolved stage, in order.
//
// Before the first subprocess is spawned, all required gate names are
// cross-referenced against the config's gate catalog. Any dangling reference
// aborts the run with [ErrUnknownGateReference] and zero gates executed.
//
// RunStage returns one [GateResult] per executed gate. Gate failures are an
// outcome, not an error: the error return is reserved for structural
// problems.
func (e *Executor) RunStage(ctx context.Context, cfg *Config, stageName string, stage StageDef) ([]GateResult, error) {
	var unknown []string
	for _, name := range stage.RequiredGates {
		if _, ok := cfg.Gates[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: stage %q references unknown gates: %s",
			ErrUnknownGateReference, stageName, strings.Join(unknown, ", "))
	}

	e.reporter.StageHeader(stageName)

	results := make([]GateResult, 0, len(stage.RequiredGates))
	var failed []string
	for _, name := range stage.RequiredGates {
		gate := cfg.Gates[name]
		e.reporter.GateStart(name, gate)
		code := e.runner.Run(ctx, e.repoRoot, gate.Command)
		e.reporter.GateDone(name, code)
		results = append(results, GateResult{Gate: name, ExitCode: code})
		if code != 0 {
			failed = append(failed, name)
		}
	}

	e.reporter.Summary(len(stage.RequiredGates), failed)
	return results, nil
}

// FailedGates returns the names of gates that exited non-zero, in run order.
func FailedGates(results []GateResult) []string {
	var failed []string
	for _, r := range results {
		if !r.Passed() {
			failed = append(failed, r.Gate)
		}
	}
	return failed
}
