// Package cli provides the lifegate command-line interface.
//
// The CLI is built with Cobra and uses dependency injection for testability:
// [App] carries the tool settings, the gate command runner, and the output
// writer, so tests can substitute a [SpyRunner] and capture output without
// spawning processes or terminating the test binary.
//
// Commands:
//   - run: execute the gates required by the active lifecycle stage
//   - contract: validate an OpenAPI contract
//   - audit: audit security planning artifacts
//   - scaffold entity / scaffold usecase: generate C# source stubs
package cli

import (
	"fmt"
	"io"
	"os"

	"lifegate/internal/config"
	"lifegate/internal/lifecycle"
)

// App holds the dependencies shared by all commands.
type App struct {
	// Settings are the loaded tool settings (flag defaults).
	Settings *config.Settings

	// Runner executes gate commands. Production uses [lifecycle.ExecRunner];
	// tests inject a [SpyRunner].
	Runner lifecycle.CommandRunner

	// Out receives all command output.
	Out io.Writer
}

// ExecuteResult carries the outcome of a CLI invocation.
type ExecuteResult struct {
	ExitCode int
	Err      error
}

// Run builds the command tree for app, executes it with args, and returns
// the result without exiting the process.
func Run(app *App, args []string) ExecuteResult {
	root := newRootCommand(app)
	root.SetArgs(args)
	root.SetOut(app.Out)
	root.SetErr(app.Out)

	if err := root.Execute(); err != nil {
		if code, ok := IsExitError(err); ok {
			return ExecuteResult{ExitCode: code, Err: err}
		}
		// Anything Cobra itself rejects (unknown command, bad flags) is a
		// configuration problem, not a failed check. Commands print their
		// own errors before returning an ExitError, so only these are
		// printed here.
		fmt.Fprintf(app.Out, "[ERROR] %v\n", err)
		return ExecuteResult{ExitCode: 2, Err: err}
	}
	return ExecuteResult{ExitCode: 0}
}

// Execute is the process entry point: it loads settings, runs the CLI with
// os.Args, and exits with the resulting code.
func Execute() {
	settings, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(2)
	}

	app := &App{
		Settings: settings,
		Runner:   lifecycle.ExecRunner{},
		Out:      os.Stdout,
	}
	os.Exit(Run(app, os.Args[1:]).ExitCode)
}
