package lifecycle

import (
	"fmt"
	"io"
	"strings"

	"lifegate/internal/ui"
)

// rulerWidth is the width of the horizontal rules framing gate output.
const rulerWidth = 60

// Reporter prints gate progress, the stage matrix, and run summaries.
//
// All output goes to a single writer so tests can capture it. Pass/fail
// markers are styled via the ui package and degrade to plain text when the
// writer is not a terminal.
type Reporter struct {
	out io.Writer
}

// NewReporter creates a Reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// StageHeader announces which stage's gates are about to run.
func (r *Reporter) StageHeader(stageName string) {
	fmt.Fprintf(r.out, "Running lifecycle gates for stage: %s\n", ui.Title.Render(stageName))
	fmt.Fprintln(r.out, ui.Ruler("-", rulerWidth))
}

// GateStart prints the structured progress block before a gate runs.
func (r *Reporter) GateStart(name string, gate GateDef) {
	fmt.Fprintf(r.out, "%s %s\n", ui.Title.Render("[GATE]"), name)
	if gate.Description != "" {
		fmt.Fprintf(r.out, "  %s\n", gate.Description)
	}
	fmt.Fprintf(r.out, "  %s\n", ui.Muted.Render("command: "+strings.Join(gate.Command, " ")))
}

// GateDone prints the PASS/FAIL line after a gate exits.
func (r *Reporter) GateDone(name string, exitCode int) {
	if exitCode == 0 {
		fmt.Fprintf(r.out, "%s %s\n\n", ui.Pass.Render("[PASS]"), name)
		return
	}
	fmt.Fprintf(r.out, "%s %s (exit code %d)\n\n", ui.Fail.Render("[FAIL]"), name, exitCode)
}

// Summary prints the aggregate outcome after all gates have run.
func (r *Reporter) Summary(total int, failed []string) {
	fmt.Fprintln(r.out, ui.Ruler("=", rulerWidth))
	if len(failed) > 0 {
		fmt.Fprintf(r.out, "%s FAILED (%d gate(s)): %s\n",
			ui.Fail.Render("[SUMMARY]"), len(failed), strings.Join(failed, ", "))
		return
	}
	fmt.Fprintf(r.out, "%s PASSED (%d gate(s))\n", ui.Pass.Render("[SUMMARY]"), total)
}

// Matrix prints the stage/gate overview used by list mode. It never executes
// anything and tolerates malformed stage bodies, so work-in-progress configs
// can still be inspected.
func (r *Reporter) Matrix(cfg *Config) {
	fmt.Fprintln(r.out, ui.Title.Render("Lifecycle stages and required gates:"))
	fmt.Fprintln(r.out, ui.Ruler("-", rulerWidth))
	for _, name := range cfg.StageNames() {
		description, gates := cfg.StageSummary(name)
		fmt.Fprintf(r.out, "%s: %s\n", ui.Title.Render(name), strings.TrimSpace(description))
		for _, gate := range gates {
			fmt.Fprintf(r.out, "  - %s\n", gate)
		}
		if len(gates) == 0 {
			fmt.Fprintf(r.out, "  - %s\n", ui.Muted.Render("(none)"))
		}
	}
	fmt.Fprintln(r.out, ui.Ruler("-", rulerWidth))
	fmt.Fprintf(r.out, "Current stage: %s\n", cfg.CurrentStage)
}
