// Package controller provides output adapters for displaying injection runs.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "weave.dev/pkg/weave/internal/model"
)

// UI defines the interface for reporting injection progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// Start initializes the UI for a run over totalTargets documents.
	Start(ctx context.Context, totalTargets int) error
	// Close finalizes the UI.
	Close(ctx context.Context)
	// DisplayTargetDone reports one finished target document.
	DisplayTargetDone(ctx context.Context, report m.TargetReport)
	// DisplayRunSummary prints the end-of-run summary.
	DisplayRunSummary(ctx context.Context, report m.RunReport) error
	// DisplayPlan prints the per-target group breakdown without a run.
	DisplayPlan(ctx context.Context, report m.RunReport) error
	// DisplayDiffs prints unified diffs of pending changes.
	DisplayDiffs(ctx context.Context, diffs []m.FileDiff) error
}

// NewUI picks the UI implementation for the session: interactive progress on
// a TTY, plain text otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
