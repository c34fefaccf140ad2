package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	m "weave.dev/pkg/weave/internal/model"
)

// SimpleUI implements UI using the cobra Command's printer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ int) error {
	return ctx.Err()
}

// Close finalizes the UI (no-op for SimpleUI).
func (s *SimpleUI) Close(_ context.Context) {}

// DisplayTargetDone prints a one-line progress note for a finished target.
func (s *SimpleUI) DisplayTargetDone(ctx context.Context, report m.TargetReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s: %d region(s), %d file(s)\n", report.Target, report.RegionsInjected, report.FilesInjected)
}

// DisplayRunSummary prints the end-of-run summary.
func (s *SimpleUI) DisplayRunSummary(ctx context.Context, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderSummary(report))

	return nil
}

// DisplayPlan prints the per-target group breakdown as a table.
func (s *SimpleUI) DisplayPlan(ctx context.Context, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderPlanTable(report))

	return nil
}

// DisplayDiffs prints the unified diffs of pending changes.
func (s *SimpleUI) DisplayDiffs(ctx context.Context, diffs []m.FileDiff) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(diffs) == 0 {
		s.printf("no changes\n")
		return nil
	}

	for _, diff := range diffs {
		s.printf("%s", diff.Diff)
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
