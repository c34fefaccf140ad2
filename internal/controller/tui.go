package controller

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	m "weave.dev/pkg/weave/internal/model"
)

// TUI implements UI with a Bubble Tea progress display, used when stdout is a
// terminal and the run covers enough targets to be worth animating.
type TUI struct {
	out     io.Writer
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI writing to out.
func NewTUI(out io.Writer) *TUI {
	return &TUI{out: out}
}

// Start launches the progress program for a run over totalTargets documents.
// Runs over a single target skip the animation entirely.
func (t *TUI) Start(ctx context.Context, totalTargets int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if totalTargets < 2 {
		return nil
	}

	t.done = make(chan struct{})
	t.program = tea.NewProgram(newRunModel(totalTargets), tea.WithOutput(t.out))

	go func() {
		defer close(t.done)

		_, _ = t.program.Run()
	}()

	return nil
}

// Close stops the progress program and waits for it to tear down.
func (t *TUI) Close(_ context.Context) {
	if t.program == nil {
		return
	}

	t.program.Quit()
	<-t.done

	t.program = nil
}

// DisplayTargetDone advances the progress bar by one target.
func (t *TUI) DisplayTargetDone(ctx context.Context, report m.TargetReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	if t.program == nil {
		return
	}

	t.program.Send(targetDoneMsg{report: report})
}

// DisplayRunSummary prints the end-of-run summary below the finished bar.
func (t *TUI) DisplayRunSummary(ctx context.Context, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(t.out, "\n%s", renderSummary(report))

	return err
}

// DisplayPlan prints the per-target group breakdown as a table.
func (t *TUI) DisplayPlan(ctx context.Context, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(t.out, "\n%s", renderPlanTable(report))

	return err
}

// DisplayDiffs prints the unified diffs of pending changes.
func (t *TUI) DisplayDiffs(ctx context.Context, diffs []m.FileDiff) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(diffs) == 0 {
		_, err := fmt.Fprintln(t.out, "no changes")
		return err
	}

	for _, diff := range diffs {
		if _, err := fmt.Fprint(t.out, diff.Diff); err != nil {
			return err
		}
	}

	return nil
}

type targetDoneMsg struct {
	report m.TargetReport
}

// runModel is the Bubble Tea model tracking injection progress.
type runModel struct {
	total      int
	finished   int
	lastTarget string
	bar        progress.Model
}

func newRunModel(total int) runModel {
	return runModel{
		total: total,
		bar:   progress.New(progress.WithDefaultGradient()),
	}
}

func (rm runModel) Init() tea.Cmd {
	return nil
}

func (rm runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return rm, tea.Quit
		}

		return rm, nil

	case tea.WindowSizeMsg:
		rm.bar.Width = msg.Width - 4
		return rm, nil

	case targetDoneMsg:
		rm.finished++
		rm.lastTarget = string(msg.report.Target)

		return rm, rm.bar.SetPercent(float64(rm.finished) / float64(rm.total))

	case progress.FrameMsg:
		barModel, cmd := rm.bar.Update(msg)
		rm.bar = barModel.(progress.Model)

		return rm, cmd

	default:
		return rm, nil
	}
}

func (rm runModel) View() string {
	view := fmt.Sprintf("\n  injecting %d/%d targets\n\n  %s\n", rm.finished, rm.total, rm.bar.View())
	if rm.lastTarget != "" {
		view += faintStyle.Render("  "+rm.lastTarget) + "\n"
	}

	return view
}
