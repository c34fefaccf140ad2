package controller

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	m "weave.dev/pkg/weave/internal/model"
)

var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
	targetStyle = lipgloss.NewStyle().Bold(true)
)

// renderPlanTable renders the per-target group breakdown as a table.
func renderPlanTable(report m.RunReport) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Target", "Start Tag", "Files"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, target := range report.Targets {
		if len(target.Groups) == 0 {
			table.Append([]string{string(target.Target), "-", "0"})
			continue
		}

		for _, group := range target.Groups {
			table.Append([]string{string(target.Target), group.StartTag, fmt.Sprintf("%d", group.Files)})
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Targets %d", len(report.Targets)),
		fmt.Sprintf("Sources %d", report.Sources),
		fmt.Sprintf("%d", report.TotalInjected()),
	})

	table.Render()

	return buf.String()
}

// renderSummary renders the end-of-run summary line(s).
func renderSummary(report m.RunReport) string {
	var buf bytes.Buffer

	for _, target := range report.Targets {
		marker := faintStyle.Render("unchanged")
		if target.Changed {
			marker = okStyle.Render("injected")
		}

		fmt.Fprintf(&buf, "%s %s (%d region(s), %d file(s)",
			marker, targetStyle.Render(string(target.Target)),
			target.RegionsInjected, target.FilesInjected)

		if target.RegionsCleared > 0 {
			fmt.Fprintf(&buf, ", %d cleared", target.RegionsCleared)
		}

		fmt.Fprintf(&buf, ")\n")
	}

	fmt.Fprintf(&buf, "%d source file(s) into %d of %d target(s)\n",
		report.Sources, report.ChangedTargets(), len(report.Targets))

	return buf.String()
}
