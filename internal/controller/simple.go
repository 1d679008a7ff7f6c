package controller

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "layoutfix.dev/pkg/layoutfix/internal/model"
)

const (
	skipLabel      = "SKIP"
	fixedLabel     = "FIXED"
	completionLine = "All files processed!"
	missingLabel   = "missing"
	presentLabel   = "found"
)

// SimpleUI implements UI by printing lines to the cobra command's output.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool
	skip   lipgloss.Style
	fixed  lipgloss.Style
}

// SimpleUIOption configures a SimpleUI.
type SimpleUIOption func(*SimpleUI)

// WithStyledLabels colours the SKIP and FIXED labels.
func WithStyledLabels() SimpleUIOption {
	return func(s *SimpleUI) {
		s.styled = true
	}
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, options ...SimpleUIOption) *SimpleUI {
	s := &SimpleUI{cmd: cmd}
	for _, option := range options {
		option(s)
	}

	renderer := lipgloss.NewRenderer(cmd.OutOrStdout())
	s.skip = renderer.NewStyle().Foreground(lipgloss.Color("3"))
	s.fixed = renderer.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)

	return s
}

// DisplaySkipped reports a target that does not exist.
func (s *SimpleUI) DisplaySkipped(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s: %s - not found\n", s.label(s.skip, skipLabel), path)
}

// DisplayFixed reports a target that was rewritten.
func (s *SimpleUI) DisplayFixed(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s: %s\n", s.label(s.fixed, fixedLabel), path)
}

// DisplayCompletion prints the trailing blank line and completion message.
func (s *SimpleUI) DisplayCompletion(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s\n", completionLine)
}

// DisplayStatus renders the target table.
func (s *SimpleUI) DisplayStatus(ctx context.Context, statuses []m.TargetStatus) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderStatusTable(statuses))

	return nil
}

// DisplayDiff prints a unified diff for one target.
func (s *SimpleUI) DisplayDiff(ctx context.Context, _ m.Path, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s", diff)
}

func renderStatusTable(statuses []m.TargetStatus) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "State", "Pending"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	found := 0
	pending := 0

	for _, status := range statuses {
		state := missingLabel
		if status.Exists {
			state = presentLabel
			found++
		}

		pending += status.Pending
		table.Append([]string{string(status.Path), state, fmt.Sprintf("%d", status.Pending)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Found %d/%d", found, len(statuses)),
		"",
		fmt.Sprintf("%d", pending),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayReport renders a saved run report.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !report.Started.IsZero() {
		s.printf("Run started %s (root %s)\n", report.Started.Format(time.RFC3339), report.Root)
	}

	s.printf("%s", renderReportTable(report))

	return nil
}

func renderReportTable(report m.RunReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Outcome", "Changed", "Removed"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})

	removed := 0

	for _, result := range report.Results {
		removed += result.Removed
		table.Append([]string{
			string(result.Path),
			result.Outcome.String(),
			fmt.Sprintf("%t", result.Changed),
			fmt.Sprintf("%d", result.Removed),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Fixed %d", report.Count(m.Fixed)),
		fmt.Sprintf("Skipped %d", report.Count(m.Skipped)),
		"",
		fmt.Sprintf("%d", removed),
	})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) label(style lipgloss.Style, text string) string {
	if !s.styled {
		return text
	}

	return style.Render(text)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
