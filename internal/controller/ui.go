// Package controller provides console output for layoutfix runs.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "layoutfix.dev/pkg/layoutfix/internal/model"
)

// UI defines how run progress and results are presented.
type UI interface {
	DisplaySkipped(ctx context.Context, path m.Path)
	DisplayFixed(ctx context.Context, path m.Path)
	DisplayCompletion(ctx context.Context)
	DisplayStatus(ctx context.Context, statuses []m.TargetStatus) error
	DisplayDiff(ctx context.Context, path m.Path, diff string)
	DisplayReport(ctx context.Context, report m.RunReport) error
}

// NewUI returns a SimpleUI, with coloured labels when the output is a terminal.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewSimpleUI(cmd, WithStyledLabels())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
