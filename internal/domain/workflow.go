package domain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"
	"unicode/utf8"

	"layoutfix.dev/pkg/layoutfix/internal/adapter"
	"layoutfix.dev/pkg/layoutfix/internal/controller"
	m "layoutfix.dev/pkg/layoutfix/internal/model"
)

// ReportVersion is the schema version written into run reports.
const ReportVersion = 1

// ErrInvalidEncoding is returned when a target is not valid UTF-8 text.
var ErrInvalidEncoding = errors.New("content is not valid UTF-8")

// ErrNoReport is returned by View when no report path is configured.
var ErrNoReport = errors.New("no report path given")

// FixArgs contains arguments for a fix run.
type FixArgs struct {
	Root    m.Path
	Targets []m.Path // defaults to DefaultTargets when empty
	Report  m.Path   // optional YAML report destination
}

// StatusArgs contains arguments for a read-only status scan.
type StatusArgs struct {
	Root    m.Path
	Targets []m.Path
}

// DiffArgs contains arguments for a read-only diff preview.
type DiffArgs struct {
	Root    m.Path
	Targets []m.Path
}

// ViewArgs contains arguments for displaying a saved run report.
type ViewArgs struct {
	Report m.Path
}

// Workflow drives the wrapper removal over the target list.
type Workflow interface {
	Fix(ctx context.Context, args FixArgs) error
	Status(ctx context.Context, args StatusArgs) error
	Diff(ctx context.Context, args DiffArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	reportStore adapter.ReportStore
	ui          controller.UI
	rewriter    Rewriter
}

// NewWorkflow constructs a Workflow wired to the given adapters and UI.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	rewriter Rewriter,
) Workflow {
	return &workflow{
		fsAdapter:   fsAdapter,
		reportStore: reportStore,
		ui:          ui,
		rewriter:    rewriter,
	}
}

// Fix rewrites every target in order. A missing target is skipped; any other
// failure aborts the run and leaves already processed files modified.
func (w *workflow) Fix(ctx context.Context, args FixArgs) error {
	report := m.RunReport{
		Version: ReportVersion,
		Root:    args.Root,
		Started: time.Now(),
	}

	for _, target := range targetsOrDefault(args.Targets) {
		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := w.fixFile(ctx, args.Root, target)
		if err != nil {
			slog.Error("fix aborted", "path", target, "error", err)
			return err
		}

		report.Results = append(report.Results, result)
	}

	report.Finished = time.Now()
	w.ui.DisplayCompletion(ctx)

	slog.Info("fix run completed",
		"fixed", report.Count(m.Fixed),
		"skipped", report.Count(m.Skipped),
		"duration", report.Finished.Sub(report.Started),
	)

	if args.Report == "" {
		return nil
	}

	return w.reportStore.SaveReport(args.Report, report)
}

func (w *workflow) fixFile(ctx context.Context, root, target m.Path) (m.Result, error) {
	path := w.fsAdapter.Resolve(root, target)

	info, found := w.stat(path)
	if !found {
		slog.Debug("target not found", "path", path)
		w.ui.DisplaySkipped(ctx, target)

		return m.Result{Path: target, Outcome: m.Skipped}, nil
	}

	content, err := w.readTarget(path, target)
	if err != nil {
		return m.Result{}, err
	}

	rewritten, removed := w.rewriter.Rewrite(content)

	if err := w.fsAdapter.WriteFile(path, rewritten, info.Mode().Perm()); err != nil {
		return m.Result{}, fmt.Errorf("failed to write %s: %w", target, err)
	}

	slog.Debug("target rewritten", "path", path, "removed", removed)
	w.ui.DisplayFixed(ctx, target)

	return m.Result{
		Path:    target,
		Outcome: m.Fixed,
		Changed: !bytes.Equal(content, rewritten),
		Removed: removed,
	}, nil
}

// View displays a run report previously written by Fix.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if args.Report == "" {
		return ErrNoReport
	}

	report, err := w.reportStore.LoadReport(args.Report)
	if err != nil {
		return err
	}

	return w.ui.DisplayReport(ctx, report)
}

// Status reports, without writing, which targets exist and what is left to remove.
func (w *workflow) Status(ctx context.Context, args StatusArgs) error {
	targets := targetsOrDefault(args.Targets)
	statuses := make([]m.TargetStatus, 0, len(targets))

	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return err
		}

		path := w.fsAdapter.Resolve(args.Root, target)

		_, found := w.stat(path)
		status := m.TargetStatus{Path: target, Exists: found}

		if found {
			content, err := w.readTarget(path, target)
			if err != nil {
				return err
			}

			status.Pending = w.rewriter.Pending(content)
		}

		statuses = append(statuses, status)
	}

	return w.ui.DisplayStatus(ctx, statuses)
}

// Diff prints the change each target would receive, without writing.
func (w *workflow) Diff(ctx context.Context, args DiffArgs) error {
	for _, target := range targetsOrDefault(args.Targets) {
		if err := ctx.Err(); err != nil {
			return err
		}

		path := w.fsAdapter.Resolve(args.Root, target)

		if _, found := w.stat(path); !found {
			w.ui.DisplaySkipped(ctx, target)
			continue
		}

		content, err := w.readTarget(path, target)
		if err != nil {
			return err
		}

		rewritten, _ := w.rewriter.Rewrite(content)
		if bytes.Equal(content, rewritten) {
			continue
		}

		w.ui.DisplayDiff(ctx, target, unifiedDiff(target, content, rewritten))
	}

	return nil
}

// stat reports whether path exists. Any stat failure (missing file, a parent
// that is not a directory, no permission) counts as not found.
func (w *workflow) stat(path string) (fs.FileInfo, bool) {
	info, err := w.fsAdapter.FileInfo(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Debug("target not accessible", "path", path, "error", err)
		}

		return nil, false
	}

	return info, true
}

// readTarget loads a target and rejects content that is not valid UTF-8.
func (w *workflow) readTarget(path string, target m.Path) ([]byte, error) {
	content, err := w.fsAdapter.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", target, err)
	}

	if !utf8.Valid(content) {
		return nil, fmt.Errorf("failed to decode %s: %w", target, ErrInvalidEncoding)
	}

	return content, nil
}
