package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"layoutfix.dev/pkg/layoutfix/internal/adapter"
	"layoutfix.dev/pkg/layoutfix/internal/controller"
	"layoutfix.dev/pkg/layoutfix/internal/domain"
	domainmocks "layoutfix.dev/pkg/layoutfix/internal/domain/mocks"
	m "layoutfix.dev/pkg/layoutfix/internal/model"
)

func TestViewCmd_PositionalReportPath(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd, _ := newTestRootCmd(t)
	cmd.AddCommand(newViewCmd())

	mockWorkflow.On("View", mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Report == m.Path("reports/run.yaml")
	})).Return(nil)

	cmd.SetArgs([]string{"view", "reports/run.yaml"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_TooManyArgsAreRejected(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd, _ := newTestRootCmd(t)
	cmd.AddCommand(newViewCmd())

	cmd.SetArgs([]string{"view", "a.yaml", "b.yaml"})
	require.Error(t, cmd.Execute())
}

func TestViewCmd_RendersReportWrittenByFix(t *testing.T) {
	root := t.TempDir()
	page := filepath.Join(root, "app", "dashboard", "page.tsx")
	require.NoError(t, os.MkdirAll(filepath.Dir(page), 0o755))
	require.NoError(t, os.WriteFile(page, []byte("<DashboardLayout>\n  <main />\n</DashboardLayout>\n"), 0o644))
	reportPath := filepath.Join(t.TempDir(), "run.yaml")

	fixCmd, _ := newTestRootCmd(t)
	useWorkflow(t, domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewReportStore(),
		controller.NewSimpleUI(fixCmd),
		domain.NewLayoutRewriter(),
	))
	fixCmd.SetArgs([]string{"--root", root, "--report", reportPath})
	require.NoError(t, fixCmd.Execute())

	viewRoot, out := newTestRootCmd(t)
	viewRoot.AddCommand(newViewCmd())
	useWorkflow(t, domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewReportStore(),
		controller.NewSimpleUI(viewRoot),
		domain.NewLayoutRewriter(),
	))
	viewRoot.SetArgs([]string{"view", reportPath})
	require.NoError(t, viewRoot.Execute())

	assert.Contains(t, out.String(), "app/dashboard/page.tsx")
	assert.Contains(t, out.String(), "FIXED 1")
	assert.Contains(t, out.String(), "SKIPPED 13")
}
