package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	m "layoutfix.dev/pkg/layoutfix/internal/model"
)

// ReportStore persists fix run reports.
type ReportStore interface {
	SaveReport(path m.Path, report m.RunReport) error
	LoadReport(path m.Path) (m.RunReport, error)
}

type yamlReportStore struct{}

// NewReportStore returns a ReportStore that writes YAML documents.
func NewReportStore() ReportStore {
	return &yamlReportStore{}
}

// SaveReport writes report to path, creating parent directories as needed.
func (s *yamlReportStore) SaveReport(path m.Path, report m.RunReport) error {
	target := path.OSPath()

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if dir := filepath.Dir(target); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	if err := os.WriteFile(target, data, 0o600); err != nil {
		return fmt.Errorf("failed to write report %s: %w", target, err)
	}

	return nil
}

// LoadReport reads a report written by SaveReport.
func (s *yamlReportStore) LoadReport(path m.Path) (m.RunReport, error) {
	target := path.OSPath()

	// #nosec G304 - path is the configured report location
	data, err := os.ReadFile(target)
	if err != nil {
		return m.RunReport{}, fmt.Errorf("failed to read report %s: %w", target, err)
	}

	var report m.RunReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.RunReport{}, fmt.Errorf("failed to decode report %s: %w", target, err)
	}

	return report, nil
}
