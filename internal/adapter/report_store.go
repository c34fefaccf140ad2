package adapter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "weave.dev/pkg/weave/internal/model"
)

// ReportStore persists run reports so a later `view` can display them.
type ReportStore interface {
	SaveReport(path m.Path, report m.RunReport) error
	LoadReport(path m.Path) (m.RunReport, error)
}

// YAMLReportStore stores run reports as YAML files on the local disk.
type YAMLReportStore struct{}

// NewReportStore constructs the default YAML-backed report store.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReport marshals the report and writes it to path.
func (s *YAMLReportStore) SaveReport(path m.Path, report m.RunReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

// LoadReport reads and unmarshals the report at path.
func (s *YAMLReportStore) LoadReport(path m.Path) (m.RunReport, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.RunReport{}, fmt.Errorf("read report %s: %w", path, err)
	}

	var report m.RunReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.RunReport{}, fmt.Errorf("unmarshal report %s: %w", path, err)
	}

	return report, nil
}
