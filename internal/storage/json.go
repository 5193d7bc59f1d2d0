package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fixcheck/internal/domain"
)

// Save writes a lint report for results to the JSON file.
func (s *JSONStorage) Save(results []domain.LoadResult, duration time.Duration, workers int) error {
	report := buildReport(results, duration, workers, s.now())

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Load reads a lint report from the JSON file.
func (s *JSONStorage) Load() (*domain.LintReport, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read report file: %w", err)
	}
	var report domain.LintReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &report, nil
}

func buildReport(results []domain.LoadResult, duration time.Duration, workers int, now time.Time) domain.LintReport {
	report := domain.LintReport{
		Meta: domain.LintReportMeta{
			TotalFixtureFiles: len(results),
			Duration:          duration.String(),
			DurationSeconds:   duration.Seconds(),
			Workers:           workers,
			Timestamp:         now.Format(time.RFC3339),
		},
		Details: make([]domain.LintFileReport, 0, len(results)),
	}

	for _, r := range results {
		entry := domain.LintFileReport{Path: r.Path}
		if r.Success() {
			entry.Slug = r.Fixture.Slug
			entry.Cases = len(r.Fixture.Cases)
			report.Meta.TotalCases += entry.Cases
		} else {
			entry.Error = r.Error.Error()
			report.Meta.InvalidFixtureFiles++
		}
		report.Details = append(report.Details, entry)
	}
	return report
}
