package domain

import "time"

// LoadResult is the outcome of loading one fixture file
type LoadResult struct {
	Path     string        // Fixture file that was loaded
	Fixture  Fixture       // Valid only when Error is nil
	Error    error         // Read, parse or validation error
	Duration time.Duration // Time taken to load
}

// Success reports whether the fixture loaded cleanly
func (r LoadResult) Success() bool {
	return r.Error == nil
}

// LintReport is the machine-readable summary written by the lint command
type LintReport struct {
	Meta    LintReportMeta   `json:"meta"`
	Details []LintFileReport `json:"details"`
}

// LintReportMeta holds totals for a lint run
type LintReportMeta struct {
	TotalFixtureFiles   int     `json:"total_fixture_files"`
	InvalidFixtureFiles int     `json:"invalid_fixture_files"`
	TotalCases          int     `json:"total_cases"`
	Duration            string  `json:"duration"`
	DurationSeconds     float64 `json:"duration_seconds"`
	Workers             int     `json:"workers"`
	Timestamp           string  `json:"timestamp"`
}

// LintFileReport is the lint outcome of one fixture file
type LintFileReport struct {
	Path  string `json:"path"`
	Slug  string `json:"slug,omitempty"`
	Cases int    `json:"cases"`
	Error string `json:"error,omitempty"`
}
