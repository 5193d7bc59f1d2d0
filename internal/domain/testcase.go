package domain

import (
	"errors"
	"fmt"
	"strings"

	"fixcheck/internal/version"
)

// ErrMissingRequiredField is returned when a test case lacks a title,
// description or body content.
var ErrMissingRequiredField = errors.New("missing required field")

// TestCase is a single manual test case within a fixture
type TestCase struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`

	IntroducedIn     string   `yaml:"introducedIn,omitempty" json:"introduced_in,omitempty"`
	ResolvedIn       string   `yaml:"resolvedIn,omitempty" json:"resolved_in,omitempty"`
	ResolvedBy       string   `yaml:"resolvedBy,omitempty" json:"resolved_by,omitempty"`
	AffectedBrowsers string   `yaml:"affectedBrowsers,omitempty" json:"affected_browsers,omitempty"`
	RelatedIssues    []string `yaml:"relatedIssues,omitempty" json:"related_issues,omitempty"`

	// Body content rendered beneath the metadata
	Steps          []string `yaml:"steps,omitempty" json:"steps,omitempty"`
	ExpectedResult string   `yaml:"expectedResult,omitempty" json:"expected_result,omitempty"`
}

// HasBody reports whether the case has any steps or an expected result
func (tc TestCase) HasBody() bool {
	return len(tc.Steps) > 0 || strings.TrimSpace(tc.ExpectedResult) != ""
}

// Validate checks required fields and version formats. All problems are
// reported together.
func (tc TestCase) Validate() error {
	var errs []error

	if strings.TrimSpace(tc.Title) == "" {
		errs = append(errs, fmt.Errorf("%w: title", ErrMissingRequiredField))
	}
	if strings.TrimSpace(tc.Description) == "" {
		errs = append(errs, fmt.Errorf("%w: description", ErrMissingRequiredField))
	}
	if !tc.HasBody() {
		errs = append(errs, fmt.Errorf("%w: steps or expectedResult", ErrMissingRequiredField))
	}
	if tc.IntroducedIn != "" {
		if err := version.Validate(tc.IntroducedIn); err != nil {
			errs = append(errs, fmt.Errorf("introducedIn: %w", err))
		}
	}
	if tc.ResolvedIn != "" {
		if err := version.Validate(tc.ResolvedIn); err != nil {
			errs = append(errs, fmt.Errorf("resolvedIn: %w", err))
		}
	}

	return errors.Join(errs...)
}
