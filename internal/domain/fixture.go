package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Fixture is a named group of test cases loaded from one file
type Fixture struct {
	Name  string     `yaml:"name" json:"name"`
	Cases []TestCase `yaml:"cases" json:"cases"`

	Path string `yaml:"-" json:"path"` // Source file
	Slug string `yaml:"-" json:"slug"` // URL-safe identifier derived from the file name
}

// CaseID returns a stable identifier for the i-th case of the fixture
func (f Fixture) CaseID(i int) string {
	return fmt.Sprintf("%s-%d", f.Slug, i+1)
}

// Validate validates every case, prefixing errors with the case position
func (f Fixture) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("%s: %w: name", f.Path, ErrMissingRequiredField)
	}
	if len(f.Cases) == 0 {
		return fmt.Errorf("%s: %w: cases", f.Path, ErrMissingRequiredField)
	}
	for i, tc := range f.Cases {
		if err := tc.Validate(); err != nil {
			return fmt.Errorf("%s: case %d: %w", f.Path, i+1, err)
		}
	}
	return nil
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// SlugFromPath derives a fixture slug from its file name
func SlugFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	slug := nonSlug.ReplaceAllString(strings.ToLower(base), "-")
	return strings.Trim(slug, "-")
}
