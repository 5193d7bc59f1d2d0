package discovery

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fixcheck/internal/domain"
	"fixcheck/internal/version"
)

const textInputsFixture = `name: Text inputs
cases:
  - title: Numbers in a controlled input
    description: Trailing decimals should survive a re-render.
    introducedIn: 15.0.0
    resolvedIn: 16.4.0
    resolvedBy: "#11881"
    affectedBrowsers: Chrome, Firefox
    relatedIssues: ["#7253", "#7359"]
    steps:
      - Type "3."
      - Blur the input
    expectedResult: The input still reads "3."
  - title: Cursor position
    description: The cursor should not jump to the end.
    expectedResult: The cursor stays in place.
`

func TestParser_Parse(t *testing.T) {
	parser := NewParser()

	t.Run("decodes a fixture", func(t *testing.T) {
		fixture, err := parser.Parse("fixtures/Text Inputs.yml", []byte(textInputsFixture))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := domain.Fixture{
			Name: "Text inputs",
			Path: "fixtures/Text Inputs.yml",
			Slug: "text-inputs",
			Cases: []domain.TestCase{
				{
					Title:            "Numbers in a controlled input",
					Description:      "Trailing decimals should survive a re-render.",
					IntroducedIn:     "15.0.0",
					ResolvedIn:       "16.4.0",
					ResolvedBy:       "#11881",
					AffectedBrowsers: "Chrome, Firefox",
					RelatedIssues:    []string{"#7253", "#7359"},
					Steps:            []string{`Type "3."`, "Blur the input"},
					ExpectedResult:   `The input still reads "3."`,
				},
				{
					Title:          "Cursor position",
					Description:    "The cursor should not jump to the end.",
					ExpectedResult: "The cursor stays in place.",
				},
			},
		}
		if diff := cmp.Diff(expected, fixture); diff != "" {
			t.Errorf("fixture mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		_, err := parser.Parse("x.yml", []byte("name: X\ncases:\n  - title: T\n    resolvedInn: 1.0.0\n"))
		if err == nil {
			t.Error("expected error for misspelled field")
		}
	})

	t.Run("rejects malformed versions", func(t *testing.T) {
		content := "name: X\ncases:\n  - title: T\n    description: D\n    resolvedIn: 16.4\n    expectedResult: R\n"
		_, err := parser.Parse("x.yml", []byte(content))
		if !errors.Is(err, version.ErrInvalidVersionFormat) {
			t.Errorf("expected ErrInvalidVersionFormat, got %v", err)
		}
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, err := parser.Parse("x.yml", []byte("name: X\ncases:\n  - title: T\n"))
		if !errors.Is(err, domain.ErrMissingRequiredField) {
			t.Errorf("expected ErrMissingRequiredField, got %v", err)
		}
	})

	t.Run("rejects empty files", func(t *testing.T) {
		_, err := parser.Parse("x.yml", nil)
		if !errors.Is(err, domain.ErrMissingRequiredField) {
			t.Errorf("expected ErrMissingRequiredField, got %v", err)
		}
	})
}

func TestParser_ParseFile(t *testing.T) {
	parser := NewParser()
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "text-inputs.yml")
	if err := os.WriteFile(path, []byte(textInputsFixture), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	t.Run("reads from disk", func(t *testing.T) {
		fixture, err := parser.ParseFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fixture.Cases) != 2 {
			t.Errorf("expected 2 cases, got %d", len(fixture.Cases))
		}
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		_, err := parser.ParseFile("/non/existent/file.yml")
		if err == nil {
			t.Error("expected error for non-existent file")
		}
	})
}
