package presenter

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"

	"fixcheck/internal/domain"
	"fixcheck/internal/query"
	"fixcheck/internal/version"
)

func gatedCase() domain.TestCase {
	return domain.TestCase{
		Title:          "Decimal input",
		Description:    "Trailing decimals survive re-render.",
		ResolvedIn:     "16.4.0",
		Steps:          []string{"Type 1.", "Blur the input"},
		ExpectedResult: "The input still reads 1.",
	}
}

func targetFromURL(t *testing.T, rawURL string) query.Target {
	t.Helper()
	target, err := query.TargetFromURL(rawURL)
	if err != nil {
		t.Fatalf("failed to read target from %q: %v", rawURL, err)
	}
	return target
}

func mustNew(t *testing.T, tc domain.TestCase, target query.Target) *TestCase {
	t.Helper()
	p, err := New("inputs-1", tc, target, Links{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func render(t *testing.T, p *TestCase) string {
	t.Helper()
	out, err := RenderString(p.Render())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return out
}

func findByClass(n *html.Node, cls string) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key == "class" && strings.Contains(" "+a.Val+" ", " "+cls+" ") {
					found = append(found, n)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return found
}

func isChecked(n *html.Node) bool {
	for _, a := range n.Attr {
		if a.Key == "checked" {
			return true
		}
	}
	return false
}

func TestTestCase_TargetPredatesFix(t *testing.T) {
	p := mustNew(t, gatedCase(), targetFromURL(t, "http://localhost/?version=16.3.0"))

	if p.DerivedFixed() {
		t.Error("expected derived fixed to be false")
	}
	if p.ManualCheck() {
		t.Error("manual check should start unchecked")
	}
	if !p.Complete() {
		t.Error("a case not expected to pass should count as complete")
	}

	root := p.Render()
	if notices := findByClass(root, "test-case__invalid-version"); len(notices) != 1 {
		t.Errorf("expected one notice, got %d", len(notices))
	}
	boxes := findByClass(root, "test-case__title__check")
	if len(boxes) != 1 || !isChecked(boxes[0]) {
		t.Error("checkbox should reflect the complete state")
	}
}

func TestTestCase_TargetIncludesFix(t *testing.T) {
	p := mustNew(t, gatedCase(), targetFromURL(t, "http://localhost/?version=16.5.0"))

	if !p.DerivedFixed() {
		t.Error("expected derived fixed to be true")
	}
	if p.Complete() {
		t.Error("a fixed case needs verification before it is complete")
	}

	root := p.Render()
	if notices := findByClass(root, "test-case__invalid-version"); len(notices) != 0 {
		t.Errorf("expected no notice, got %d", len(notices))
	}
	if boxes := findByClass(root, "test-case__title__check"); isChecked(boxes[0]) {
		t.Error("checkbox should start unchecked")
	}
	if sections := findByClass(root, "test-case--complete"); len(sections) != 0 {
		t.Error("section should not carry the complete modifier")
	}
}

func TestTestCase_Ungated(t *testing.T) {
	t.Run("no version param", func(t *testing.T) {
		p := mustNew(t, gatedCase(), targetFromURL(t, "http://localhost/"))
		if !p.DerivedFixed() {
			t.Error("expected derived fixed without a target")
		}
	})

	t.Run("no resolvedIn", func(t *testing.T) {
		tc := gatedCase()
		tc.ResolvedIn = ""
		p := mustNew(t, tc, targetFromURL(t, "/?version=0.0.1"))
		if !p.DerivedFixed() {
			t.Error("expected derived fixed without a gate")
		}
	})
}

func TestTestCase_Toggle(t *testing.T) {
	for _, rawURL := range []string{"/?version=16.3.0", "/?version=16.5.0", "/"} {
		t.Run(rawURL, func(t *testing.T) {
			p := mustNew(t, gatedCase(), targetFromURL(t, rawURL))
			initialManual, initialComplete := p.ManualCheck(), p.Complete()

			if complete := p.Toggle(); !complete || !p.ManualCheck() {
				t.Errorf("a manual check always completes the case, got complete=%v manual=%v", complete, p.ManualCheck())
			}

			p.Toggle()
			if p.ManualCheck() != initialManual || p.Complete() != initialComplete {
				t.Errorf("toggling twice should restore (%v, %v), got (%v, %v)",
					initialManual, initialComplete, p.ManualCheck(), p.Complete())
			}
		})
	}

	t.Run("re-render follows toggle", func(t *testing.T) {
		p := mustNew(t, gatedCase(), targetFromURL(t, "/?version=16.5.0"))
		p.Toggle()
		root := p.Render()
		if boxes := findByClass(root, "test-case__title__check"); !isChecked(boxes[0]) {
			t.Error("checkbox should be checked after toggle")
		}
		if sections := findByClass(root, "test-case--complete"); len(sections) != 1 {
			t.Error("section should carry the complete modifier after toggle")
		}
	})
}

func TestTestCase_View(t *testing.T) {
	tc := domain.TestCase{
		Title:            "Select with defaultValue",
		Description:      "The default option is selected.",
		IntroducedIn:     "15.0.0",
		ResolvedIn:       "16.4.0",
		ResolvedBy:       "#1234",
		AffectedBrowsers: "Firefox, Safari",
		RelatedIssues:    []string{"#10", "#11"},
		ExpectedResult:   "Option B is selected",
	}
	p, err := New("selects-2", tc, query.Target{}, Links{RepoURL: "https://example.com/repo/"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := View{
		ID:          "selects-2",
		Title:       tc.Title,
		Description: tc.Description,
		Rows: []Row{
			{Label: LabelIntroducedIn, Value: "15.0.0", Href: "https://example.com/repo/tag/v15.0.0"},
			{Label: LabelResolvedIn, Value: "16.4.0", Href: "https://example.com/repo/tag/v16.4.0"},
			{Label: LabelResolvedBy, Value: "#1234", Href: "https://example.com/repo/pull/1234"},
			{Label: LabelAffectedBrowsers, Value: "Firefox, Safari"},
			{Label: LabelRelatedIssues, Issues: []string{"#10", "#11"}},
		},
		ExpectedResult: "Option B is selected",
		DerivedFixed:   true,
	}
	if diff := cmp.Diff(expected, p.View()); diff != "" {
		t.Errorf("View() mismatch (-want +got):\n%s", diff)
	}
}

func TestTestCase_RenderMetadata(t *testing.T) {
	t.Run("absent fields are omitted", func(t *testing.T) {
		tc := gatedCase()
		tc.ResolvedIn = ""
		out := render(t, mustNew(t, tc, query.Target{}))
		for _, label := range []string{LabelIntroducedIn, LabelResolvedIn, LabelResolvedBy, LabelAffectedBrowsers, LabelRelatedIssues} {
			if strings.Contains(out, label) {
				t.Errorf("did not expect %q in %s", label, out)
			}
		}
	})

	t.Run("resolvedBy links to the pull request", func(t *testing.T) {
		tc := gatedCase()
		tc.ResolvedBy = "#1234"
		out := render(t, mustNew(t, tc, query.Target{}))
		if !strings.Contains(out, `href="https://github.com/facebook/react/pull/1234"`) {
			t.Errorf("expected pull link in %s", out)
		}
		if !strings.Contains(out, "<code>#1234</code>") {
			t.Errorf("expected issue reference in %s", out)
		}
	})

	t.Run("versions link to tags", func(t *testing.T) {
		out := render(t, mustNew(t, gatedCase(), query.Target{}))
		if !strings.Contains(out, "<dt>"+LabelResolvedIn+" </dt>") {
			t.Errorf("expected resolvedIn label in %s", out)
		}
		if !strings.Contains(out, `href="https://github.com/facebook/react/tag/v16.4.0"`) {
			t.Errorf("expected tag link in %s", out)
		}
	})

	t.Run("affected browsers as text", func(t *testing.T) {
		tc := gatedCase()
		tc.AffectedBrowsers = "IE 11"
		out := render(t, mustNew(t, tc, query.Target{}))
		if !strings.Contains(out, "<dd>IE 11</dd>") {
			t.Errorf("expected plain browsers row in %s", out)
		}
	})

	t.Run("related issues delegated to the issue list", func(t *testing.T) {
		tc := gatedCase()
		tc.RelatedIssues = []string{"#7"}
		root := mustNew(t, tc, query.Target{}).Render()
		if lists := findByClass(root, "issue-list"); len(lists) != 1 {
			t.Errorf("expected one issue list, got %d", len(lists))
		}
	})

	t.Run("body content is always rendered", func(t *testing.T) {
		out := render(t, mustNew(t, gatedCase(), targetFromURL(t, "/?version=16.3.0")))
		notice := strings.Index(out, "test-case__invalid-version")
		steps := strings.Index(out, StepsHeading)
		expected := strings.Index(out, ExpectedResultHeading)
		if notice < 0 || steps < 0 || expected < 0 {
			t.Fatalf("missing body content in %s", out)
		}
		if !(notice < steps && steps < expected) {
			t.Errorf("expected notice, steps, expected result in order in %s", out)
		}
	})
}

func TestNew_Errors(t *testing.T) {
	t.Run("missing title", func(t *testing.T) {
		tc := gatedCase()
		tc.Title = ""
		_, err := New("x-1", tc, query.Target{}, Links{})
		if !errors.Is(err, domain.ErrMissingRequiredField) {
			t.Errorf("expected ErrMissingRequiredField, got %v", err)
		}
	})

	t.Run("malformed resolvedIn", func(t *testing.T) {
		tc := gatedCase()
		tc.ResolvedIn = "16.4"
		_, err := New("x-1", tc, targetFromURL(t, "/?version=16.5.0"), Links{})
		if !errors.Is(err, version.ErrInvalidVersionFormat) {
			t.Errorf("expected ErrInvalidVersionFormat, got %v", err)
		}
	})
}
