package presenter

import (
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"fixcheck/internal/domain"
	"fixcheck/internal/model"
	"fixcheck/internal/query"
)

// NoticeText is shown on cases whose fix postdates the target version
const NoticeText = "This test case was fixed in a later version. " +
	"This test is not expected to pass for the selected version, and that's ok!"

// Metadata row labels
const (
	LabelIntroducedIn     = "First broken in:"
	LabelResolvedIn       = "First supported in:"
	LabelResolvedBy       = "Fixed by:"
	LabelAffectedBrowsers = "Affected browsers:"
	LabelRelatedIssues    = "Related Issues:"
)

// Row is one metadata entry of a test case
type Row struct {
	Label  string
	Value  string
	Href   string   // Empty for plain-text values
	Issues []string // Set only for the related issues row
}

// View is a host-independent snapshot of a test case's render state
type View struct {
	ID             string
	Title          string
	Description    string
	Rows           []Row
	Steps          []string
	ExpectedResult string

	ManualCheck  bool
	DerivedFixed bool
	Complete     bool
	ShowNotice   bool
}

// TestCase holds the completion state of one mounted test case. The derived
// fixed flag is computed once from the target snapshot; the manual check is
// owned by the host and changes only through Toggle.
type TestCase struct {
	id           string
	tc           domain.TestCase
	links        Links
	derivedFixed bool
	manualCheck  bool
}

// New validates tc and derives its fixed state against target
func New(id string, tc domain.TestCase, target query.Target, links Links) (*TestCase, error) {
	if err := tc.Validate(); err != nil {
		return nil, fmt.Errorf("test case %s: %w", id, err)
	}
	fixed, err := model.DeriveFixedState(tc, target)
	if err != nil {
		return nil, fmt.Errorf("test case %s: %w", id, err)
	}
	return &TestCase{
		id:           id,
		tc:           tc,
		links:        links,
		derivedFixed: fixed,
	}, nil
}

// ID returns the case identifier
func (p *TestCase) ID() string {
	return p.id
}

// Toggle flips the manual check and returns the new completion state
func (p *TestCase) Toggle() bool {
	p.manualCheck = !p.manualCheck
	return p.Complete()
}

// ManualCheck reports whether the operator checked the case
func (p *TestCase) ManualCheck() bool {
	return p.manualCheck
}

// DerivedFixed reports whether the case is expected to pass in the target version
func (p *TestCase) DerivedFixed() bool {
	return p.derivedFixed
}

// Complete is true when the case is not expected to pass in the target
// version, or when the operator checked it off.
func (p *TestCase) Complete() bool {
	return !p.derivedFixed || p.manualCheck
}

// View returns the current render state
func (p *TestCase) View() View {
	return View{
		ID:             p.id,
		Title:          p.tc.Title,
		Description:    p.tc.Description,
		Rows:           p.rows(),
		Steps:          p.tc.Steps,
		ExpectedResult: p.tc.ExpectedResult,
		ManualCheck:    p.manualCheck,
		DerivedFixed:   p.derivedFixed,
		Complete:       p.Complete(),
		ShowNotice:     !p.derivedFixed,
	}
}

func (p *TestCase) rows() []Row {
	var rows []Row
	tc := p.tc
	if tc.IntroducedIn != "" {
		rows = append(rows, Row{Label: LabelIntroducedIn, Value: tc.IntroducedIn, Href: p.links.Tag(tc.IntroducedIn)})
	}
	if tc.ResolvedIn != "" {
		rows = append(rows, Row{Label: LabelResolvedIn, Value: tc.ResolvedIn, Href: p.links.Tag(tc.ResolvedIn)})
	}
	if tc.ResolvedBy != "" {
		rows = append(rows, Row{Label: LabelResolvedBy, Value: tc.ResolvedBy, Href: p.links.Pull(tc.ResolvedBy)})
	}
	if tc.AffectedBrowsers != "" {
		rows = append(rows, Row{Label: LabelAffectedBrowsers, Value: tc.AffectedBrowsers})
	}
	if len(tc.RelatedIssues) > 0 {
		rows = append(rows, Row{Label: LabelRelatedIssues, Issues: tc.RelatedIssues})
	}
	return rows
}

// Render builds the HTML tree for the case
func (p *TestCase) Render() *html.Node {
	v := p.View()

	classes := []string{"test-case"}
	if v.Complete {
		classes = append(classes, "test-case--complete")
	}
	section := Element(atom.Section, Class(classes...), Attr("id", v.ID))

	checkbox := Element(atom.Input,
		Class("test-case__title__check"),
		Attr("type", "checkbox"),
		Attr("data-case", v.ID),
	)
	if v.Complete {
		checkbox.Attr = append(checkbox.Attr, Attr("checked", ""))
	}
	title := Append(Element(atom.H2, Class("test-case__title", "type-subheading")),
		Append(Element(atom.Label), checkbox, Text(" "+v.Title)),
	)

	details := Element(atom.Dl, Class("test-case__details"))
	for _, row := range v.Rows {
		details.AppendChild(Append(Element(atom.Dt), Text(row.Label+" ")))
		dd := Element(atom.Dd)
		switch {
		case row.Issues != nil:
			dd.AppendChild(IssueList(row.Issues, p.links))
		case row.Href != "":
			dd.AppendChild(codeLink(row.Href, row.Value))
		default:
			dd.AppendChild(Text(row.Value))
		}
		details.AppendChild(dd)
	}

	desc := Append(Element(atom.P, Class("test-case__desc")), Text(v.Description))

	body := Element(atom.Div, Class("test-case__body"))
	if v.ShowNotice {
		body.AppendChild(Append(Element(atom.P, Class("test-case__invalid-version")),
			Append(Element(atom.Strong), Text("Note:")),
			Text(" "+NoticeText),
		))
	}
	if len(v.Steps) > 0 {
		body.AppendChild(Steps(v.Steps))
	}
	if v.ExpectedResult != "" {
		body.AppendChild(ExpectedResult(v.ExpectedResult))
	}

	return Append(section, title, details, desc, body)
}
