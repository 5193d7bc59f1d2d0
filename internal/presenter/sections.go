package presenter

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	StepsHeading          = "Steps to reproduce:"
	ExpectedResultHeading = "Expected Result:"
)

// Steps renders reproduction steps as an ordered list under a heading
func Steps(items []string) *html.Node {
	list := Element(atom.Ol)
	for _, item := range items {
		list.AppendChild(Append(Element(atom.Li), Text(item)))
	}
	return Append(Element(atom.Div),
		Append(Element(atom.H3), Text(StepsHeading)),
		list,
	)
}

// ExpectedResult renders the expected outcome as a paragraph under a heading
func ExpectedResult(result string) *html.Node {
	return Append(Element(atom.Div),
		Append(Element(atom.H3), Text(ExpectedResultHeading)),
		Append(Element(atom.P), Text(result)),
	)
}

// IssueList renders issue references as a list of links
func IssueList(refs []string, links Links) *html.Node {
	list := Element(atom.Ul, Class("issue-list"))
	for _, ref := range refs {
		list.AppendChild(Append(Element(atom.Li), codeLink(links.Issue(ref), ref)))
	}
	return list
}
