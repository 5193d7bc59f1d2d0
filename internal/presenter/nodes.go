package presenter

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element returns an element node for atom a
func Element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

// Text returns a text node
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Attr returns an attribute
func Attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// Class returns a class attribute listing names
func Class(names ...string) html.Attribute {
	return Attr("class", strings.Join(names, " "))
}

// Append adds the non-nil children to n and returns n
func Append(n *html.Node, children ...*html.Node) *html.Node {
	for _, c := range children {
		if c != nil {
			n.AppendChild(c)
		}
	}
	return n
}

// codeLink renders <a href><code>label</code></a>
func codeLink(href, label string) *html.Node {
	return Append(Element(atom.A, Attr("href", href)),
		Append(Element(atom.Code), Text(label)))
}

// RenderString serializes a node tree to HTML
func RenderString(n *html.Node) (string, error) {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}
