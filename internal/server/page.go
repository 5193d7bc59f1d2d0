package server

import (
	"fmt"
	"net/url"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"fixcheck/internal/domain"
	"fixcheck/internal/presenter"
	"fixcheck/internal/query"
)

// liveScript wires checkbox changes to the session socket and swaps in the
// re-rendered case it sends back. A change that cannot be applied is undone
// so the checkbox keeps showing the case's completion state.
const liveScript = `(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + location.pathname.replace(/\/$/, "") + "/ws" + location.search);
  document.addEventListener("change", function (e) {
    var id = e.target.getAttribute("data-case");
    if (!id) return;
    if (ws.readyState !== WebSocket.OPEN) {
      e.target.checked = !e.target.checked;
      return;
    }
    ws.send(JSON.stringify({type: "toggle", id: id}));
  });
  ws.onmessage = function (m) {
    var u = JSON.parse(m.data);
    if (u.error) {
      var box = document.querySelector('input[data-case="' + u.id + '"]');
      if (box) box.checked = !box.checked;
      return;
    }
    var el = document.getElementById(u.id);
    if (el && u.html) el.outerHTML = u.html;
  };
})();`

// page holds what the page shell needs besides the fixture content
type page struct {
	title    string
	target   query.Target
	rawQuery string
	fixtures []domain.Fixture
	current  string
	errMsg   string
	content  []*html.Node
	live     bool
}

// fixtureHref keeps the version selection when navigating between fixtures
func fixtureHref(slug string, target query.Target) string {
	href := "/fixtures/" + url.PathEscape(slug)
	if target.IsSet() {
		href += "?" + url.Values{query.VersionParam: {target.Version()}}.Encode()
	}
	return href
}

func (p page) header() *html.Node {
	form := presenter.Element(atom.Form, presenter.Attr("method", "get"), presenter.Class("header__version"))
	versionValue := ""
	if p.target.IsSet() {
		versionValue = p.target.Version()
	}
	// an invalid target is echoed back so the operator can correct it
	if p.errMsg != "" {
		if v, ok := query.ExtractParam("?"+p.rawQuery, query.VersionParam); ok {
			versionValue = v
		}
	}
	presenter.Append(form,
		presenter.Append(presenter.Element(atom.Label, presenter.Attr("for", "version")), presenter.Text("Version: ")),
		presenter.Element(atom.Input, presenter.Attr("id", "version"), presenter.Attr("name", query.VersionParam), presenter.Attr("value", versionValue), presenter.Attr("placeholder", "any")),
		presenter.Append(presenter.Element(atom.Button, presenter.Attr("type", "submit")), presenter.Text("Apply")),
	)

	nav := presenter.Element(atom.Ul, presenter.Class("header__nav"))
	for _, f := range p.fixtures {
		link := presenter.Element(atom.A, presenter.Attr("href", fixtureHref(f.Slug, p.target)))
		if f.Slug == p.current {
			link.Attr = append(link.Attr, presenter.Attr("aria-current", "page"))
		}
		nav.AppendChild(presenter.Append(presenter.Element(atom.Li), presenter.Append(link, presenter.Text(f.Name))))
	}

	return presenter.Append(presenter.Element(atom.Header, presenter.Class("header")),
		presenter.Append(presenter.Element(atom.H1), presenter.Append(presenter.Element(atom.A, presenter.Attr("href", "/")), presenter.Text("Fixtures"))),
		form,
		nav,
	)
}

// render builds the full document
func (p page) render() *html.Node {
	head := presenter.Append(presenter.Element(atom.Head),
		presenter.Element(atom.Meta, presenter.Attr("charset", "utf-8")),
		presenter.Append(presenter.Element(atom.Title), presenter.Text(p.title)),
	)

	main := presenter.Element(atom.Main, presenter.Class("container"))
	if p.errMsg != "" {
		main.AppendChild(presenter.Append(presenter.Element(atom.P, presenter.Class("fixture-error"), presenter.Attr("role", "alert")), presenter.Text(p.errMsg)))
	}
	for _, c := range p.content {
		main.AppendChild(c)
	}

	body := presenter.Append(presenter.Element(atom.Body), p.header(), main)
	if p.live {
		body.AppendChild(presenter.Append(presenter.Element(atom.Script), presenter.Text(liveScript)))
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(presenter.Append(presenter.Element(atom.Html, presenter.Attr("lang", "en")), head, body))
	return doc
}

// fixtureIndex lists every fixture with its case count
func fixtureIndex(fixtures []domain.Fixture, target query.Target) *html.Node {
	list := presenter.Element(atom.Ul, presenter.Class("fixture-index"))
	for _, f := range fixtures {
		item := presenter.Append(presenter.Element(atom.Li),
			presenter.Append(presenter.Element(atom.A, presenter.Attr("href", fixtureHref(f.Slug, target))), presenter.Text(f.Name)),
			presenter.Text(" "),
			presenter.Append(presenter.Element(atom.Small), presenter.Text(pluralCases(len(f.Cases)))),
		)
		list.AppendChild(item)
	}
	return list
}

func pluralCases(n int) string {
	if n == 1 {
		return "(1 case)"
	}
	return fmt.Sprintf("(%d cases)", n)
}

func renderCases(cases []*presenter.TestCase) []*html.Node {
	nodes := make([]*html.Node, 0, len(cases))
	for _, c := range cases {
		nodes = append(nodes, c.Render())
	}
	return nodes
}
