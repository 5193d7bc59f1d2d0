package presenter

import "strings"

// DefaultRepoURL is the repository release tags and pull requests link to
const DefaultRepoURL = "https://github.com/facebook/react"

// Links builds external links for versions and issue references
type Links struct {
	RepoURL string
}

func (l Links) base() string {
	if l.RepoURL == "" {
		return DefaultRepoURL
	}
	return strings.TrimRight(l.RepoURL, "/")
}

// Tag links to the release tag of a version
func (l Links) Tag(v string) string {
	return l.base() + "/tag/v" + v
}

// Pull links to a pull request, given a reference like "#1234"
func (l Links) Pull(ref string) string {
	return l.base() + "/pull/" + strings.TrimPrefix(ref, "#")
}

// Issue links to an issue, given a reference like "#1234"
func (l Links) Issue(ref string) string {
	return l.base() + "/issues/" + strings.TrimPrefix(ref, "#")
}
