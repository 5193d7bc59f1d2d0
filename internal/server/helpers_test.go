package server

import (
	"testing"

	"fixcheck/internal/presenter"
	"fixcheck/internal/query"
)

var linksForTest = presenter.Links{RepoURL: "https://example.com/repo"}

func mustTarget(t *testing.T, v string) query.Target {
	t.Helper()
	target, err := query.NewTarget(v)
	if err != nil {
		t.Fatalf("invalid target %q: %v", v, err)
	}
	return target
}
