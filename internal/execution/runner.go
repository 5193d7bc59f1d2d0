package execution

import (
	"time"

	"fixcheck/internal/discovery"
	"fixcheck/internal/domain"
)

// Runner loads a single fixture file
type Runner struct {
	parser *discovery.Parser
}

// NewRunner creates a new Runner
func NewRunner(parser *discovery.Parser) *Runner {
	return &Runner{parser: parser}
}

// Run parses and validates the fixture at path
func (r *Runner) Run(path string) domain.LoadResult {
	start := time.Now()
	fixture, err := r.parser.ParseFile(path)
	return domain.LoadResult{
		Path:     path,
		Fixture:  fixture,
		Error:    err,
		Duration: time.Since(start),
	}
}
