package ui

import (
	"fixcheck/internal/domain"
	"fixcheck/internal/query"
)

// Viewer walks an operator through the test cases of a catalog
type Viewer interface {
	Run(catalog *domain.Catalog, target query.Target) error
}

var _ Viewer = (*Checklist)(nil)
