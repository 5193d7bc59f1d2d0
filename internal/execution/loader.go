package execution

import (
	"errors"
	"fmt"

	"fixcheck/internal/config"
	"fixcheck/internal/discovery"
	"fixcheck/internal/domain"
)

// Loader discovers fixture files and loads them through a worker pool
type Loader struct {
	config  *config.Config
	scanner *discovery.Scanner
	filter  *discovery.Filter
	pool    Executor
}

// NewLoader creates a new Loader
func NewLoader(cfg *config.Config, scanner *discovery.Scanner, filter *discovery.Filter, pool Executor) *Loader {
	return &Loader{
		config:  cfg,
		scanner: scanner,
		filter:  filter,
		pool:    pool,
	}
}

// Discover returns the fixture files selected by the current config
func (l *Loader) Discover() ([]string, error) {
	files, err := l.scanner.Scan(l.config.GetFixturesPath())
	if err != nil {
		return nil, err
	}
	return l.filter.FilterByName(files, l.config.Flags.NameFilter), nil
}

// Load loads every discovered fixture file and returns per-file results
func (l *Loader) Load(files []string, progress Progress) ([]domain.LoadResult, error) {
	l.pool.SetProgress(progress)
	results, _, err := l.pool.Execute(files)
	return results, err
}

// Catalog discovers and loads all fixtures. Any invalid fixture fails the
// whole load so that metadata mistakes surface before anything is shown.
func (l *Loader) Catalog(progress Progress) (*domain.Catalog, error) {
	files, err := l.Discover()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no fixture files found in %s", l.config.GetFixturesPath())
	}

	results, err := l.Load(files, progress)
	if err != nil {
		return nil, err
	}
	return CatalogFromResults(results)
}

// CatalogFromResults builds a catalog, joining every load error
func CatalogFromResults(results []domain.LoadResult) (*domain.Catalog, error) {
	var errs []error
	fixtures := make([]domain.Fixture, 0, len(results))
	for _, r := range results {
		if !r.Success() {
			errs = append(errs, r.Error)
			continue
		}
		fixtures = append(fixtures, r.Fixture)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid fixtures:\n%w", err)
	}
	return domain.NewCatalog(fixtures)
}
