package domain

import "fmt"

// Catalog is an immutable, ordered set of fixtures
type Catalog struct {
	fixtures []Fixture
	bySlug   map[string]int
}

// NewCatalog indexes fixtures by slug. Duplicate slugs are an error.
func NewCatalog(fixtures []Fixture) (*Catalog, error) {
	c := &Catalog{
		fixtures: fixtures,
		bySlug:   make(map[string]int, len(fixtures)),
	}
	for i, f := range fixtures {
		if prev, ok := c.bySlug[f.Slug]; ok {
			return nil, fmt.Errorf("duplicate fixture slug %q: %s and %s", f.Slug, fixtures[prev].Path, f.Path)
		}
		c.bySlug[f.Slug] = i
	}
	return c, nil
}

// Fixtures returns all fixtures in load order
func (c *Catalog) Fixtures() []Fixture {
	return c.fixtures
}

// Lookup finds a fixture by slug
func (c *Catalog) Lookup(slug string) (Fixture, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Fixture{}, false
	}
	return c.fixtures[i], true
}

// Len returns the number of fixtures
func (c *Catalog) Len() int {
	return len(c.fixtures)
}
