package discovery

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"fixcheck/internal/domain"
)

// Parser reads fixture files
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile reads and validates the fixture at path
func (p *Parser) ParseFile(path string) (domain.Fixture, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.Fixture{}, fmt.Errorf("error reading file %s: %w", path, err)
	}
	return p.Parse(path, content)
}

// Parse decodes fixture YAML. Unknown keys are rejected so that a typo in a
// metadata field name does not silently drop the field.
func (p *Parser) Parse(path string, content []byte) (domain.Fixture, error) {
	var fixture domain.Fixture

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&fixture); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Fixture{}, fmt.Errorf("%s: %w: empty fixture", path, domain.ErrMissingRequiredField)
		}
		return domain.Fixture{}, fmt.Errorf("%s: parse fixture: %w", path, err)
	}

	fixture.Path = path
	fixture.Slug = domain.SlugFromPath(path)

	if err := fixture.Validate(); err != nil {
		return domain.Fixture{}, err
	}
	return fixture, nil
}
