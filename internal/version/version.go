package version

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// ErrInvalidVersionFormat is returned for strings that are not strict
// MAJOR.MINOR.PATCH[-prerelease][+build] versions.
var ErrInvalidVersionFormat = errors.New("invalid version format")

// Ordering is the result of comparing two versions
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	}
	return fmt.Sprintf("Ordering(%d)", int(o))
}

// Parse parses a strict semantic version
func Parse(v string) (*semver.Version, error) {
	parsed, err := semver.StrictNewVersion(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVersionFormat, v)
	}
	return parsed, nil
}

// Validate reports whether v is a well-formed version
func Validate(v string) error {
	_, err := Parse(v)
	return err
}

// Compare orders a against b using semantic version precedence. Build
// metadata does not take part in the ordering.
func Compare(a, b string) (Ordering, error) {
	va, err := Parse(a)
	if err != nil {
		return Equal, err
	}
	vb, err := Parse(b)
	if err != nil {
		return Equal, err
	}
	return Ordering(va.Compare(vb)), nil
}

// IsAtLeast reports whether a >= b
func IsAtLeast(a, b string) (bool, error) {
	o, err := Compare(a, b)
	if err != nil {
		return false, err
	}
	return o != Less, nil
}
