package query

import (
	"fmt"
	"net/url"
	"strings"

	"fixcheck/internal/version"
)

// VersionParam is the query parameter holding the operator-selected version
const VersionParam = "version"

// Target is the runtime version an operator is testing against. The zero
// value means no version was requested.
type Target struct {
	version string
	set     bool
}

// NewTarget returns a Target for v after validating it
func NewTarget(v string) (Target, error) {
	if err := version.Validate(v); err != nil {
		return Target{}, fmt.Errorf("target version: %w", err)
	}
	return Target{version: v, set: true}, nil
}

// IsSet reports whether a target version was requested
func (t Target) IsSet() bool {
	return t.set
}

// Version returns the target version, or "" when unset
func (t Target) Version() string {
	return t.version
}

func (t Target) String() string {
	if !t.set {
		return "any"
	}
	return t.version
}

// ExtractParam returns the URL-decoded value of the first occurrence of key
// in the query component of rawURL. rawURL may be an absolute URL, a path
// with a query, or a query string starting with "?". A key present without
// a value yields ("", true). Pairs whose key cannot be decoded are skipped;
// a matching value that cannot be decoded is returned as written so that
// callers validating it still see the malformed text.
func ExtractParam(rawURL, key string) (string, bool) {
	if hash := strings.IndexByte(rawURL, '#'); hash >= 0 {
		rawURL = rawURL[:hash]
	}
	idx := strings.IndexByte(rawURL, '?')
	if idx < 0 {
		return "", false
	}

	for _, pair := range strings.Split(rawURL[idx+1:], "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		name, err := url.QueryUnescape(k)
		if err != nil || name != key {
			continue
		}
		if decoded, err := url.QueryUnescape(v); err == nil {
			return decoded, true
		}
		return v, true
	}
	return "", false
}

// TargetFromURL reads the version parameter from rawURL. An absent or empty
// parameter yields an unset Target; a malformed one is an error.
func TargetFromURL(rawURL string) (Target, error) {
	v, ok := ExtractParam(rawURL, VersionParam)
	if !ok || v == "" {
		return Target{}, nil
	}
	return NewTarget(v)
}
