package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters fixture files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps files whose base name matches pattern. Patterns with
// wildcards ("*inputs*", "select?.yml") match as globs or, failing that, as
// an ordered sequence of substrings; plain patterns match as substrings.
// Matching is case-insensitive.
func (f *Filter) FilterByName(files []string, pattern string) []string {
	if pattern == "" {
		return files
	}
	pattern = strings.ToLower(pattern)

	var filtered []string
	for _, file := range files {
		name := strings.ToLower(filepath.Base(file))
		if matchName(name, pattern) {
			filtered = append(filtered, file)
		}
	}
	return filtered
}

func matchName(name, pattern string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// "*Payment*"-style patterns that Match rejected, e.g. because of the extension
	rest := name
	matchedAny := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" || strings.Contains(part, "?") {
			continue
		}
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(part):]
		matchedAny = true
	}
	return matchedAny
}
