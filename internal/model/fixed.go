package model

import (
	"fmt"

	"fixcheck/internal/domain"
	"fixcheck/internal/query"
	"fixcheck/internal/version"
)

// DeriveFixedState reports whether tc is expected to already be fixed in the
// target version. Cases without a target or without a resolving version are
// never gated. Malformed versions are returned as errors, never guessed.
func DeriveFixedState(tc domain.TestCase, target query.Target) (bool, error) {
	if !target.IsSet() || tc.ResolvedIn == "" {
		return true, nil
	}
	fixed, err := version.IsAtLeast(target.Version(), tc.ResolvedIn)
	if err != nil {
		return false, fmt.Errorf("derive fixed state for %q: %w", tc.Title, err)
	}
	return fixed, nil
}
