package parser

import "fmt"

// DuplicatePolicy controls how NewRegistry responds to two parsers sharing a
// filter string.
type DuplicatePolicy string

const (
	// DuplicateFirstWins keeps every parser and dispatches to the first one
	// registered for a filter; later duplicates are shadowed and logged.
	DuplicateFirstWins DuplicatePolicy = "first_wins"
	// DuplicateStrict fails registry construction on the first duplicate.
	DuplicateStrict DuplicatePolicy = "strict"
)

// Validate rejects unknown policies.
func (p DuplicatePolicy) Validate() error {
	switch p {
	case DuplicateFirstWins, DuplicateStrict:
		return nil
	default:
		return fmt.Errorf("unknown duplicate policy %q (expected %q or %q)", p, DuplicateFirstWins, DuplicateStrict)
	}
}

// RegistryConfig configures registry construction.
type RegistryConfig struct {
	DuplicatePolicy DuplicatePolicy
}

// DefaultConfig returns the first-wins configuration.
func DefaultConfig() *RegistryConfig {
	return &RegistryConfig{
		DuplicatePolicy: DuplicateFirstWins,
	}
}
