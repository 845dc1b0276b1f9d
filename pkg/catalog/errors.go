package catalog

import "errors"

var (
	// ErrInvalidCatalog is returned when the catalog source cannot be parsed
	// or fails cross-reference validation.
	ErrInvalidCatalog = errors.New("invalid catalog data")

	// ErrUnknownChallenge is returned when a challenge id does not exist.
	ErrUnknownChallenge = errors.New("unknown challenge")
)
