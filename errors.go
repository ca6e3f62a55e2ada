package formconv

import "errors"

var (
	// ErrEmptyPattern is returned when a date/time converter is requested
	// without a pattern.
	ErrEmptyPattern = errors.New("empty date/time pattern")

	// ErrUnsupportedCatalog is returned for catalog files that are neither
	// YAML nor JSON.
	ErrUnsupportedCatalog = errors.New("unsupported message catalog format")

	// ErrEngineSetup wraps failures while building an Engine.
	ErrEngineSetup = errors.New("failed to set up conversion engine")
)
